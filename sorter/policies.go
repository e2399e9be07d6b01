package sorter

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/amp-labs/amp-sortable/optional"
	"gopkg.in/yaml.v3"
)

var ErrUnknownField = errors.New("unknown sort field")

// PolicyFunc returns the ordering policy for a field, or None when the
// field cannot be sorted.
type PolicyFunc[F comparable] func(field F) optional.Value[Policy]

// PolicyTable maps fields to policies. A field mapped to None is explicitly
// unsortable; a field that is missing from the table is unknown to it.
type PolicyTable[F comparable] map[F]optional.Value[Policy]

// Lookup is a PolicyFunc. Fields missing from the table are unsortable.
func (t PolicyTable[F]) Lookup(field F) optional.Value[Policy] {
	return t[field]
}

// Or returns a PolicyFunc that consults the table first and falls back to
// fallback for fields the table does not mention.
func (t PolicyTable[F]) Or(fallback PolicyFunc[F]) PolicyFunc[F] {
	return func(field F) optional.Value[Policy] {
		if p, ok := t[field]; ok {
			return p
		}

		return fallback(field)
	}
}

// policyEntry is one value in a policy document: a Policy, or the literal
// "unsortable" (or "none").
type policyEntry struct {
	policy optional.Value[Policy]
}

func (e *policyEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		switch strings.ToLower(strings.TrimSpace(node.Value)) {
		case "unsortable", "none":
			e.policy = Unsortable()

			return nil
		}
	}

	var p Policy
	if err := node.Decode(&p); err != nil {
		return err
	}

	e.policy = Sortable(p)

	return nil
}

type policyFile struct {
	Fields map[string]policyEntry `yaml:"fields"`
}

// LoadPolicies parses a YAML policy document. parse converts a field name
// used in the document to a field; names it rejects fail with ErrUnknownField.
//
// Example document:
//
//	fields:
//	  name: increasing_or_decreasing
//	  left_office:
//	    order: descending
//	    nulls: first
//	  notes: unsortable
func LoadPolicies[F comparable](data []byte, parse func(name string) (F, bool)) (PolicyTable[F], error) {
	var doc policyFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing policies: %w", err)
	}

	table := make(PolicyTable[F], len(doc.Fields))

	for name, entry := range doc.Fields {
		field, ok := parse(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
		}

		table[field] = entry.policy
	}

	return table, nil
}

// LoadPoliciesFile reads and parses a YAML policy document from path.
func LoadPoliciesFile[F comparable](path string, parse func(name string) (F, bool)) (PolicyTable[F], error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	table, err := LoadPolicies(data, parse)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return table, nil
}
