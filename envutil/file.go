package envutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFileType is returned when the file extension is not recognized.
var ErrUnknownFileType = errors.New("env file doesn't have a known file suffix")

// LoadEnvFile reads variables from a file, choosing the format by extension:
//   - .env: KEY=VALUE lines, parsed by godotenv
//   - .yml/.yaml: a top-level "env" mapping of strings
func LoadEnvFile(path string) (map[string]string, error) {
	name := strings.ToLower(filepath.Base(path))

	switch {
	case strings.HasSuffix(name, ".env"):
		return godotenv.Read(path)
	case strings.HasSuffix(name, ".yml"), strings.HasSuffix(name, ".yaml"):
		return loadYAMLFile(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, filepath.Base(path))
	}
}

type yamlEnvFile struct {
	Env map[string]string `yaml:"env"`
}

func loadYAMLFile(path string) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	var env yamlEnvFile
	if err := yaml.Unmarshal(bts, &env); err != nil {
		return nil, err
	}

	return env.Env, nil
}

// Apply exports vars into the process environment. Variables that are
// already set are kept unless override is true.
func Apply(vars map[string]string, override bool) error {
	for key, value := range vars {
		if _, set := os.LookupEnv(key); set && !override {
			continue
		}

		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}

	return nil
}
