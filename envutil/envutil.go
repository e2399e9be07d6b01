// Package envutil reads typed configuration from environment variables.
// Each reader records whether the variable was present and whether it
// parsed, so callers can layer defaults and validation before asking for
// the value.
package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

var ErrNotAFile = errors.New("path is not a regular file")

func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

// NewReader returns a Reader for raw data, for values that do not come
// from the process environment.
func NewReader[T any](key string, present bool, err error, value T) Reader[T] {
	return Reader[T]{
		key:     key,
		present: present,
		value:   value,
		err:     err,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(key string, opts ...Option[string]) Reader[string] {
	return apply(get(key), opts)
}

// Bool parses the variable with strconv.ParseBool.
func Bool(key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(key), func(s string) (bool, error) {
		return strconv.ParseBool(strings.TrimSpace(s))
	}), opts)
}

// SlogLevel parses debug, info, warn or error (any case), or an offset form
// such as "info+2".
func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(key), func(s string) (slog.Level, error) {
		var level slog.Level

		err := level.UnmarshalText([]byte(strings.TrimSpace(s)))

		return level, err
	}), opts)
}

// FilePath requires the variable to name an existing regular file.
func FilePath(key string, opts ...Option[string]) Reader[string] {
	return apply(Map(get(key), func(path string) (string, error) {
		info, err := os.Stat(path)
		if err != nil {
			return path, err
		}

		if !info.Mode().IsRegular() {
			return path, fmt.Errorf("%w: %s", ErrNotAFile, path)
		}

		return path, nil
	}), opts)
}
