package envutil

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_STRING", "hello")

	val, err := String("ENVUTIL_TEST_STRING").Value()
	require.NoError(t, err)
	assert.Equal(t, "hello", val)

	_, err = String("ENVUTIL_TEST_STRING_MISSING").Value()
	require.ErrorIs(t, err, ErrEnvVarMissing)

	val, err = String("ENVUTIL_TEST_STRING_MISSING", Default("fallback")).Value()
	require.NoError(t, err)
	assert.Equal(t, "fallback", val)
}

func TestBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
		wantErr  bool
	}{
		{name: "true", value: "true", expected: true},
		{name: "one", value: "1", expected: true},
		{name: "false", value: "FALSE", expected: false},
		{name: "padded", value: " true ", expected: true},
		{name: "garbage", value: "maybe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENVUTIL_TEST_BOOL", tt.value)

			val, err := Bool("ENVUTIL_TEST_BOOL").Value()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrBadEnvVar)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, val)
		})
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		value    string
		expected slog.Level
	}{
		{value: "debug", expected: slog.LevelDebug},
		{value: "INFO", expected: slog.LevelInfo},
		{value: "warn", expected: slog.LevelWarn},
		{value: "error", expected: slog.LevelError},
		{value: "info+2", expected: slog.LevelInfo + 2},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("ENVUTIL_TEST_LEVEL", tt.value)

			val, err := SlogLevel("ENVUTIL_TEST_LEVEL").Value()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, val)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		t.Setenv("ENVUTIL_TEST_LEVEL", "loud")

		_, err := SlogLevel("ENVUTIL_TEST_LEVEL").Value()
		require.ErrorIs(t, err, ErrBadEnvVar)
	})
}

func TestFilePath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "policies.yaml")
	require.NoError(t, os.WriteFile(file, []byte("fields: {}"), 0o600))

	t.Setenv("ENVUTIL_TEST_FILE", file)

	val, err := FilePath("ENVUTIL_TEST_FILE").Value()
	require.NoError(t, err)
	assert.Equal(t, file, val)

	t.Setenv("ENVUTIL_TEST_FILE", dir)

	_, err = FilePath("ENVUTIL_TEST_FILE").Value()
	require.ErrorIs(t, err, ErrNotAFile)
}

func TestValidate(t *testing.T) {
	errTooShort := errors.New("too short")

	t.Setenv("ENVUTIL_TEST_VALIDATE", "ab")

	_, err := String("ENVUTIL_TEST_VALIDATE", Validate(func(s string) error {
		if len(s) < 3 {
			return errTooShort
		}

		return nil
	})).Value()
	require.ErrorIs(t, err, errTooShort)
}

func TestIfMissing(t *testing.T) {
	t.Parallel()

	errRequired := errors.New("required")

	rdr := String("ENVUTIL_TEST_NEVER_SET", IfMissing[string](errRequired))
	assert.True(t, rdr.HasError())
	require.ErrorIs(t, rdr.Error(), errRequired)
}
