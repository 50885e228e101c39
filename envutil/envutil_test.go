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

var errTooLong = errors.New("too long")

func TestString(t *testing.T) { //nolint:paralleltest
	t.Setenv("ENVUTIL_TEST_STRING", "hello")

	val, err := String(t.Context(), "ENVUTIL_TEST_STRING").Value()
	require.NoError(t, err)
	assert.Equal(t, "hello", val)

	missing := String(t.Context(), "ENVUTIL_TEST_MISSING")
	assert.Equal(t, "ENVUTIL_TEST_MISSING", missing.Key())

	_, err = missing.Value()
	require.ErrorIs(t, err, ErrEnvVarMissing)
	require.ErrorContains(t, err, missing.Key())

	val, err = String(t.Context(), "ENVUTIL_TEST_MISSING", Default("fallback")).Value()
	require.NoError(t, err)
	assert.Equal(t, "fallback", val)
}

func TestOverride(t *testing.T) { //nolint:paralleltest
	t.Setenv("ENVUTIL_TEST_OVERRIDE", "process")

	ctx := WithEnvOverride(t.Context(), "ENVUTIL_TEST_OVERRIDE", "context")

	assert.Equal(t, "context", String(ctx, "ENVUTIL_TEST_OVERRIDE").ValueOrElse(""))
	assert.Equal(t, "process", String(t.Context(), "ENVUTIL_TEST_OVERRIDE").ValueOrElse(""))
}

func TestBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw      string
		expected bool
		wantErr  bool
	}{
		{raw: "true", expected: true},
		{raw: "1", expected: true},
		{raw: " FALSE ", expected: false},
		{raw: "maybe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			ctx := WithEnvOverride(t.Context(), "FLAG", tt.raw)

			val, err := Bool(ctx, "FLAG", Default(true)).Value()
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
	t.Parallel()

	ctx := WithEnvOverride(t.Context(), "LEVEL", "debug")
	assert.Equal(t, slog.LevelDebug, SlogLevel(ctx, "LEVEL").ValueOrElse(slog.LevelInfo))

	ctx = WithEnvOverride(t.Context(), "LEVEL", "WARN+2")
	assert.Equal(t, slog.LevelWarn+2, SlogLevel(ctx, "LEVEL").ValueOrElse(slog.LevelInfo))

	ctx = WithEnvOverride(t.Context(), "LEVEL", "chatty")
	rdr := SlogLevel(ctx, "LEVEL")
	assert.False(t, rdr.HasValue())
	require.Error(t, rdr.Error())
	assert.Equal(t, slog.LevelInfo, rdr.ValueOrElse(slog.LevelInfo))
}

func TestMapAndValidate(t *testing.T) {
	t.Parallel()

	ctx := WithEnvOverride(t.Context(), "NAME", "abcdef")

	lengthEnv := Map(String(ctx, "NAME"), func(s string) (int, error) {
		return len(s), nil
	})
	assert.Equal(t, "NAME", lengthEnv.Key())

	length, err := lengthEnv.Value()
	require.NoError(t, err)
	assert.Equal(t, 6, length)

	short := Validate(func(s string) error {
		if len(s) > 3 {
			return errTooLong
		}

		return nil
	})

	_, err = String(ctx, "NAME", short).Value()
	require.ErrorIs(t, err, errTooLong)
	require.ErrorIs(t, err, ErrBadEnvVar)

	// Missing values skip validation and keep the default.
	val, err := String(ctx, "UNSET_NAME", Default("ok"), short).Value()
	require.NoError(t, err)
	assert.Equal(t, "ok", val)
}

func TestLoadEnvFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "env.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("env:\n  FRACTIONAL_COMPARE_MODE: fast\n  LOG_LEVEL: debug\n"), 0o600))

	jsonPath := filepath.Join(dir, "env.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"env": {"FRACTIONAL_METRICS": "false"}}`), 0o600))

	vars, err := LoadEnvFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"FRACTIONAL_COMPARE_MODE": "fast", "LOG_LEVEL": "debug"}, vars)

	vars, err = LoadEnvFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"FRACTIONAL_METRICS": "false"}, vars)

	ctx, err := WithEnvFile(t.Context(), yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "fast", String(ctx, "FRACTIONAL_COMPARE_MODE").ValueOrElse(""))

	txtPath := filepath.Join(dir, "env.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("A=B"), 0o600))

	_, err = LoadEnvFile(txtPath)
	require.ErrorIs(t, err, ErrUnknownFileType)

	badPath := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(badPath, []byte("env: [unclosed"), 0o600))

	_, err = LoadEnvFile(badPath)
	require.Error(t, err)

	_, err = LoadEnvFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
