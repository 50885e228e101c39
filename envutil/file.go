package envutil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFileType is returned when the file extension is not recognized.
var ErrUnknownFileType = errors.New("env file doesn't have a known file suffix")

// envFile is the shape shared by JSON and YAML env files:
//
//	env:
//	  FRACTIONAL_COMPARE_MODE: fast
//	  LOG_LEVEL: debug
type envFile struct {
	Env map[string]string `json:"env" yaml:"env"`
}

// LoadEnvFile reads the "env" map from a .json, .yml or .yaml file.
func LoadEnvFile(path string) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	var out envFile

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(bts, &out)
	case ".yml", ".yaml":
		err = yaml.Unmarshal(bts, &out)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, filepath.Base(path))
	}

	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return out.Env, nil
}

// WithEnvFile loads path and returns ctx with every variable in it applied
// as an override.
func WithEnvFile(ctx context.Context, path string) (context.Context, error) {
	vars, err := LoadEnvFile(path)
	if err != nil {
		return ctx, err
	}

	for key, value := range vars {
		ctx = WithEnvOverride(ctx, key, value)
	}

	return ctx, nil
}
