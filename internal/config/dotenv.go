package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// parseDotEnv reads a KEY=VALUE file and decodes it into a
// [StructuredConfig] using the same env tags as the process environment
// layer. It returns (nil, nil) when the file does not exist.
func parseDotEnv(path string) (*StructuredConfig, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading env file %q: %w", path, err)
	}

	cfg := &StructuredConfig{}
	if err = parseEnvMap(cfg, vars); err != nil {
		return nil, err
	}

	// the env file cannot redirect itself
	cfg.EnvFilePath = ""

	return cfg, nil
}
