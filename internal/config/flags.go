package config

import (
	"flag"
	"io"
	"strings"
)

// ignoreList is a flag.Value collecting variable names. It accepts both a
// comma separated list and repeated flags.
type ignoreList []string

// String returns the names joined with commas.
func (l *ignoreList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

// Set appends every non-empty comma separated name in s.
func (l *ignoreList) Set(s string) error {
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			*l = append(*l, name)
		}
	}
	return nil
}

// ParseFlags parses the CLI flags in args into the explicit configuration
// layer and returns it together with the remaining positional arguments
// (the command to run, if any).
//
// Flags:
//
//	-api-key         service API key
//	-pipeline        pipeline name
//	-environment     environment name
//	-host            service base URL
//	-backup          backup file path
//	-env-file        local .env file path (default ".env")
//	-ignore          variables not injected into the environment (repeatable, comma separated)
//	-no-override     do not replace variables already set in the environment
//	-timeout         per-request timeout (e.g. "1500ms", "3s")
func ParseFlags(name string, args []string, output io.Writer) (*StructuredConfig, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	cfg := &StructuredConfig{}
	var ignore ignoreList
	var noOverride bool

	fs.StringVar(&cfg.Doppler.APIKey, "api-key", "", "Service API key")
	fs.StringVar(&cfg.Doppler.Pipeline, "pipeline", "", "Pipeline name")
	fs.StringVar(&cfg.Doppler.Environment, "environment", "", "Environment name")
	fs.StringVar(&cfg.Doppler.Host, "host", "", "Service base URL")
	fs.StringVar(&cfg.Doppler.BackupFilePath, "backup", "", "Backup file path")
	fs.StringVar(&cfg.EnvFilePath, "env-file", "", "Local .env file path (default \".env\")")
	fs.Var(&ignore, "ignore", "Variables not injected into the environment (comma separated, repeatable)")
	fs.BoolVar(&noOverride, "no-override", false, "Do not replace variables already set in the environment")
	fs.DurationVar(&cfg.Doppler.RequestTimeout, "timeout", 0, "Per-request timeout (e.g. 1500ms, 3s)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg.Doppler.IgnoreVariables = ignore
	if noOverride {
		override := false
		cfg.Doppler.Override = &override
	}

	return cfg, fs.Args(), nil
}
