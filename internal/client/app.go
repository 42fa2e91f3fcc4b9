package client

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/MKhiriev/go-doppler-env/internal/adapter"
	"github.com/MKhiriev/go-doppler-env/internal/config"
	"github.com/MKhiriev/go-doppler-env/internal/logger"
	"github.com/MKhiriev/go-doppler-env/internal/service"
	"github.com/MKhiriev/go-doppler-env/internal/store"
	"github.com/MKhiriev/go-doppler-env/internal/utils"
	"github.com/MKhiriev/go-doppler-env/models"
	"github.com/rs/zerolog"
)

type App struct {
	services *service.Services
	cfg      *config.ClientConfig
	command  []string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	logger *logger.Logger
}

// NewApp wires the services for one invocation. Every log line of the run
// carries the same run_id.
func NewApp(cfg *config.ClientConfig, command []string, log *logger.Logger) *App {
	runID := utils.NewRunID()
	runLog := log.GetChildLogger()
	runLog.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("run_id", runID)
	})

	services := service.NewServices(
		cfg,
		adapter.NewHTTPVariablesAdapter(cfg),
		store.NewFileBackupStorage(),
		nil,
		runLog,
	)

	return &App{
		services: services,
		cfg:      cfg,
		command:  command,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		logger:   runLog,
	}
}

func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	vars, err := a.services.VariablesService.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch variables: %w", err)
	}
	defer a.services.Workers.Wait()

	if len(a.command) == 0 {
		return a.print(vars)
	}

	return a.exec(ctx, vars)
}

// print writes the non-ignored variables to stdout as dotenv.
func (a *App) print(vars models.Variables) error {
	visible := make(models.Variables, len(vars))
	for name, value := range vars {
		if !a.cfg.Ignored(name) {
			visible[name] = value
		}
	}

	out, err := store.MarshalDotenv(visible)
	if err != nil {
		return fmt.Errorf("encode variables: %w", err)
	}

	_, err = io.WriteString(a.stdout, out)
	return err
}

func (a *App) exec(ctx context.Context, vars models.Variables) error {
	cmd := exec.CommandContext(ctx, a.command[0], a.command[1:]...)
	cmd.Env = commandEnv(os.Environ(), vars, a.cfg)
	cmd.Stdin = a.stdin
	cmd.Stdout = a.stdout
	cmd.Stderr = a.stderr

	a.logger.Debug().Strs("command", a.command).Int("variables", len(vars)).Msg("running command")

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", a.command[0], err)
	}
	return nil
}

// commandEnv merges vars into base, a list of KEY=VALUE pairs. Ignored
// variables are skipped. Existing keys are replaced only when override is
// enabled.
func commandEnv(base []string, vars models.Variables, cfg *config.ClientConfig) []string {
	env := make(map[string]string, len(base)+len(vars))
	for _, kv := range base {
		if name, value, ok := strings.Cut(kv, "="); ok {
			env[name] = value
		}
	}

	for name, value := range vars {
		if cfg.Ignored(name) {
			continue
		}
		if _, exists := env[name]; exists && !cfg.Override {
			continue
		}
		env[name] = value
	}

	out := make([]string, 0, len(env))
	for _, name := range slices.Sorted(maps.Keys(env)) {
		out = append(out, name+"="+env[name])
	}
	return out
}
