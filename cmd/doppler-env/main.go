package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-doppler-env/internal/client"
	"github.com/MKhiriev/go-doppler-env/internal/config"
	"github.com/MKhiriev/go-doppler-env/internal/logger"
	"github.com/MKhiriev/go-doppler-env/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	logger.UseFuncCaller()
	log := logger.NewLogger("doppler-env")

	explicit, command, err := config.ParseFlags(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprint(os.Stderr, info)
		return 0
	}
	if err != nil {
		return 2
	}

	cfg, err := config.GetClientConfig(explicit)
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 1
	}

	log.Debug().
		Str("version", info.BuildVersion()).
		Str("commit", info.BuildCommit()).
		Str("host", cfg.Host).
		Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var app client.Client = client.NewApp(cfg, command, log)
	if err = app.Run(ctx); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}

		log.Error().Err(err).Msg("doppler-env run error")
		return 1
	}

	return 0
}
