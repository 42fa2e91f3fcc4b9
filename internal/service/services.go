package service

import (
	"github.com/MKhiriev/go-doppler-env/internal/adapter"
	"github.com/MKhiriev/go-doppler-env/internal/config"
	"github.com/MKhiriev/go-doppler-env/internal/logger"
	"github.com/MKhiriev/go-doppler-env/internal/retry"
	"github.com/MKhiriev/go-doppler-env/internal/store"
	"github.com/MKhiriev/go-doppler-env/internal/workers"
)

type Services struct {
	VariablesService VariablesService
	// Workers owns the background backup writes started by VariablesService.
	Workers *workers.Workers
}

func NewServices(
	cfg *config.ClientConfig,
	variablesAdapter adapter.VariablesAdapter,
	backup store.BackupStorage,
	delay retry.DelayFunc,
	logger *logger.Logger,
) *Services {
	w := workers.NewWorkers(logger)

	return &Services{
		VariablesService: NewVariablesService(cfg, variablesAdapter, backup, w, NewEnvOverrider(cfg.IgnoreVariables), delay, logger),
		Workers:          w,
	}
}
