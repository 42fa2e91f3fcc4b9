// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-doppler-env/internal/adapter"
	"github.com/MKhiriev/go-doppler-env/internal/config"
	"github.com/MKhiriev/go-doppler-env/internal/logger"
	"github.com/MKhiriev/go-doppler-env/internal/retry"
	"github.com/MKhiriev/go-doppler-env/internal/store"
	"github.com/MKhiriev/go-doppler-env/internal/workers"
	"github.com/MKhiriev/go-doppler-env/models"
)

const backupWorkerName = "backup"

type variablesService struct {
	cfg       *config.ClientConfig
	adapter   adapter.VariablesAdapter
	backup    store.BackupStorage
	workers   *workers.Workers
	overrider EnvOverrider
	delay     retry.DelayFunc
	logger    *logger.Logger
}

// NewVariablesService wires a [VariablesService]. A nil delay retries
// immediately.
func NewVariablesService(
	cfg *config.ClientConfig,
	variablesAdapter adapter.VariablesAdapter,
	backup store.BackupStorage,
	w *workers.Workers,
	overrider EnvOverrider,
	delay retry.DelayFunc,
	logger *logger.Logger,
) VariablesService {
	return &variablesService{
		cfg:       cfg,
		adapter:   variablesAdapter,
		backup:    backup,
		workers:   w,
		overrider: overrider,
		delay:     delay,
		logger:    logger.WithComponent("variables-service"),
	}
}

func (s *variablesService) Fetch(ctx context.Context) (models.Variables, error) {
	query := models.VariablesQuery{Environment: s.cfg.Environment, Pipeline: s.cfg.Pipeline}
	policy := retry.Policy{
		MaxRetries: s.cfg.MaxRetries,
		Delay:      s.delay,
		OnRetry: func(n int, err error, delay time.Duration) {
			s.logger.Debug().Err(err).Int("retry", n).Dur("delay", delay).Msg("retrying variables fetch")
		},
	}

	vars, err := retry.Do(ctx, policy, classifyAttempt, func(ctx context.Context) (models.Variables, error) {
		return s.attempt(ctx, query)
	})
	if err == nil {
		s.scheduleBackup(ctx, vars)
		s.override(vars)
		return vars, nil
	}

	var permanent *retry.PermanentError
	if errors.As(err, &permanent) {
		return nil, permanent.Err
	}

	var exhausted *retry.ExhaustedError
	if !errors.As(err, &exhausted) {
		return nil, err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("context cancelled during retry: %w", ctxErr)
	}

	return s.fallback(ctx, &ExhaustedError{
		Retries:     exhausted.Retries,
		RateLimited: exhausted.GaveUp,
		Err:         exhausted.Err,
	})
}

func (s *variablesService) attempt(ctx context.Context, query models.VariablesQuery) (models.Variables, error) {
	res := s.adapter.FetchVariables(ctx, query)

	switch {
	case res.Success:
		if res.Body == nil {
			return models.Variables{}, nil
		}
		return res.Body.Variables.Clone(), nil
	case res.StatusCode == http.StatusTooManyRequests:
		return nil, &attemptError{statusCode: res.StatusCode, err: res.Err}
	case res.Body.HasMessages():
		return nil, &ServerError{StatusCode: res.StatusCode, Messages: res.Body.Messages}
	}

	return nil, &attemptError{statusCode: res.StatusCode, err: res.Err}
}

// classifyAttempt stops on server-reported errors, gives up on rate limiting
// and retries everything else.
func classifyAttempt(err error) retry.Action {
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return retry.Stop
	}

	var attemptErr *attemptError
	if errors.As(err, &attemptErr) && attemptErr.statusCode == http.StatusTooManyRequests {
		return retry.GiveUp
	}

	return retry.Retry
}

func (s *variablesService) fallback(ctx context.Context, exhausted *ExhaustedError) (models.Variables, error) {
	path := s.cfg.BackupFilePath
	if path == "" {
		return nil, exhausted
	}

	vars, err := s.backup.Load(ctx, path)
	if err != nil {
		if !errors.Is(err, store.ErrBackupNotFound) {
			s.logger.Err(err).Str("path", path).Msg("local backup is unusable")
		}
		return nil, exhausted
	}
	if vars == nil {
		vars = models.Variables{}
	}

	s.logger.Warn().
		Int("retries", exhausted.Retries).
		Bool("rate_limited", exhausted.RateLimited).
		Msgf("falling back to local backup at %s", path)

	s.override(vars)
	return vars, nil
}

func (s *variablesService) scheduleBackup(ctx context.Context, vars models.Variables) {
	path := s.cfg.BackupFilePath
	if path == "" {
		return
	}

	s.workers.Start(ctx, backupWorkerName, workers.WorkerFunc(func(ctx context.Context) error {
		if err := s.backup.Save(ctx, path, vars); err != nil {
			return fmt.Errorf("failed to write backup to disk with path %s: %w", path, err)
		}
		return nil
	}))
}

func (s *variablesService) override(vars models.Variables) {
	if !s.cfg.Override {
		return
	}

	if err := s.overrider.Override(vars); err != nil {
		s.logger.Err(err).Msg("failed to override environment variables")
	}
}
