package app

import (
	"context"
	"fmt"

	"gblaquiere.dev/billing-guard/internal/billingApi"
	"gblaquiere.dev/billing-guard/internal/config"
	"gblaquiere.dev/billing-guard/internal/guard"
	"gblaquiere.dev/billing-guard/internal/logger"
	"gblaquiere.dev/billing-guard/internal/projectIdentity"
	"go.uber.org/zap"
)

type App struct {
	Config config.Config
	Logger *zap.Logger
	Guard  *guard.Guard
}

// New wires the guard from environment configuration, default credentials and
// the shared billing client.
func New(ctx context.Context) (*App, error) {
	conf, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("config.LoadConfig: %w", err)
	}

	log, err := logger.New(conf.LogLevel, conf.LogDevelopment)
	if err != nil {
		return nil, fmt.Errorf("logger.New: %w", err)
	}
	zap.ReplaceGlobals(log)

	client, err := billingApi.Client(ctx)
	if err != nil {
		return nil, err
	}

	g := guard.New(
		projectIdentity.NewResolver(conf.ProjectID),
		client,
		guard.WithLogger(log),
		guard.WithDryRun(conf.DryRun),
	)
	return &App{Config: conf, Logger: log, Guard: g}, nil
}
