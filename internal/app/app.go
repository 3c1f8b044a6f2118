package app

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/pkg/logger"
)

type App struct {
	Name string
	Cfg  *Config
	Log  *slog.Logger
}

func New(name string, cfg *Config) *App {
	log := logger.New(name, cfg.Log)
	logger.SetDefault(log)

	return &App{
		Name: name,
		Cfg:  cfg,
		Log:  log,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.Log.Info("running weather bot")

	deps, err := a.initDependencies(ctx)
	if err != nil {
		return fmt.Errorf("failed to init dependencies: %w", err)
	}

	return a.runServices(ctx, deps)
}
