// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/aandersen/safe-rsync/internal/domain"
	"github.com/aandersen/safe-rsync/internal/infra/config"
	"github.com/aandersen/safe-rsync/internal/infra/logging"
	"github.com/aandersen/safe-rsync/internal/infra/rsync"
	"github.com/aandersen/safe-rsync/internal/infra/summary"
	"github.com/aandersen/safe-rsync/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	Checker domain.ToolChecker
	Runner  domain.SyncRunner
	Store   domain.SummaryStore
	Clock   domain.Clock
	Logger  *slog.Logger
	Config  *domain.Config
}

// New creates a new Container with the loaded configuration.
func New() (*Container, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(os.Stderr, logging.ParseLevel(cfg.Log.Level))

	checker, err := rsync.NewChecker(cfg)
	if err != nil {
		return nil, err
	}

	clock := domain.RealClock{}

	return &Container{
		Checker: checker,
		Runner:  rsync.NewRunner(clock),
		Store:   summary.NewStore(),
		Clock:   clock,
		Logger:  logger,
		Config:  cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	checker domain.ToolChecker,
	runner domain.SyncRunner,
	store domain.SummaryStore,
	clock domain.Clock,
	logger *slog.Logger,
	cfg *domain.Config,
) *Container {
	return &Container{
		Checker: checker,
		Runner:  runner,
		Store:   store,
		Clock:   clock,
		Logger:  logger,
		Config:  cfg,
	}
}

// RunSyncUseCase returns a new RunSync use case.
// reporter renders milestones; progress receives the transient progress line.
func (c *Container) RunSyncUseCase(reporter domain.Reporter, progress io.Writer) *usecase.RunSync {
	return usecase.NewRunSync(c.Checker, c.Runner, c.Store, c.Clock, reporter, c.Logger, c.Config, progress)
}
