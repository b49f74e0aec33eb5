// Package app provides the application context and dependency management
// for the wikiai CLI. It centralizes configuration, logging, and the
// catalog repository and submission queue instances.
package app

import (
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/wikiai/wikiai/pkg/catalog"
	"github.com/wikiai/wikiai/pkg/store"
)

// App represents the wikiai application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Catalog state (lazy-initialized, singletons)
	mu    sync.Mutex
	store store.Store
	repo  *catalog.Repository
	queue *catalog.Queue
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Repository returns the catalog repository, creating it lazily along
// with its backing store.
func (a *App) Repository() (*catalog.Repository, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.initLocked(); err != nil {
		return nil, err
	}
	return a.repo, nil
}

// Queue returns the submission queue, creating it lazily.
func (a *App) Queue() (*catalog.Queue, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.initLocked(); err != nil {
		return nil, err
	}
	return a.queue, nil
}

// initLocked creates the store, repository, and queue once.
func (a *App) initLocked() error {
	if a.repo != nil {
		return nil
	}

	fileStore, err := store.NewFileStore(a.config.DataDir)
	if err != nil {
		return err
	}
	a.store = fileStore
	a.repo = catalog.NewRepository(a.store)
	a.queue = catalog.NewQueue(a.store, a.repo)

	a.logger.Debug().Str("data_dir", a.config.DataDir).Msg("Catalog state loaded")
	return nil
}

// ExitOnError prints the error to stderr and exits with status 1.
func ExitOnError(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
