// Package app provides the application context for rampctl.
// It allows dependency injection for testing.
package app

import (
	"github.com/metaramp/rampctl/internal/config"
	"github.com/metaramp/rampctl/internal/keyslot"
	"github.com/metaramp/rampctl/internal/logging"
	"github.com/metaramp/rampctl/internal/store"
)

// App holds the application dependencies
type App struct {
	// Paths holds the configured paths
	Paths *config.Paths

	// Config is the loaded tool configuration
	Config *config.Config
}

// Option is a function that configures the App
type Option func(*App)

// WithPaths sets custom paths
func WithPaths(paths *config.Paths) Option {
	return func(a *App) {
		a.Paths = paths
	}
}

// WithConfig sets a custom tool configuration
func WithConfig(cfg *config.Config) Option {
	return func(a *App) {
		a.Config = cfg
	}
}

// New creates a new App with the given options.
// If config is not provided via WithConfig, it is loaded from the
// config dir; a load failure falls back to built-in defaults.
func New(opts ...Option) *App {
	app := &App{
		Paths: config.DefaultPaths(),
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.Config == nil {
		cfg, err := config.Load(app.Paths.ConfigDir)
		if err != nil {
			logging.Debug("failed to load config", "error", err)
			cfg = config.Default()
		}
		app.Config = cfg
	}

	if app.Config.StateDir != "" {
		app.Paths = app.Paths.WithStateDir(app.Config.StateDir)
	}

	return app
}

// CreateRamp initializes a new ramp document seeded with the reserved
// endpoint keys and the configured default flags.
func (a *App) CreateRamp(name string) (*keyslot.Manager, error) {
	settings := store.Settings{
		SortOnChange:  a.Config.SortOnChange,
		DeleteEnabled: a.Config.DeleteEnabled,
	}

	st, err := store.Create(a.Paths.RampsDir, name, settings)
	if err != nil {
		return nil, err
	}

	m := keyslot.New(st, keyslot.Config{
		SortOnChange:  settings.SortOnChange,
		DeleteEnabled: settings.DeleteEnabled,
	})
	if err := m.Init(); err != nil {
		return nil, err
	}
	return m, nil
}

// OpenRamp opens an existing ramp document and builds its manager with
// the flags persisted in the document.
func (a *App) OpenRamp(name string) (*keyslot.Manager, *store.DocStore, error) {
	st, err := store.Open(a.Paths.RampsDir, name)
	if err != nil {
		return nil, nil, err
	}

	settings, err := st.Settings()
	if err != nil {
		return nil, nil, err
	}

	m := keyslot.New(st, keyslot.Config{
		SortOnChange:  settings.SortOnChange,
		DeleteEnabled: settings.DeleteEnabled,
	})
	return m, st, nil
}

// RampExists reports whether a ramp document exists.
func (a *App) RampExists(name string) bool {
	return store.Exists(a.Paths.RampsDir, name)
}

// ListRamps returns the names of all ramp documents.
func (a *App) ListRamps() ([]string, error) {
	return store.ListRamps(a.Paths.RampsDir)
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
