package cmd

import (
	"github.com/metaramp/rampctl/internal/app"
	"github.com/metaramp/rampctl/internal/keyslot"
	"github.com/metaramp/rampctl/internal/store"
)

// openRamp opens a ramp document and its manager via the app context.
func openRamp(name string) (*keyslot.Manager, *store.DocStore, error) {
	return app.Default.OpenRamp(name)
}

// persistFlags writes the manager flags back to the ramp document.
func persistFlags(st *store.DocStore, cfg keyslot.Config) error {
	return st.SetSettings(store.Settings{
		SortOnChange:  cfg.SortOnChange,
		DeleteEnabled: cfg.DeleteEnabled,
	})
}
