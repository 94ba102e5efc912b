// Package config provides tool configuration and paths for rampctl.
//
// Configuration is read from config.toml in the config dir (default
// os.UserConfigDir()/rampctl, override RAMPCTL_CONFIG_DIR). Ramp
// documents live under the state dir (default ~/.local/state/rampctl,
// override RAMPCTL_STATE_DIR or the state_dir config key).
//
// Config values only seed new ramp documents; an existing ramp carries
// its own sort-on-change and delete-enabled flags.
package config
