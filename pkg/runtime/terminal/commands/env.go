package commands

import (
	"github.com/de-tools/order-calc/pkg/services/config"
)

// Env is filled in by the root command before any subcommand runs.
type Env struct {
	Settings *config.Settings

	profiles config.ProfileRegistry
}

// ProfileRegistry loads the tax profiles file on first use, so commands that
// never look up a profile do not depend on it being readable.
func (e *Env) ProfileRegistry() (config.ProfileRegistry, error) {
	if e.profiles == nil {
		profiles, err := config.NewProfileRegistry(e.Settings.ProfilesPath)
		if err != nil {
			return nil, err
		}
		e.profiles = profiles
	}
	return e.profiles, nil
}
