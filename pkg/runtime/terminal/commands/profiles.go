package commands

import (
	"fmt"

	"github.com/de-tools/order-calc/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	env *Env
}

func NewProfilesCmd(env *Env) *cobra.Command {
	pc := &ProfilesCmd{env: env}
	return &cobra.Command{
		Use:   "profiles",
		Short: "List configured tax profiles",
		RunE:  pc.run,
	}
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	registry, err := pc.env.ProfileRegistry()
	if err != nil {
		return err
	}
	profiles, err := registry.GetProfiles(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list tax profiles: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(profiles) == 0 {
		fmt.Fprintf(out, "No tax profiles found in %s\n", pc.env.Settings.ProfilesPath)
		return nil
	}

	fmt.Fprintln(out, "Tax profiles:")
	for _, p := range profiles {
		fmt.Fprintf(out, "- %s: %s%%", p.Name, export.FormatPercent(p.TaxPercentage))
		if p.Description != "" {
			fmt.Fprintf(out, " (%s)", p.Description)
		}
		fmt.Fprintln(out)
	}
	return nil
}
