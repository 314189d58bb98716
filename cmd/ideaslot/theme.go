package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ideaslot/internal/theme"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the persisted light/dark theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTheme(cmd, flags, func(mgr *theme.Manager) theme.Mode {
				return mgr.Mode()
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTheme(cmd, flags, func(mgr *theme.Manager) theme.Mode {
				return mgr.Toggle()
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Choose a theme explicitly",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{theme.Light.String(), theme.Dark.String()},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := theme.ParseMode(args[0])
			if err != nil {
				return newCommandError("set theme", "parsing mode", err, "Use light or dark.")
			}
			return withTheme(cmd, flags, func(mgr *theme.Manager) theme.Mode {
				return mgr.Set(mode)
			})
		},
	})

	return cmd
}

// withTheme loads the persisted theme, applies fn and prints the resulting mode.
func withTheme(cmd *cobra.Command, flags *rootFlags, fn func(*theme.Manager) theme.Mode) error {
	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}
	defer app.Close()

	sink := theme.SinkFunc(func(name, value string) {
		app.Logger.Debug(fmt.Sprintf("%s=%s", name, value))
	})
	mode := fn(app.NewThemeManager(sink))

	fmt.Fprintln(cmd.OutOrStdout(), mode)
	return nil
}
