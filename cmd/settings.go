package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/volumedemo/internal/config"
)

var (
	settingsInit  bool
	settingsForce bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the effective settings, or write a default settings file",
	Args:  cobra.NoArgs,
	RunE:  showSettings,
}

func init() {
	rootCmd.AddCommand(settingsCmd)

	settingsCmd.Flags().BoolVar(&settingsInit, "init", false, "Write the default settings to the settings file")
	settingsCmd.Flags().BoolVar(&settingsForce, "force", false, "Overwrite an existing settings file with --init")
}

func showSettings(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if settingsInit {
		path, err := resolveSettingsPath()
		if err != nil {
			return err
		}
		if err := config.Write(path, config.Defaults(), settingsForce); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote default settings to %s\n", path)
		return nil
	}

	settings, path, err := loadSettings()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "# %s\n", path)
	for _, warning := range settings.Warnings {
		fmt.Fprintf(out, "# warning: %s\n", warning)
	}
	return settings.Encode(out)
}
