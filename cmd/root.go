// Package cmd holds the volumedemo command line.
package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/volumedemo/internal/config"
)

var settingsPath string

var rootCmd = &cobra.Command{
	Use:   "volumedemo",
	Short: "Real-time ray-marched objects on a shaded plane",
	Long: `volumedemo opens a window and animates a small set of glowing objects
that orbit the scene and gather around the pointer.

Controls:
  mouse        move the attractor, click to add an object
  A / D        add / remove an object (Backspace also removes)
  Space        pause or resume time
  Left/Right   scrub time by one step
  N            toggle noise
  0-9          shading mode
  Esc          quit`,
	Args:          cobra.NoArgs,
	RunE:          runDemo,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	runtime.LockOSThread()

	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "",
		"Path to the settings file (default: <user config dir>/volumedemo/settings.toml)")
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func resolveSettingsPath() (string, error) {
	if settingsPath != "" {
		return settingsPath, nil
	}
	path, err := config.DefaultPath()
	if err != nil {
		return "", fmt.Errorf("locate settings file: %w", err)
	}
	return path, nil
}

func loadSettings() (*config.Settings, string, error) {
	path, err := resolveSettingsPath()
	if err != nil {
		return nil, "", err
	}
	settings, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return settings, path, nil
}
