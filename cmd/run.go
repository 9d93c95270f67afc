package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ThatOtherAndrew/volumedemo/internal/draw"
	"github.com/ThatOtherAndrew/volumedemo/internal/logging"
	"github.com/ThatOtherAndrew/volumedemo/internal/loop"
	"github.com/ThatOtherAndrew/volumedemo/internal/objects"
	"github.com/ThatOtherAndrew/volumedemo/internal/opengl"
	"github.com/ThatOtherAndrew/volumedemo/internal/spawn"
	"github.com/ThatOtherAndrew/volumedemo/internal/update"
	"github.com/ThatOtherAndrew/volumedemo/internal/window"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the demo (same as running volumedemo with no command)",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	settings, path, err := loadSettings()
	if err != nil {
		return err
	}

	log, err := logging.New(settings.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	for _, warning := range settings.Warnings {
		log.Warn(warning, zap.String("path", path))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	win, err := window.New(window.Config{
		Width:  settings.Window.Width,
		Height: settings.Window.Height,
		Title:  settings.Window.Title,
		VSync:  settings.Window.VSync,
	}, log)
	if err != nil {
		return err
	}
	defer win.Close()

	fbWidth, fbHeight := win.FramebufferSize()
	if err := opengl.Init(fbWidth, fbHeight, log); err != nil {
		return fmt.Errorf("initialise OpenGL: %w", err)
	}

	scene, err := opengl.BuildScene(settings.Window.Width, settings.Window.Height, opengl.NoiseOptions{
		Size:  settings.Noise.Size,
		Scale: settings.Noise.Scale,
		Seed:  settings.Noise.Seed,
	}, log)
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	defer scene.Close()

	collection := objects.New(log)
	if err := spawn.InitialBatch(collection, settings.Scene.InitialObjects); err != nil {
		return err
	}

	initial := settings.Scene.Initial()
	frameLoop := loop.New(win, update.New(collection, log), draw.New(scene), initial, log)

	log.Info("starting frame loop",
		zap.Int("objects", collection.Count()),
		zap.Uint32("render_mode", initial.RenderMode),
		zap.Stringer("noise", initial.Noise),
		zap.Bool("time_step", initial.TimeStep),
	)

	if err := frameLoop.Run(ctx); err != nil {
		return fmt.Errorf("frame loop: %w", err)
	}
	return nil
}
