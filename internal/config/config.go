package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ThatOtherAndrew/volumedemo/internal/input"
	"github.com/ThatOtherAndrew/volumedemo/internal/models"
	"github.com/ThatOtherAndrew/volumedemo/internal/noise"
	"github.com/ThatOtherAndrew/volumedemo/internal/objects"
	"github.com/ThatOtherAndrew/volumedemo/internal/spawn"
)

var ErrExists = errors.New("settings file already exists")

type Settings struct {
	Window  WindowSettings  `toml:"window"`
	Scene   SceneSettings   `toml:"scene"`
	Noise   NoiseSettings   `toml:"noise"`
	Logging LoggingSettings `toml:"logging"`

	// Warnings collects problems found while loading. The logger does not
	// exist yet at that point, so the caller reports them.
	Warnings []string `toml:"-"`
}

type WindowSettings struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

type SceneSettings struct {
	InitialObjects int    `toml:"initial_objects"`
	Paused         bool   `toml:"paused"`
	RenderMode     uint32 `toml:"render_mode"`
	Noise          bool   `toml:"noise"`
}

type NoiseSettings struct {
	Size  int     `toml:"size"`
	Scale float64 `toml:"scale"`
	Seed  int64   `toml:"seed"`
}

type LoggingSettings struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"
}

func Defaults() *Settings {
	return &Settings{
		Window: WindowSettings{
			Width:  1280,
			Height: 720,
			Title:  "volumedemo",
			VSync:  true,
		},
		Scene: SceneSettings{
			InitialObjects: spawn.DefaultInitialObjects,
		},
		Noise: NoiseSettings{
			Size:  noise.DefaultSize,
			Scale: noise.DefaultScale,
			Seed:  noise.DefaultSeed,
		},
		Logging: LoggingSettings{
			Level:  "info",
			Format: "console",
		},
	}
}

func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "volumedemo", "settings.toml"), nil
}

// Load reads the settings file at path over the defaults. A missing file is
// not an error. An unreadable TOML document falls back to the defaults with
// a warning.
func Load(path string) (*Settings, error) {
	settings := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}

	md, err := toml.Decode(string(data), settings)
	if err != nil {
		fallback := Defaults()
		fallback.warn("invalid settings file %s, using defaults: %v", path, err)
		return fallback, nil
	}

	for _, key := range md.Undecoded() {
		settings.warn("unrecognised setting key '%s' in settings file", key.String())
	}

	settings.validate()
	return settings, nil
}

func (s *Settings) warn(format string, args ...any) {
	s.Warnings = append(s.Warnings, fmt.Sprintf(format, args...))
}

func (s *Settings) validate() {
	def := Defaults()

	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		s.warn("invalid window size %dx%d, using default %dx%d",
			s.Window.Width, s.Window.Height, def.Window.Width, def.Window.Height)
		s.Window.Width, s.Window.Height = def.Window.Width, def.Window.Height
	}

	n := s.Scene.InitialObjects
	if n < objects.MinObjectCount || n > objects.MaxObjectCount {
		s.warn("invalid initial_objects %d, must be between %d and %d, using default %d",
			n, objects.MinObjectCount, objects.MaxObjectCount, def.Scene.InitialObjects)
		s.Scene.InitialObjects = def.Scene.InitialObjects
	}

	if s.Noise.Size <= 0 {
		s.warn("invalid noise size %d, using default %d", s.Noise.Size, def.Noise.Size)
		s.Noise.Size = def.Noise.Size
	}
	if s.Noise.Scale <= 0 {
		s.warn("invalid noise scale %.2f, using default %.2f", s.Noise.Scale, def.Noise.Scale)
		s.Noise.Scale = def.Noise.Scale
	}

	switch format := strings.ToLower(s.Logging.Format); format {
	case "console", "json":
		s.Logging.Format = format
	default:
		s.warn("invalid logging format %q, using default %q", s.Logging.Format, def.Logging.Format)
		s.Logging.Format = def.Logging.Format
	}
}

// Encode writes the settings as TOML.
func (s *Settings) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(s)
}

// Write stores the settings at path, creating its directory. An existing
// file is only replaced when force is set.
func Write(path string, s *Settings, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("encode settings: %w", err)
	}
	return f.Close()
}

// Initial returns the settings the first frame starts from.
func (s SceneSettings) Initial() models.SceneSettings {
	initial := input.Defaults()
	initial.TimeStep = !s.Paused
	initial.RenderMode = s.RenderMode
	if s.Noise {
		initial.Noise = models.NoiseOn
	}
	return initial
}
