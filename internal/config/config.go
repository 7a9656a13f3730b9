package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/lehigh-university-libraries/wardrobe/internal/render"
	"github.com/lehigh-university-libraries/wardrobe/internal/storage"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath       = "wardrobe.yaml"
	DefaultUploadsDir = "uploads"
	DefaultAddr       = "127.0.0.1:8888"
)

// Config holds settings read from the YAML file and the environment
type Config struct {
	LibraryPath string       `yaml:"library_path"`
	UploadsDir  string       `yaml:"uploads_dir"`
	Server      ServerConfig `yaml:"server"`
	Render      RenderConfig `yaml:"render"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type RenderConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		LibraryPath: storage.DefaultPath,
		UploadsDir:  DefaultUploadsDir,
		Server:      ServerConfig{Addr: DefaultAddr},
		Render:      RenderConfig{Width: render.DefaultWidth, Height: render.DefaultHeight},
	}
}

// Load reads path over the defaults, then applies WARDROBE_* environment
// overrides. A missing file is not an error. An empty path falls back to
// WARDROBE_CONFIG and then DefaultPath.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("WARDROBE_CONFIG")
	}
	explicit := path != ""
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		slog.Debug("Loaded config", "path", path)
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		slog.Debug("No config file, using defaults", "path", path)
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if v := os.Getenv("WARDROBE_LIBRARY"); v != "" {
		cfg.LibraryPath = v
	}
	if v := os.Getenv("WARDROBE_UPLOADS"); v != "" {
		cfg.UploadsDir = v
	}
	if v := os.Getenv("WARDROBE_ADDR"); v != "" {
		cfg.Server.Addr = v
	}

	if cfg.LibraryPath == "" {
		cfg.LibraryPath = storage.DefaultPath
	}
	if cfg.UploadsDir == "" {
		cfg.UploadsDir = DefaultUploadsDir
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if cfg.Render.Width <= 0 || cfg.Render.Height <= 0 {
		return nil, fmt.Errorf("render size must be positive, got %dx%d", cfg.Render.Width, cfg.Render.Height)
	}

	return cfg, nil
}

// Renderer builds a renderer with the configured canvas
func (c *Config) Renderer() *render.Renderer {
	return &render.Renderer{Width: c.Render.Width, Height: c.Render.Height}
}
