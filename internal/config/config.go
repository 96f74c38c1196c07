// Package config loads the optional gokgl.yaml file next to the demos.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "gokgl.yaml"

type Config struct {
	Window Window `yaml:"window"`
	Shader Shader `yaml:"shader"`
	Log    Log    `yaml:"log"`
}

type Window struct {
	Title        string   `yaml:"title"`
	Width        int      `yaml:"width"`
	Height       int      `yaml:"height"`
	SwapInterval int      `yaml:"swap_interval"`
	Resizable    bool     `yaml:"resizable"`
	ClearColor   [4]uint8 `yaml:"clear_color"`
}

type Shader struct {
	// Path is a "#shader" document, or a WGSL module when it ends in .wgsl.
	Path      string `yaml:"path"`
	Validate  bool   `yaml:"validate"`
	HotReload bool   `yaml:"hot_reload"`
	// Entry points picked from a WGSL module; empty means the first of each stage.
	VertexEntry   string `yaml:"vertex_entry"`
	FragmentEntry string `yaml:"fragment_entry"`
}

type Log struct {
	Level string `yaml:"level"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:        "OpenGL Window",
			Width:        800,
			Height:       600,
			SwapInterval: 1,
			Resizable:    true,
			ClearColor:   [4]uint8{0, 0, 0, 255},
		},
		Shader: Shader{
			Path: "res/shaders/basic.shader",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	conf := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return conf, nil
	}
	if err != nil {
		return conf, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return conf, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return conf, fmt.Errorf("config: %s: %w", path, err)
	}
	return conf, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.SwapInterval < 0 {
		errs = append(errs, fmt.Errorf("swap_interval must not be negative, got %d", c.Window.SwapInterval))
	}
	if strings.TrimSpace(c.Shader.Path) == "" {
		errs = append(errs, errors.New("shader path is empty"))
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Log.Level))
	}
	return errors.Join(errs...)
}
