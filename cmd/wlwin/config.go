package main

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"

	"deedles.dev/wlwin/window"
	"github.com/spf13/pflag"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Config is the contents of the configuration file. Command-line
// flags override it.
type Config struct {
	Title      string `yaml:"title"`
	Width      uint32 `yaml:"width"`
	Height     uint32 `yaml:"height"`
	State      string `yaml:"state"`
	Context    string `yaml:"context"`
	Dialog     bool   `yaml:"dialog"`
	Background string `yaml:"background"`
	Image      string `yaml:"image"`

	Cursor struct {
		Theme string `yaml:"theme"`
		Size  int    `yaml:"size"`
		Shape string `yaml:"shape"`
	} `yaml:"cursor"`
}

func defaultConfig() Config {
	opts := window.DefaultOptions()
	return Config{
		Title:      "wlwin",
		Width:      opts.Width,
		Height:     opts.Height,
		State:      opts.State.String(),
		Context:    opts.ContextType.String(),
		Background: "black",
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "wlwin", "config.yaml")
}

// loadConfig reads the configuration file at path over the defaults.
// A missing file is only an error if required is true.
func loadConfig(path string, required bool) (Config, error) {
	config := defaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("read config: %w", err)
	}

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return config, fmt.Errorf("parse config %q: %w", path, err)
	}
	return config, nil
}

// applyFlags overrides config with every flag in flags that was set
// on the command line.
func (config *Config) applyFlags(flags *pflag.FlagSet) error {
	var err error
	flags.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}

		switch f.Name {
		case "title":
			config.Title, err = flags.GetString(f.Name)
		case "width":
			config.Width, err = flags.GetUint32(f.Name)
		case "height":
			config.Height, err = flags.GetUint32(f.Name)
		case "state":
			config.State, err = flags.GetString(f.Name)
		case "context":
			config.Context, err = flags.GetString(f.Name)
		case "dialog":
			config.Dialog, err = flags.GetBool(f.Name)
		case "background":
			config.Background, err = flags.GetString(f.Name)
		case "image":
			config.Image, err = flags.GetString(f.Name)
		}
	})
	return err
}

// Options converts the configuration into window options.
func (config Config) Options() (window.Options, error) {
	opts := window.DefaultOptions()
	opts.Title = config.Title
	opts.Width = config.Width
	opts.Height = config.Height
	opts.Dialog = config.Dialog

	state, err := window.ParseState(config.State)
	if err != nil {
		return opts, err
	}
	opts.State = state

	ctx, err := window.ParseContextType(config.Context)
	if err != nil {
		return opts, err
	}
	opts.ContextType = ctx

	return opts, nil
}

// BackgroundColor looks up the background color by its SVG name.
func (config Config) BackgroundColor() (color.Color, error) {
	c, ok := colornames.Map[config.Background]
	if !ok {
		return nil, fmt.Errorf("unknown color %q", config.Background)
	}
	return c, nil
}
