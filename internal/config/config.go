package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/yarlson/loadbar/internal/progress"
)

// Config holds all loadbar configuration
type Config struct {
	Progress ProgressConfig `mapstructure:"progress" yaml:"progress"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Terminal TerminalConfig `mapstructure:"terminal" yaml:"terminal"`
}

// ProgressConfig holds the indicator's presentation settings
type ProgressConfig struct {
	Type         string        `mapstructure:"type" yaml:"type"`
	Background   string        `mapstructure:"background" yaml:"background"`
	Height       int           `mapstructure:"height" yaml:"height"`
	SVG          string        `mapstructure:"svg" yaml:"svg,omitempty"`
	SVGFile      string        `mapstructure:"svg_file" yaml:"svg_file,omitempty"`
	TickInterval time.Duration `mapstructure:"tick_interval" yaml:"tick_interval"`
	RevealDelay  time.Duration `mapstructure:"reveal_delay" yaml:"reveal_delay"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file,omitempty"`
}

// TerminalConfig holds terminal rendering settings
type TerminalConfig struct {
	Width   int           `mapstructure:"width" yaml:"width"`
	Refresh time.Duration `mapstructure:"refresh" yaml:"refresh"`
}

// LoadConfigWithFile loads configuration from a specific file if provided.
// Otherwise it reads loadbar.yaml from the working directory, and failing
// that the global config file.
func LoadConfigWithFile(workDir, configFile string) (*Config, error) {
	if configFile != "" {
		return LoadConfigFromPath(configFile)
	}
	if _, err := os.Stat(filepath.Join(workDir, ConfigName+".yaml")); err == nil {
		return LoadConfig(workDir)
	}

	globalPath, err := GlobalConfigPath()
	if err != nil {
		return LoadConfig(workDir)
	}
	return LoadConfigFromPath(globalPath)
}

// LoadConfig loads configuration from loadbar.yaml in the given directory.
// If no config file exists, sensible defaults are returned.
func LoadConfig(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	// Read config file (ignore not found errors)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return unmarshal(v)
}

// LoadConfigFromPath loads configuration from a specific file path
func LoadConfigFromPath(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return unmarshal(v)
		}
		return nil, err
	}

	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ProgressOptions converts the progress section into controller options.
// svg_file, when set, is read from fs and wins over the inline svg.
func (c *Config) ProgressOptions(fs afero.Fs) (progress.Options, error) {
	opts := progress.Options{
		Background: c.Progress.Background,
		Height:     c.Progress.Height,
		SVG:        c.Progress.SVG,
	}

	if c.Progress.Type != "" {
		typ, ok := progress.ParseDisplayType(c.Progress.Type)
		if !ok {
			return progress.Options{}, fmt.Errorf("invalid progress.type %q (want bar or fullpage)", c.Progress.Type)
		}
		opts.Type = typ
	}

	if c.Progress.SVGFile != "" {
		data, err := afero.ReadFile(fs, c.Progress.SVGFile)
		if err != nil {
			return progress.Options{}, fmt.Errorf("read svg_file: %w", err)
		}
		opts.SVG = string(data)
	}

	return opts, nil
}

// setDefaults sets all default values for configuration
func setDefaults(v *viper.Viper) {
	// Progress defaults
	v.SetDefault("progress.type", string(progress.DefaultType))
	v.SetDefault("progress.background", progress.DefaultBackground)
	v.SetDefault("progress.height", progress.DefaultHeight)
	v.SetDefault("progress.svg", "")
	v.SetDefault("progress.svg_file", "")
	v.SetDefault("progress.tick_interval", progress.DefaultTickInterval)
	v.SetDefault("progress.reveal_delay", progress.DefaultRevealDelay)

	// Log defaults
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.file", "")

	// Terminal defaults
	v.SetDefault("terminal.width", 0)
	v.SetDefault("terminal.refresh", DefaultTerminalRefresh)
}
