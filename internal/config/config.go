package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Output controls output file naming.
type Output struct {
	Prefix      string `toml:"prefix"`
	DefaultName string `toml:"default_name"`
}

// Translator controls the translation provider.
type Translator struct {
	Provider    string `toml:"provider"`
	DelayMS     int    `toml:"delay_ms"`    // placeholder response delay
	Concurrency int    `toml:"concurrency"` // 0 means unbounded fan-out
}

// Server controls the HTTP surface.
type Server struct {
	Bind           string   `toml:"bind"`
	AllowedOrigins []string `toml:"allowed_origins"`
	MaxUploadMiB   int      `toml:"max_upload_mib"`
}

// Config encapsulates all configuration values for srtran.
type Config struct {
	Output     Output     `toml:"output"`
	Translator Translator `toml:"translator"`
	Server     Server     `toml:"server"`
}

func Default() Config {
	return Config{
		Output: Output{
			Prefix:      "translated_",
			DefaultName: "translated.srt",
		},
		Translator: Translator{
			Provider: "placeholder",
			DelayMS:  150,
		},
		Server: Server{
			Bind:         ":8600",
			MaxUploadMiB: 8,
		},
	}
}

// Load parses the configuration file at path and validates it. A missing
// file is not an error: defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("open config: %w", err)
			}
		} else {
			defer file.Close()

			decoder := toml.NewDecoder(file)
			if err := decoder.Decode(&cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Translator.DelayMS < 0 {
		return fmt.Errorf(
			"translator.delay_ms must not be negative, got %d",
			c.Translator.DelayMS,
		)
	}
	if c.Translator.Concurrency < 0 {
		return fmt.Errorf(
			"translator.concurrency must not be negative, got %d",
			c.Translator.Concurrency,
		)
	}
	if c.Server.MaxUploadMiB <= 0 {
		return fmt.Errorf(
			"server.max_upload_mib must be positive, got %d",
			c.Server.MaxUploadMiB,
		)
	}
	if c.Output.DefaultName == "" {
		return fmt.Errorf("output.default_name must not be empty")
	}
	return nil
}

// Delay is translator.delay_ms as a duration.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.Translator.DelayMS) * time.Millisecond
}
