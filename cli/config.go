package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/zoobzio/transcode"
	"gopkg.in/yaml.v3"
)

// Config holds the user's preferred conversion settings.
type Config struct {
	Mode    string `yaml:"mode"`
	Bits    int    `yaml:"bits"`
	HexCase string `yaml:"hex_case"`
	Preset  string `yaml:"preset"`
	Format  string `yaml:"format"`
	NoColor bool   `yaml:"no_color"`
	Raw     bool   `yaml:"raw"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	d := transcode.DefaultOptions()
	return &Config{
		Mode:    string(transcode.TextToBinary),
		Bits:    int(d.BitWidth),
		HexCase: string(d.HexCase),
		Preset:  string(d.EmojiPreset),
		Format:  formatText,
	}
}

// LoadConfig loads configuration from the specified path. Settings missing
// from the file keep their default values. A missing file yields defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if configPath == "" {
		return config, nil
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	return config, nil
}

// SaveConfig writes the configuration to the specified path.
func SaveConfig(config *Config, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks every setting, including codec options the configured
// mode does not read, so a later mode change cannot expose a bad value.
func (c *Config) Validate() error {
	if _, err := transcode.ParseMode(c.Mode); err != nil {
		return err
	}
	if !transcode.IsValidBitWidth(transcode.BitWidth(c.Bits)) {
		return fmt.Errorf("%w: bits %d (want 7 or 8)", transcode.ErrInvalidOption, c.Bits)
	}
	if !transcode.IsValidHexCase(transcode.HexCase(c.HexCase)) {
		return fmt.Errorf("%w: hex_case %q (want lower or upper)", transcode.ErrInvalidOption, c.HexCase)
	}
	if !transcode.IsValidEmojiPreset(transcode.EmojiPreset(c.Preset)) {
		return fmt.Errorf("%w: preset %q (want letters, words or custom)", transcode.ErrInvalidOption, c.Preset)
	}
	_, err := formatFor(c.Format)
	return err
}

// Set assigns one setting by its file key and validates the result.
func (c *Config) Set(key, value string) error {
	next := *c
	switch strings.ReplaceAll(strings.ToLower(key), "-", "_") {
	case "mode":
		m, err := transcode.ParseMode(value)
		if err != nil {
			return err
		}
		next.Mode = string(m)
	case "bits":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: bits %q", transcode.ErrInvalidOption, value)
		}
		next.Bits = n
	case "hex_case":
		next.HexCase = strings.ToLower(value)
	case "preset":
		next.Preset = strings.ToLower(value)
	case "format":
		next.Format = strings.ToLower(value)
	case "no_color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: no_color %q", transcode.ErrInvalidOption, value)
		}
		next.NoColor = b
	case "raw":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: raw %q", transcode.ErrInvalidOption, value)
		}
		next.Raw = b
	default:
		return fmt.Errorf("%w: unknown setting %q", transcode.ErrInvalidOption, key)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// Options converts the codec settings into transcode.Options.
func (c *Config) Options() transcode.Options {
	return transcode.Options{
		BitWidth:    transcode.BitWidth(c.Bits),
		HexCase:     transcode.HexCase(c.HexCase),
		EmojiPreset: transcode.EmojiPreset(c.Preset),
	}
}

// DefaultConfigPath returns the per-user preferences file,
// <user config dir>/transcode/config.yaml.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "transcode", "config.yaml")
}

// configPath returns ConfigPath, or the default location when it is unset.
func configPath() string {
	if ConfigPath != "" {
		return ConfigPath
	}
	return DefaultConfigPath()
}

// ParseConfig loads the preferences file into the active configuration.
func ParseConfig() error {
	c, err := LoadConfig(configPath())
	if err != nil {
		return err
	}
	active = c
	if c.NoColor {
		color.NoColor = true
	}
	if c.Raw {
		RawOutput = true
	}
	return nil
}
