package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

const fileName = "breeze-inventory"

// Config holds all agent configuration
type Config struct {
	// Destinations
	ServerURL    string `mapstructure:"server_url"`
	LocalPath    string `mapstructure:"local_path"`
	Stdout       bool   `mapstructure:"stdout"`
	OutputFormat string `mapstructure:"output_format"`

	// Inventory content
	Tag        string `mapstructure:"tag"`
	NoSoftware bool   `mapstructure:"no_software"`
	Wait       int    `mapstructure:"wait"` // seconds before probing

	// Device identification
	AgentString              string `mapstructure:"agent_string"`
	DeviceID                 string `mapstructure:"device_id"`
	UseCurrentTimeInDeviceID bool   `mapstructure:"use_current_time_in_device_id"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	LogFile   string `mapstructure:"log_file"`

	// TLS
	InsecureSkipVerify bool `mapstructure:"insecure_skip_verify"`

	file string
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		OutputFormat: "json",
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Load reads configuration from file and environment. An empty path searches
// the platform config dir and the working directory.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	v.SetDefault("output_format", cfg.OutputFormat)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_format", cfg.LogFormat)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(fileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(GetConfigDir())
		v.AddConfigPath(".")
	}

	// Environment variable support
	v.SetEnvPrefix("BREEZE_INVENTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{
		"server_url", "local_path", "stdout", "tag", "no_software", "wait",
		"agent_string", "device_id", "use_current_time_in_device_id",
		"log_file", "insecure_skip_verify",
	} {
		_ = v.BindEnv(key)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(path != "" && errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.file = v.ConfigFileUsed()

	return cfg, nil
}

// Validate checks that exactly one kind of destination is configured.
func (c *Config) Validate() error {
	if c.ServerURL != "" && c.LocalPath != "" {
		return errors.New("server and local destinations are mutually exclusive")
	}
	if c.ServerURL == "" && c.LocalPath == "" && !c.Stdout {
		return errors.New("no destination: set a server, a local path or stdout")
	}
	switch c.OutputFormat {
	case "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format %q", c.OutputFormat)
	}
	if c.Wait < 0 {
		return fmt.Errorf("wait must not be negative, got %d", c.Wait)
	}
	return nil
}

// Save records the device ID in the config file, keeping whatever else the
// file holds. Values that came from flags or the environment are not written.
// An empty path uses the file Load read, or the platform config dir.
func (c *Config) Save(path string) error {
	if path == "" {
		path = c.file
	}
	if path == "" {
		path = filepath.Join(GetConfigDir(), fileName+".yaml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error reading config: %w", err)
	}

	v.Set("device_id", c.DeviceID)
	return v.WriteConfigAs(path)
}

// GetConfigDir returns the platform-specific config directory
func GetConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("ProgramData"), "Breeze", "Inventory")
	case "darwin":
		return "/Library/Application Support/Breeze/Inventory"
	default: // Linux and others
		return "/etc/breeze-inventory"
	}
}
