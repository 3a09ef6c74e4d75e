package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"formkeep/internal/errors"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It names the two watched roots and the presentation settings.
type Config struct {
	Directories struct {
		Forms     string `yaml:"forms"`     // Loose form definitions, listed as files
		Instances string `yaml:"instances"` // Saved instances, listed as folders
	} `yaml:"directories"`
	Settings struct {
		Ignore        []string `yaml:"ignore"`         // Base-name globs hidden from the list
		NotifySeconds int      `yaml:"notify_seconds"` // How long transient notifications stay up
		Language      string   `yaml:"language"`       // Message language tag
		Watch         bool     `yaml:"watch"`          // Refresh the list when a root changes
	} `yaml:"settings"`
	Theme struct {
		Name     string `yaml:"name"`     // Theme name (default, dark, light, etc.)
		Primary  string `yaml:"primary"`  // Primary color for branding
		Success  string `yaml:"success"`  // Success message color
		Warning  string `yaml:"warning"`  // Warning message color
		Error    string `yaml:"error"`    // Error message color
		Info     string `yaml:"info"`     // Informational message color
		Emphasis string `yaml:"emphasis"` // Emphasis color for text that should stand out
		Border   string `yaml:"border"`   // Border color for frames
	} `yaml:"theme"`
}

// DefaultPath returns ~/.config/formkeep/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "formkeep", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location
// (~/.config/formkeep/config.yaml).
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if tempCfg.Directories.Forms != "" {
		cfg.Directories.Forms = tempCfg.Directories.Forms
	}
	if tempCfg.Directories.Instances != "" {
		cfg.Directories.Instances = tempCfg.Directories.Instances
	}
	if tempCfg.Settings.Ignore != nil {
		cfg.Settings.Ignore = tempCfg.Settings.Ignore
	}
	if tempCfg.Settings.Language != "" {
		cfg.Settings.Language = tempCfg.Settings.Language
	}
	// zero and false are real settings here, so only a present key overrides
	var explicit struct {
		Settings struct {
			NotifySeconds *int  `yaml:"notify_seconds"`
			Watch         *bool `yaml:"watch"`
		} `yaml:"settings"`
	}
	if yaml.Unmarshal(data, &explicit) == nil {
		if explicit.Settings.NotifySeconds != nil {
			cfg.Settings.NotifySeconds = *explicit.Settings.NotifySeconds
		}
		if explicit.Settings.Watch != nil {
			cfg.Settings.Watch = *explicit.Settings.Watch
		}
	}
	if tempCfg.Theme.Name != "" {
		cfg.ApplyTheme(tempCfg.Theme.Name)
	}

	cfg.ExpandPaths()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	base := "odk"
	if home, err := os.UserHomeDir(); err == nil {
		base = filepath.Join(home, "odk")
	}
	cfg.Directories.Forms = filepath.Join(base, "forms")
	cfg.Directories.Instances = filepath.Join(base, "instances")

	cfg.Settings.Ignore = []string{".*", "*.tmp"}
	cfg.Settings.NotifySeconds = 2
	cfg.Settings.Language = "en"
	cfg.Settings.Watch = true

	cfg.ApplyTheme("default")

	return cfg
}

// ExpandPaths resolves a leading ~ in both roots.
func (c *Config) ExpandPaths() {
	c.Directories.Forms = expandHome(c.Directories.Forms)
	c.Directories.Instances = expandHome(c.Directories.Instances)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	if c.Directories.Forms == "" {
		return errors.NewConfigError("forms directory is required", "directories.forms", errors.InvalidConfig, nil)
	}
	if c.Directories.Instances == "" {
		return errors.NewConfigError("instances directory is required", "directories.instances", errors.InvalidConfig, nil)
	}
	if filepath.Clean(c.Directories.Forms) == filepath.Clean(c.Directories.Instances) {
		return errors.NewConfigError("forms and instances must be different directories", "directories", errors.InvalidConfig, nil)
	}

	if c.Settings.NotifySeconds < 0 {
		return errors.NewConfigError("notification time must be >= 0 seconds", "settings.notify_seconds", errors.InvalidConfig, nil)
	}

	for i, p := range c.Settings.Ignore {
		if p == "" {
			return errors.NewConfigError(fmt.Sprintf("ignore pattern %d is empty", i), "settings.ignore", errors.InvalidConfig, nil)
		}
	}

	for _, dir := range []string{c.Directories.Forms, c.Directories.Instances} {
		if info, err := os.Stat(dir); err == nil && !info.IsDir() {
			return errors.NewConfigError("not a directory", dir, errors.InvalidConfig, nil)
		}
	}

	return nil
}

// Roots returns the two list roots.
func (c *Config) Roots() (forms, instances string) {
	return c.Directories.Forms, c.Directories.Instances
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig(forms, instances string) *Config {
	cfg := defaultConfig()
	cfg.Directories.Forms = forms
	cfg.Directories.Instances = instances
	cfg.Settings.Ignore = nil
	cfg.Settings.NotifySeconds = 0
	cfg.Settings.Watch = false
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// GetTheme returns a predefined theme configuration by name.
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) map[string]string {
	themes := map[string]map[string]string{
		"default": {
			"primary":  "213", // Purple
			"success":  "114", // Green
			"warning":  "220", // Yellow
			"error":    "196", // Red
			"info":     "39",  // Blue
			"emphasis": "212", // Light Pink
			"border":   "213", // Purple
		},
		"dark": {
			"primary":  "105",
			"success":  "78",
			"warning":  "214",
			"error":    "160",
			"info":     "33",
			"emphasis": "147",
			"border":   "105",
		},
		"light": {
			"primary":  "135",
			"success":  "150",
			"warning":  "222",
			"error":    "210",
			"info":     "117",
			"emphasis": "219",
			"border":   "135",
		},
		"monochrome": {
			"primary":  "245",
			"success":  "252",
			"warning":  "241",
			"error":    "232",
			"info":     "248",
			"emphasis": "255",
			"border":   "245",
		},
	}

	if theme, exists := themes[name]; exists {
		return theme
	}

	return themes["default"]
}

// ApplyTheme sets the theme in the configuration.
// It updates the theme colors based on the theme name.
func (c *Config) ApplyTheme(name string) {
	theme := GetTheme(name)

	c.Theme.Name = name
	c.Theme.Primary = theme["primary"]
	c.Theme.Success = theme["success"]
	c.Theme.Warning = theme["warning"]
	c.Theme.Error = theme["error"]
	c.Theme.Info = theme["info"]
	c.Theme.Emphasis = theme["emphasis"]
	c.Theme.Border = theme["border"]
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light", "monochrome"}
}
