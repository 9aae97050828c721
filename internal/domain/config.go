package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string     `toml:"-"`
	Log      LogConfig    `toml:"log"`
	Assign   AssignConfig `toml:"assign"`
	Output   OutputConfig `toml:"output"`
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
	File  string `toml:"file,omitempty"`  // Log file path (empty = stderr)
}

// AssignConfig holds assignment settings from [assign] section.
type AssignConfig struct {
	Policy string `toml:"policy,omitempty"` // Default policy: first-free or least-delays
}

// OutputConfig holds console output settings from [output] section.
type OutputConfig struct {
	Color  *bool  `toml:"color,omitempty"`  // Styled output (default: true)
	Format string `toml:"format,omitempty"` // table or json
}

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Default configuration values.
const (
	DefaultLogLevel     = "info"
	DefaultAssignPolicy = PolicyFirstFree
	DefaultFormat       = FormatTable
)

// Directory and file names.
const (
	AppDirName     = "homesol"      // Directory name under the config home
	ConfigFileName = "homesol.toml" // Config file name
)

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	color := true
	return &Config{
		Log:    LogConfig{Level: DefaultLogLevel},
		Assign: AssignConfig{Policy: string(DefaultAssignPolicy)},
		Output: OutputConfig{Format: DefaultFormat, Color: &color},
	}
}

// ColorEnabled reports whether styled output is on.
func (c *Config) ColorEnabled() bool {
	return c.Output.Color == nil || *c.Output.Color
}

// AssignPolicy returns the configured default policy, falling back to first-free.
func (c *Config) AssignPolicy() AssignPolicy {
	p, err := ParseAssignPolicy(c.Assign.Policy, DefaultAssignPolicy)
	if err != nil || p == PolicySpecific {
		return DefaultAssignPolicy
	}
	return p
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidArgument, c.Log.Level)
	}
	if p, err := ParseAssignPolicy(c.Assign.Policy, DefaultAssignPolicy); err != nil || p == PolicySpecific {
		return fmt.Errorf("%w: assign.policy %q", ErrInvalidArgument, c.Assign.Policy)
	}
	switch c.Output.Format {
	case "", FormatTable, FormatJSON:
	default:
		return fmt.Errorf("%w: output.format %q", ErrInvalidArgument, c.Output.Format)
	}
	return nil
}

// RenderConfigTemplate renders the commented config file for cfg.
func RenderConfigTemplate(cfg *Config) string {
	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}
	data := struct {
		LogLevel string
		Policy   string
		Format   string
		Color    bool
	}{
		LogLevel: cfg.Log.Level,
		Policy:   string(cfg.AssignPolicy()),
		Format:   cfg.Output.Format,
		Color:    cfg.ColorEnabled(),
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
