// Package config loads YAML settings for the autop command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-autop/internal/fileutil"
	"github.com/alnah/go-autop/internal/protect"
	"github.com/alnah/go-autop/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound    = errors.New("config file not found")
	ErrEmptyConfigName   = errors.New("config name cannot be empty")
	ErrConfigParse       = errors.New("failed to parse config")
	ErrConfigTooLarge    = errors.New("config file too large")
	ErrFieldTooLong      = errors.New("field exceeds maximum length")
	ErrTooManyShortcodes = errors.New("too many shortcodes")
	ErrInvalidShortcode  = errors.New("invalid shortcode name")
	ErrInvalidExtension  = errors.New("invalid output extension")
)

// Limits on config content.
const (
	MaxConfigSize      = 64 << 10 // 64 KiB is far beyond any sane config
	MaxShortcodes      = 100
	MaxShortcodeLength = 64
	MaxExtensionLength = 16
	MaxDirLength       = 4096
)

// appDirName is the directory searched under the user config dir.
const appDirName = "go-autop"

// DefaultExtension is appended to output file names.
const DefaultExtension = ".html"

// Config holds all settings for paragraphing runs.
type Config struct {
	Shortcodes []string     `yaml:"shortcodes"` // Extra shortcodes to protect; noformat is implied
	LineBreaks *bool        `yaml:"lineBreaks"` // nil = true
	Output     OutputConfig `yaml:"output"`
}

// OutputConfig defines where results are written.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = next to the input
	Extension  string `yaml:"extension"`  // Empty = DefaultExtension
}

// DefaultConfig returns a configuration with line breaks on and no extra
// shortcodes.
func DefaultConfig() *Config {
	return &Config{}
}

// LineBreaksEnabled resolves the lineBreaks setting, defaulting to true.
func (c *Config) LineBreaksEnabled() bool {
	return c.LineBreaks == nil || *c.LineBreaks
}

// OutputExtension resolves the output extension.
func (c *Config) OutputExtension() string {
	if c.Output.Extension == "" {
		return DefaultExtension
	}
	return c.Output.Extension
}

// Validate checks limits and shortcode names.
func (c *Config) Validate() error {
	if len(c.Shortcodes) > MaxShortcodes {
		return fmt.Errorf("%w: %d (max %d)", ErrTooManyShortcodes, len(c.Shortcodes), MaxShortcodes)
	}
	if err := ValidateShortcodes("shortcodes", c.Shortcodes); err != nil {
		return err
	}

	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxDirLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.extension", c.Output.Extension, MaxExtensionLength); err != nil {
		return err
	}
	if ext := c.Output.Extension; ext != "" {
		if !strings.HasPrefix(ext, ".") || len(ext) == 1 || strings.ContainsAny(ext, "/\\\x00") {
			return fmt.Errorf("%w: %q", ErrInvalidExtension, ext)
		}
	}
	return nil
}

// ValidateShortcodes checks the length and syntax of every name. field
// names the list in errors, e.g. "shortcodes" or "--shortcode".
func ValidateShortcodes(field string, names []string) error {
	for i, name := range names {
		if err := validateFieldLength(fmt.Sprintf("%s[%d]", field, i), name, MaxShortcodeLength); err != nil {
			return err
		}
		if err := protect.ValidateName(name); err != nil {
			return &ShortcodeError{Field: field, Index: i, Name: name, Err: err}
		}
	}
	return nil
}

// validateFieldLength returns ErrFieldTooLong if value exceeds maxLength.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s has %d characters (max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return cfg, nil
}

// Parse decodes and validates YAML config data. Unknown fields are
// rejected.
func Parse(data []byte) (*Config, error) {
	if len(data) > MaxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, len(data), MaxConfigSize)
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(data, cfg, MaxConfigSize); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}


// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-autop/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, appDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", &NotFoundError{Name: name, Tried: triedPaths}
}

// NotFoundError lists the paths searched for a named config.
type NotFoundError struct {
	Name  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s (tried %s)", ErrConfigNotFound, e.Name, strings.Join(e.Tried, ", "))
}

func (e *NotFoundError) Unwrap() error {
	return ErrConfigNotFound
}

// ShortcodeError identifies a rejected entry of the shortcodes list.
// Field is the list the entry came from; empty means "shortcodes".
type ShortcodeError struct {
	Field string
	Index int
	Name  string
	Err   error
}

func (e *ShortcodeError) Error() string {
	field := e.Field
	if field == "" {
		field = "shortcodes"
	}
	return fmt.Sprintf("%v: %s[%d] = %q", ErrInvalidShortcode, field, e.Index, e.Name)
}

// Unwrap exposes both ErrInvalidShortcode and the registry error.
func (e *ShortcodeError) Unwrap() []error {
	return []error{ErrInvalidShortcode, e.Err}
}
