// Package config loads the optional YAML configuration of the cv2pdf CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-cv2pdf/internal/dateutil"
	"github.com/alnah/go-cv2pdf/internal/fileutil"
	"github.com/alnah/go-cv2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// userConfigDirName is the directory searched under os.UserConfigDir.
const userConfigDirName = "go-cv2pdf"

// Field length limits.
const (
	MaxPathLength     = 4096
	MaxPageSizeLength = 10  // "letter", "a4", "legal"
	MaxDateLength     = 60  // "auto:MMMM D, YYYY" or literal text
	MaxTextLength     = 500 // footer free-form text
	MaxHostLength     = 2048
)

// Margin bounds in inches, zero meaning "default".
const (
	MinMargin = 0.25
	MaxMargin = 3.0
)

// Config holds all configuration for CV generation.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Page    PageConfig    `yaml:"page"`
	Footer  FooterConfig  `yaml:"footer"`
	Assets  AssetsConfig  `yaml:"assets"`
	Browser BrowserConfig `yaml:"browser"`
}

// InputConfig defines the CV data source.
type InputConfig struct {
	File string `yaml:"file"` // default "cv.json"
}

// OutputConfig defines the output base path.
type OutputConfig struct {
	Name string `yaml:"name"` // without extension, default "output/cv"
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size   string  `yaml:"size"`   // "a4", "letter", "legal" (default: "a4")
	Margin float64 `yaml:"margin"` // inches, 0 = default
}

// FooterConfig defines the page footer printed by the browser.
type FooterConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Position       string `yaml:"position"` // "left", "center", "right" (default: "right")
	ShowPageNumber bool   `yaml:"showPageNumber"`
	Date           string `yaml:"date"` // literal, "auto" or "auto:FORMAT"
	Text           string `yaml:"text"`
}

// AssetsConfig defines where templates, styles and icons are read from.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets
	IconsDir string `yaml:"iconsDir"` // searched before static/icons and templates/static/icons
}

// BrowserConfig defines how the headless browser is found or downloaded.
type BrowserConfig struct {
	Bin          string `yaml:"bin"`
	NoSandbox    bool   `yaml:"noSandbox"`
	DownloadHost string `yaml:"downloadHost"` // "google", "npm", "playwright" or URL with %d
	Revision     int    `yaml:"revision"`
}

// DefaultConfig returns a configuration with every optional feature off.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks field lengths and enumerated values.
// Called by LoadConfig, and by the CLI after environment overrides.
func (c *Config) Validate() error {
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"input.file", c.Input.File, MaxPathLength},
		{"output.name", c.Output.Name, MaxPathLength},
		{"page.size", c.Page.Size, MaxPageSizeLength},
		{"footer.date", c.Footer.Date, MaxDateLength},
		{"footer.text", c.Footer.Text, MaxTextLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"assets.iconsDir", c.Assets.IconsDir, MaxPathLength},
		{"browser.bin", c.Browser.Bin, MaxPathLength},
		{"browser.downloadHost", c.Browser.DownloadHost, MaxHostLength},
	}
	for _, ch := range checks {
		if err := validateFieldLength(ch.field, ch.value, ch.max); err != nil {
			return err
		}
	}

	switch strings.ToLower(c.Page.Size) {
	case "", "a4", "letter", "legal":
	default:
		return fmt.Errorf("%w: page.size %q (must be a4, letter, or legal)", ErrInvalidValue, c.Page.Size)
	}

	if c.Page.Margin != 0 && (c.Page.Margin < MinMargin || c.Page.Margin > MaxMargin) {
		return fmt.Errorf("%w: page.margin %.2f (must be between %.2f and %.2f)", ErrInvalidValue, c.Page.Margin, MinMargin, MaxMargin)
	}

	switch strings.ToLower(c.Footer.Position) {
	case "", "left", "center", "right":
	default:
		return fmt.Errorf("%w: footer.position %q (must be left, center, or right)", ErrInvalidValue, c.Footer.Position)
	}

	if _, err := dateutil.Resolve(c.Footer.Date, time.Time{}); err != nil {
		return fmt.Errorf("%w: footer.date: %v", ErrInvalidValue, err)
	}

	if err := ValidateDownloadHost(c.Browser.DownloadHost); err != nil {
		return err
	}

	if c.Browser.Revision < 0 {
		return fmt.Errorf("%w: browser.revision %d (must be positive)", ErrInvalidValue, c.Browser.Revision)
	}

	return nil
}

// ValidateDownloadHost accepts an empty value, a named host, or an
// http(s) URL template containing %d for the revision.
func ValidateDownloadHost(host string) error {
	switch strings.ToLower(host) {
	case "", "google", "npm", "playwright":
		return nil
	}
	if (strings.HasPrefix(host, "https://") || strings.HasPrefix(host, "http://")) && strings.Contains(host, "%d") {
		return nil
	}
	return fmt.Errorf("%w: browser.downloadHost %q (use google, npm, playwright, or a URL containing %%d)", ErrInvalidValue, host)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// NotFoundError lists the locations searched for a named config.
// It matches ErrConfigNotFound with errors.Is.
type NotFoundError struct {
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: tried %s", ErrConfigNotFound, strings.Join(e.Tried, ", "))
}

// Is reports whether target is ErrConfigNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrConfigNotFound
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator or a YAML extension it is read as a
// file; otherwise <name>.yaml and <name>.yml are searched in the current
// directory, then in ~/.config/go-cv2pdf/.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Tried: []string{configPath}}
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path rather than a name.
func isFilePath(s string) bool {
	if strings.ContainsAny(s, "/\\") {
		return true
	}
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

// userConfigDir is swapped in tests.
var userConfigDir = os.UserConfigDir

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	var tried []string

	for _, ext := range extensions {
		local := name + ext
		if fileutil.FileExists(local) {
			return local, nil
		}
		tried = append(tried, local)
	}

	if dir, err := userConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(dir, userConfigDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			tried = append(tried, userPath)
		}
	}

	return "", &NotFoundError{Tried: tried}
}
