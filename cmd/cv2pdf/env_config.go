package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-cv2pdf/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	// Browser
	BrowserBin   string // CHROME_EXECUTABLE_PATH or ROD_BROWSER_BIN
	NoSandbox    bool   // ROD_NO_SANDBOX=1, or any CI runner
	DownloadHost string // CV2PDF_DOWNLOAD_HOST
	Revision     int    // CV2PDF_BROWSER_REVISION

	// Generator
	ConfigPath string // CV2PDF_CONFIG: config file name or path
	IconsDir   string // CV2PDF_ICONS_DIR: directory of <name>.svg icons
	PageSize   string // CV2PDF_PAGE_SIZE: a4, letter, legal
}

// knownEnvVars lists valid CV2PDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"CV2PDF_DOWNLOAD_HOST":    true,
	"CV2PDF_BROWSER_REVISION": true,
	"CV2PDF_CONFIG":           true,
	"CV2PDF_ICONS_DIR":        true,
	"CV2PDF_PAGE_SIZE":        true,
}

// loadEnvConfig reads configuration from environment variables.
// An unparsable revision is reported by warnInvalidEnv and ignored here.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		BrowserBin:   os.Getenv("CHROME_EXECUTABLE_PATH"),
		DownloadHost: os.Getenv("CV2PDF_DOWNLOAD_HOST"),
		ConfigPath:   os.Getenv("CV2PDF_CONFIG"),
		IconsDir:     os.Getenv("CV2PDF_ICONS_DIR"),
		PageSize:     os.Getenv("CV2PDF_PAGE_SIZE"),
	}
	if cfg.BrowserBin == "" {
		cfg.BrowserBin = os.Getenv("ROD_BROWSER_BIN")
	}

	cfg.NoSandbox = isTruthy(os.Getenv("ROD_NO_SANDBOX")) || os.Getenv("CI") != ""

	if rev := os.Getenv("CV2PDF_BROWSER_REVISION"); rev != "" {
		if n, err := strconv.Atoi(rev); err == nil && n > 0 {
			cfg.Revision = n
		}
	}

	return cfg
}

// isTruthy accepts 1, true, yes and on, case-insensitive.
func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// warnUnknownEnvVars writes warnings for unrecognized CV2PDF_* variables.
// Helps catch typos like CV2PDF_ICON_DIR instead of CV2PDF_ICONS_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "CV2PDF_") {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
	if rev := os.Getenv("CV2PDF_BROWSER_REVISION"); rev != "" {
		if n, err := strconv.Atoi(rev); err != nil || n <= 0 {
			fmt.Fprintf(w, "warning: ignoring CV2PDF_BROWSER_REVISION=%q (must be a positive integer)\n", rev)
		}
	}
}

// applyEnvConfig overlays environment values on the loaded config.
// Set variables win over the config file; flags are applied afterwards.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.BrowserBin != "" {
		cfg.Browser.Bin = env.BrowserBin
	}
	if env.NoSandbox {
		cfg.Browser.NoSandbox = true
	}
	if env.DownloadHost != "" {
		cfg.Browser.DownloadHost = env.DownloadHost
	}
	if env.Revision > 0 {
		cfg.Browser.Revision = env.Revision
	}
	if env.IconsDir != "" {
		cfg.Assets.IconsDir = env.IconsDir
	}
	if env.PageSize != "" {
		cfg.Page.Size = env.PageSize
	}
}
