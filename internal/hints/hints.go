// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-cv2pdf/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForRendererUnavailable returns hints when no headless browser can be started.
func ForRendererUnavailable() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}

	if os.Getenv("CHROME_EXECUTABLE_PATH") == "" && os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set CHROME_EXECUTABLE_PATH to a Chrome or Chromium binary")
		if os.Getenv("CV2PDF_DOWNLOAD_HOST") == "" {
			hints = append(hints, "or set CV2PDF_DOWNLOAD_HOST=google to download one")
		}
	}

	return formatHints(hints)
}

// ForInputNotFound returns a hint for a missing CV data file.
func ForInputNotFound(path string) string {
	return format("create " + path + " or pass --input /path/to/cv.json")
}

// ForParse returns a hint for malformed CV data.
func ForParse() string {
	return format("the file must be a JSON object (or YAML mapping for .yaml/.yml) with keys such as name, contacts, experience")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-cv2pdf/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepathToSlash(p), ".config/go-cv2pdf") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}

func filepathToSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
