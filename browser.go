package cv2pdf

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-rod/rod/lib/launcher"

	"github.com/alnah/go-cv2pdf/internal/fileutil"
)

// lookPath finds a system Chrome or Chromium. Swapped in tests.
var lookPath = launcher.LookPath

// downloadBrowser fetches a managed Chromium build. Swapped in tests.
var downloadBrowser = func(b *launcher.Browser) (string, error) {
	return b.Get()
}

// downloadHost maps a host name or URL template to a launcher host.
// An empty name returns nil, meaning rod's default host list.
func downloadHost(name string) (launcher.Host, error) {
	switch strings.ToLower(name) {
	case "":
		return nil, nil
	case "google":
		return launcher.HostGoogle, nil
	case "npm":
		return launcher.HostNPM, nil
	case "playwright":
		return launcher.HostPlaywright, nil
	}

	if (strings.HasPrefix(name, "https://") || strings.HasPrefix(name, "http://")) && strings.Contains(name, "%d") {
		tmpl := name
		return func(revision int) string {
			return strings.ReplaceAll(tmpl, "%d", strconv.Itoa(revision))
		}, nil
	}

	return nil, fmt.Errorf("%w: %q (use google, npm, playwright, or a URL containing %%d)", ErrInvalidDownloadHost, name)
}

// resolveBrowserBin returns the browser binary to launch.
func resolveBrowserBin(ctx context.Context, cfg BrowserConfig, logger *slog.Logger) (string, error) {
	if cfg.Bin != "" {
		if !fileutil.FileExists(cfg.Bin) {
			return "", fmt.Errorf("%w: browser binary not found: %s", ErrRendererUnavailable, cfg.Bin)
		}
		logger.Debug("using configured browser", slog.String("bin", cfg.Bin))
		return cfg.Bin, nil
	}

	if path, ok := lookPath(); ok {
		logger.Debug("using system browser", slog.String("bin", path))
		return path, nil
	}

	if cfg.DownloadHost == "" && cfg.Revision == 0 {
		return "", fmt.Errorf("%w: no Chrome or Chromium installation found", ErrRendererUnavailable)
	}

	host, err := downloadHost(cfg.DownloadHost)
	if err != nil {
		return "", err
	}

	b := launcher.NewBrowser()
	b.Context = ctx
	b.Logger = slogPrinter{logger}
	if host != nil {
		b.Hosts = []launcher.Host{host}
	}
	if cfg.Revision > 0 {
		b.Revision = cfg.Revision
	}

	logger.Info("downloading browser", slog.Int("revision", b.Revision))
	bin, err := downloadBrowser(b)
	if err != nil {
		return "", fmt.Errorf("%w: downloading browser: %v", ErrRendererUnavailable, err)
	}
	return bin, nil
}

// slogPrinter adapts slog to the Println logger rod's downloader expects.
type slogPrinter struct {
	logger *slog.Logger
}

func (p slogPrinter) Println(v ...interface{}) {
	p.logger.Debug(strings.TrimSpace(fmt.Sprintln(v...)))
}
