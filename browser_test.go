package cv2pdf

// Notes:
// - resolveBrowserBin tests swap the package-level lookPath and
//   downloadBrowser functions and cannot run in parallel.
// - The real download path is only exercised by the integration tests.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-rod/rod/lib/launcher"
)

func stubLookPath(t *testing.T, path string, ok bool) {
	t.Helper()
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })
	lookPath = func() (string, bool) { return path, ok }
}

func stubDownload(t *testing.T, fn func(*launcher.Browser) (string, error)) {
	t.Helper()
	orig := downloadBrowser
	t.Cleanup(func() { downloadBrowser = orig })
	downloadBrowser = fn
}

// ---------------------------------------------------------------------------
// TestDownloadHost - Host names and URL templates
// ---------------------------------------------------------------------------

func TestDownloadHost(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"google", "NPM", "playwright"} {
		host, err := downloadHost(name)
		if err != nil || host == nil {
			t.Errorf("downloadHost(%q) error = %v, host nil = %v; want a host", name, err, host == nil)
		}
	}

	host, err := downloadHost("")
	if err != nil || host != nil {
		t.Errorf("downloadHost(\"\") error = %v, host nil = %v; want nil, nil", err, host == nil)
	}

	host, err = downloadHost("https://mirror.example.com/chromium/%d/chrome-linux.zip")
	if err != nil {
		t.Fatalf("downloadHost(url) error = %v", err)
	}
	if got := host(1321438); got != "https://mirror.example.com/chromium/1321438/chrome-linux.zip" {
		t.Errorf("host(1321438) = %q", got)
	}

	for _, bad := range []string{"mirror", "https://mirror.example.com/chrome.zip", "ftp://mirror/%d"} {
		if _, err := downloadHost(bad); !errors.Is(err, ErrInvalidDownloadHost) {
			t.Errorf("downloadHost(%q) error = %v, want ErrInvalidDownloadHost", bad, err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestResolveBrowserBin - Resolution order
// ---------------------------------------------------------------------------

func TestResolveBrowserBin_ConfiguredBinary(t *testing.T) {
	bin := filepath.Join(t.TempDir(), "chrome")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	stubLookPath(t, "/usr/bin/chromium", true)

	got, err := resolveBrowserBin(context.Background(), BrowserConfig{Bin: bin}, discardLogger())
	if err != nil {
		t.Fatalf("resolveBrowserBin() error = %v", err)
	}
	if got != bin {
		t.Errorf("resolveBrowserBin() = %q, want configured %q", got, bin)
	}
}

func TestResolveBrowserBin_ConfiguredBinaryMissing(t *testing.T) {
	stubLookPath(t, "/usr/bin/chromium", true)

	_, err := resolveBrowserBin(context.Background(), BrowserConfig{Bin: "/nonexistent/chrome"}, discardLogger())
	if !errors.Is(err, ErrRendererUnavailable) {
		t.Errorf("resolveBrowserBin() error = %v, want ErrRendererUnavailable", err)
	}
}

func TestResolveBrowserBin_SystemBrowser(t *testing.T) {
	stubLookPath(t, "/usr/bin/chromium", true)
	stubDownload(t, func(*launcher.Browser) (string, error) {
		t.Error("download should not be attempted when a system browser exists")
		return "", nil
	})

	got, err := resolveBrowserBin(context.Background(), BrowserConfig{DownloadHost: "npm"}, discardLogger())
	if err != nil {
		t.Fatalf("resolveBrowserBin() error = %v", err)
	}
	if got != "/usr/bin/chromium" {
		t.Errorf("resolveBrowserBin() = %q, want system browser", got)
	}
}

func TestResolveBrowserBin_NothingFound(t *testing.T) {
	stubLookPath(t, "", false)
	stubDownload(t, func(*launcher.Browser) (string, error) {
		t.Error("download should not be attempted without download settings")
		return "", nil
	})

	_, err := resolveBrowserBin(context.Background(), BrowserConfig{}, discardLogger())
	if !errors.Is(err, ErrRendererUnavailable) {
		t.Errorf("resolveBrowserBin() error = %v, want ErrRendererUnavailable", err)
	}
}

func TestResolveBrowserBin_ManagedDownload(t *testing.T) {
	stubLookPath(t, "", false)

	var gotRevision, gotHosts int
	stubDownload(t, func(b *launcher.Browser) (string, error) {
		gotRevision = b.Revision
		gotHosts = len(b.Hosts)
		return "/cache/chromium/chrome", nil
	})

	got, err := resolveBrowserBin(context.Background(), BrowserConfig{DownloadHost: "playwright", Revision: 1321438}, discardLogger())
	if err != nil {
		t.Fatalf("resolveBrowserBin() error = %v", err)
	}
	if got != "/cache/chromium/chrome" {
		t.Errorf("resolveBrowserBin() = %q", got)
	}
	if gotRevision != 1321438 {
		t.Errorf("Revision = %d, want 1321438", gotRevision)
	}
	if gotHosts != 1 {
		t.Errorf("len(Hosts) = %d, want 1", gotHosts)
	}
}

func TestResolveBrowserBin_DownloadFails(t *testing.T) {
	stubLookPath(t, "", false)
	stubDownload(t, func(*launcher.Browser) (string, error) {
		return "", errors.New("connection refused")
	})

	_, err := resolveBrowserBin(context.Background(), BrowserConfig{DownloadHost: "google"}, discardLogger())
	if !errors.Is(err, ErrRendererUnavailable) {
		t.Errorf("resolveBrowserBin() error = %v, want ErrRendererUnavailable", err)
	}
}
