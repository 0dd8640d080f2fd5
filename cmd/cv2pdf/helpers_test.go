package main

// Notes:
// - stubRenderer replaces headless Chrome so runMain can be exercised end to
//   end without a browser.
// - newTestEnv captures stdout and stderr in buffers.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	cv2pdf "github.com/alnah/go-cv2pdf"
)

// stubRenderer implements cv2pdf.PDFRenderer for testing.
type stubRenderer struct {
	pdf    []byte
	err    error
	calls  int
	opts   *cv2pdf.PDFOptions
	closed bool
}

func (s *stubRenderer) RenderFromFile(_ context.Context, _ string, opts *cv2pdf.PDFOptions) ([]byte, error) {
	s.calls++
	s.opts = opts
	return s.pdf, s.err
}

func (s *stubRenderer) Close() error {
	s.closed = true
	return nil
}

func newStubRenderer() *stubRenderer {
	return &stubRenderer{pdf: []byte("%PDF-1.4 stub")}
}

// newTestEnv returns an Environment writing to buffers with a fixed clock.
func newTestEnv(r cv2pdf.PDFRenderer) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Now:      func() time.Time { return time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC) },
		Stdout:   &stdout,
		Stderr:   &stderr,
		Renderer: r,
	}, &stdout, &stderr
}

// writeFile writes content under dir, creating parent directories.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}
