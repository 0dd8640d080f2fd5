package fileutil_test

// Notes:
// - WriteFile error branches for Write/Close/Chmod failures are not tested;
//   triggering them needs a full disk or platform-specific tricks.
// - FileURL is tested on the current platform only; the Windows drive form
//   is exercised by CI on Windows.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-cv2pdf/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestFileExists / TestDirExists - Stat helpers
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "cv.json")
	if err := os.WriteFile(file, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "regular file", path: file, want: true},
		{name: "directory", path: dir, want: false},
		{name: "missing", path: filepath.Join(dir, "missing.json"), want: false},
		{name: "empty", path: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestDirExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "cv.json")
	if err := os.WriteFile(file, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}

	if !fileutil.DirExists(dir) {
		t.Error("DirExists(dir) = false, want true")
	}
	if fileutil.DirExists(file) {
		t.Error("DirExists(file) = true, want false")
	}
	if fileutil.DirExists(filepath.Join(dir, "nope")) {
		t.Error("DirExists(missing) = true, want false")
	}
}

// ---------------------------------------------------------------------------
// TestEnsureParentDir - Output directory creation
// ---------------------------------------------------------------------------

func TestEnsureParentDir(t *testing.T) {
	t.Parallel()

	t.Run("creates nested directories", func(t *testing.T) {
		t.Parallel()
		base := filepath.Join(t.TempDir(), "output", "2024", "cv")
		if err := fileutil.EnsureParentDir(base); err != nil {
			t.Fatalf("EnsureParentDir() error = %v", err)
		}
		if !fileutil.DirExists(filepath.Dir(base)) {
			t.Error("parent directory was not created")
		}
	})

	t.Run("existing directory", func(t *testing.T) {
		t.Parallel()
		base := filepath.Join(t.TempDir(), "cv")
		if err := fileutil.EnsureParentDir(base); err != nil {
			t.Errorf("EnsureParentDir() error = %v", err)
		}
	})

	t.Run("parent is a file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		blocker := filepath.Join(dir, "output")
		if err := os.WriteFile(blocker, nil, 0o600); err != nil {
			t.Fatal(err)
		}
		if err := fileutil.EnsureParentDir(filepath.Join(blocker, "cv")); err == nil {
			t.Error("EnsureParentDir() error = nil, want error")
		}
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()
		if err := fileutil.EnsureParentDir(""); !errors.Is(err, fileutil.ErrEmptyPath) {
			t.Errorf("EnsureParentDir(\"\") error = %v, want ErrEmptyPath", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWriteFile - Atomic writes
// ---------------------------------------------------------------------------

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("writes content", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "cv.html")
		if err := fileutil.WriteFile(path, []byte("<html></html>")); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		got, err := os.ReadFile(path) // #nosec G304 -- test path
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "<html></html>" {
			t.Errorf("content = %q", got)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Errorf("directory has %d entries, want 1 (no temp files left)", len(entries))
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "cv.pdf")
		if err := fileutil.WriteFile(path, []byte("old content")); err != nil {
			t.Fatal(err)
		}
		if err := fileutil.WriteFile(path, []byte("new")); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		got, _ := os.ReadFile(path) // #nosec G304 -- test path
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "missing", "cv.html")
		if err := fileutil.WriteFile(path, []byte("x")); err == nil {
			t.Error("WriteFile() error = nil, want error")
		}
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()
		if err := fileutil.WriteFile("", nil); !errors.Is(err, fileutil.ErrEmptyPath) {
			t.Errorf("WriteFile(\"\") error = %v, want ErrEmptyPath", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestFileURL - Browser navigation targets
// ---------------------------------------------------------------------------

func TestFileURL(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "my cv.html")

	got, err := fileutil.FileURL(path)
	if err != nil {
		t.Fatalf("FileURL() error = %v", err)
	}
	if !strings.HasPrefix(got, "file:///") {
		t.Errorf("FileURL() = %q, want file:/// prefix", got)
	}
	if !strings.HasSuffix(got, "/my%20cv.html") {
		t.Errorf("FileURL() = %q, want escaped file name", got)
	}

	if _, err := fileutil.FileURL(""); !errors.Is(err, fileutil.ErrEmptyPath) {
		t.Errorf("FileURL(\"\") error = %v, want ErrEmptyPath", err)
	}
}

func TestTrimExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"output/cv", "output/cv"},
		{"output/cv.pdf", "output/cv"},
		{"output/cv.HTML", "output/cv"},
		{"output/v1.2", "output/v1.2"},
		{"output/cv.json", "output/cv.json"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := fileutil.TrimExt(tt.in, ".pdf", ".html"); got != tt.want {
				t.Errorf("TrimExt(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
