package main

// Notes:
// - normalizeArgs: single-dash long flags become double-dash; shorthands,
//   unknown names and arguments after "--" are untouched.
// - parseFlags: every flag spelling, plus usage errors for unknown flags and
//   positional arguments.

import (
	"errors"
	"slices"
	"testing"
)

// ---------------------------------------------------------------------------
// TestNormalizeArgs - Go flag-style spelling
// ---------------------------------------------------------------------------

func TestNormalizeArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"empty", nil, []string{}},
		{"single dash long", []string{"-input", "cv.json"}, []string{"--input", "cv.json"}},
		{"single dash with value", []string{"-output-name=out/jane"}, []string{"--output-name=out/jane"}},
		{"double dash unchanged", []string{"--input", "cv.json"}, []string{"--input", "cv.json"}},
		{"shorthand unchanged", []string{"-q", "-v"}, []string{"-q", "-v"}},
		{"grouped shorthand unchanged", []string{"-qv"}, []string{"-qv"}},
		{"unknown name unchanged", []string{"-nope"}, []string{"-nope"}},
		{"help", []string{"-help"}, []string{"--help"}},
		{"after terminator", []string{"--", "-input"}, []string{"--", "-input"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := normalizeArgs(tt.args); !slices.Equal(got, tt.want) {
				t.Errorf("normalizeArgs(%q) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParseFlags - Flag parsing
// ---------------------------------------------------------------------------

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, f *cliFlags)
	}{
		{
			name: "no flags",
			args: nil,
			check: func(t *testing.T, f *cliFlags) {
				if f.input != "" || f.outputName != "" {
					t.Errorf("defaults should be empty until merged, got %q %q", f.input, f.outputName)
				}
			},
		},
		{
			name: "go style",
			args: []string{"-input", "data.json", "-output-name", "output/jane"},
			check: func(t *testing.T, f *cliFlags) {
				if f.input != "data.json" || f.outputName != "output/jane" {
					t.Errorf("got input=%q output=%q", f.input, f.outputName)
				}
			},
		},
		{
			name: "shorthands",
			args: []string{"-i", "a.yaml", "-o", "out/a", "-p", "letter", "-c", "work", "-q"},
			check: func(t *testing.T, f *cliFlags) {
				if f.input != "a.yaml" || f.outputName != "out/a" || f.pageSize != "letter" || f.config != "work" || !f.quiet {
					t.Errorf("got %+v", *f)
				}
			},
		},
		{
			name: "booleans",
			args: []string{"--html-only", "--verbose", "--version"},
			check: func(t *testing.T, f *cliFlags) {
				if !f.htmlOnly || !f.verbose || !f.version {
					t.Errorf("got %+v", *f)
				}
			},
		},
		{
			name: "help short",
			args: []string{"-h"},
			check: func(t *testing.T, f *cliFlags) {
				if !f.help {
					t.Error("help should be set")
				}
			},
		},
		{
			name: "help go style",
			args: []string{"-help"},
			check: func(t *testing.T, f *cliFlags) {
				if !f.help {
					t.Error("help should be set")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			tt.check(t, f)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--nope"}},
		{"missing value", []string{"--input"}},
		{"positional argument", []string{"cv.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := parseFlags(tt.args)
			if !errors.Is(err, ErrUsage) {
				t.Errorf("parseFlags(%q) error = %v, want ErrUsage", tt.args, err)
			}
		})
	}
}
