package main

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Default input and output, applied after config and environment.
const (
	defaultInput      = "cv.json"
	defaultOutputName = "output/cv"
)

// cliFlags holds every command-line flag.
type cliFlags struct {
	input      string
	outputName string
	config     string
	pageSize   string
	htmlOnly   bool
	quiet      bool
	verbose    bool
	version    bool
	help       bool
}

// longFlags are the multi-letter flags accepted with a single dash.
var longFlags = map[string]bool{
	"input":       true,
	"output-name": true,
	"config":      true,
	"page-size":   true,
	"html-only":   true,
	"quiet":       true,
	"verbose":     true,
	"version":     true,
	"help":        true,
}

// normalizeArgs rewrites "-input x" and "-output-name=x" to their
// double-dash form so pflag accepts Go flag-style spelling.
// Arguments after "--" are left untouched.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		if strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--") {
			name, _, _ := strings.Cut(arg[1:], "=")
			if longFlags[name] {
				arg = "-" + arg
			}
		}
		out = append(out, arg)
	}
	return out
}

// parseFlags parses command-line arguments (without the program name).
// Parse errors are returned; usage is printed by the caller.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("cv2pdf", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	f := &cliFlags{}
	fs.StringVarP(&f.input, "input", "i", "", "CV data file (JSON or YAML)")
	fs.StringVarP(&f.outputName, "output-name", "o", "", "output path without extension")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.pageSize, "page-size", "p", "", "page size: a4, letter, legal")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write HTML only, skip PDF")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
	fs.BoolVar(&f.version, "version", false, "show version")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	if err := fs.Parse(normalizeArgs(args)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, &unexpectedArgsError{args: fs.Args()}
	}
	return f, nil
}

// unexpectedArgsError reports positional arguments, which cv2pdf does not take.
type unexpectedArgsError struct {
	args []string
}

func (e *unexpectedArgsError) Error() string {
	return "unexpected arguments: " + strings.Join(e.args, " ")
}

func (e *unexpectedArgsError) Is(target error) bool {
	return target == ErrUsage
}
