package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	out := buf.String()

	for _, want := range []string{
		"Usage: cv2pdf",
		"--input",
		"--output-name",
		defaultInput,
		defaultOutputName,
		"--page-size",
		"--html-only",
		"CHROME_EXECUTABLE_PATH",
		"CV2PDF_DOWNLOAD_HOST",
		".env",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing %q", want)
		}
	}
}
