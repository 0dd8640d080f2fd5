package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2pdf [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate an HTML and PDF CV from a JSON or YAML data file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintf(w, "  -i, --input <path>        CV data file (default %q)\n", defaultInput)
	fmt.Fprintf(w, "  -o, --output-name <path>  Output path without extension (default %q)\n", defaultOutputName)
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --html-only           Write HTML only, skip PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: a4, letter, legal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Long flags also accept a single dash: -input cv.json -output-name output/jane")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  CHROME_EXECUTABLE_PATH    Browser binary (also ROD_BROWSER_BIN)")
	fmt.Fprintln(w, "  ROD_NO_SANDBOX=1          Disable the Chrome sandbox (automatic when CI is set)")
	io.WriteString(w, "  CV2PDF_DOWNLOAD_HOST      Download Chromium: google, npm, playwright, or URL with %d\n")
	fmt.Fprintln(w, "  CV2PDF_BROWSER_REVISION   Chromium revision to download")
	fmt.Fprintln(w, "  CV2PDF_CONFIG             Config file name or path")
	fmt.Fprintln(w, "  CV2PDF_ICONS_DIR          Directory of <name>.svg contact icons")
	fmt.Fprintln(w, "  CV2PDF_PAGE_SIZE          Page size: a4, letter, legal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Variables are also read from a .env file in the current directory.")
	fmt.Fprintln(w, "Icons are also looked up in static/icons and templates/static/icons.")
}
