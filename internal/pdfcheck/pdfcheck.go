// Package pdfcheck inspects generated PDF files.
//
// The exporter uses it to report the page count of a freshly printed CV.
// A CV that spills onto an extra page usually means a layout problem, so
// the count is surfaced in logs and in the generation result.
package pdfcheck

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrInvalidPDF indicates the data could not be read as a PDF document.
var ErrInvalidPDF = errors.New("invalid PDF")

// Info summarizes a PDF document.
type Info struct {
	Pages int
}

// Inspect reads the page tree of data.
func Inspect(data []byte) (info *Info, err error) {
	r, err := open(data)
	if err != nil {
		return nil, err
	}
	defer recoverInvalid(&err)

	return &Info{Pages: r.NumPage()}, nil
}

// PageCount returns the number of pages in data.
func PageCount(data []byte) (int, error) {
	info, err := Inspect(data)
	if err != nil {
		return 0, err
	}
	return info.Pages, nil
}

// Text extracts the plain text of every page, in page order.
func Text(data []byte) (text string, err error) {
	r, err := open(data)
	if err != nil {
		return "", err
	}
	defer recoverInvalid(&err)

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: extracting text: %v", ErrInvalidPDF, err)
	}
	var buf strings.Builder
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("%w: reading text: %v", ErrInvalidPDF, err)
	}
	return buf.String(), nil
}

func open(data []byte) (r *pdf.Reader, err error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrInvalidPDF)
	}
	// The parser panics on some malformed cross-reference tables.
	defer recoverInvalid(&err)

	r, err = pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}
	return r, nil
}

func recoverInvalid(err *error) {
	if v := recover(); v != nil {
		*err = fmt.Errorf("%w: %v", ErrInvalidPDF, v)
	}
}
