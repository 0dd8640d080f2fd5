package main

import (
	"io"
	"os"
	"time"

	cv2pdf "github.com/alnah/go-cv2pdf"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now      func() time.Time
	Stdout   io.Writer
	Stderr   io.Writer
	Renderer cv2pdf.PDFRenderer // nil = headless Chrome
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
