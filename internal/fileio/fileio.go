// Package fileio holds the file-open failure type shared by the loaders and
// the output side, plus output creation with "-" for stdout.
package fileio

import (
	"io"
	"os"
)

// OpenError reports that an input could not be read or an output could not be
// created. It is always fatal and raised before any scanning starts.
type OpenError struct {
	Op   string // "open" | "read" | "create" | "mmap"
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return "failed to " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *OpenError) Unwrap() error { return e.Err }

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// CreateOutput opens path for writing (truncating). "-" or "" selects stdout,
// which is never closed by the returned closer.
func CreateOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{stdout}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, &OpenError{Op: "create", Path: path, Err: err}
	}
	return fh, nil
}
