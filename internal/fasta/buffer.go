package fasta

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"

	"motifscan/internal/fileio"
)

// Buffer is a whole FASTA file held in memory. It is never mutated and may be
// shared by any number of readers until Close.
type Buffer struct {
	data  []byte
	unmap func() error
}

// Bytes returns the file content. The slice is invalid after Close.
func (b *Buffer) Bytes() []byte { return b.data }

func (b *Buffer) Len() int { return len(b.data) }

// Close releases the buffer (unmapping it when it was mapped).
func (b *Buffer) Close() error {
	b.data = nil
	if b.unmap != nil {
		f := b.unmap
		b.unmap = nil
		return f()
	}
	return nil
}

// Open loads path with Map when useMmap is set, otherwise with Load. "-"
// reads standard input to the end.
func Open(path string, useMmap bool) (*Buffer, error) {
	if path == "-" {
		rc, err := OpenReader(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return Read(rc)
	}
	if useMmap {
		return Map(path)
	}
	return Load(path)
}

// Load reads the whole file into one buffer allocated at the file's size and
// filled in a single read. Gzip input is decompressed instead.
func Load(path string) (*Buffer, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, &fileio.OpenError{Op: "open", Path: path, Err: err}
	}
	defer func() { _ = fh.Close() }()

	fi, err := fh.Stat()
	if err != nil {
		return nil, &fileio.OpenError{Op: "read", Path: path, Err: err}
	}
	size := fi.Size()
	if !fi.Mode().IsRegular() {
		return nil, &fileio.OpenError{Op: "read", Path: path, Err: errors.New("not a regular file")}
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(fh, data); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			err = errors.Errorf("truncated read (expected %d bytes)", size)
		}
		return nil, &fileio.OpenError{Op: "read", Path: path, Err: err}
	}
	if isGzip(data) {
		return inflate(path, data)
	}
	return &Buffer{data: data}, nil
}

// Read drains r into a buffer. Streams cannot be sized up front or mapped.
func Read(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return &Buffer{data: data}, nil
}

// Map maps the file read-only. Gzip input falls back to decompression into
// an ordinary buffer.
func Map(path string) (*Buffer, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, &fileio.OpenError{Op: "open", Path: path, Err: err}
	}
	defer func() { _ = fh.Close() }()

	fi, err := fh.Stat()
	if err != nil {
		return nil, &fileio.OpenError{Op: "read", Path: path, Err: err}
	}
	if fi.Size() == 0 {
		// mapping a zero-length file fails on most platforms
		return &Buffer{data: []byte{}}, nil
	}
	mm, err := mmap.Map(fh, mmap.RDONLY, 0)
	if err != nil {
		return nil, &fileio.OpenError{Op: "mmap", Path: path, Err: err}
	}
	if isGzip(mm) {
		b, err := inflate(path, mm)
		_ = mm.Unmap()
		return b, err
	}
	return &Buffer{data: mm, unmap: mm.Unmap}, nil
}

func inflate(path string, compressed []byte) (*Buffer, error) {
	gr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, &fileio.OpenError{Op: "read", Path: path, Err: err}
	}
	defer func() { _ = gr.Close() }()
	data, err := io.ReadAll(gr)
	if err != nil {
		return nil, &fileio.OpenError{Op: "read", Path: path, Err: errors.Wrap(err, "gunzip")}
	}
	return &Buffer{data: data}, nil
}
