package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"motifscan/internal/fileio"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func isGzip(sig []byte) bool {
	return len(sig) >= 2 && sig[0] == 0x1f && sig[1] == 0x8b
}

// OpenReader returns a streaming reader for path. "-" is stdin; gzip is
// detected by magic number or .gz suffix.
func OpenReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		br := bufio.NewReader(os.Stdin)
		sig, _ := br.Peek(2)
		if isGzip(sig) {
			gr, err := gzip.NewReader(br)
			if err != nil {
				return nil, err
			}
			return &multiReadCloser{Reader: gr, closers: []io.Closer{gr}}, nil
		}
		return io.NopCloser(br), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, &fileio.OpenError{Op: "open", Path: path, Err: err}
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	if isGzip(sig[:n]) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}
