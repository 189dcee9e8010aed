package fasta

import (
	"bufio"
	"context"
	"io"

	"github.com/pkg/errors"
)

// Record is one FASTA entry read by the streaming reader. Name is the whole
// header line after '>' (no trimming or splitting on description text). Seq is
// the first line after the header; further lines before the next header are
// not part of the record, which is the layout the region scanner reads too.
type Record struct {
	Name    []byte
	Seq     []byte
	Clamped bool // input ended before the sequence line's line break
}

// StreamRecords parses FASTA from r and calls emit once per record, in file
// order. Records own their bytes. Lines before the first header are skipped.
// A header directly followed by another header yields an empty sequence.
//
// It is cancelable: ctx is checked between records.
func StreamRecords(ctx context.Context, r io.Reader, emit func(Record) error) error {
	br := bufio.NewReaderSize(r, 1<<20)

	// next returns the following line, whether there was one, and whether it
	// ended in '\n'.
	next := func() ([]byte, bool, bool, error) {
		b, err := br.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, false, false, errors.Wrap(err, "fasta read")
		}
		if len(b) == 0 {
			return nil, false, false, nil
		}
		return trimEOL(b), true, b[len(b)-1] == '\n', nil
	}

	var (
		line    []byte
		pending bool
	)
	for {
		if !pending {
			l, ok, _, err := next()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			line = l
		}
		pending = false
		if len(line) == 0 || line[0] != '>' {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rec := Record{Name: line[1:]}
		seq, ok, terminated, err := next()
		if err != nil {
			return err
		}
		switch {
		case ok && len(seq) > 0 && seq[0] == '>':
			line, pending = seq, true
		case ok:
			rec.Seq, rec.Clamped = seq, !terminated
		default:
			rec.Clamped = true
		}
		if err := emit(rec); err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// StreamPath opens path ("-" for stdin, gzip aware) and streams its records.
func StreamPath(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := OpenReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	return StreamRecords(ctx, rc, emit)
}

// trimEOL drops a trailing "\n" and then a trailing "\r".
func trimEOL(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\n' {
		b = b[:n-1]
	}
	if n := len(b); n > 0 && b[n-1] == '\r' {
		b = b[:n-1]
	}
	return b
}
