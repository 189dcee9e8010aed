package fasta

import (
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"motifscan/internal/fileio"
)

const plain = `>seq1 first record
ACGT
>seq2
NNnn
`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func gz(t *testing.T, data string) []byte {
	t.Helper()
	var b bytes.Buffer
	gw := gzip.NewWriter(&b)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return b.Bytes()
}

func TestLoadExactBytes(t *testing.T) {
	// CRLF and binary-looking bytes must survive untouched
	data := []byte(">a\r\nAC\x00GT\r\n")
	fn := writeFile(t, "x.fa", data)
	for _, useMmap := range []bool{false, true} {
		b, err := Open(fn, useMmap)
		if err != nil {
			t.Fatalf("Open(mmap=%v): %v", useMmap, err)
		}
		if !bytes.Equal(b.Bytes(), data) || b.Len() != len(data) {
			t.Fatalf("mmap=%v: got %q", useMmap, b.Bytes())
		}
		if err := b.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
		if b.Bytes() != nil {
			t.Fatalf("bytes should be released after Close")
		}
	}
}

func TestLoadEmpty(t *testing.T) {
	fn := writeFile(t, "empty.fa", nil)
	for _, useMmap := range []bool{false, true} {
		b, err := Open(fn, useMmap)
		if err != nil {
			t.Fatalf("Open(mmap=%v): %v", useMmap, err)
		}
		if b.Len() != 0 {
			t.Fatalf("want empty buffer, got %d bytes", b.Len())
		}
		_ = b.Close()
	}
}

func TestLoadGzip(t *testing.T) {
	fn := writeFile(t, "x.fa.gz", gz(t, plain))
	for _, useMmap := range []bool{false, true} {
		b, err := Open(fn, useMmap)
		if err != nil {
			t.Fatalf("Open(mmap=%v): %v", useMmap, err)
		}
		if string(b.Bytes()) != plain {
			t.Fatalf("mmap=%v: gunzip mismatch: %q", useMmap, b.Bytes())
		}
		_ = b.Close()
	}
}

func TestLoadMissing(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "nope.fa")
	for _, useMmap := range []bool{false, true} {
		_, err := Open(fn, useMmap)
		var oe *fileio.OpenError
		if !errors.As(err, &oe) || oe.Path != fn {
			t.Fatalf("mmap=%v: want OpenError for %s, got %v", useMmap, fn, err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("mmap=%v: want ErrNotExist in chain, got %v", useMmap, err)
		}
	}
}

func TestLoadDirectory(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("loading a directory should fail")
	}
}

func TestReadStream(t *testing.T) {
	b, err := Read(bytes.NewReader([]byte(plain)))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(b.Bytes()) != plain || b.Close() != nil {
		t.Fatalf("Read = %q", b.Bytes())
	}
}
