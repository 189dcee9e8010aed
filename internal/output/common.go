package output

import (
	"fmt"

	"motifscan/internal/scan"
)

// Output formats.
const (
	FormatTSV   = "tsv"
	FormatJSONL = "jsonl"
)

// TSVHeader is the canonical header row for TSV output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "#pattern name\tsequence name\tstart\tstop\tstrand\tscore\tp-value\tq-value\tmatched sequence"

// Formatter renders matches. AppendMatch appends exactly one line, newline
// included, and must not retain dst or m.
type Formatter interface {
	Header() string // "" when the format has none
	AppendMatch(dst []byte, m scan.Match) []byte
}

// ForFormat returns the Formatter for a format name.
func ForFormat(name string) (Formatter, error) {
	switch name {
	case FormatTSV, "":
		return TSV{}, nil
	case FormatJSONL:
		return JSONL{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", name)
	}
}

// Strand is "-" for reverse-complement matrices.
func Strand(m scan.Match) byte {
	if m.Matrix.ReverseComplement {
		return '-'
	}
	return '+'
}

// AppendMatched appends the matched subsequence: the window itself, or its
// reverse complement for a reverse-complement matrix.
func AppendMatched(dst []byte, m scan.Match) []byte {
	if m.Matrix.ReverseComplement {
		return AppendRevComp(dst, m.Window)
	}
	return append(dst, m.Window...)
}
