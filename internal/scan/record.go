package scan

import "bytes"

// Record locates one FASTA entry inside a shared buffer. All fields are byte
// offsets; name and sequence are the half-open spans [NameBegin, NameEnd) and
// [SeqBegin, SeqEnd).
type Record struct {
	Header    int // position of '>'
	NameBegin int
	NameEnd   int
	SeqBegin  int
	SeqEnd    int
	Next      int  // where the search for the following header resumes
	Clamped   bool // a line terminator was missing and end of buffer was used
}

// Name returns the header bytes after '>' (verbatim, minus a trailing '\r').
func (r Record) Name(buf []byte) []byte { return buf[r.NameBegin:r.NameEnd] }

// Seq returns the sequence bytes.
func (r Record) Seq(buf []byte) []byte { return buf[r.SeqBegin:r.SeqEnd] }

// lineEnd returns the index of the next '\n' at or after from, or len(buf)
// with ok=false when there is none.
func lineEnd(buf []byte, from int) (int, bool) {
	if from >= len(buf) {
		return len(buf), false
	}
	if i := bytes.IndexByte(buf[from:], '\n'); i >= 0 {
		return from + i, true
	}
	return len(buf), false
}

// trimCR moves end back over a single '\r'.
func trimCR(buf []byte, begin, end int) int {
	if end > begin && buf[end-1] == '\r' {
		return end - 1
	}
	return end
}

// headerAt returns the first '>' in buf[from:end] that starts a line, or -1.
// A '>' elsewhere (inside a description, say) is text.
func headerAt(buf []byte, from, end int) int {
	for from < end {
		i := bytes.IndexByte(buf[from:end], '>')
		if i < 0 {
			return -1
		}
		if p := from + i; p == 0 || buf[p-1] == '\n' {
			return p
		}
		from += i + 1
	}
	return -1
}

// NextRecord finds the first record whose line-leading '>' lies in
// buf[cursor:end]. Only the header search is bounded by end: the record's
// name and sequence are followed wherever they go, so the caller owning the
// header scores the whole record.
func NextRecord(buf []byte, cursor, end int) (Record, bool) {
	if end > len(buf) {
		end = len(buf)
	}
	if cursor >= end {
		return Record{}, false
	}
	h := headerAt(buf, cursor, end)
	if h < 0 {
		return Record{}, false
	}

	r := Record{Header: h}
	r.NameBegin = r.Header + 1

	nl, ok := lineEnd(buf, r.NameBegin)
	r.NameEnd = trimCR(buf, r.NameBegin, nl)
	if !ok {
		// header runs to end of buffer; no sequence
		r.SeqBegin, r.SeqEnd, r.Next, r.Clamped = len(buf), len(buf), len(buf), true
		return r, true
	}

	r.SeqBegin = nl + 1
	if r.SeqBegin < len(buf) && buf[r.SeqBegin] == '>' {
		// header directly followed by a header: empty sequence, and the next
		// search must start on that header
		r.SeqEnd, r.Next = r.SeqBegin, r.SeqBegin
		return r, true
	}

	nl, ok = lineEnd(buf, r.SeqBegin)
	r.SeqEnd = trimCR(buf, r.SeqBegin, nl)
	if ok {
		r.Next = nl + 1
	} else {
		r.Next, r.Clamped = len(buf), true
	}
	return r, true
}

// Records iterates the records owned by one region of a buffer without
// materialising them.
type Records struct {
	buf    []byte
	cursor int
	end    int
}

// NewRecords starts iteration at begin; records whose header is at or past
// end belong to a later region.
func NewRecords(buf []byte, begin, end int) *Records {
	return &Records{buf: buf, cursor: begin, end: end}
}

// Next returns the next owned record, or false when the region is exhausted.
func (it *Records) Next() (Record, bool) {
	r, ok := NextRecord(it.buf, it.cursor, it.end)
	if !ok {
		it.cursor = it.end
		return Record{}, false
	}
	it.cursor = r.Next
	return r, true
}
