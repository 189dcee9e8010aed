// Package scan is the motif-scanning core: it locates FASTA records inside a
// byte range of a shared buffer and scores every window of every record
// against every matrix. It never imports app, writers, cli or pipeline; keep
// it domain-only.
package scan

import "motifscan/internal/matrix"

// Match is one significant window. SeqName and Window alias the scanned
// buffer and are only valid while it is.
type Match struct {
	Matrix  *matrix.Matrix
	SeqName []byte
	Start   int // 1-based, relative to the record's sequence
	Stop    int // 1-based, inclusive
	Score   int // scaled
	PValue  float64
	Window  []byte // forward-strand bytes of the window
}

// Stats counts scan work. Windows is the number of scored windows, across
// all matrices.
type Stats struct {
	Records int
	Windows int
	Matches int
	Clamped int
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Records += o.Records
	s.Windows += o.Windows
	s.Matches += o.Matches
	s.Clamped += o.Clamped
}

// Scorer scores records against a fixed matrix list. It is read-only and safe
// for concurrent use.
type Scorer struct {
	Matrices  []*matrix.Matrix
	Threshold float64 // a window is significant when its p-value is strictly below
}

// ScoreSequence slides each matrix over seq[begin:end] of buf, matrix by
// matrix in list order, and calls emit for each significant window. name is
// attached to every Match. It returns the number of windows evaluated and the
// number of matches emitted.
func (s *Scorer) ScoreSequence(buf []byte, begin, end int, name []byte, emit func(Match)) (windows, matches int) {
	for _, m := range s.Matrices {
		w := m.Width()
		if w == 0 {
			continue
		}
		for b, e := begin, begin+w; e <= end; b, e = b+1, e+1 {
			windows++
			score := m.Score(buf, b, e)
			p := m.PValue(score)
			if p < s.Threshold {
				matches++
				emit(Match{
					Matrix:  m,
					SeqName: name,
					Start:   b - begin + 1,
					Stop:    e - begin,
					Score:   score,
					PValue:  p,
					Window:  buf[b:e],
				})
			}
		}
	}
	return windows, matches
}

// ScoreRecord scores one located record.
func (s *Scorer) ScoreRecord(buf []byte, r Record, emit func(Match)) (windows, matches int) {
	return s.ScoreSequence(buf, r.SeqBegin, r.SeqEnd, r.Name(buf), emit)
}

// ScanRegion scores every record whose header lies in buf[begin:end]. A
// record that starts inside the region is finished even when its sequence
// runs past end; records starting after end are left to their own region.
func (s *Scorer) ScanRegion(buf []byte, begin, end int, emit func(Match)) Stats {
	var st Stats
	it := NewRecords(buf, begin, end)
	for {
		r, ok := it.Next()
		if !ok {
			return st
		}
		st.Records++
		if r.Clamped {
			st.Clamped++
		}
		w, m := s.ScoreRecord(buf, r, emit)
		st.Windows += w
		st.Matches += m
	}
}
