// Package matrix holds the scaled position weight matrix consumed by the
// scanners. Matrices arrive fully built: scaled integer weights plus the
// p-value table indexed by scaled score.
package matrix

import (
	"math"

	"github.com/pkg/errors"
)

// Column order of a weight row.
const (
	A = iota
	C
	G
	T
)

var baseIndex [256]int8

func init() {
	for i := range baseIndex {
		baseIndex[i] = -1
	}
	baseIndex['A'], baseIndex['a'] = A, A
	baseIndex['C'], baseIndex['c'] = C, C
	baseIndex['G'], baseIndex['g'] = G, G
	baseIndex['T'], baseIndex['t'] = T, T
}

// Matrix is a scaled PWM with its p-value lookup table.
type Matrix struct {
	Name              string
	Weights           [][4]int  // one row per motif position, columns A C G T
	PValues           []float64 // scaled score -> p-value
	Scale             float64
	MinBeforeScaling  float64
	ReverseComplement bool
}

// Width is the motif length W.
func (m *Matrix) Width() int { return len(m.Weights) }

// Score sums the row weights for buf[begin:end]. end-begin must equal Width.
// Bytes outside ACGT (either case) add nothing, which is the row minimum
// once weights have been shifted to be non-negative.
func (m *Matrix) Score(buf []byte, begin, end int) int {
	s := 0
	w := m.Weights
	for i, j := begin, 0; i < end; i, j = i+1, j+1 {
		if k := baseIndex[buf[i]]; k >= 0 {
			s += w[j][k]
		}
	}
	return s
}

// PValue looks up the p-value of a scaled score.
func (m *Matrix) PValue(score int) float64 { return m.PValues[score] }

// Unscale converts a scaled score back to the matrix's native score domain.
func (m *Matrix) Unscale(score int) float64 {
	return float64(score)/m.Scale + float64(len(m.Weights))*m.MinBeforeScaling
}

// MaxScore is the largest scaled score Score can return.
func (m *Matrix) MaxScore() int {
	s := 0
	for _, row := range m.Weights {
		best := 0
		for _, v := range row {
			if v > best {
				best = v
			}
		}
		s += best
	}
	return s
}

// Validate checks the invariants the scanners rely on: every producible
// score indexes PValues.
func (m *Matrix) Validate() error {
	if m.Name == "" {
		return errors.New("matrix has no name")
	}
	if len(m.Weights) == 0 {
		return errors.Errorf("matrix %q has no rows", m.Name)
	}
	if !(m.Scale > 0) || math.IsInf(m.Scale, 0) {
		return errors.Errorf("matrix %q: scale must be > 0, got %g", m.Name, m.Scale)
	}
	for i, row := range m.Weights {
		for j, v := range row {
			if v < 0 {
				return errors.Errorf("matrix %q: negative scaled weight %d at row %d col %d", m.Name, v, i+1, j+1)
			}
		}
	}
	for i, p := range m.PValues {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return errors.Errorf("matrix %q: p-value %d is not finite", m.Name, i)
		}
	}
	if math.IsNaN(m.MinBeforeScaling) || math.IsInf(m.MinBeforeScaling, 0) {
		return errors.Errorf("matrix %q: min_before_scaling is not finite", m.Name)
	}
	if hi := m.MaxScore(); hi >= len(m.PValues) {
		return errors.Errorf("matrix %q: p-value table has %d entries but max score is %d", m.Name, len(m.PValues), hi)
	}
	return nil
}

// ReverseComplementOf derives the minus-strand matrix: rows reversed and
// A<->T, C<->G swapped. Scaled scores have the same distribution, so the
// p-value table, scale and minimum are shared.
func (m *Matrix) ReverseComplementOf() *Matrix {
	n := len(m.Weights)
	rows := make([][4]int, n)
	for i, row := range m.Weights {
		rows[n-1-i] = [4]int{row[T], row[G], row[C], row[A]}
	}
	return &Matrix{
		Name:              m.Name,
		Weights:           rows,
		PValues:           m.PValues,
		Scale:             m.Scale,
		MinBeforeScaling:  m.MinBeforeScaling,
		ReverseComplement: !m.ReverseComplement,
	}
}
