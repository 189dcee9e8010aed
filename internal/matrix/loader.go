package matrix

import (
	"bytes"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

type fileMatrix struct {
	Name              string    `toml:"name"`
	Weights           [][]int   `toml:"weights"`
	PValues           []float64 `toml:"pvalues"`
	Scale             float64   `toml:"scale"`
	MinBeforeScaling  float64   `toml:"min_before_scaling"`
	ReverseComplement bool      `toml:"reverse_complement"`
	BothStrands       bool      `toml:"both_strands"`
}

type file struct {
	Matrix []fileMatrix `toml:"matrix"`
}

// LoadFile reads the [[matrix]] tables of a TOML file. A table with
// both_strands = true is followed by its derived reverse-complement matrix.
func LoadFile(path string) ([]*Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	list, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return list, nil
}

// LoadFiles concatenates LoadFile over paths, preserving order.
func LoadFiles(paths []string) ([]*Matrix, error) {
	var all []*Matrix
	for _, p := range paths {
		list, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		all = append(all, list...)
	}
	return all, nil
}

// Parse decodes matrix TOML. Unknown keys are rejected.
func Parse(data []byte) ([]*Matrix, error) {
	var f file
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "decode matrices")
	}

	var list []*Matrix
	for i, fm := range f.Matrix {
		m := &Matrix{
			Name:              fm.Name,
			PValues:           fm.PValues,
			Scale:             fm.Scale,
			MinBeforeScaling:  fm.MinBeforeScaling,
			ReverseComplement: fm.ReverseComplement,
		}
		for r, row := range fm.Weights {
			if len(row) != 4 {
				return nil, errors.Errorf("matrix #%d (%q) row %d: want 4 columns (A C G T), got %d", i+1, fm.Name, r+1, len(row))
			}
			m.Weights = append(m.Weights, [4]int{row[0], row[1], row[2], row[3]})
		}
		if err := m.Validate(); err != nil {
			return nil, errors.Wrapf(err, "matrix #%d", i+1)
		}
		list = append(list, m)
		if fm.BothStrands {
			list = append(list, m.ReverseComplementOf())
		}
	}
	return list, nil
}
