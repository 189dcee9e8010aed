package output

import (
	"strconv"

	"motifscan/internal/scan"
)

// TSV renders FIMO-style rows: pattern, sequence name (verbatim header),
// start, stop, strand, score (6 significant digits), p-value (3 significant
// digits), an empty q-value and the matched sequence.
type TSV struct{}

func (TSV) Header() string { return TSVHeader }

func (TSV) AppendMatch(dst []byte, m scan.Match) []byte {
	dst = append(dst, m.Matrix.Name...)
	dst = append(dst, '\t')
	dst = append(dst, m.SeqName...)
	dst = append(dst, '\t')
	dst = strconv.AppendInt(dst, int64(m.Start), 10)
	dst = append(dst, '\t')
	dst = strconv.AppendInt(dst, int64(m.Stop), 10)
	dst = append(dst, '\t', Strand(m), '\t')
	dst = strconv.AppendFloat(dst, m.Matrix.Unscale(m.Score), 'g', 6, 64)
	dst = append(dst, '\t')
	dst = strconv.AppendFloat(dst, m.PValue, 'g', 3, 64)
	dst = append(dst, '\t', '\t') // q-value is not computed
	dst = AppendMatched(dst, m)
	return append(dst, '\n')
}
