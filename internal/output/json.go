package output

import (
	"encoding/json"

	"motifscan/internal/scan"
	"motifscan/pkg/api"
)

// ToAPIMatch converts a domain Match to the stable wire schema (v1).
func ToAPIMatch(m scan.Match) api.MatchV1 {
	return api.MatchV1{
		Pattern:  m.Matrix.Name,
		Sequence: string(m.SeqName),
		Start:    m.Start,
		Stop:     m.Stop,
		Strand:   string(Strand(m)),
		Score:    m.Matrix.Unscale(m.Score),
		PValue:   m.PValue,
		Matched:  string(AppendMatched(nil, m)),
	}
}

// JSONL renders one api.MatchV1 object per line and has no header.
type JSONL struct{}

func (JSONL) Header() string { return "" }

func (JSONL) AppendMatch(dst []byte, m scan.Match) []byte {
	b, err := json.Marshal(ToAPIMatch(m))
	if err != nil {
		// MatchV1 holds only strings and finite numbers; a failure here is a bug
		panic(err)
	}
	dst = append(dst, b...)
	return append(dst, '\n')
}
