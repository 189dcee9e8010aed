// pkg/api/match_v1.go
package api

// MatchV1 is the stable JSONL schema for one significant motif window.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type MatchV1 struct {
	Pattern  string  `json:"pattern"`
	Sequence string  `json:"sequence"`
	Start    int     `json:"start"` // 1-based
	Stop     int     `json:"stop"`  // 1-based, inclusive
	Strand   string  `json:"strand"` // "+" | "-"
	Score    float64 `json:"score"`
	PValue   float64 `json:"p_value"`
	Matched  string  `json:"matched_sequence"`
}
