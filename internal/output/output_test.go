package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"motifscan/internal/matrix"
	"motifscan/internal/scan"
	"motifscan/pkg/api"
)

func TestTSVHeader_Stable(t *testing.T) {
	const want = "#pattern name\tsequence name\tstart\tstop\tstrand\tscore\tp-value\tq-value\tmatched sequence"
	if TSVHeader != want {
		t.Fatalf("TSVHeader changed:\n got:  %q\n want: %q", TSVHeader, want)
	}
}

func TestFormats_Stable(t *testing.T) {
	if FormatTSV != "tsv" || FormatJSONL != "jsonl" {
		t.Fatalf("output format constants changed")
	}
	if _, err := ForFormat("xml"); err == nil {
		t.Fatal("unknown format accepted")
	}
	if f, err := ForFormat(""); err != nil || f.Header() != TSVHeader {
		t.Fatalf("default format should be TSV: %v", err)
	}
}

func TestRevComp(t *testing.T) {
	cases := []struct{ in, want string }{
		{"AAGG", "CCTT"},
		{"ACGT", "ACGT"},
		{"AATT", "AATT"},
		{"AGTC", "GACT"},
		{"acgtt", "aacgt"},
		{"AcGt", "aCgT"},
		{"RYSWKMBDHVN", "NBDHVKMWSRY"},
		{"ryswkmbdhvn", "nbdhvkmwsry"},
		{"AX-.", ".-XT"},
	}
	for _, c := range cases {
		if got := string(RevComp([]byte(c.in))); got != c.want {
			t.Errorf("RevComp(%s) = %s, want %s", c.in, got, c.want)
		}
	}
	if RevComp(nil) != nil {
		t.Errorf("RevComp(nil) should return nil")
	}
}

func testMatch(rc bool) scan.Match {
	m := &matrix.Matrix{
		Name:              "MA0001.1",
		Weights:           make([][4]int, 4),
		PValues:           make([]float64, 100),
		Scale:             4,
		MinBeforeScaling:  -1.25,
		ReverseComplement: rc,
	}
	return scan.Match{
		Matrix:  m,
		SeqName: []byte("chr1 assembled\tx"),
		Start:   5,
		Stop:    8,
		Score:   27,
		PValue:  1.23456e-05,
		Window:  []byte("AAGG"),
	}
}

func TestTSVForward(t *testing.T) {
	// score: 27/4 + 4*(-1.25) = 1.75
	got := string(TSV{}.AppendMatch(nil, testMatch(false)))
	want := "MA0001.1\tchr1 assembled\tx\t5\t8\t+\t1.75\t1.23e-05\t\tAAGG\n"
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestTSVReverseComplement(t *testing.T) {
	got := string(TSV{}.AppendMatch([]byte("prefix\n"), testMatch(true)))
	want := "prefix\nMA0001.1\tchr1 assembled\tx\t5\t8\t-\t1.75\t1.23e-05\t\tCCTT\n"
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestTSVPrecision(t *testing.T) {
	m := testMatch(false)
	m.Matrix.Scale = 3
	m.Matrix.MinBeforeScaling = 0
	m.Score = 10 // 3.333333...
	m.PValue = 0.0001
	fields := strings.Split(strings.TrimSuffix(string(TSV{}.AppendMatch(nil, m)), "\n"), "\t")
	// name contains a tab, so score and p-value sit one column further right
	if fields[6] != "3.33333" || fields[7] != "0.0001" {
		t.Fatalf("score/p = %q/%q", fields[6], fields[7])
	}
	if fields[8] != "" {
		t.Fatalf("q-value should be empty, got %q", fields[8])
	}
}

func TestJSONL(t *testing.T) {
	var buf bytes.Buffer
	f := JSONL{}
	if f.Header() != "" {
		t.Fatal("jsonl has no header")
	}
	buf.Write(f.AppendMatch(nil, testMatch(true)))
	buf.Write(f.AppendMatch(nil, testMatch(false)))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d", len(lines))
	}
	var v api.MatchV1
	if err := json.Unmarshal([]byte(lines[0]), &v); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if v.Strand != "-" || v.Matched != "CCTT" || v.Sequence != "chr1 assembled\tx" || v.Score != 1.75 || v.Start != 5 {
		t.Fatalf("decoded %+v", v)
	}
}
