package scan

import "testing"

func TestNextRecord(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		cursor  int
		end     int
		ok      bool
		rname   string
		seq     string
		next    int
		clamped bool
	}{
		{"simple", ">s1\nACGT\n", 0, 10, true, "s1", "ACGT", 9, false},
		{"leading junk", "xx\n>s1\nAC\n", 0, 10, true, "s1", "AC", 10, false},
		{"description kept", ">s1 some text\nAC\n", 0, 17, true, "s1 some text", "AC", 17, false},
		{"no trailing newline", ">s1\nACGT", 0, 8, true, "s1", "ACGT", 8, true},
		{"header at eof", ">s1", 0, 3, true, "s1", "", 3, true},
		{"header with newline at eof", ">s1\n", 0, 4, true, "s1", "", 4, true},
		{"crlf", ">s1\r\nACGT\r\n", 0, 11, true, "s1", "ACGT", 11, false},
		{"empty name", ">\nAC\n", 0, 5, true, "", "AC", 5, false},
		{"empty sequence", ">s1\n\n>s2\nA\n", 0, 11, true, "s1", "", 5, false},
		{"header then header", ">s1\n>s2\nA\n", 0, 10, true, "s1", "", 4, false},
		{"header outside range", "xxxx>s1\nA\n", 0, 4, false, "", "", 0, false},
		{"header on last byte of range", "xx\n>s1\nACGT\n", 0, 4, true, "s1", "ACGT", 12, false},
		{"'>' inside a description", ">s1 len>100\nAC\n", 0, 15, true, "s1 len>100", "AC", 15, false},
		{"'>' mid-line is not a header", "xx>s1\nAC\n", 0, 9, false, "", "", 0, false},
		{"'>' mid-sequence skipped", ">s1\nA>C\n>s2\nG\n", 4, 14, true, "s2", "G", 14, false},
		{"no header", "ACGT\n", 0, 5, false, "", "", 0, false},
		{"empty buffer", "", 0, 0, false, "", "", 0, false},
		{"end past buffer", ">s\nA\n", 0, 100, true, "s", "A", 5, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := []byte(c.src)
			r, ok := NextRecord(buf, c.cursor, c.end)
			if ok != c.ok {
				t.Fatalf("ok = %v, want %v", ok, c.ok)
			}
			if !ok {
				return
			}
			if got := string(r.Name(buf)); got != c.rname {
				t.Errorf("name = %q, want %q", got, c.rname)
			}
			if got := string(r.Seq(buf)); got != c.seq {
				t.Errorf("seq = %q, want %q", got, c.seq)
			}
			if r.Next != c.next {
				t.Errorf("next = %d, want %d", r.Next, c.next)
			}
			if r.Clamped != c.clamped {
				t.Errorf("clamped = %v, want %v", r.Clamped, c.clamped)
			}
		})
	}
}

func TestRecordsIterator(t *testing.T) {
	buf := []byte(">a\nAC\n>b\nGT\nextra line\n>c\nTT")
	it := NewRecords(buf, 0, len(buf))
	var names []string
	for {
		r, ok := it.Next()
		if !ok {
			break
		}
		names = append(names, string(r.Name(buf)))
	}
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Fatalf("names = %v", names)
	}
	if _, ok := it.Next(); ok {
		t.Fatal("exhausted iterator returned a record")
	}
}

// Every header is owned by exactly one region whatever the region size.
func TestRecordsOwnershipAcrossRegions(t *testing.T) {
	buf := []byte(">r1\nACGTACGT\n>r2 len>100 x>y\nTTTT\n>r3\n\n>r4\nGG")
	for g := 1; g <= len(buf)+1; g++ {
		seen := map[string]int{}
		for begin := 0; begin < len(buf); begin += g {
			end := begin + g
			if end > len(buf) {
				end = len(buf)
			}
			it := NewRecords(buf, begin, end)
			for {
				r, ok := it.Next()
				if !ok {
					break
				}
				if r.Header < begin || r.Header >= end {
					t.Fatalf("g=%d: region [%d,%d) returned header at %d", g, begin, end, r.Header)
				}
				seen[string(r.Name(buf))]++
			}
		}
		for _, n := range []string{"r1", "r2 len>100 x>y", "r3", "r4"} {
			if seen[n] != 1 {
				t.Fatalf("g=%d: record %q seen %d times (%v)", g, n, seen[n], seen)
			}
		}
	}
}
