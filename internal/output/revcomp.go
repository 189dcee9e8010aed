package output

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	pairs := []string{"AT", "CG", "RY", "KM", "BV", "DH"}
	for _, p := range pairs {
		for _, c := range []string{p, toLower(p)} {
			complement[c[0]] = c[1]
			complement[c[1]] = c[0]
		}
	}
	// S, W and N complement to themselves (identity entries above).
}

func toLower(s string) string {
	b := []byte(s)
	for i := range b {
		b[i] |= 0x20
	}
	return string(b)
}

// Complement maps a base to its complement. Case is preserved, IUPAC codes
// are complemented and every other byte passes through unchanged.
func Complement(b byte) byte { return complement[b] }

// AppendRevComp appends the reverse complement of seq to dst, reading seq
// from its last byte to its first.
func AppendRevComp(dst, seq []byte) []byte {
	for i := len(seq) - 1; i >= 0; i-- {
		dst = append(dst, complement[seq[i]])
	}
	return dst
}

// RevComp returns the reverse complement of seq.
func RevComp(seq []byte) []byte {
	if len(seq) == 0 {
		return nil
	}
	return AppendRevComp(make([]byte, 0, len(seq)), seq)
}
