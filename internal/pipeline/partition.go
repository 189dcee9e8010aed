package pipeline

// Region is a half-open byte range [Begin, End) of the buffer.
type Region struct {
	Begin, End int
}

// Partition splits [0, N) into contiguous regions of Granularity bytes (the
// last may be shorter). Regions are computed on demand. They know nothing
// about record boundaries; record ownership is decided by the scanner.
type Partition struct {
	N           int
	Granularity int
}

// Len is the number of regions.
func (p Partition) Len() int {
	if p.N <= 0 {
		return 0
	}
	g := p.grain()
	return (p.N + g - 1) / g
}

// At returns region i, 0 ≤ i < Len().
func (p Partition) At(i int) Region {
	g := p.grain()
	b := i * g
	e := b + g
	if e > p.N {
		e = p.N
	}
	return Region{Begin: b, End: e}
}

// Regions materialises all regions.
func (p Partition) Regions() []Region {
	out := make([]Region, p.Len())
	for i := range out {
		out[i] = p.At(i)
	}
	return out
}

func (p Partition) grain() int {
	if p.Granularity < 1 {
		return 1
	}
	return p.Granularity
}
