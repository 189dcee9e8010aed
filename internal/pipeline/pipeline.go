package pipeline

import (
	"context"
	"io"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"motifscan/internal/matrix"
	"motifscan/internal/output"
	"motifscan/internal/scan"
)

// Config controls the scanning pipeline.
type Config struct {
	Threads     int     // number of worker goroutines (0 = all CPUs)
	Granularity int     // target region size in bytes
	Threshold   float64 // p-value cutoff (strict)
}

// Result summarises a finished scan.
type Result struct {
	scan.Stats
	Regions int // regions dispatched (parallel path only)
	Workers int // workers started (parallel path only)
}

// Run scans buf on a pool of cfg.Threads workers and writes the formatter's
// header followed by every match to out.
//
// Each worker claims region indexes from a shared counter and appends its
// matches to a buffer it owns for its whole life; the buffer is written to
// out once, under a lock, when the worker runs out of regions. Lines are
// therefore grouped by worker: in scan order within a worker, in no defined
// order across workers.
//
// The first error (a write failure or ctx cancellation, checked between
// regions) stops the remaining workers and is returned.
func Run(
	ctx context.Context,
	cfg Config,
	buf []byte,
	matrices []*matrix.Matrix,
	f output.Formatter,
	out io.Writer,
) (Result, error) {
	var res Result
	if h := f.Header(); h != "" {
		if _, err := io.WriteString(out, h+"\n"); err != nil {
			return res, err
		}
	}

	part := Partition{N: len(buf), Granularity: cfg.Granularity}
	n := part.Len()
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if threads > n {
		threads = n
	}
	res.Regions, res.Workers = n, threads
	if n == 0 {
		return res, ctx.Err()
	}

	scorer := &scan.Scorer{Matrices: matrices, Threshold: cfg.Threshold}
	agg := &aggregator{out: out}
	stats := make([]scan.Stats, threads)
	var next atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < threads; w++ {
		g.Go(func() error {
			var own []byte
			emit := func(m scan.Match) { own = f.AppendMatch(own, m) }
			for {
				if err := gctx.Err(); err != nil {
					return err
				}
				i := int(next.Add(1) - 1)
				if i >= n {
					break
				}
				r := part.At(i)
				stats[w].Add(scorer.ScanRegion(buf, r.Begin, r.End, emit))
			}
			return agg.drain(own)
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}
	for _, st := range stats {
		res.Add(st)
	}
	return res, nil
}
