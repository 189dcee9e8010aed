package pipeline

import (
	"context"
	"errors"
	"io"

	"motifscan/internal/fasta"
	"motifscan/internal/matrix"
	"motifscan/internal/output"
	"motifscan/internal/scan"
	"motifscan/internal/writers"
)

// errWriterStopped ends the record stream once the match writer has quit.
var errWriterStopped = errors.New("match writer stopped")

// RunSerial is the single-threaded reference path. It streams records from r
// one at a time, scores each against every matrix in list order and hands
// the matches to a match writer. Output is ordered by file position, then
// matrix, then window, and contains the same lines as Run for the same input.
//
// A write failure stops the stream at the next record boundary; a closed
// output pipe stops it the same way but is not an error.
func RunSerial(
	ctx context.Context,
	cfg Config,
	r io.Reader,
	matrices []*matrix.Matrix,
	f output.Formatter,
	out io.Writer,
) (Result, error) {
	var res Result
	scorer := &scan.Scorer{Matrices: matrices, Threshold: cfg.Threshold}
	in, done := writers.StartMatchWriter(out, f, 256)
	send := func(m scan.Match) { in <- m }

	var (
		werr    error
		stopped bool
	)
	err := fasta.StreamRecords(ctx, r, func(rec fasta.Record) error {
		select {
		case werr = <-done:
			stopped = true
			return errWriterStopped
		default:
		}
		res.Records++
		if rec.Clamped {
			res.Clamped++
		}
		w, m := scorer.ScoreSequence(rec.Seq, 0, len(rec.Seq), rec.Name, send)
		res.Windows += w
		res.Matches += m
		return nil
	})
	close(in)
	if !stopped {
		werr = <-done
	}
	if err != nil && !errors.Is(err, errWriterStopped) {
		return res, err
	}
	return res, werr
}
