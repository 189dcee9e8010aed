// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"motifscan/internal/cmdutil"
	"motifscan/internal/config"
	"motifscan/internal/fasta"
	"motifscan/internal/fileio"
	"motifscan/internal/matrix"
	"motifscan/internal/output"
	"motifscan/internal/pipeline"
	"motifscan/internal/writers"
)

type Options struct {
	Input  string
	Output string

	Config config.Config

	Quiet           bool
	NoMatchExitCode int
}

// Run scans o.Input with matrices and returns the process exit code: 0 on
// success (or a closed output pipe), 3 on I/O failure, 130 on cancellation,
// o.NoMatchExitCode when nothing matched.
//
// Input and output are both opened before any scanning starts.
func Run(
	parent context.Context,
	stdout, stderr io.Writer,
	logger *log.Logger,
	o Options,
	matrices []*matrix.Matrix,
	f output.Formatter,
) int {
	cfg := o.Config

	var (
		buf *fasta.Buffer
		in  io.ReadCloser
		err error
	)
	if cfg.Serial {
		in, err = fasta.OpenReader(o.Input)
	} else {
		err = cmdutil.Timed(logger, "input loaded", func() error {
			var lerr error
			buf, lerr = fasta.Open(o.Input, cfg.Mmap)
			return lerr
		})
	}
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 3
	}
	defer func() {
		if in != nil {
			_ = in.Close()
		}
		if buf != nil {
			_ = buf.Close()
		}
	}()
	if buf != nil {
		logger.Info("input", "path", o.Input, "size", humanize.Bytes(uint64(buf.Len())), "mmap", cfg.Mmap)
	}

	out, err := fileio.CreateOutput(o.Output, stdout)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 3
	}
	outw := bufio.NewWriterSize(out, 1<<20)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	start := time.Now()
	pcfg := pipeline.Config{
		Threads:     cfg.Threads,
		Granularity: cfg.Granularity,
		Threshold:   cfg.Threshold,
	}
	var (
		res  pipeline.Result
		perr error
	)
	if in != nil {
		res, perr = pipeline.RunSerial(ctx, pcfg, in, matrices, f, outw)
	} else {
		res, perr = pipeline.Run(ctx, pcfg, buf.Bytes(), matrices, f, outw)
	}

	ferr := outw.Flush()
	cerr := out.Close()
	if perr != nil {
		switch {
		case errors.Is(perr, context.Canceled):
			return 130
		case writers.IsBrokenPipe(perr):
			return 0
		}
		fmt.Fprintln(stderr, "error:", perr)
		return 3
	}
	if writers.IsBrokenPipe(ferr) {
		return 0
	}
	for _, e := range []error{ferr, cerr} {
		if e != nil {
			fmt.Fprintln(stderr, "error:", e)
			return 3
		}
	}

	logger.Debug("scan layout", "regions", res.Regions, "workers", res.Workers, "granularity", cfg.Granularity)
	logger.Info("scan finished",
		"records", humanize.Comma(int64(res.Records)),
		"windows", humanize.Comma(int64(res.Windows)),
		"matches", humanize.Comma(int64(res.Matches)),
		"elapsed", time.Since(start).Round(time.Millisecond))
	if res.Clamped > 0 {
		cmdutil.Warnf(logger, o.Quiet, "%d record(s) lacked a final line break; read to end of input", res.Clamped)
	}
	if res.Matches == 0 {
		return o.NoMatchExitCode
	}
	return 0
}
