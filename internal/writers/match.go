package writers

import (
	"bufio"
	"io"
	"sync"

	"motifscan/internal/output"
	"motifscan/internal/scan"
)

// Reuse a 64 KiB buffered writer across match writers to avoid per-writer mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// StartMatchWriter spins up a writer goroutine that formats each received
// Match as one line. The header (when the format has one) is written first.
// Close the returned channel, then read the error channel exactly once.
// Matches must not alias memory the sender reuses.
//
// The error channel only delivers before the input is closed when writing
// failed; a sender can poll it to stop early. The failure is nil when the
// output pipe was closed by its reader. Either way the goroutine keeps
// draining the input so senders never block.
func StartMatchWriter(out io.Writer, f output.Formatter, bufSize int) (chan<- scan.Match, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan scan.Match, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		fail := func(err error) {
			done <- quiet(err)
			for range in {
			}
		}

		if h := f.Header(); h != "" {
			if _, err := bw.WriteString(h + "\n"); err != nil {
				fail(err)
				return
			}
		}
		var line []byte
		for m := range in {
			line = f.AppendMatch(line[:0], m)
			if _, err := bw.Write(line); err != nil {
				fail(err)
				return
			}
		}
		done <- quiet(bw.Flush())
	}()

	return in, done
}
