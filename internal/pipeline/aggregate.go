package pipeline

import (
	"io"
	"sync"
)

// aggregator is the single shared output. Its lock is taken only while a
// finished worker drains its buffer, never while scanning or formatting.
type aggregator struct {
	mu     sync.Mutex
	out    io.Writer
	drains int
}

// drain writes one worker's whole buffer. Empty buffers are skipped.
func (a *aggregator) drain(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.drains++
	_, err := a.out.Write(buf)
	return err
}
