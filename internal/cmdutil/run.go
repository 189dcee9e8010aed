package cmdutil

import (
	"time"

	"github.com/charmbracelet/log"
)

// Timed runs fn and logs its wall time at debug level under msg.
func Timed(logger *log.Logger, msg string, fn func() error) error {
	start := time.Now()
	err := fn()
	logger.Debug(msg, "elapsed", time.Since(start).Round(time.Millisecond), "ok", err == nil)
	return err
}
