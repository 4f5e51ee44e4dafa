package folio

import (
	"fmt"
	"os"
)

// SetDebugMode enables or disables debug logging. When enabled, window
// events and page state transitions are printed to stderr.
func (w *Window) SetDebugMode(enabled bool) {
	w.debug = enabled
}

// DebugMode reports whether debug logging is enabled.
func (w *Window) DebugMode() bool {
	return w.debug
}

// debugf prints a prefixed line to stderr when debug mode is on.
func (w *Window) debugf(format string, args ...any) {
	if w == nil || !w.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[folio] "+format+"\n", args...)
}
