// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Warnf logs a non-essential warning unless quiet is set.
func Warnf(l *log.Logger, quiet bool, format string, a ...any) {
	if quiet || l == nil {
		return
	}
	l.Warn(fmt.Sprintf(format, a...))
}
