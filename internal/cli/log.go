// SPDX-License-Identifier: MIT

package cli

import (
	"time"

	"github.com/charmbracelet/log"
)

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level with keyvals and an "elapsed" pair appended.
// Example output: "INFO computed spanning forest run=1f0c9a2e graph=g.txt arcs=3 weight=6 elapsed=2ms"
func (p *progress) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}
