// Package report collects non-fatal engine errors with a bounded
// in-memory history. It replaces a process-wide error handler with an
// explicit dependency that callers inject, which keeps unit tests
// deterministic.
package report

import (
	"sync"
	"time"

	"github.com/AstroAir/lucide-gallery/pkg/constants"
	"github.com/AstroAir/lucide-gallery/pkg/logging"
)

// Entry is one reported error.
type Entry struct {
	Time      time.Time
	Component string
	Err       error
}

// Reporter records errors with a bounded history. The zero value is not
// usable; create one with NewReporter. A nil *Reporter is safe: Report
// becomes a log-only call.
type Reporter struct {
	mu      sync.Mutex
	history []Entry
	limit   int
	now     func() time.Time
}

// ReporterOption configures a Reporter.
type ReporterOption func(*Reporter)

// WithHistoryLimit overrides the bounded history size.
func WithHistoryLimit(limit int) ReporterOption {
	return func(r *Reporter) {
		if limit > 0 {
			r.limit = limit
		}
	}
}

// WithClock overrides the timestamp source. Used in tests.
func WithClock(now func() time.Time) ReporterOption {
	return func(r *Reporter) {
		r.now = now
	}
}

// NewReporter creates a reporter with the default history bound.
func NewReporter(opts ...ReporterOption) *Reporter {
	r := &Reporter{
		limit: constants.ReporterHistorySize,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report records err against component and logs it. Oldest entries are
// evicted past the history bound. No-op for nil errors.
func (r *Reporter) Report(component string, err error) {
	if err == nil {
		return
	}

	logging.Error().Err(err).Str("component", component).Msg("engine error")

	if r == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.history = append(r.history, Entry{
		Time:      r.now(),
		Component: component,
		Err:       err,
	})
	if len(r.history) > r.limit {
		r.history = r.history[len(r.history)-r.limit:]
	}
}

// History returns a copy of the recorded entries, oldest first.
func (r *Reporter) History() []Entry {
	if r == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry, len(r.history))
	copy(out, r.history)
	return out
}

// Len returns the number of recorded entries.
func (r *Reporter) Len() int {
	if r == nil {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.history)
}

// Clear discards the recorded history.
func (r *Reporter) Clear() {
	if r == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = nil
}
