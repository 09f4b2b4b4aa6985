package logging

import (
	"time"
)

// TimingContext holds timing information for manual Start/End tracking
type TimingContext struct {
	name      string
	startTime time.Time
}

// Time executes fn and logs its execution time at debug level.
//
// Example:
//
//	logging.Time("render editor", func() {
//	    view = editor.View()
//	})
func Time(name string, fn func()) {
	Get().Time(name, fn)
}

// TimeWithResult executes fn, logs its execution time and returns its result.
//
// Example:
//
//	items := logging.TimeWithResult("filter commands", func() []commands.Command {
//	    return registry.Filter(query, mode)
//	})
func TimeWithResult[T any](name string, fn func() T) T {
	if !IsEnabled() {
		return fn()
	}
	start := time.Now()
	result := fn()
	Get().logDuration(name, start)
	return result
}

// Start begins a timing measurement. Pair it with End or EndWithCount.
//
// Example:
//
//	ctx := logging.Start("recompute decorations")
//	decos := Compute(doc)
//	logging.EndWithCount(ctx, len(decos))
func Start(name string) TimingContext {
	return TimingContext{
		name:      name,
		startTime: time.Now(),
	}
}

// End completes a timing measurement started with Start.
func End(ctx TimingContext) {
	if IsEnabled() {
		Get().logDuration(ctx.name, ctx.startTime)
	}
}

// EndWithCount completes a timing measurement and logs an item count with
// the duration.
func EndWithCount(ctx TimingContext, count int) {
	if IsEnabled() {
		Get().logDuration(ctx.name, ctx.startTime, "count", count)
	}
}

// Time is Time on a specific logger, e.g. one from Component.
func (l *Logger) Time(name string, fn func()) {
	if !l.IsEnabled() {
		fn()
		return
	}
	start := time.Now()
	fn()
	l.logDuration(name, start)
}

func (l *Logger) logDuration(name string, start time.Time, extra ...any) {
	duration := time.Since(start)
	args := append([]any{
		"duration", duration.String(),
		"ms", duration.Milliseconds(),
	}, extra...)
	l.Debug(name, args...)
}
