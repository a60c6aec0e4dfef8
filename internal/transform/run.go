package transform

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/1broseidon/winfit/internal/platform"
	"github.com/1broseidon/winfit/internal/target"
)

// Summary counts what a run touched.
type Summary struct {
	Visited  int
	Matched  int
	Measured int
	Resized  int
	// Skipped counts measured windows whose client area is smaller than
	// the offset.
	Skipped int
}

// Matching filters windows through the criteria predicate. visited, when
// non-nil, is incremented for every window inspected.
func Matching(backend platform.Backend, windows iter.Seq[platform.WindowID], criteria target.Criteria, visited *int) iter.Seq[platform.WindowID] {
	match := criteria.Predicate()
	return func(yield func(platform.WindowID) bool) {
		for id := range windows {
			if visited != nil {
				*visited++
			}
			if !match(target.Handle{Backend: backend, ID: id}) {
				continue
			}
			if !yield(id) {
				return
			}
		}
	}
}

// Runner applies one request to every matching window of an enumeration.
type Runner struct {
	Backend  platform.Backend
	Criteria target.Criteria
	Request  Request
	// Out receives one "WxH\t" line per window when measuring.
	Out    io.Writer
	Logger *slog.Logger
	// Observe, when set, sees every successful result.
	Observe func(Result)
}

// Run processes windows in enumeration order and stops at the first sizing
// failure. Windows that fail the predicate are skipped silently, as are
// measured windows too small for the offset.
func (r *Runner) Run(windows iter.Seq[platform.WindowID]) (Summary, error) {
	var sum Summary
	engine := NewEngine(r.Backend, r.Criteria.Offset, r.Logger)

	for id := range Matching(r.Backend, windows, r.Criteria, &sum.Visited) {
		sum.Matched++

		res, err := engine.Apply(id, r.Request)
		if errors.Is(err, ErrOffsetExceedsClient) {
			sum.Skipped++
			r.logger().Debug("window skipped", "window", id, "error", err)
			continue
		}
		if err != nil {
			return sum, err
		}
		if r.Observe != nil {
			r.Observe(res)
		}

		if r.Request.Measuring() {
			sum.Measured++
			if r.Out != nil {
				if _, err := fmt.Fprintf(r.Out, "%s\t\n", res.Measurement); err != nil {
					return sum, fmt.Errorf("failed to write measurement: %w", err)
				}
			}
			continue
		}
		if res.Resized {
			sum.Resized++
		}
	}

	return sum, nil
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Logger
}
