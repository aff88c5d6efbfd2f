// Package input turns button edges into counter changes.
package input

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
	"go.uber.org/zap"

	"github.com/fkcurrie/digit-matrix-golang/internal/clock"
	"github.com/fkcurrie/digit-matrix-golang/internal/state"
)

// DebounceWindow is the minimum gap, in microseconds, between two accepted
// edges on the same button.
const DebounceWindow uint32 = 200000

// Button identifies one of the two inputs
type Button int

const (
	// ButtonA increments the counter
	ButtonA Button = iota
	// ButtonB decrements the counter
	ButtonB

	numButtons
)

func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	default:
		return fmt.Sprintf("Button(%d)", int(b))
	}
}

// Debouncer filters falling edges and applies accepted ones to the counter.
//
// HandleEdge runs in the edge-event context. It never blocks, and it is the
// only writer of the counter and of the per-button timestamps, so callers
// must deliver all edges from a single goroutine.
type Debouncer struct {
	counter *state.Counter
	last    [numButtons]uint32
	logger  *zap.SugaredLogger
}

// NewDebouncer creates a debouncer that mutates counter
func NewDebouncer(counter *state.Counter, logger *zap.SugaredLogger) *Debouncer {
	return &Debouncer{
		counter: counter,
		logger:  logger.Named("debounce"),
	}
}

// HandleEdge processes one falling edge on button b observed at now
// (microseconds). The edge is accepted only if more than DebounceWindow has
// passed since the last accepted edge on the same button. It reports whether
// the edge was accepted.
//
// The comparison is against the last accepted edge, not the last edge seen:
// a train of bounces spaced just over the window apart counts more than once.
func (d *Debouncer) HandleEdge(b Button, now uint32) bool {
	if b < 0 || b >= numButtons {
		return false
	}
	if now-d.last[b] <= DebounceWindow {
		return false
	}

	if b == ButtonA {
		d.counter.Increment()
	} else {
		d.counter.Decrement()
	}
	d.last[b] = now
	return true
}

// LastAccepted returns the timestamp of the last accepted edge on b
func (d *Debouncer) LastAccepted(b Button) uint32 {
	return d.last[b]
}

// LineEventHandler adapts GPIO character device events to HandleEdge.
// offsets maps line offsets to buttons. Rising edges and unknown lines are
// ignored. Event timestamps come from the kernel monotonic clock.
func (d *Debouncer) LineEventHandler(offsets map[int]Button) gpiocdev.EventHandler {
	return func(evt gpiocdev.LineEvent) {
		if evt.Type != gpiocdev.LineEventFallingEdge {
			return
		}
		b, ok := offsets[evt.Offset]
		if !ok {
			return
		}
		now := clock.Micros(evt.Timestamp)
		if d.HandleEdge(b, now) {
			d.logger.Debugw("Accepted edge", "button", b, "at", now, "digit", d.counter.Value())
		}
	}
}
