package display

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// FrameInterval is the pause between two frames
const FrameInterval = 50 * time.Millisecond

// DigitSource provides the digit to show. *state.Counter satisfies it.
type DigitSource interface {
	Value() int
}

// Renderer repeatedly draws the current digit to the pixel sink. It is the
// only reader of the digit source and never writes it.
type Renderer struct {
	digits   DigitSource
	sink     PixelSink
	interval time.Duration
	logger   *zap.SugaredLogger
}

// NewRenderer creates a new renderer instance
func NewRenderer(digits DigitSource, sink PixelSink, logger *zap.SugaredLogger) *Renderer {
	return &Renderer{
		digits:   digits,
		sink:     sink,
		interval: FrameInterval,
		logger:   logger.Named("renderer"),
	}
}

// Start renders a frame, sleeps FrameInterval, and repeats until ctx is
// done. A digit change during a frame shows up on the next one.
func (r *Renderer) Start(ctx context.Context) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			r.render()
			timer.Reset(r.interval)
		}
	}
}

// render sends one frame. Sink errors are logged and the next frame is
// attempted as usual.
func (r *Renderer) render() {
	digit := r.digits.Value()
	if err := Render(digit, r.sink); err != nil {
		r.logger.Warnw("Failed to render", "digit", digit, "error", err)
	}
}
