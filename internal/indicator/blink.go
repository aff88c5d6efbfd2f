// Package indicator blinks the status LED.
package indicator

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Period is the interval between toggles
const Period = 200 * time.Millisecond

//go:generate mockgen -destination "mock_indicator_test.go" -package $GOPACKAGE -write_package_comment=false github.com/fkcurrie/digit-matrix-golang/internal/indicator Pin

// Pin is a digital output. *gpiocdev.Line satisfies it.
type Pin interface {
	SetValue(value int) error
}

// Blinker owns the indicator state and is the only code that drives the pin.
type Blinker struct {
	pin    Pin
	on     bool
	logger *zap.SugaredLogger
}

// NewBlinker creates a blinker with the indicator off
func NewBlinker(pin Pin, logger *zap.SugaredLogger) *Blinker {
	return &Blinker{
		pin:    pin,
		logger: logger.Named("indicator"),
	}
}

// Toggle inverts the indicator state and writes it to the pin. A failed
// write is logged; the state still flips so the next tick corrects the pin.
func (b *Blinker) Toggle() {
	b.on = !b.on
	value := 0
	if b.on {
		value = 1
	}
	if err := b.pin.SetValue(value); err != nil {
		b.logger.Warnw("Failed to set indicator", "value", value, "error", err)
	}
}

// State reports whether the indicator is currently on
func (b *Blinker) State() bool {
	return b.on
}

// Run toggles the indicator every Period until ctx is done
func (b *Blinker) Run(ctx context.Context) {
	b.run(ctx, Period)
}

func (b *Blinker) run(ctx context.Context, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.Toggle()
		}
	}
}
