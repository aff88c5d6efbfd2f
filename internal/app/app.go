// Package app wires the counter, button handler, renderer and blinker
// together around one shared state.
package app

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/fkcurrie/digit-matrix-golang/internal/display"
	"github.com/fkcurrie/digit-matrix-golang/internal/indicator"
	"github.com/fkcurrie/digit-matrix-golang/internal/input"
	"github.com/fkcurrie/digit-matrix-golang/internal/state"
)

// App owns the shared state and the three contexts that touch it:
// the button handler writes the counter, the renderer reads it, and the
// blinker only drives the indicator.
type App struct {
	State     *state.Shared
	Debouncer *input.Debouncer
	Renderer  *display.Renderer
	Blinker   *indicator.Blinker

	logger *zap.SugaredLogger
}

// New creates an app drawing to sink and blinking pin
func New(sink display.PixelSink, pin indicator.Pin, logger *zap.SugaredLogger) *App {
	s := state.New()
	return &App{
		State:     s,
		Debouncer: input.NewDebouncer(&s.Counter, logger),
		Renderer:  display.NewRenderer(&s.Counter, sink, logger),
		Blinker:   indicator.NewBlinker(pin, logger),
		logger:    logger,
	}
}

// Run starts the blinker and the render loop and blocks until ctx is done.
// Button edges are fed to Debouncer by the caller's event source.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	blinkDone := make(chan struct{})
	go func() {
		defer close(blinkDone)
		a.Blinker.Run(ctx)
	}()

	a.logger.Infow("Running", "digit", a.State.Counter.Value())
	err := a.Renderer.Start(ctx)
	cancel()
	<-blinkDone

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
