package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/fkcurrie/digit-matrix-golang/internal/app"
	"github.com/fkcurrie/digit-matrix-golang/internal/config"
	"github.com/fkcurrie/digit-matrix-golang/internal/display"
	"github.com/fkcurrie/digit-matrix-golang/internal/input"
	"github.com/fkcurrie/digit-matrix-golang/pkg/gpio"
	"github.com/fkcurrie/digit-matrix-golang/pkg/pio"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive the LED matrix, buttons and status LED on real hardware.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHardware()
	},
}

func init() {
	runCmd.Flags().Int("data-pin", 0, "GPIO driving the LED data line")
	bindFlag(v, config.KeyPIODataPin, runCmd.Flags().Lookup("data-pin"))
	rootCmd.AddCommand(runCmd)
}

func runHardware() error {
	sm, err := pio.Open(pio.Config{
		BaseAddr: cfg.PIO.BaseAddr,
		SMNumber: cfg.PIO.StateMachine,
		DataPin:  cfg.PIO.DataPin,
	})
	if err != nil {
		return err
	}
	atexit.Register(func() {
		if err := sm.Close(); err != nil {
			logger.Warnw("Failed to close PIO", "error", err)
		}
	})

	led, err := gpio.Output(cfg.GPIO.Chip, cfg.GPIO.Indicator)
	if err != nil {
		return err
	}
	atexit.Register(func() { led.Close() })

	sink := display.SinkFunc(func(c display.PixelColor) error {
		return sm.Put(uint32(c))
	})
	a := app.New(sink, led, logger)

	handler := a.Debouncer.LineEventHandler(map[int]input.Button{
		cfg.GPIO.ButtonA: input.ButtonA,
		cfg.GPIO.ButtonB: input.ButtonB,
	})
	buttons, err := gpio.Buttons(cfg.GPIO.Chip, []int{cfg.GPIO.ButtonA, cfg.GPIO.ButtonB}, handler)
	if err != nil {
		return err
	}
	atexit.Register(func() { buttons.Close() })

	logger.Infow("Hardware ready",
		"chip", cfg.GPIO.Chip,
		"buttonA", cfg.GPIO.ButtonA,
		"buttonB", cfg.GPIO.ButtonB,
		"indicator", cfg.GPIO.Indicator,
		"dataPin", cfg.PIO.DataPin)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Close ends a Put stuck on a FIFO that never drains
	stopSink := context.AfterFunc(ctx, func() {
		if err := sm.Close(); err != nil {
			logger.Warnw("Failed to close PIO", "error", err)
		}
	})
	defer stopSink()

	err = a.Run(ctx)
	logger.Info("Shutting down...")
	return err
}
