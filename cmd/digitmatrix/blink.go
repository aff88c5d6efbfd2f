package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/fkcurrie/digit-matrix-golang/internal/indicator"
	"github.com/fkcurrie/digit-matrix-golang/pkg/gpio"
)

var blinkCmd = &cobra.Command{
	Use:   "blink",
	Short: "Blink only the status LED, to check the indicator wiring.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		led, err := gpio.Output(cfg.GPIO.Chip, cfg.GPIO.Indicator)
		if err != nil {
			return err
		}
		atexit.Register(func() { led.Close() })

		logger.Infow("Blinking indicator", "chip", cfg.GPIO.Chip, "line", cfg.GPIO.Indicator, "period", indicator.Period)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		indicator.NewBlinker(led, logger).Run(ctx)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(blinkCmd)
}
