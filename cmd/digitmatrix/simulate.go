package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/fkcurrie/digit-matrix-golang/internal/app"
	"github.com/fkcurrie/digit-matrix-golang/internal/clock"
	"github.com/fkcurrie/digit-matrix-golang/internal/input"
	"github.com/fkcurrie/digit-matrix-golang/internal/logging"
	"github.com/fkcurrie/digit-matrix-golang/internal/sim"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run against the terminal: the matrix is drawn, keys a and b are the buttons.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return simulate(cmd)
	},
}

var simLogFile string

func init() {
	simulateCmd.Flags().StringVar(&simLogFile, "log-file", "digitmatrix-sim.log", "log destination while the terminal is in raw mode")
	rootCmd.AddCommand(simulateCmd)
}

func simulate(cmd *cobra.Command) error {
	// the screen owns the terminal, so logs go elsewhere
	simLogger, err := logging.NewLogger(cfg.Log.Debug, simLogFile)
	if err != nil {
		return err
	}
	defer simLogger.Sync()

	restore, err := sim.RawMode(os.Stdin)
	if err != nil {
		return err
	}
	atexit.Register(restore)
	defer restore()

	screen := sim.NewTerminal(cmd.OutOrStdout())
	a := app.New(screen, screen, simLogger)
	clk := clock.NewMonotonic()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// key presses are the only edge source, so HandleEdge has one caller
	go func() {
		defer cancel()
		err := sim.ReadKeys(cmd.InOrStdin(), func(b input.Button) {
			if a.Debouncer.HandleEdge(b, clk.Micros()) {
				simLogger.Debugw("Accepted key", "button", b, "digit", a.State.Counter.Value())
			}
		})
		if err != nil {
			simLogger.Warnw("Keyboard closed", "error", err)
		}
	}()

	return a.Run(ctx)
}
