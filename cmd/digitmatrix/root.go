package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/fkcurrie/digit-matrix-golang/internal/config"
	"github.com/fkcurrie/digit-matrix-golang/internal/logging"
)

var (
	v          = config.New()
	configPath string

	cfg    *config.Config
	logger *zap.SugaredLogger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "digitmatrix",
	Short: "Show a digit on a 5x5 LED matrix, stepped by two buttons.",
	Long: `digitmatrix drives a 5x5 WS2812 matrix showing one digit. Button A ` +
		`counts up, button B counts down, and a status LED blinks while it runs.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(v)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (yaml or json)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("chip", "", "gpio chip name")
	bindFlag(v, config.KeyLogDebug, rootCmd.PersistentFlags().Lookup("debug"))
	bindFlag(v, config.KeyGPIOChip, rootCmd.PersistentFlags().Lookup("chip"))
}

func setup(v *viper.Viper) error {
	c, err := config.LoadConfig(v, configPath)
	if err != nil {
		return err
	}
	l, err := logging.NewLogger(c.Log.Debug)
	if err != nil {
		return err
	}

	cfg, logger = c, l
	logger.Debugw("Loaded config", "config", configPath, "gpio", cfg.GPIO, "pio", cfg.PIO)
	return nil
}
