package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fkcurrie/digit-matrix-golang/internal/preview"
)

var (
	previewDigit int
	previewScale int
	previewOut   string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Write a PNG of the matrix showing one digit.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if previewOut != "-" {
			f, err := os.Create(previewOut)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", previewOut, err)
			}
			defer f.Close()
			out = f
		}
		if err := preview.WritePNG(out, previewDigit, previewScale); err != nil {
			return err
		}
		logger.Infow("Wrote preview", "digit", previewDigit, "path", previewOut)
		return nil
	},
}

func init() {
	previewCmd.Flags().IntVarP(&previewDigit, "digit", "d", 0, "digit to draw (0-9)")
	previewCmd.Flags().IntVar(&previewScale, "scale", preview.DefaultScale, "pixels per LED")
	previewCmd.Flags().StringVarP(&previewOut, "out", "o", "digit.png", "output file, - for stdout")
	rootCmd.AddCommand(previewCmd)
}
