package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fkcurrie/digit-matrix-golang/internal/display"
)

var glyphsCmd = &cobra.Command{
	Use:   "glyphs",
	Short: "Print every digit as it appears on the matrix.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printGlyphs(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(glyphsCmd)
}

func printGlyphs(w io.Writer) error {
	for d := 0; d < display.NumDigits; d++ {
		frame := display.RenderFrame(d)
		if _, err := fmt.Fprintf(w, "%d\n", d); err != nil {
			return err
		}
		for y := 0; y < display.Rows; y++ {
			line := make([]byte, display.Columns)
			for x := range line {
				line[x] = '.'
				if frame.At(x, y) != 0 {
					line[x] = '#'
				}
			}
			if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
				return err
			}
		}
	}
	return nil
}
