package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizpanel/internal/lcd"
)

var glyphCmd = &cobra.Command{
	Use:   "glyph",
	Short: "Print the selection pointer glyph",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "slot %d (5x8)\n", lcd.PointerGlyphID)
		for i, line := range lcd.PointerGlyph.Lines('#', '.') {
			fmt.Fprintf(out, "  %s  0x%02x\n", line, lcd.PointerGlyph[i])
		}
	},
}
