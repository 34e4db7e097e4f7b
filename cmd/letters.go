package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tanuahire/Alphabet-Learning-app/internal/catalog"
	"github.com/Tanuahire/Alphabet-Learning-app/internal/ui/glyph"
)

var lettersCmd = &cobra.Command{
	Use:   "letters",
	Short: "List the alphabet lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-3s  %-10s  %-5s  %-8s  %-9s  %s\n",
			"#", "Word", "Pic", "Color", "Animation", "Narration")
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for i, l := range catalog.All() {
			fmt.Fprintf(out, "%-3d  %-10s  %-5s  %-8s  %-9s  %s\n",
				i+1, l.Word, glyph.Picture(l.Word), l.Color, l.Animation, l.Narration())
		}
		return nil
	},
}
