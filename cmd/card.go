package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/chris-regnier/tearoff/internal/ui"
	"github.com/spf13/cobra"
)

const (
	defaultCardWidth  = 80
	defaultCardHeight = 24
)

var (
	cardWidth  int
	cardHeight int
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Print one static frame of the calendar",
	Long: `Print one frame of the screen, as it looks once the entrance
animations have settled, and exit. Useful in scripts and non-interactive
terminals.`,
	Example: `  tearoff card
  tearoff card --width 100 --height 30 --mood dusk`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cardRun(os.Stdout, cardWidth, cardHeight)
	},
}

func cardRun(w io.Writer, width, height int) error {
	if width < 20 || height < 12 {
		return fmt.Errorf("card size %dx%d is too small (minimum 20x12)", width, height)
	}
	cfg := tuiConfig(time.Now())
	frame := ui.RenderFrame(cfg, width, height)
	_, err := fmt.Fprintln(w, frame)
	return err
}

func init() {
	cardCmd.Flags().IntVar(&cardWidth, "width", defaultCardWidth, "frame width in columns")
	cardCmd.Flags().IntVar(&cardHeight, "height", defaultCardHeight, "frame height in rows")
	rootCmd.AddCommand(cardCmd)
}
