package cmd

import (
	"os"

	"github.com/chris-regnier/tearoff/internal/ui"
	"github.com/spf13/cobra"
)

const guideWidth = 80

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show how to use the calendar",
	Long:  "Render the built-in guide, paging it when it is taller than the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		width := guideWidth
		if appConfig.MaxWidth > 0 && appConfig.MaxWidth < width {
			width = appConfig.MaxWidth
		}
		if jsonOutput {
			return ui.FormatJSON(os.Stdout, map[string]string{"guide": appContent.Help})
		}
		rendered := ui.RenderMarkdown(appContent.Help, width, appConfig.Theme.MarkdownStyle)
		return ui.PageOutput(os.Stdout, rendered+"\n", width, ui.PaletteFor(appConfig.InitialMood()))
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
