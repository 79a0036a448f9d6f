package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	statusMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{
			Light: "#04B575",
			Dark:  "#04B575",
		})
	warningMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214"))
	errorMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("9"))
	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Underline(true)
)

// PrintResult reports the outcome of a run; an empty filename means nothing was exported.
func PrintResult(w io.Writer, filename string) {
	if filename == "" {
		fmt.Fprintln(w, warningMessageStyle.Render("No videos found, nothing to export."))
		return
	}

	fmt.Fprintln(w, statusMessageStyle.Render("Export written to ")+pathStyle.Render(filename))
}

func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, errorMessageStyle.Render(fmt.Sprintf("youtube_etl failed: %v", err)))
}
