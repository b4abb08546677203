package ui

import (
	"strings"

	"imagegallery/internal/notify"
	"imagegallery/internal/ui/textutil"
)

// renderToasts draws the visible notices, newest last.
func renderToasts(notices []notify.Notice, width int) string {
	if len(notices) == 0 {
		return ""
	}
	maxText := width - 4
	if width <= 0 || maxText > 100 {
		maxText = 100
	}
	maxText = max(maxText, 10)
	lines := make([]string, len(notices))
	for i, n := range notices {
		style := Styles.ToastInfo
		if n.Level == notify.LevelError {
			style = Styles.ToastError
		}
		lines[i] = style.Render(textutil.Truncate(n.Text, maxText))
	}
	return strings.Join(lines, "\n")
}
