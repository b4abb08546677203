package ui

import (
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"imagegallery/internal/gallery"
	"imagegallery/internal/ui/textutil"
)

const (
	tileInnerWidth = 20
	// tileWidth is the rendered width: inner + padding (2) + border (2).
	tileWidth = tileInnerWidth + 4
)

// tileState carries the per-render decorations of a tile.
type tileState struct {
	cursor  bool
	spinner string // current spinner frame for pending tiles
}

// renderTile draws one image tile: badge and status, host, file name.
func renderTile(it gallery.Item, ts tileState) string {
	host, name := urlParts(it.SourceURL)

	var head string
	switch it.State {
	case gallery.StateRemoving, gallery.StateRemoved:
		head = Styles.Muted.Render("removing…")
	default:
		badgeStyle := Styles.Badge
		if it.Selected {
			badgeStyle = Styles.BadgeActive
		}
		head = badgeStyle.Render(strconv.Itoa(it.DisplayIndex)) + " " + statusGlyph(it.State, ts.spinner)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		head,
		textutil.TruncateMiddle(host, tileInnerWidth),
		textutil.Truncate(name, tileInnerWidth),
	)

	style := Styles.Tile
	switch {
	case !it.State.Live():
		style = Styles.TileRemoving
	case it.Selected:
		style = Styles.TileSelected
	case ts.cursor:
		style = Styles.TileCursor
	}
	return style.Width(tileInnerWidth + 2).Render(body)
}

func statusGlyph(s gallery.State, spin string) string {
	switch s {
	case gallery.StatePending:
		if spin == "" {
			spin = "…"
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Render(spin + " loading")
	case gallery.StateDisplayed:
		return Styles.Status.Render("✓ loaded")
	default:
		return ""
	}
}

// urlParts splits a URL into host and the last path segment for display.
// Unparseable input is returned whole as the name.
func urlParts(raw string) (host, name string) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", raw
	}
	name = path.Base(strings.TrimSuffix(u.Path, "/"))
	if name == "." || name == "/" {
		name = ""
	}
	return u.Host, name
}

// gridColumns returns how many tiles fit side by side in width.
func gridColumns(width int) int {
	if width <= 0 {
		width = 80
	}
	if n := width / tileWidth; n > 0 {
		return n
	}
	return 1
}
