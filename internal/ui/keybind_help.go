package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = Styles.Muted
	h.Styles.ShortSeparator = Styles.Muted
	return h
}

// RenderKeybindHelp produces the transient help view shown after SPC.
// When the handler has a buffer (e.g. "SPC x"), it shows next-level hints.
func RenderKeybindHelp(keyHandler *KeyHandler) string {
	if keyHandler == nil || !keyHandler.LeaderWaiting {
		return ""
	}
	currentSeq := strings.Join(keyHandler.Buffer, " ")
	hints := keyHandler.Registry.LeaderHints(currentSeq, keyHandler.Mode)
	if len(hints) == 0 {
		return ""
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)

	prefix := "SPC"
	if currentSeq != "" {
		prefix = currentSeq
	}
	return boxStyle.Render(Styles.Muted.Render(prefix) + " " + newHelpModel().ShortHelpView(bindings))
}

// RenderHintBar renders the always-visible key hints for the focused mode.
// extra bindings (keys handled by views rather than the registry) come first.
func RenderHintBar(reg *KeybindRegistry, mode AppMode, width int, extra ...key.Binding) string {
	if reg == nil {
		return ""
	}
	bindings := append([]key.Binding(nil), extra...)
	for _, h := range reg.SingleKeyHints(mode) {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(h.Keys...),
			key.WithHelp(strings.Join(h.Keys, "/"), h.Desc),
		))
	}
	if len(reg.LeaderHints("", mode)) > 0 {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("SPC", "more"),
		))
	}
	hm := newHelpModel()
	hm.Width = width
	return hm.ShortHelpView(bindings)
}
