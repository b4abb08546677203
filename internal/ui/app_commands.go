package ui

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"imagegallery/internal/gallery"
	"imagegallery/internal/loader"
	"imagegallery/internal/preview"
	"imagegallery/internal/tmux"
)

// loadCmds starts one probe per item.
func loadCmds(ctx context.Context, l loader.Loader, items []gallery.Item) tea.Cmd {
	if len(items) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(items))
	for i, it := range items {
		cmds[i] = loader.Cmd(ctx, l, it)
	}
	return tea.Batch(cmds...)
}

// finalizeCmd schedules physical removal of items after delay.
func finalizeCmd(items []gallery.Item, delay time.Duration) tea.Cmd {
	if len(items) == 0 {
		return nil
	}
	ids := make([]int, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	msg := finalizeMsg{IDs: ids}
	if delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return msg })
}

// dismissNoticeCmd removes a toast after timeout.
func dismissNoticeCmd(id string, timeout time.Duration) tea.Cmd {
	return tea.Tick(timeout, func(time.Time) tea.Msg {
		return DismissNoticeMsg{ID: id}
	})
}

// renderPreviewCmd renders item with r in the background.
func renderPreviewCmd(ctx context.Context, r *preview.Renderer, item gallery.Item, cols, rows int) tea.Cmd {
	return func() tea.Msg {
		out, err := r.Render(ctx, item.SourceURL, cols, rows)
		return previewRenderedMsg{ItemID: item.ID, Output: out, Err: err}
	}
}

// openInTmuxCmd opens argv in a tmux split, replacing prevPane if set.
func openInTmuxCmd(prevPane string, item gallery.Item, argv []string) tea.Cmd {
	return func() tea.Msg {
		if err := tmux.KillPane(prevPane); err != nil {
			log.Printf("ui: close preview pane %s: %v", prevPane, err)
		}
		pane, err := tmux.OpenInSplit(argv)
		return tmuxOpenedMsg{Item: item, PaneID: pane, Err: err}
	}
}
