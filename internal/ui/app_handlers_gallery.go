package ui

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"imagegallery/internal/gallery"
	"imagegallery/internal/intent"
	"imagegallery/internal/loader"
	"imagegallery/internal/notify"
	"imagegallery/internal/telemetry"
)

// handleSubmitURL adds an image and starts its probe. On a validation error
// the input keeps its text so the user can fix it.
func (a *appModelAdapter) handleSubmitURL(msg intent.SubmitURL) tea.Cmd {
	it, err := a.Gallery.Add(msg.URL)
	a.Telemetry.Record(a.ctx, telemetry.OpAdd, err,
		telemetry.URL(strings.TrimSpace(msg.URL)),
		telemetry.ItemID(it.ID),
		telemetry.Source(string(msg.Source)),
	)
	if err != nil {
		return a.notify(notify.LevelError, gallery.UserMessage(err))
	}
	if msg.Source == intent.SourceTUI {
		a.Grid.ClearInput()
	}
	return loadCmds(a.ctx, a.Loader, []gallery.Item{it})
}

// handleSelect toggles the selection. An unknown id is a caller bug (or an
// API request that raced a removal) and is only logged.
func (a *appModelAdapter) handleSelect(msg intent.Select) tea.Cmd {
	err := a.Gallery.Select(msg.ID)
	a.Telemetry.Record(a.ctx, telemetry.OpSelect, err,
		telemetry.ItemID(msg.ID),
		telemetry.Source(string(msg.Source)),
	)
	if err != nil {
		log.Printf("ui: %v", err)
		return nil
	}
	return a.refreshPreview()
}

// handleDeleteSelected logically deletes the selection and schedules the
// physical removal after the delete delay.
func (a *appModelAdapter) handleDeleteSelected(msg intent.DeleteSelected) tea.Cmd {
	it, ok := a.Gallery.DeleteSelected()
	if !ok {
		return nil
	}
	a.Telemetry.Record(a.ctx, telemetry.OpDelete, nil,
		telemetry.ItemID(it.ID),
		telemetry.Source(string(msg.Source)),
	)
	return tea.Batch(finalizeCmd([]gallery.Item{it}, a.DeleteDelay), a.refreshPreview(), a.focusInputIfEmpty())
}

// handleClearAll asks for confirmation first; a confirmed intent clears
// the gallery. Nothing happens on an empty gallery.
func (a *appModelAdapter) handleClearAll(msg intent.ClearAll) tea.Cmd {
	if !msg.Confirmed {
		if !a.Gallery.Empty() && a.Overlays.Len() == 0 {
			a.Overlays.Push(Overlay{View: NewClearConfirmModal(a.Gallery.Len(), msg.Source), Dismiss: "esc"})
		}
		return nil
	}
	if top, ok := a.Overlays.Peek(); ok {
		if _, isConfirm := top.View.(*ConfirmModal); isConfirm {
			a.Overlays.Pop()
		}
	}
	if a.Gallery.Empty() {
		return nil
	}

	removed := a.Gallery.ClearAll(true)
	// toasts about the removed images are stale now
	a.Notices.Clear()
	a.Telemetry.Record(a.ctx, telemetry.OpClear, nil,
		telemetry.Count(len(removed)),
		telemetry.Source(string(msg.Source)),
	)
	return tea.Batch(
		finalizeCmd(removed, a.ClearDelay),
		a.notify(notify.LevelInfo, fmt.Sprintf("Removed %s", countLabel(len(removed)))),
		a.refreshPreview(),
		a.focusInputIfEmpty(),
	)
}

// handleSeedSamples adds the samples not already shown. Startup seeding is
// silent; a user-triggered seed reports what it did.
func (a *appModelAdapter) handleSeedSamples(msg intent.SeedSamples) tea.Cmd {
	urls := a.Samples
	if msg.Limit > 0 && msg.Limit < len(urls) {
		urls = urls[:msg.Limit]
	}
	added, errs := a.Gallery.Seed(urls)
	for _, err := range errs {
		log.Printf("ui: sample rejected: %v", err)
	}
	a.Telemetry.Record(a.ctx, telemetry.OpSeed, nil,
		telemetry.Count(len(added)),
		telemetry.Source(string(msg.Source)),
	)

	cmds := []tea.Cmd{loadCmds(a.ctx, a.Loader, added)}
	if msg.Source != intent.SourceStartup {
		if len(added) == 0 {
			cmds = append(cmds, a.notify(notify.LevelInfo, "All sample images are already in the gallery"))
		} else {
			cmds = append(cmds, a.notify(notify.LevelInfo, fmt.Sprintf("Added %s", countLabel(len(added)))))
		}
	}
	return tea.Batch(cmds...)
}

// handleLoadResult applies a probe result. Results for items removed in the
// meantime are ignored.
func (a *appModelAdapter) handleLoadResult(msg loader.LoadResultMsg) tea.Cmd {
	if msg.Err == nil {
		if _, ok := a.Gallery.LoadSucceeded(msg.ItemID); ok {
			a.Telemetry.Record(a.ctx, telemetry.OpLoad, nil, telemetry.ItemID(msg.ItemID))
		}
		return nil
	}
	lerr, ok := a.Gallery.LoadFailed(msg.ItemID, msg.Err)
	if !ok {
		return nil
	}
	log.Printf("ui: %v", lerr)
	a.Telemetry.Record(a.ctx, telemetry.OpLoad, lerr,
		telemetry.ItemID(lerr.ItemID),
		telemetry.URL(lerr.URL),
	)
	return tea.Batch(a.notify(notify.LevelError, gallery.UserMessage(lerr)), a.refreshPreview(), a.focusInputIfEmpty())
}
