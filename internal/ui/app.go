package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"imagegallery/internal/gallery"
	"imagegallery/internal/intent"
	"imagegallery/internal/loader"
	"imagegallery/internal/notify"
	"imagegallery/internal/preview"
	"imagegallery/internal/telemetry"
)

// SnapshotPublisher receives the gallery state after every update.
// *control.SnapshotStore satisfies it.
type SnapshotPublisher interface {
	Set(gallery.Snapshot)
}

// FocusNextMsg moves focus to the next target (tab).
type FocusNextMsg struct{}

// FocusPrevMsg moves focus to the previous target (shift+tab).
type FocusPrevMsg struct{}

// Options configures NewAppModel. Zero values fall back to defaults.
type Options struct {
	Context        context.Context
	Validator      *gallery.Validator
	Loader         loader.Loader
	Samples        []string
	StartupSamples int
	NoticeTimeout  time.Duration
	MaxNotices     int
	DeleteDelay    time.Duration
	ClearDelay     time.Duration
	Snapshots      SnapshotPublisher
	Telemetry      *telemetry.Recorder
	Preview        *preview.Renderer
}

// AppModel is the root model. It owns the gallery, applies intents from
// keys and from the control API, and renders the gallery view with its
// overlays, toasts and key hints.
type AppModel struct {
	Gallery    *gallery.Gallery
	Grid       *GalleryView
	Focus      *FocusManager
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Notices    *notify.Queue

	Loader         loader.Loader
	Snapshots      SnapshotPublisher
	Telemetry      *telemetry.Recorder
	Preview        *preview.Renderer
	Samples        []string
	StartupSamples int
	NoticeTimeout  time.Duration
	DeleteDelay    time.Duration
	ClearDelay     time.Duration

	previewOn   bool
	previewItem int // item the pane shows or is rendering
	previewOut  string
	previewErr  error

	tmuxPane string // pane opened by SPC o, killed before the next one

	width, height int
	ctx           context.Context
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) *AppModel {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Loader == nil {
		opts.Loader = loader.StaticLoader{}
	}
	if opts.Samples == nil {
		opts.Samples = gallery.DefaultSamples()
	}
	if opts.NoticeTimeout <= 0 {
		opts.NoticeTimeout = 3 * time.Second
	}
	if opts.MaxNotices <= 0 {
		opts.MaxNotices = 3
	}

	m := &AppModel{
		Gallery:        gallery.New(opts.Validator),
		Grid:           NewGalleryView(),
		Focus:          NewFocusManager(ModeInput, ModeGrid),
		KeyHandler:     NewKeyHandler(newKeybindings()),
		Notices:        notify.NewQueue(opts.MaxNotices),
		Loader:         opts.Loader,
		Snapshots:      opts.Snapshots,
		Telemetry:      opts.Telemetry,
		Preview:        opts.Preview,
		Samples:        opts.Samples,
		StartupSamples: opts.StartupSamples,
		NoticeTimeout:  opts.NoticeTimeout,
		DeleteDelay:    opts.DeleteDelay,
		ClearDelay:     opts.ClearDelay,
		ctx:            opts.Context,
	}
	m.Focus.OnChange = func(from, to AppMode) { m.KeyHandler.Reset() }
	return m
}

func newKeybindings() *KeybindRegistry {
	grid := []AppMode{ModeGrid}
	deleteCmd := func() tea.Msg { return intent.DeleteSelected{Source: intent.SourceTUI} }

	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+c", tea.Quit, "quit")
	reg.BindWithDesc("ctrl+d", deleteCmd, "delete")
	reg.BindWithDesc("tab", func() tea.Msg { return FocusNextMsg{} }, "focus")
	reg.BindWithDesc("shift+tab", func() tea.Msg { return FocusPrevMsg{} }, "focus")
	reg.BindWithDescForMode("q", tea.Quit, "quit", grid)
	reg.BindWithDescForMode("x", deleteCmd, "delete", grid)
	reg.BindWithDescForMode("delete", deleteCmd, "delete", grid)
	reg.BindWithDescForMode("backspace", deleteCmd, "delete", grid)
	reg.BindWithDescForMode("SPC c", func() tea.Msg {
		return intent.ClearAll{Source: intent.SourceTUI}
	}, "Clear all", grid)
	reg.BindWithDescForMode("SPC s", func() tea.Msg {
		return intent.SeedSamples{Source: intent.SourceTUI}
	}, "Seed samples", grid)
	reg.BindWithDescForMode("SPC p", func() tea.Msg { return TogglePreviewMsg{} }, "Preview", grid)
	reg.BindWithDescForMode("SPC o", func() tea.Msg { return OpenInTmuxMsg{} }, "Open in tmux", grid)
	reg.BindWithDescForMode("SPC q", tea.Quit, "Quit", grid)
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	cmds := []tea.Cmd{a.Grid.Init()}
	if a.StartupSamples > 0 {
		n := a.StartupSamples
		cmds = append(cmds, func() tea.Msg {
			return intent.SeedSamples{Limit: n, Source: intent.SourceStartup}
		})
	}
	cmds = append(cmds, a.sync())
	return tea.Batch(cmds...)
}

// Update implements tea.Model. Every update ends by pushing the gallery
// state to the view and the snapshot publisher.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	return a, tea.Batch(cmd, a.sync())
}

func (a *appModelAdapter) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		_, cmd := a.Grid.Update(msg)
		return cmd
	case tea.KeyMsg:
		return a.handleKey(msg)
	case FocusNextMsg:
		return a.Grid.SetFocus(a.Focus.Next())
	case FocusPrevMsg:
		return a.Grid.SetFocus(a.Focus.Prev())

	case intent.SubmitURL:
		return a.handleSubmitURL(msg)
	case intent.Select:
		return a.handleSelect(msg)
	case intent.DeleteSelected:
		return a.handleDeleteSelected(msg)
	case intent.ClearAll:
		return a.handleClearAll(msg)
	case intent.SeedSamples:
		return a.handleSeedSamples(msg)
	case loader.LoadResultMsg:
		return a.handleLoadResult(msg)
	case finalizeMsg:
		for _, id := range msg.IDs {
			a.Gallery.Finalize(id)
		}
		return nil

	case DismissNoticeMsg:
		a.Notices.Dismiss(msg.ID)
		return nil
	case DismissModalMsg:
		a.Overlays.Pop()
		return nil

	case TogglePreviewMsg:
		return a.handleTogglePreview()
	case previewRenderedMsg:
		return a.handlePreviewRendered(msg)
	case OpenInTmuxMsg:
		return a.handleOpenInTmux()
	case tmuxOpenedMsg:
		return a.handleTmuxOpened(msg)
	}

	_, cmd := a.Grid.Update(msg)
	return cmd
}

// handleKey routes a key: ctrl+c always quits, an open modal takes every
// other key, then keybindings, then the gallery view.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.HandleKey(msg)
		return cmd
	}
	a.KeyHandler.Mode = a.Focus.Current
	if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
		return cmd
	}
	_, cmd := a.Grid.Update(msg)
	return cmd
}

// sync hands the current items to the view, publishes a snapshot and keeps
// the spinner running while any image is pending.
func (a *appModelAdapter) sync() tea.Cmd {
	items := a.Gallery.All()
	a.Grid.SetItems(items)
	if a.Snapshots != nil {
		a.Snapshots.Set(a.Gallery.Snapshot())
	}
	pending := false
	for _, it := range items {
		if it.State == gallery.StatePending {
			pending = true
			break
		}
	}
	return a.Grid.SetLoading(pending)
}

// notify shows a toast and schedules its dismissal.
func (a *AppModel) notify(level notify.Level, text string) tea.Cmd {
	var n notify.Notice
	if level == notify.LevelError {
		n = a.Notices.Error(text)
	} else {
		n = a.Notices.Info(text)
	}
	return dismissNoticeCmd(n.ID, a.NoticeTimeout)
}

// focusInputIfEmpty returns focus to the URL input once the grid has nothing
// left to navigate.
func (a *AppModel) focusInputIfEmpty() tea.Cmd {
	if !a.Gallery.Empty() || !a.Focus.Is(ModeGrid) {
		return nil
	}
	a.Focus.SetFocus(ModeInput)
	return a.Grid.SetFocus(ModeInput)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok && a.width > 0 && a.height > 0 {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, top.View.View())
	}

	base := a.Grid.View()
	if a.previewOn {
		base += "\n" + a.renderPreview()
	}
	if a.Notices.Len() > 0 {
		base += "\n" + renderToasts(a.Notices.Visible(), a.width)
	}
	if help := RenderKeybindHelp(a.KeyHandler); help != "" {
		base += "\n" + help
	} else {
		base += "\n" + RenderHintBar(a.KeyHandler.Registry, a.Focus.Current, a.width, a.enterHint())
	}
	if top, ok := a.Overlays.Peek(); ok {
		base += "\n\n" + top.View.View()
	}
	return base
}

func (a *appModelAdapter) enterHint() key.Binding {
	desc := "add"
	if a.Focus.Is(ModeGrid) {
		desc = "select"
	}
	return key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", desc))
}
