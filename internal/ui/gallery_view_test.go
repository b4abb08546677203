package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"imagegallery/internal/gallery"
	"imagegallery/internal/intent"
)

func testItems(n int) []gallery.Item {
	items := make([]gallery.Item, n)
	for i := range items {
		items[i] = gallery.Item{
			ID:           i + 1,
			SourceURL:    "https://example.com/" + string(rune('a'+i)) + ".jpg",
			DisplayIndex: i + 1,
			State:        gallery.StateDisplayed,
		}
	}
	return items
}

func TestGalleryView_GridNavigation(t *testing.T) {
	v := NewGalleryView()
	// 3 columns at width 72
	v.Update(tea.WindowSizeMsg{Width: 3 * tileWidth, Height: 30})
	v.SetItems(testItems(7))
	v.SetFocus(ModeGrid)

	steps := []struct {
		key  string
		want int
	}{
		{"l", 1},
		{"right", 2},
		{"right", 3},
		{"j", 6},
		{"down", 6}, // no row below
		{"k", 3},
		{"up", 0},
		{"up", 0},
		{"left", 0},
		{"G", 6},
		{"g", 0},
		{"end", 6},
		{"home", 0},
	}
	for _, s := range steps {
		v.Update(keyMsg(s.key))
		if v.Cursor() != s.want {
			t.Fatalf("after %q cursor = %d, want %d", s.key, v.Cursor(), s.want)
		}
	}
}

func TestGalleryView_CursorSkipsRemoving(t *testing.T) {
	v := NewGalleryView()
	items := testItems(3)
	items[0].State = gallery.StateRemoving
	items[0].DisplayIndex = 0
	items[1].DisplayIndex = 1
	items[2].DisplayIndex = 2
	v.SetItems(items)
	v.SetFocus(ModeGrid)

	it, ok := v.CursorItem()
	if !ok || it.ID != 2 {
		t.Fatalf("cursor item = %+v, %v; want id 2", it, ok)
	}
	if !strings.Contains(v.View(), "removing…") {
		t.Error("removing tile should still render")
	}
}

func TestGalleryView_VerticalMoveFollowsDrawnRows(t *testing.T) {
	v := NewGalleryView()
	// 2 columns; item 2 is fading out in the top right slot
	v.Update(tea.WindowSizeMsg{Width: 2 * tileWidth, Height: 30})
	items := testItems(5)
	items[1].State = gallery.StateRemoving
	v.SetItems(items)
	v.SetFocus(ModeGrid)

	steps := []struct {
		key    string
		wantID int
	}{
		{"down", 3}, // directly below item 1
		{"down", 5},
		{"up", 3},
		{"l", 4},
		{"up", 1}, // slot above item 4 is removing; continue upward
		{"down", 3},
	}
	for _, s := range steps {
		v.Update(keyMsg(s.key))
		it, ok := v.CursorItem()
		if !ok || it.ID != s.wantID {
			t.Fatalf("after %q cursor on %d, want %d", s.key, it.ID, s.wantID)
		}
	}
}

func TestGalleryView_LongInputNotCut(t *testing.T) {
	v := NewGalleryView()
	long := "https://images.unsplash.com/photo-1?sig=" + strings.Repeat("x", 3000)
	v.Update(keyMsg(long))
	if v.InputValue() != long {
		t.Errorf("input holds %d bytes, want %d", len(v.InputValue()), len(long))
	}
}

func TestGalleryView_SetItemsClampsCursor(t *testing.T) {
	v := NewGalleryView()
	v.SetItems(testItems(4))
	v.SetFocus(ModeGrid)
	v.Update(keyMsg("G"))
	if v.Cursor() != 3 {
		t.Fatalf("cursor = %d, want 3", v.Cursor())
	}

	v.SetItems(testItems(2))
	if v.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", v.Cursor())
	}
	v.SetItems(nil)
	if v.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", v.Cursor())
	}
	if _, ok := v.CursorItem(); ok {
		t.Error("no cursor item in an empty grid")
	}
}

func TestGalleryView_EnterInGridSelects(t *testing.T) {
	v := NewGalleryView()
	v.SetItems(testItems(2))
	v.SetFocus(ModeGrid)
	v.Update(keyMsg("l"))

	_, cmd := v.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	sel, ok := cmd().(intent.Select)
	if !ok || sel.ID != 2 || sel.Source != intent.SourceTUI {
		t.Errorf("msg = %#v", sel)
	}
}

func TestGalleryView_EnterOnEmptyGridDoesNothing(t *testing.T) {
	v := NewGalleryView()
	v.SetFocus(ModeGrid)
	if _, cmd := v.Update(keyMsg("enter")); cmd != nil {
		t.Error("enter on an empty grid should do nothing")
	}
}

func TestGalleryView_GridKeysDoNotType(t *testing.T) {
	v := NewGalleryView()
	v.SetItems(testItems(2))
	v.SetFocus(ModeGrid)
	v.Update(keyMsg("l"))
	if v.InputValue() != "" {
		t.Errorf("input = %q, grid keys must not reach it", v.InputValue())
	}
}

func TestGalleryView_SetLoadingTicksOnce(t *testing.T) {
	v := NewGalleryView()
	if v.SetLoading(true) == nil {
		t.Fatal("starting the spinner should tick")
	}
	if v.SetLoading(true) != nil {
		t.Error("a running spinner must not start a second tick chain")
	}
	if v.SetLoading(false) != nil || v.Loading() {
		t.Error("stopping should return nil and clear loading")
	}
}

func TestGalleryView_SelectionLine(t *testing.T) {
	v := NewGalleryView()
	items := testItems(3)
	v.SetItems(items)
	if !strings.Contains(v.View(), "No image selected") {
		t.Error("expected no selection line")
	}
	items[2].Selected = true
	v.SetItems(items)
	out := v.View()
	if !strings.Contains(out, "Image 3 selected") {
		t.Errorf("selection line missing:\n%s", out)
	}
	if !strings.Contains(out, "3 images") {
		t.Error("title count missing")
	}
}

func TestFocusManager(t *testing.T) {
	var changes []string
	f := NewFocusManager(ModeInput, ModeGrid)
	f.OnChange = func(from, to AppMode) {
		changes = append(changes, from.String()+">"+to.String())
	}

	if !f.Is(ModeInput) {
		t.Fatalf("initial focus = %v", f.Current)
	}
	if f.Next() != ModeGrid || f.Next() != ModeInput {
		t.Error("Next should cycle input -> grid -> input")
	}
	if f.Prev() != ModeGrid {
		t.Error("Prev should wrap to grid")
	}
	if !f.SetFocus(ModeGrid) {
		t.Error("SetFocus(grid) should succeed")
	}
	if f.SetFocus(AppMode(99)) {
		t.Error("SetFocus outside the order should fail")
	}
	if strings.Join(changes, ",") != "Input>Grid,Grid>Input,Input>Grid" {
		t.Errorf("changes = %v", changes)
	}
}

func TestOverlayStack_HandleKey(t *testing.T) {
	var s OverlayStack
	if _, handled := s.HandleKey(keyMsg("y")); handled {
		t.Error("empty stack should not handle keys")
	}

	confirmed := false
	s.Push(Overlay{View: NewConfirmModal("t", "l", func() tea.Msg {
		confirmed = true
		return nil
	}), Dismiss: "esc"})

	cmd, handled := s.HandleKey(keyMsg("y"))
	if !handled || cmd == nil {
		t.Fatalf("y: handled=%v cmd=%v", handled, cmd)
	}
	cmd()
	if !confirmed {
		t.Error("y should run OnConfirm")
	}

	if _, handled := s.HandleKey(keyMsg("esc")); !handled || s.Len() != 0 {
		t.Errorf("esc should pop: handled=%v len=%d", handled, s.Len())
	}
}

func TestConfirmModal_NCancels(t *testing.T) {
	m := NewClearConfirmModal(1, intent.SourceTUI)
	if !strings.Contains(m.View(), "1 image will be removed.") {
		t.Errorf("view:\n%s", m.View())
	}
	_, cmd := m.Update(keyMsg("n"))
	if cmd == nil {
		t.Fatal("n should produce a command")
	}
	if _, ok := cmd().(DismissModalMsg); !ok {
		t.Error("n should dismiss")
	}

	_, cmd = m.Update(keyMsg("enter"))
	ca, ok := cmd().(intent.ClearAll)
	if !ok || !ca.Confirmed || ca.Source != intent.SourceTUI {
		t.Errorf("enter msg = %#v", ca)
	}
}
