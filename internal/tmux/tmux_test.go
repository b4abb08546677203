package tmux

import (
	"errors"
	"reflect"
	"testing"
)

func TestOpenInSplit_NotInTmux(t *testing.T) {
	t.Setenv("TMUX", "")
	_, err := OpenInSplit([]string{"chafa", "a.png"})
	if !errors.Is(err, ErrNotInTmux) {
		t.Fatalf("err = %v, want ErrNotInTmux", err)
	}
}

func TestKillPane(t *testing.T) {
	t.Setenv("TMUX", "")
	if err := KillPane(""); err != nil {
		t.Errorf("empty pane id: err = %v, want nil", err)
	}
	if err := KillPane("%4"); !errors.Is(err, ErrNotInTmux) {
		t.Errorf("err = %v, want ErrNotInTmux", err)
	}
}

func TestSplitArgs(t *testing.T) {
	got := splitArgs([]string{"chafa", "--size=80x24", "https://x/a.png?w=600&h=600"})
	want := []string{
		"split-window", "-h", "-d", "-P", "-F", "#{pane_id}",
		"chafa --size=80x24 'https://x/a.png?w=600&h=600'; read -r _",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitArgs = %q, want %q", got, want)
	}
}

func TestShellQuote(t *testing.T) {
	tests := []struct{ in, want string }{
		{"plain", "plain"},
		{"", "''"},
		{"a b", "'a b'"},
		{"it's", `'it'\''s'`},
		{"https://x/a.png", "https://x/a.png"},
	}
	for _, tt := range tests {
		if got := shellQuote(tt.in); got != tt.want {
			t.Errorf("shellQuote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
