// Package tmux opens commands in tmux panes via exec. Commands target the
// current session automatically.
package tmux

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrNotInTmux is returned when the app is not running inside tmux.
var ErrNotInTmux = errors.New("not running inside tmux")

// InTmux reports whether the TMUX env var is set.
func InTmux() bool {
	return os.Getenv("TMUX") != ""
}

// holdOpen keeps the pane on screen after the command exits until a key is
// pressed or the pane is killed.
const holdOpen = "; read -r _"

// splitArgs builds the split-window invocation for argv. The new pane is
// placed to the right, keeps focus on the app (-d) and prints its pane id.
func splitArgs(argv []string) []string {
	args := []string{"split-window", "-h", "-d", "-P", "-F", "#{pane_id}"}
	if len(argv) > 0 {
		args = append(args, shellJoin(argv)+holdOpen)
	}
	return args
}

// OpenInSplit runs argv in a new pane of the current window and returns the
// pane id (e.g. %4).
func OpenInSplit(argv []string) (paneID string, err error) {
	if !InTmux() {
		return "", ErrNotInTmux
	}
	cmd := exec.Command("tmux", splitArgs(argv)...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tmux split-window: %w: %s", err, strings.TrimSpace(out.String()))
	}
	return strings.TrimSpace(out.String()), nil
}

// KillPane kills the pane with the given ID. An empty id is a no-op.
func KillPane(paneID string) error {
	if paneID == "" {
		return nil
	}
	if !InTmux() {
		return ErrNotInTmux
	}
	cmd := exec.Command("tmux", "kill-pane", "-t", paneID)
	var out bytes.Buffer
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tmux kill-pane: %w: %s", err, strings.TrimSpace(out.String()))
	}
	return nil
}

// shellJoin quotes each argument for /bin/sh, which tmux uses to run the
// pane command.
func shellJoin(argv []string) string {
	quoted := make([]string, len(argv))
	for i, a := range argv {
		quoted[i] = shellQuote(a)
	}
	return strings.Join(quoted, " ")
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	safe := true
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || strings.ContainsRune("-_./:=,+@%", r)) {
			safe = false
			break
		}
	}
	if safe {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
