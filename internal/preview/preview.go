// Package preview renders an image into terminal text by running an external
// viewer (chafa, viu, timg, ...) under a pseudo-terminal.
package preview

import (
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"

	"imagegallery/internal/pty"
)

// ErrDisabled is returned when no preview command is configured.
var ErrDisabled = errors.New("preview: no command configured")

// Renderer runs a command template such as "chafa --size={cols}x{rows} {url}".
// Placeholders are substituted per argument, so a URL never splits into
// several arguments.
type Renderer struct {
	args   []string
	runner pty.Runner
}

// New parses template. An empty template yields a disabled renderer.
func New(template string, runner pty.Runner) *Renderer {
	if runner == nil {
		runner = &pty.CreackPTY{}
	}
	return &Renderer{args: strings.Fields(template), runner: runner}
}

// Enabled reports whether a command is configured.
func (r *Renderer) Enabled() bool {
	return r != nil && len(r.args) > 0
}

// Command returns the argv for url at the given size.
func (r *Renderer) Command(url string, cols, rows int) []string {
	repl := strings.NewReplacer(
		"{url}", url,
		"{cols}", strconv.Itoa(cols),
		"{rows}", strconv.Itoa(rows),
	)
	argv := make([]string, len(r.args))
	for i, a := range r.args {
		argv[i] = repl.Replace(a)
	}
	return argv
}

// Render runs the command for url and returns its terminal output.
func (r *Renderer) Render(ctx context.Context, url string, cols, rows int) (string, error) {
	if !r.Enabled() {
		return "", ErrDisabled
	}
	argv := r.Command(url, cols, rows)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	out, err := pty.Capture(ctx, r.runner, cmd, pty.Size{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		return "", err
	}
	return normalize(string(out)), nil
}

// normalize converts PTY line endings and drops trailing blank lines.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "")
	return strings.TrimRight(s, "\n ")
}
