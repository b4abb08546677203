package pty

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/creack/pty"
)

// Size represents terminal dimensions in rows and columns.
type Size struct {
	Rows uint16
	Cols uint16
}

// Runner is the interface for spawning and controlling a PTY.
// Implementations can be swapped (e.g. creack/pty, or a fake for tests).
type Runner interface {
	Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error)
	Resize(rwc io.ReadWriteCloser, size Size) error
}

// CreackPTY implements Runner using github.com/creack/pty.
type CreackPTY struct{}

// Ensure CreackPTY implements Runner.
var _ Runner = (*CreackPTY)(nil)

// Start implements Runner. Spawns cmd in a PTY with the given size.
func (c *CreackPTY) Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error) {
	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Resize implements Runner. The rwc must be the *os.File returned by Start;
// other types are a no-op.
func (c *CreackPTY) Resize(rwc io.ReadWriteCloser, size Size) error {
	f, ok := rwc.(*os.File)
	if !ok {
		return nil
	}
	return pty.Setsize(f, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
}

// maxCapture bounds how much output Capture keeps.
const maxCapture = 4 << 20

// Capture runs cmd under a PTY of the given size and returns everything it
// wrote to the terminal. The process is killed when ctx is done.
func Capture(ctx context.Context, r Runner, cmd *exec.Cmd, size Size) ([]byte, error) {
	if r == nil {
		r = &CreackPTY{}
	}
	rwc, err := r.Start(ctx, cmd, size)
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", cmd.Path, err)
	}
	defer rwc.Close()

	stop := context.AfterFunc(ctx, func() {
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
	})
	defer stop()

	var buf bytes.Buffer
	_, readErr := io.Copy(&buf, io.LimitReader(rwc, maxCapture))
	// Linux reports EIO on the master once the child side closes.
	if readErr != nil && !errors.Is(readErr, syscall.EIO) && !errors.Is(readErr, os.ErrClosed) {
		return buf.Bytes(), fmt.Errorf("read pty: %w", readErr)
	}

	if cmd.Process != nil {
		if err := cmd.Wait(); err != nil {
			if ctx.Err() != nil {
				return buf.Bytes(), ctx.Err()
			}
			return buf.Bytes(), fmt.Errorf("%s: %w", cmd.Path, err)
		}
	}
	return buf.Bytes(), nil
}
