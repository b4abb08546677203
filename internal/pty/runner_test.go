package pty

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"testing"
)

type fakeRunner struct {
	out     string
	err     error
	started *exec.Cmd
	size    Size
}

type nopRWC struct{ io.Reader }

func (nopRWC) Write(p []byte) (int, error) { return len(p), nil }
func (nopRWC) Close() error                { return nil }

func (f *fakeRunner) Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error) {
	f.started = cmd
	f.size = size
	if f.err != nil {
		return nil, f.err
	}
	return nopRWC{bytes.NewBufferString(f.out)}, nil
}

func (f *fakeRunner) Resize(io.ReadWriteCloser, Size) error { return nil }

func TestCapture_ReadsOutput(t *testing.T) {
	r := &fakeRunner{out: "\x1b[31mimage\x1b[0m"}
	cmd := exec.Command("chafa")
	out, err := Capture(context.Background(), r, cmd, Size{Rows: 10, Cols: 40})
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if string(out) != r.out {
		t.Errorf("out = %q, want %q", out, r.out)
	}
	if r.size != (Size{Rows: 10, Cols: 40}) {
		t.Errorf("size = %+v", r.size)
	}
}

func TestCapture_StartError(t *testing.T) {
	r := &fakeRunner{err: errors.New("no pty")}
	_, err := Capture(context.Background(), r, exec.Command("chafa"), Size{Rows: 1, Cols: 1})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestCreackPTY_Resize_NonFile(t *testing.T) {
	c := &CreackPTY{}
	if err := c.Resize(nopRWC{bytes.NewBuffer(nil)}, Size{Rows: 5, Cols: 5}); err != nil {
		t.Errorf("Resize on non-file: %v", err)
	}
}
