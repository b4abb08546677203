// Package loader confirms that an item's image can actually be fetched.
// It plays the role of the rendering surface: every probed item reports
// exactly one success or failure back to the UI.
package loader

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"imagegallery/internal/gallery"
)

// Loader probes the image behind a gallery item.
type Loader interface {
	Load(ctx context.Context, item gallery.Item) error
}

// LoadResultMsg reports the outcome of a probe. Err is nil on success.
type LoadResultMsg struct {
	ItemID int
	Err    error
}

// Cmd runs l for item in the background and reports a LoadResultMsg.
func Cmd(ctx context.Context, l Loader, item gallery.Item) tea.Cmd {
	return func() tea.Msg {
		return LoadResultMsg{ItemID: item.ID, Err: l.Load(ctx, item)}
	}
}

// HTTPLoader fetches the first byte of the image and checks the response.
type HTTPLoader struct {
	Client    *http.Client
	Timeout   time.Duration
	UserAgent string
}

// NewHTTPLoader returns an HTTPLoader with its own client.
func NewHTTPLoader(timeout time.Duration, userAgent string) *HTTPLoader {
	return &HTTPLoader{
		Client:    &http.Client{},
		Timeout:   timeout,
		UserAgent: userAgent,
	}
}

var _ Loader = (*HTTPLoader)(nil)

// Load implements Loader.
func (l *HTTPLoader) Load(ctx context.Context, item gallery.Item) error {
	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, item.SourceURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Range", "bytes=0-0")
	req.Header.Set("Accept", "image/*")
	if l.UserAgent != "" {
		req.Header.Set("User-Agent", l.UserAgent)
	}

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	ct := resp.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return fmt.Errorf("not an image: content type %q", ct)
	}
	return nil
}

// StaticLoader accepts every item without touching the network.
type StaticLoader struct{}

var _ Loader = StaticLoader{}

// Load implements Loader.
func (StaticLoader) Load(context.Context, gallery.Item) error {
	return nil
}
