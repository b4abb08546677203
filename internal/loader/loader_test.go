package loader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"imagegallery/internal/gallery"
)

func TestHTTPLoader_Load(t *testing.T) {
	var gotRange, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRange = r.Header.Get("Range")
		gotUA = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/ok.png":
			w.Header().Set("Content-Type", "image/png")
			w.WriteHeader(http.StatusPartialContent)
			w.Write([]byte{0x89})
		case "/full.jpg":
			w.Header().Set("Content-Type", "image/jpeg; charset=binary")
			w.Write([]byte("jpegdata"))
		case "/page.png":
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte("<html></html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	l := NewHTTPLoader(time.Second, "imagegallery/test")
	l.Client = srv.Client()

	tests := []struct {
		path    string
		wantErr string
	}{
		{"/ok.png", ""},
		{"/full.jpg", ""},
		{"/page.png", "not an image"},
		{"/missing.png", "unexpected status 404"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := l.Load(context.Background(), gallery.Item{ID: 1, SourceURL: srv.URL + tt.path})
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.ErrorContains(t, err, tt.wantErr)
			}
			require.Equal(t, "bytes=0-0", gotRange)
			require.Equal(t, "imagegallery/test", gotUA)
		})
	}
}

func TestHTTPLoader_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL + "/a.png"
	srv.Close()

	l := NewHTTPLoader(time.Second, "")
	err := l.Load(context.Background(), gallery.Item{ID: 1, SourceURL: url})
	require.ErrorContains(t, err, "fetch")
}

func TestHTTPLoader_Timeout(t *testing.T) {
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-done:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(done)

	l := NewHTTPLoader(50*time.Millisecond, "")
	l.Client = srv.Client()
	err := l.Load(context.Background(), gallery.Item{ID: 1, SourceURL: srv.URL + "/slow.png"})
	require.Error(t, err)
}

func TestCmd(t *testing.T) {
	msg := Cmd(context.Background(), StaticLoader{}, gallery.Item{ID: 7})()
	res, ok := msg.(LoadResultMsg)
	require.True(t, ok)
	require.Equal(t, 7, res.ItemID)
	require.NoError(t, res.Err)
}
