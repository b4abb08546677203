package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GALLERY_CONFIG", "")
	return home
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Len(t, cfg.Samples.URLs, 6)
	require.Equal(t, 3, cfg.Samples.StartupCount)
	require.Equal(t, 3*time.Second, cfg.Notify.Timeout)
	require.Equal(t, 300*time.Millisecond, cfg.UI.DeleteDelay)
	require.Equal(t, 400*time.Millisecond, cfg.UI.ClearDelay)
	require.Equal(t, "imagegallery", cfg.Trace.ServiceName)
	require.Empty(t, cfg.Control.Addr)

	urls := cfg.SampleURLs()
	require.Contains(t, urls[0], "?w=600&h=600&fit=crop&crop=center")
	require.True(t, cfg.Validator().IsImageURL(urls[0]))
}

func TestLoad_FileAndEnv(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "gallery.toml")
	data := `
[samples]
startup_count = 1

[validation]
extensions = ["png", "tiff"]

[ui]
delete_delay = "1s"

[control]
addr = "127.0.0.1:7000"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("GALLERY_CONTROL_ADDR", "127.0.0.1:9000")
	t.Setenv("GALLERY_LOADER_OFFLINE", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, cfg.Samples.StartupCount)
	require.Equal(t, time.Second, cfg.UI.DeleteDelay)
	require.Equal(t, "127.0.0.1:9000", cfg.Control.Addr)
	require.True(t, cfg.Loader.Offline)

	v := cfg.Validator()
	require.True(t, v.IsImageURL("https://example.com/a.tiff"))
	require.False(t, v.IsImageURL("https://example.com/a.gif"))
}

func TestLoad_DefaultLocation(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "gallery")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[notify]\nmax_visible = 5\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Notify.MaxVisible)
}

func TestDefaultPath(t *testing.T) {
	home := isolate(t)
	require.Equal(t, filepath.Join(home, ".config", "gallery", "config.toml"), DefaultPath())

	path := filepath.Join(home, "env.toml")
	t.Setenv("GALLERY_CONFIG", path)
	require.Equal(t, path, DefaultPath())

	// named by the environment, so it has to exist
	_, err := Load("")
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("[samples]\nstartup_count = 2\n"), 0o644))
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Samples.StartupCount)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	home := isolate(t)
	_, err := Load(filepath.Join(home, "nope.toml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.Notify.MaxVisible = 0
	require.ErrorContains(t, bad.Validate(), "notify.max_visible")

	bad = cfg
	bad.Samples.StartupCount = -1
	require.ErrorContains(t, bad.Validate(), "startup_count")

	bad = cfg
	bad.Loader.Timeout = 0
	require.ErrorContains(t, bad.Validate(), "loader.timeout")
}
