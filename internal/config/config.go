package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"imagegallery/internal/gallery"
)

// Config holds application configuration.
type Config struct {
	Samples    SamplesConfig    `mapstructure:"samples"`
	Validation ValidationConfig `mapstructure:"validation"`
	Notify     NotifyConfig     `mapstructure:"notify"`
	UI         UIConfig         `mapstructure:"ui"`
	Loader     LoaderConfig     `mapstructure:"loader"`
	Control    ControlConfig    `mapstructure:"control"`
	Preview    PreviewConfig    `mapstructure:"preview"`
	Trace      TraceConfig      `mapstructure:"trace"`
	Log        LogConfig        `mapstructure:"log"`
}

// SamplesConfig holds the demonstration images.
type SamplesConfig struct {
	URLs         []string `mapstructure:"urls"`
	Query        string   `mapstructure:"query"`
	StartupCount int      `mapstructure:"startup_count"`
}

// ValidationConfig holds the image URL predicate.
type ValidationConfig struct {
	Extensions     []string `mapstructure:"extensions"`
	TrustedDomains []string `mapstructure:"trusted_domains"`
}

// NotifyConfig holds toast settings.
type NotifyConfig struct {
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxVisible int           `mapstructure:"max_visible"`
}

// UIConfig holds removal delays.
type UIConfig struct {
	DeleteDelay time.Duration `mapstructure:"delete_delay"`
	ClearDelay  time.Duration `mapstructure:"clear_delay"`
}

// LoaderConfig holds image probe settings.
type LoaderConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	Offline   bool          `mapstructure:"offline"`
	UserAgent string        `mapstructure:"user_agent"`
}

// ControlConfig holds the HTTP control API settings. Empty Addr disables it.
type ControlConfig struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// PreviewConfig holds the terminal preview command. Empty disables preview.
type PreviewConfig struct {
	Command string `mapstructure:"command"`
}

// TraceConfig holds OpenTelemetry export settings.
type TraceConfig struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	ServiceName  string `mapstructure:"service_name"`
}

// LogConfig holds the log destination. Empty File discards logs.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// DefaultPath returns the config file used when none is given:
// $GALLERY_CONFIG, else ~/.config/gallery/config.toml.
func DefaultPath() string {
	if p := os.Getenv("GALLERY_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "gallery", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("samples.urls", gallery.SampleBaseURLs)
	v.SetDefault("samples.query", gallery.SampleQuery)
	v.SetDefault("samples.startup_count", 3)
	v.SetDefault("validation.extensions", gallery.DefaultExtensions)
	v.SetDefault("validation.trusted_domains", gallery.DefaultTrustedDomains)
	v.SetDefault("notify.timeout", 3*time.Second)
	v.SetDefault("notify.max_visible", 3)
	v.SetDefault("ui.delete_delay", 300*time.Millisecond)
	v.SetDefault("ui.clear_delay", 400*time.Millisecond)
	v.SetDefault("loader.timeout", 10*time.Second)
	v.SetDefault("loader.offline", false)
	v.SetDefault("loader.user_agent", "imagegallery/1.0")
	v.SetDefault("control.addr", "")
	v.SetDefault("control.allowed_origins", []string{})
	v.SetDefault("preview.command", "")
	v.SetDefault("trace.otlp_endpoint", "")
	v.SetDefault("trace.service_name", "imagegallery")
	v.SetDefault("log.file", "")
}

// Load reads configuration from file and env. Env var overrides use prefix
// GALLERY_ (GALLERY_CONTROL_ADDR for control.addr). An explicit path must
// exist; without one, a missing default file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	explicit := path != "" || os.Getenv("GALLERY_CONFIG") != ""
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("GALLERY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		if explicit || !missing {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the application cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Samples.StartupCount < 0:
		return fmt.Errorf("samples.startup_count must be >= 0, got %d", c.Samples.StartupCount)
	case c.Notify.Timeout <= 0:
		return fmt.Errorf("notify.timeout must be positive, got %s", c.Notify.Timeout)
	case c.Notify.MaxVisible < 1:
		return fmt.Errorf("notify.max_visible must be >= 1, got %d", c.Notify.MaxVisible)
	case c.UI.DeleteDelay < 0 || c.UI.ClearDelay < 0:
		return errors.New("ui delays must not be negative")
	case c.Loader.Timeout <= 0:
		return fmt.Errorf("loader.timeout must be positive, got %s", c.Loader.Timeout)
	}
	return nil
}

// SampleURLs returns the configured samples with the query applied.
func (c Config) SampleURLs() []string {
	return gallery.WithQuery(c.Samples.URLs, c.Samples.Query)
}

// Validator builds the URL validator from the validation section.
func (c Config) Validator() *gallery.Validator {
	return gallery.NewValidator(c.Validation.Extensions, c.Validation.TrustedDomains)
}
