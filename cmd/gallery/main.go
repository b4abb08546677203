package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"imagegallery/internal/config"
	"imagegallery/internal/control"
	"imagegallery/internal/loader"
	"imagegallery/internal/preview"
	"imagegallery/internal/telemetry"
	"imagegallery/internal/ui"
)

// flags holds the command line overrides applied on top of the config file.
type flags struct {
	configPath string
	addr       string
	logFile    string
	offline    bool
	noSamples  bool
}

func parseFlags() flags {
	var f flags

	flag.StringVar(&f.configPath, "config", "", "config file (default $GALLERY_CONFIG or ~/.config/gallery/config.toml)")
	flag.StringVar(&f.addr, "addr", "", "serve the control API on this address, e.g. 127.0.0.1:7878")
	flag.StringVar(&f.logFile, "log", "", "append logs to this file")
	flag.BoolVar(&f.offline, "offline", false, "accept every image without probing it")
	flag.BoolVar(&f.noSamples, "no-samples", false, "start with an empty gallery")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gallery [flags]\n\n")
		fmt.Fprintf(os.Stderr, "A terminal image gallery: add image URLs, select, delete and clear them.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return f
}

func main() {
	f := parseFlags()
	if err := run(f); err != nil {
		fmt.Fprintf(os.Stderr, "gallery: %v\n", err)
		os.Exit(1)
	}
}

func run(f flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if f.addr != "" {
		cfg.Control.Addr = f.addr
	}
	if f.logFile != "" {
		cfg.Log.File = f.logFile
	}
	if f.offline {
		cfg.Loader.Offline = true
	}
	if f.noSamples {
		cfg.Samples.StartupCount = 0
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	if cfg.Log.File != "" {
		lf, err := tea.LogToFile(cfg.Log.File, "gallery")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer lf.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec, err := telemetry.New(ctx, cfg.Trace.OTLPEndpoint, cfg.Trace.ServiceName)
	if err != nil {
		return err
	}
	defer func() {
		sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer scancel()
		if err := rec.Shutdown(sctx); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	var l loader.Loader = loader.NewHTTPLoader(cfg.Loader.Timeout, cfg.Loader.UserAgent)
	if cfg.Loader.Offline {
		l = loader.StaticLoader{}
	}

	validator := cfg.Validator()
	store := control.NewSnapshotStore()
	model := ui.NewAppModel(ui.Options{
		Context:        ctx,
		Validator:      validator,
		Loader:         l,
		Samples:        cfg.SampleURLs(),
		StartupSamples: cfg.Samples.StartupCount,
		NoticeTimeout:  cfg.Notify.Timeout,
		MaxNotices:     cfg.Notify.MaxVisible,
		DeleteDelay:    cfg.UI.DeleteDelay,
		ClearDelay:     cfg.UI.ClearDelay,
		Snapshots:      store,
		Telemetry:      rec,
		Preview:        preview.New(cfg.Preview.Command, nil),
	})
	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))

	if cfg.Control.Addr != "" {
		srv := control.NewServer(cfg.Control.Addr, store, p, validator, cfg.Control.AllowedOrigins)
		if err := srv.Start(); err != nil {
			return err
		}
		log.Printf("control API on %s", srv.Addr())
		defer func() {
			sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer scancel()
			if err := srv.Stop(sctx); err != nil {
				log.Printf("control API shutdown: %v", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
