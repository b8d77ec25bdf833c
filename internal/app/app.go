package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/five82/composer/internal/catalog"
	"github.com/five82/composer/internal/config"
	"github.com/five82/composer/internal/persist"
	"github.com/five82/composer/internal/prefs"
	"github.com/five82/composer/internal/site"
	"github.com/five82/composer/internal/state"
	"github.com/five82/composer/internal/theme"
	"github.com/five82/composer/internal/ui"
)

// Options configure the composer application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/composer/prefs.toml
	Fresh      bool   // start from the default document
	Live       bool   // open the live copy read-only
}

// Run boots the composer TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	backend, err := persist.ParseBackend(cfg.Storage)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	logFile, err := os.OpenFile(cfg.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()
	log.SetOutput(logFile)

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		log.Printf("load prefs, using defaults: %v", err)
	}

	docs, err := persist.Open(backend, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", backend, err)
	}
	defer func() { _ = docs.Close() }()

	initial, err := loadInitial(ctx, docs, cfg, opts)
	if err != nil {
		return err
	}

	store := state.New(state.Options{
		Initial:  &initial,
		Presets:  theme.Presets{},
		ReadOnly: opts.Live,
	})

	uiOpts := ui.Options{
		Context:     ctx,
		Store:       store,
		Catalog:     catalog.Default(),
		PaletteName: userPrefs.Palette,
		Preview:     userPrefs.Preview,
		PrefsPath:   opts.PrefsPath,
		LogPath:     cfg.LogPath(),
	}
	if !opts.Live {
		syncer := StartSyncer(ctx, store, docs)
		defer syncer.Stop()
		uiOpts.SyncErr = syncer.LastError
	}

	log.Printf("session started: storage=%s live=%v", backend, opts.Live)
	return ui.Run(uiOpts)
}

// loadInitial picks the document the session starts from.
func loadInitial(ctx context.Context, docs persist.Store, cfg config.Config, opts Options) (site.Document, error) {
	if opts.Live {
		doc, err := docs.Read(ctx, persist.LiveCopy)
		if errors.Is(err, persist.ErrNotFound) {
			return site.Document{}, fmt.Errorf("nothing has been published yet")
		}
		if err != nil {
			return site.Document{}, fmt.Errorf("load live copy: %w", err)
		}
		return doc, nil
	}

	if opts.Fresh || !cfg.Resume {
		return site.DefaultDocument(), nil
	}
	doc, err := docs.Read(ctx, persist.WorkingCopy)
	if errors.Is(err, persist.ErrNotFound) {
		return site.DefaultDocument(), nil
	}
	if err != nil {
		return site.Document{}, fmt.Errorf("load working copy: %w", err)
	}
	return doc, nil
}
