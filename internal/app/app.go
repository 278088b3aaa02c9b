package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/five82/skyboard/internal/config"
	"github.com/five82/skyboard/internal/diag"
	"github.com/five82/skyboard/internal/opensky"
	"github.com/five82/skyboard/internal/prefs"
	"github.com/five82/skyboard/internal/state"
	"github.com/five82/skyboard/internal/ui"
)

// Options configure the skyboard application.
type Options struct {
	ConfigPath string // empty uses ~/.config/skyboard/config.toml
	PrefsPath  string // empty uses ~/.config/skyboard/prefs.toml
	PollEvery  int    // seconds; zero uses the configured interval
}

// Run boots the skyboard TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.PollEvery > 0 {
		cfg.PollInterval = time.Duration(opts.PollEvery) * time.Second
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	// A log that cannot be opened is discarded; the dashboard still runs.
	logFile, _ := diag.Setup(cfg.LogPath())
	defer logFile.Close()
	log.Printf("starting: endpoint=%s poll=%s max_flights=%d", client.Endpoint(), cfg.PollInterval, cfg.MaxFlights)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath, cfg.Theme)

	model := ui.New(ui.Options{
		ThemeName: userPrefs.Theme,
		LogPath:   cfg.LogPath(),
		PrefsPath: prefsPath,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	g, gctx := errgroup.WithContext(ctx)
	handle := NewPoller(client, cfg.PollInterval).Start(gctx, Callbacks{
		OnFetch:  func() { program.Send(ui.FetchStartedMsg{}) },
		OnResult: func(r state.PollResult) { program.Send(ui.PollResultMsg(r)) },
	})

	g.Go(func() error {
		defer handle.Cancel()
		if _, err := program.Run(); err != nil {
			if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("run ui: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		handle.Wait()
		return nil
	})

	err = g.Wait()
	log.Printf("stopped")
	return err
}

func newClient(cfg config.Config) (*opensky.Client, error) {
	client, err := opensky.NewClient(cfg.Endpoint,
		opensky.WithMaxFlights(cfg.MaxFlights),
		opensky.WithTimeout(cfg.RequestTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("init opensky client: %w", err)
	}
	return client, nil
}
