package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/five82/clockwall/internal/config"
	"github.com/five82/clockwall/internal/observability"
	"github.com/five82/clockwall/internal/prefs"
	"github.com/five82/clockwall/internal/presets"
	"github.com/five82/clockwall/internal/state"
	"github.com/five82/clockwall/internal/ui"
)

const shutdownTimeout = 5 * time.Second

// Options configure the clockwall application.
type Options struct {
	ConfigPath string          // empty uses ~/.config/clockwall/config.toml
	PrefsPath  string          // empty uses ~/.config/clockwall/prefs.toml
	Radius     int             // face radius in rows; zero uses the default
	Clock      clockwork.Clock // nil uses the real clock
}

// Run boots the clockwall TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	logger, logFile, err := observability.NewLogger(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()

	clk := opts.Clock
	if clk == nil {
		clk = clockwork.NewRealClock()
	}

	catalog := cfg.Catalog()
	store := state.New(state.WithLogger(logger))
	if err := seedStore(store, cfg, catalog, clk.Now()); err != nil {
		return err
	}

	metrics := observability.NewMetrics()
	releaseMetrics := metrics.Observe(store)
	defer releaseMetrics()

	if cfg.MetricsAddr != "" {
		srv := observability.NewServer(cfg.MetricsAddr, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("metrics server shutdown", "error", err)
			}
		}()
	}

	model := ui.New(ui.Options{
		Store:      store,
		Catalog:    catalog,
		Clock:      clk,
		Logger:     logger,
		Metrics:    metrics,
		ThemeName:  userPrefs.Theme,
		PresetName: userPrefs.Preset,
		PrefsPath:  opts.PrefsPath,
		LogPath:    cfg.LogPath(),
		Radius:     opts.Radius,
	})
	defer model.Close()

	program := tea.NewProgram(model, tea.WithContext(ctx))

	tickCtx, stopTicker := context.WithCancel(ctx)
	tickerDone := StartTicker(tickCtx, clk, TickInterval, func() {
		program.Send(ui.TickMsg{})
	})
	defer func() {
		stopTicker()
		<-tickerDone
	}()

	logger.Info("clockwall started",
		"clocks", store.Len(),
		"theme", userPrefs.Theme,
		"presets", len(catalog.Names()),
	)

	_, err = program.Run()
	if err != nil && !(errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("clockwall stopped", "clocks", store.Len())
	return nil
}

// seedStore adds the clocks declared in the config file, in order.
func seedStore(store *state.Store, cfg config.Config, catalog *presets.Catalog, now time.Time) error {
	seeds, err := cfg.SeedConfigs(catalog, now)
	if err != nil {
		return fmt.Errorf("seed clocks: %w", err)
	}
	for _, seed := range seeds {
		store.Add(seed)
	}
	return nil
}
