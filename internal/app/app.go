package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/chainview/internal/chain"
	"github.com/five82/chainview/internal/config"
	"github.com/five82/chainview/internal/diagram"
	"github.com/five82/chainview/internal/logging"
	"github.com/five82/chainview/internal/prefs"
	"github.com/five82/chainview/internal/state"
	"github.com/five82/chainview/internal/ui"
)

// Options configure the chainview application. Set fields override the
// config file.
type Options struct {
	ConfigPath string
	Endpoint   string
	PrefsPath  string        // empty uses ~/.config/chainview/prefs.toml
	PollEvery  time.Duration // zero uses the configured interval
}

// Run boots the chainview TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logs, err := logging.Setup(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logs.Close()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	client, err := chain.NewClient(cfg.Endpoint)
	if err != nil {
		return fmt.Errorf("init chain client: %w", err)
	}

	store := &state.Store{}
	surface := ui.NewSurface()

	ctrl, err := NewController(ControllerOptions{
		Fetcher:  client,
		Surface:  surface,
		Store:    store,
		Endpoint: client.Endpoint(),
		Interval: cfg.PollInterval,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	geometry := diagram.DefaultGeometry()
	geometry.Height = cfg.CanvasHeight

	model := ui.New(ui.Options{
		Context:     ctx,
		Refresher:   ctrl,
		Store:       store,
		Endpoint:    client.Endpoint(),
		Geometry:    geometry,
		PollTick:    ui.DefaultUIInterval,
		PollEvery:   ctrl.Interval(),
		ThemeName:   userPrefs.Theme,
		PrefsPath:   prefsPath,
		LogPath:     cfg.LogFile,
		ShowCadence: userPrefs.ShowCadence,
	})
	program := ui.NewProgram(model, tea.WithContext(ctx))
	surface.Attach(program)

	log.Printf("watching %s every %s", client.Endpoint(), ctrl.Interval())
	ctrl.Start(ctx)

	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// Dump fetches the chain once and writes it to w as indented JSON.
func Dump(ctx context.Context, opts Options, w io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	client, err := chain.NewClient(cfg.Endpoint)
	if err != nil {
		return fmt.Errorf("init chain client: %w", err)
	}

	c, err := client.FetchChain(ctx)
	if err != nil {
		return fmt.Errorf("fetch chain from %s: %w", client.Endpoint(), err)
	}
	if c == nil {
		c = chain.Chain{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(chain.Response{Chain: c})
}

func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if opts.Endpoint != "" {
		cfg.Endpoint = opts.Endpoint
	}
	if opts.PollEvery > 0 {
		cfg.PollInterval = opts.PollEvery
	}
	return cfg, nil
}
