package app

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/five82/chainview/internal/chain"
	"github.com/five82/chainview/internal/state"
)

const defaultPollInterval = 3 * time.Second

// Surface is where the controller sends its display decisions.
type Surface interface {
	// Render draws chain in place of whatever is currently shown.
	Render(c chain.Chain)
	// ShowError replaces the diagram with the connection error panel.
	ShowError(endpoint string, err error)
}

// ControllerOptions configure a Controller.
type ControllerOptions struct {
	Fetcher  chain.Fetcher
	Surface  Surface
	Store    *state.Store  // nil allocates a private store
	Clock    clock.Clock   // nil uses the wall clock
	Endpoint string        // shown on the error panel
	Interval time.Duration // zero uses 3s
}

// Controller owns the held chain and keeps the surface in sync with the node.
type Controller struct {
	fetcher  chain.Fetcher
	surface  Surface
	store    *state.Store
	clock    clock.Clock
	endpoint string
	interval time.Duration

	issued atomic.Uint64
	// mu serializes apply+draw so surfaces see decisions in apply order.
	mu sync.Mutex
}

// NewController validates opts and fills in defaults.
func NewController(opts ControllerOptions) (*Controller, error) {
	if opts.Fetcher == nil {
		return nil, errors.New("controller requires a fetcher")
	}
	if opts.Surface == nil {
		return nil, errors.New("controller requires a surface")
	}
	c := &Controller{
		fetcher:  opts.Fetcher,
		surface:  opts.Surface,
		store:    opts.Store,
		clock:    opts.Clock,
		endpoint: opts.Endpoint,
		interval: opts.Interval,
	}
	if c.store == nil {
		c.store = &state.Store{}
	}
	if c.clock == nil {
		c.clock = clock.New()
	}
	if c.interval <= 0 {
		c.interval = defaultPollInterval
	}
	return c, nil
}

// Interval returns the poll period.
func (c *Controller) Interval() time.Duration {
	return c.interval
}

// Refresh performs one fetch cycle. It never fails: every error ends up on
// the surface's error panel and the next cycle starts from a clean slate.
func (c *Controller) Refresh(ctx context.Context) {
	seq := c.issued.Add(1)
	fetched, err := c.fetcher.FetchChain(ctx)
	if err != nil && ctx.Err() != nil {
		// Shutting down; the program is going away.
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.store.Apply(seq, fetched, err) {
	case state.Rerender:
		held := c.store.Chain()
		log.Printf("chain changed: rendering %d blocks", len(held))
		c.surface.Render(held)
	case state.ShowError:
		log.Printf("chain poll failed: %v", err)
		c.surface.ShowError(c.endpoint, err)
	case state.Stale:
		log.Printf("dropping stale response for request %d", seq)
	}
}

// ManualRefresh is a user-triggered Refresh. It may overlap with ticks.
func (c *Controller) ManualRefresh(ctx context.Context) {
	log.Printf("manual refresh triggered")
	c.Refresh(ctx)
}

// Start refreshes once immediately and then at a fixed cadence until ctx is
// cancelled. It returns immediately.
func (c *Controller) Start(ctx context.Context) {
	go func() {
		ticker := c.clock.Ticker(c.interval)
		defer ticker.Stop()

		for {
			c.Refresh(ctx)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}
