package app

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/five82/skyboard/internal/opensky"
	"github.com/five82/skyboard/internal/state"
)

const defaultPollInterval = 15 * time.Second

// Callbacks receive poller events. OnFetch fires before each fetch begins and
// OnResult exactly once per fetch. Neither may call Handle.Cancel.
type Callbacks struct {
	OnFetch  func()
	OnResult func(state.PollResult)
}

// Poller fetches flight states at a fixed rate.
type Poller struct {
	fetcher  opensky.StatesFetcher
	interval time.Duration
}

// NewPoller builds a Poller. A non-positive interval uses the 15s default.
func NewPoller(fetcher opensky.StatesFetcher, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Poller{fetcher: fetcher, interval: interval}
}

// Handle stops a running poller.
type Handle struct {
	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
	done   bool
	wg     sync.WaitGroup
}

// Cancel stops future fetches and drops the result of any fetch still in
// flight. No callback runs after Cancel returns. It is safe to call more than
// once.
func (h *Handle) Cancel() {
	h.mu.Lock()
	h.done = true
	h.mu.Unlock()
	h.cancel()
}

// Wait blocks until the scheduling loop and every fetch goroutine have exited.
func (h *Handle) Wait() {
	h.wg.Wait()
}

// deliver runs fn unless the handle or its context was cancelled. Cancel
// blocks while fn runs.
func (h *Handle) deliver(fn func()) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.done || h.ctx.Err() != nil {
		return false
	}
	fn()
	return true
}

// Start begins polling: one fetch immediately, then one per interval measured
// from the previous fetch's scheduled start. A slow fetch does not delay the
// next one. It returns immediately.
func (p *Poller) Start(ctx context.Context, cb Callbacks) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{ctx: ctx, cancel: cancel}

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			h.wg.Add(1)
			go func() {
				defer h.wg.Done()
				p.cycle(ctx, h, cb)
			}()
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
	return h
}

func (p *Poller) cycle(ctx context.Context, h *Handle, cb Callbacks) {
	if !h.deliver(func() {
		if cb.OnFetch != nil {
			cb.OnFetch()
		}
	}) {
		return
	}

	snap, err := p.fetcher.FetchStates(ctx)
	if err != nil && ctx.Err() == nil {
		log.Printf("poll failed: %v", err)
	}

	h.deliver(func() {
		if cb.OnResult != nil {
			cb.OnResult(state.PollResult{Snapshot: snap, Err: err})
		}
	})
}
