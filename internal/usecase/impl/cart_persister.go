package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/domain/cart/snapshot"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
)

// cartPersister writes cart snapshots behind the caller's back. Only the newest unwritten
// state is kept, so a burst of mutations costs at most one write in flight plus one queued.
type cartPersister struct {
	repo         repository.CartSnapshotRepository
	key          string
	writeTimeout time.Duration
	logger       *slog.Logger

	mu        sync.Mutex
	pending   *entity.CartState
	seq       uint64 // states accepted
	attempted uint64 // states written or given up on
	progress  chan struct{}
	stopped   bool

	wake chan struct{}
	done chan struct{}
}

func newCartPersister(repo repository.CartSnapshotRepository, key string, writeTimeout time.Duration, logger *slog.Logger) *cartPersister {
	p := &cartPersister{
		repo:         repo,
		key:          key,
		writeTimeout: writeTimeout,
		logger:       logger.With(slog.String("cart_key", key)),
		progress:     make(chan struct{}),
		wake:         make(chan struct{}, 1),
		done:         make(chan struct{}),
	}
	go p.run()

	return p
}

// Load reads the slot. Absent or unreadable data yields an empty cart.
func (p *cartPersister) Load(ctx context.Context) entity.CartState {
	data, err := p.repo.LoadSnapshot(ctx, p.key)
	if err != nil {
		if errors.Is(err, repository.ErrSnapshotNotFound) {
			p.logger.Debug("No persisted cart, starting empty")
		} else {
			p.logger.Warn("Failed to read persisted cart, starting empty", slog.Any("error", err))
		}

		return entity.EmptyCart()
	}

	state, err := snapshot.Decode(data)
	if err != nil {
		p.logger.Warn("Discarding malformed persisted cart", slog.Any("error", err), slog.Int("bytes", len(data)))

		return entity.EmptyCart()
	}

	p.logger.Info("Restored persisted cart", slog.Int("line_count", len(state.Lines)))

	return state
}

// Schedule queues state for writing, replacing any state not yet picked up.
func (p *cartPersister) Schedule(state entity.CartState) {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		p.logger.Warn("Cart persister stopped, dropping write")

		return
	}
	p.seq++
	if p.pending != nil {
		// The superseded state is never written.
		p.attempted++
	}
	p.pending = &state
	p.mu.Unlock()

	p.signal()
}

// Flush blocks until every scheduled state has been attempted.
func (p *cartPersister) Flush(ctx context.Context) error {
	for {
		p.mu.Lock()
		if p.attempted >= p.seq {
			p.mu.Unlock()

			return nil
		}
		progress := p.progress
		p.mu.Unlock()

		select {
		case <-progress:
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "flush cart snapshot")
		}
	}
}

// Stop writes whatever is pending and ends the worker. Later schedules are dropped.
func (p *cartPersister) Stop(ctx context.Context) error {
	p.mu.Lock()
	p.stopped = true
	p.mu.Unlock()
	p.signal()

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "stop cart persister")
	}
}

func (p *cartPersister) signal() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *cartPersister) run() {
	defer close(p.done)

	for range p.wake {
		for {
			p.mu.Lock()
			state := p.pending
			p.pending = nil
			stopped := p.stopped
			p.mu.Unlock()

			if state == nil {
				if stopped {
					return
				}

				break
			}

			p.write(*state)

			p.mu.Lock()
			p.attempted++
			close(p.progress)
			p.progress = make(chan struct{})
			p.mu.Unlock()
		}
	}
}

func (p *cartPersister) write(state entity.CartState) {
	data, err := snapshot.Encode(state)
	if err != nil {
		p.logger.Error("Failed to encode cart snapshot", slog.Any("error", err))

		return
	}

	ctx := context.Background()
	if p.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.writeTimeout)
		defer cancel()
	}

	start := time.Now()
	if err := p.repo.SaveSnapshot(ctx, p.key, data); err != nil {
		p.logger.Error("Failed to persist cart snapshot", slog.Any("error", err))

		return
	}

	p.logger.Debug("Persisted cart snapshot",
		slog.Int("line_count", len(state.Lines)),
		slog.Int("bytes", len(data)),
		slog.Duration("elapsed", time.Since(start)),
	)
}
