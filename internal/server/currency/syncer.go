// Package currency keeps the vault's copy of a player's balance converging
// on the authoritative profile balance.
package currency

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/vaultsiege/internal/logging"
)

// DefaultDelay collapses correction bursts.
const DefaultDelay = 500 * time.Millisecond

// ErrClosed is returned by Observe after Close.
var ErrClosed = errors.New("currency syncer closed")

// Writer persists a corrected vault balance.
type Writer interface {
	SyncCurrency(ctx context.Context, playerID string, balance int64) error
}

type stopper interface {
	Stop() bool
}

type afterFunc func(d time.Duration, f func()) stopper

func realAfter(d time.Duration, f func()) stopper {
	return time.AfterFunc(d, f)
}

type pending struct {
	balance int64
	timer   stopper
}

// Syncer debounces vault balance corrections per player. Only the latest
// observed profile balance is written once a player has been quiet for the
// configured delay.
type Syncer struct {
	w     Writer
	log   logging.Logger
	delay time.Duration
	after afterFunc

	// ctx bounds the background writes.
	ctx context.Context

	mu      sync.Mutex
	pending map[string]*pending
	closed  bool
	wg      sync.WaitGroup
}

func NewSyncer(ctx context.Context, w Writer, delay time.Duration, log logging.Logger) *Syncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if log == nil {
		log = logging.Nop{}
	}
	return &Syncer{
		w:       w,
		log:     log.With("module", "currency"),
		delay:   delay,
		after:   realAfter,
		ctx:     ctx,
		pending: make(map[string]*pending),
	}
}

// Observe compares the vault copy against the profile balance and schedules
// a correction on divergence. It reports whether a write was scheduled.
func (s *Syncer) Observe(playerID string, vaultPP, profileBalance int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false, ErrClosed
	}

	p, ok := s.pending[playerID]
	if vaultPP == profileBalance && !ok {
		return false, nil
	}
	if ok {
		p.timer.Stop()
	} else {
		p = &pending{}
		s.pending[playerID] = p
	}
	p.balance = profileBalance
	p.timer = s.after(s.delay, func() { s.fire(playerID) })
	return true, nil
}

// Pending reports the number of players awaiting a write.
func (s *Syncer) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *Syncer) fire(playerID string) {
	s.mu.Lock()
	p, ok := s.pending[playerID]
	if !ok {
		s.mu.Unlock()
		return
	}
	delete(s.pending, playerID)
	s.wg.Add(1)
	s.mu.Unlock()

	defer s.wg.Done()
	s.write(s.ctx, playerID, p.balance)
}

func (s *Syncer) write(ctx context.Context, playerID string, balance int64) {
	if err := s.w.SyncCurrency(ctx, playerID, balance); err != nil {
		s.log.Warn(ctx, "currency sync failed", "player", playerID, "balance", balance, "error", err)
		return
	}
	s.log.Debug(ctx, "currency synced", "player", playerID, "balance", balance)
}

// Flush writes every pending correction immediately.
func (s *Syncer) Flush(ctx context.Context) {
	s.mu.Lock()
	batch := s.pending
	s.pending = make(map[string]*pending)
	for _, p := range batch {
		p.timer.Stop()
	}
	s.mu.Unlock()

	for id, p := range batch {
		s.write(ctx, id, p.balance)
	}
}

// Close flushes outstanding corrections and waits for in-flight writes.
// Later Observe calls fail with ErrClosed.
func (s *Syncer) Close(ctx context.Context) {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.Flush(ctx)
	s.wg.Wait()
}
