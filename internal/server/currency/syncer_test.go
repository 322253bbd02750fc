package currency

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/vaultsiege/internal/logging"
)

type write struct {
	player  string
	balance int64
}

type fakeWriter struct {
	mu     sync.Mutex
	writes []write
	err    error
}

func (f *fakeWriter) SyncCurrency(_ context.Context, playerID string, balance int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, write{playerID, balance})
	return f.err
}

func (f *fakeWriter) got() []write {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]write(nil), f.writes...)
}

type fakeTimer struct {
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

// manualTimers captures scheduled callbacks so tests decide when they fire.
type manualTimers struct {
	timers []*fakeTimer
	delays []time.Duration
}

func (m *manualTimers) after(d time.Duration, f func()) stopper {
	t := &fakeTimer{f: f}
	m.timers = append(m.timers, t)
	m.delays = append(m.delays, d)
	return t
}

func (m *manualTimers) fireLive() {
	for _, t := range m.timers {
		if !t.stopped {
			t.stopped = true
			t.f()
		}
	}
}

func newTestSyncer(w Writer) (*Syncer, *manualTimers) {
	s := NewSyncer(context.Background(), w, 0, logging.Nop{})
	m := &manualTimers{}
	s.after = m.after
	return s, m
}

func TestObserve_NoDivergenceSkips(t *testing.T) {
	w := &fakeWriter{}
	s, m := newTestSyncer(w)

	scheduled, err := s.Observe("p1", 100, 100)
	require.NoError(t, err)
	assert.False(t, scheduled)
	assert.Empty(t, m.timers)
	assert.Equal(t, 0, s.Pending())
}

func TestObserve_BurstCollapses(t *testing.T) {
	w := &fakeWriter{}
	s, m := newTestSyncer(w)

	for _, bal := range []int64{110, 120, 130} {
		scheduled, err := s.Observe("p1", 100, bal)
		require.NoError(t, err)
		assert.True(t, scheduled)
	}
	assert.Equal(t, 1, s.Pending())
	assert.Equal(t, DefaultDelay, m.delays[0])

	m.fireLive()
	assert.Equal(t, []write{{"p1", 130}}, w.got())
	assert.Equal(t, 0, s.Pending())
}

func TestObserve_ConvergedAfterPendingStillWritesLatest(t *testing.T) {
	w := &fakeWriter{}
	s, m := newTestSyncer(w)

	_, _ = s.Observe("p1", 100, 150)
	scheduled, _ := s.Observe("p1", 100, 100)
	assert.True(t, scheduled)

	m.fireLive()
	assert.Equal(t, []write{{"p1", 100}}, w.got())
}

func TestObserve_PlayersIndependent(t *testing.T) {
	w := &fakeWriter{}
	s, m := newTestSyncer(w)

	_, _ = s.Observe("p1", 0, 10)
	_, _ = s.Observe("p2", 0, 20)
	assert.Equal(t, 2, s.Pending())

	m.fireLive()
	assert.ElementsMatch(t, []write{{"p1", 10}, {"p2", 20}}, w.got())
}

func TestFlush(t *testing.T) {
	w := &fakeWriter{}
	s, m := newTestSyncer(w)

	_, _ = s.Observe("p1", 0, 10)
	s.Flush(context.Background())
	assert.Equal(t, []write{{"p1", 10}}, w.got())

	// the stopped timer firing late must not write twice
	m.timers[0].f()
	assert.Len(t, w.got(), 1)
}

func TestWriteErrorIsSwallowed(t *testing.T) {
	w := &fakeWriter{err: errors.New("db down")}
	s, m := newTestSyncer(w)

	_, _ = s.Observe("p1", 0, 10)
	assert.NotPanics(t, m.fireLive)
	assert.Len(t, w.got(), 1)
}

func TestClose(t *testing.T) {
	w := &fakeWriter{}
	s, _ := newTestSyncer(w)

	_, _ = s.Observe("p1", 0, 10)
	s.Close(context.Background())
	assert.Equal(t, []write{{"p1", 10}}, w.got())

	_, err := s.Observe("p1", 0, 20)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestRealTimerDebounce(t *testing.T) {
	w := &fakeWriter{}
	s := NewSyncer(context.Background(), w, 20*time.Millisecond, nil)

	_, _ = s.Observe("p1", 0, 5)
	_, _ = s.Observe("p1", 0, 7)

	assert.Eventually(t, func() bool { return len(w.got()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []write{{"p1", 7}}, w.got())
}
