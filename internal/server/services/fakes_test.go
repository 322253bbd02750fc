package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dmitrijs2005/vaultsiege/internal/clock"
	"github.com/dmitrijs2005/vaultsiege/internal/common"
	"github.com/dmitrijs2005/vaultsiege/internal/dbx"
	"github.com/dmitrijs2005/vaultsiege/internal/logging"
	"github.com/dmitrijs2005/vaultsiege/internal/random"
	"github.com/dmitrijs2005/vaultsiege/internal/server/catalog"
	"github.com/dmitrijs2005/vaultsiege/internal/server/models"
	"github.com/dmitrijs2005/vaultsiege/internal/server/notify"
	"github.com/dmitrijs2005/vaultsiege/internal/server/repositories/artifacts"
	"github.com/dmitrijs2005/vaultsiege/internal/server/repositories/cards"
	"github.com/dmitrijs2005/vaultsiege/internal/server/repositories/challenges"
	"github.com/dmitrijs2005/vaultsiege/internal/server/repositories/events"
	"github.com/dmitrijs2005/vaultsiege/internal/server/repositories/moves"
	"github.com/dmitrijs2005/vaultsiege/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/vaultsiege/internal/server/repositories/vaults"
	"github.com/dmitrijs2005/vaultsiege/internal/server/vault"
)

// --- helpers ---

// now is 11:00 in New York, three hours into the game day.
var (
	now = time.Date(2024, 6, 3, 15, 0, 0, 0, time.UTC)
	day = clock.MustDayClock(clock.DefaultTimezone, clock.DefaultHour)
)

// side effects run inline so tests can assert on them right after a call
func init() {
	dispatch = func(f func()) { f() }
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type recordingSink struct {
	mu  sync.Mutex
	got []notify.Notification
	err error
}

func (s *recordingSink) Notify(_ context.Context, n notify.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, n)
	return s.err
}

func (s *recordingSink) types() []notify.Type {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]notify.Type, 0, len(s.got))
	for _, n := range s.got {
		out = append(out, n.Type)
	}
	return out
}

func newTestEnv(rng random.Source) (*Env, *recordingSink) {
	if rng == nil {
		rng = &random.Fixed{}
	}
	sink := &recordingSink{}
	return &Env{
		Clock:           fixedClock{t: now},
		Day:             day,
		Params:          vault.DefaultParams(),
		Catalog:         catalog.Default(),
		Rng:             rng,
		MasteryBaseCost: 100,
		Notifier:        sink,
		Logger:          logging.Nop{},
	}, sink
}

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

// --- in-memory store shared by all fake repositories ---

type memStore struct {
	mu sync.Mutex

	vaults    map[string]*models.Vault
	profiles  map[string]*models.Profile
	events    []models.AttackEvent
	moves     map[string]models.PlayerMove
	cards     map[string]models.PlayerCard
	artifacts map[string][]string
	progress  map[string]int64

	// conflicts makes the next n vault updates lose a version race;
	// moveConflicts does the same for mastery level writes.
	conflicts     int
	moveConflicts int
	updates       int
	syncs         []int64
	progressErr   error
}

func newMemStore() *memStore {
	return &memStore{
		vaults:    map[string]*models.Vault{},
		profiles:  map[string]*models.Profile{},
		moves:     map[string]models.PlayerMove{},
		cards:     map[string]models.PlayerCard{},
		artifacts: map[string][]string{},
		progress:  map[string]int64{},
	}
}

func (s *memStore) seedVault(v *models.Vault) {
	c := v.Clone()
	if c.Version == 0 {
		c.Version = 1
	}
	s.vaults[v.PlayerID] = c
}

func (s *memStore) seedProfile(id string, balance int64) {
	s.profiles[id] = &models.Profile{PlayerID: id, Balance: balance}
}

func (s *memStore) vault(id string) *models.Vault {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vaults[id].Clone()
}

func (s *memStore) profile(id string) models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.profiles[id]
}

func (s *memStore) syncCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.syncs)
}

type fakeRepoManager struct{ s *memStore }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Vaults(dbx.DBTX) vaults.Repository            { return fakeVaults{m.s} }
func (m *fakeRepoManager) Events(dbx.DBTX) events.Repository            { return fakeEvents{m.s} }
func (m *fakeRepoManager) Profiles(dbx.DBTX) profiles.Repository        { return fakeProfiles{m.s} }
func (m *fakeRepoManager) Moves(dbx.DBTX) moves.Repository              { return fakeMoves{m.s} }
func (m *fakeRepoManager) Cards(dbx.DBTX) cards.Repository              { return fakeCards{m.s} }
func (m *fakeRepoManager) Artifacts(dbx.DBTX) artifacts.Repository      { return fakeArtifacts{m.s} }
func (m *fakeRepoManager) Challenges(dbx.DBTX) challenges.Repository    { return fakeChallenges{m.s} }

type fakeVaults struct{ s *memStore }

func (f fakeVaults) Get(_ context.Context, id string) (*models.Vault, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	v, ok := f.s.vaults[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return v.Clone(), nil
}

func (f fakeVaults) Create(_ context.Context, v *models.Vault) (bool, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.vaults[v.PlayerID]; ok {
		return false, nil
	}
	v.Version = 1
	f.s.vaults[v.PlayerID] = v.Clone()
	return true, nil
}

func (f fakeVaults) Update(_ context.Context, v *models.Vault) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.conflicts > 0 {
		f.s.conflicts--
		return common.ErrVersionConflict
	}
	cur, ok := f.s.vaults[v.PlayerID]
	if !ok || cur.Version != v.Version {
		return common.ErrVersionConflict
	}
	v.Version++
	f.s.vaults[v.PlayerID] = v.Clone()
	f.s.updates++
	return nil
}

func (f fakeVaults) SyncCurrency(_ context.Context, id string, balance int64) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.syncs = append(f.s.syncs, balance)
	if v, ok := f.s.vaults[id]; ok && v.CurrentPP != balance {
		v.CurrentPP = balance
		v.VaultHealth = min(v.VaultHealth, balance, v.MaxVaultHealth)
		v.Version++
	}
	return nil
}

type fakeEvents struct{ s *memStore }

func (f fakeEvents) Append(_ context.Context, ev *models.AttackEvent) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if ev.ID == "" {
		ev.ID = fmt.Sprintf("ev-%d", len(f.s.events)+1)
	}
	f.s.events = append(f.s.events, *ev)
	return nil
}

func (f fakeEvents) ListByAttackerSince(_ context.Context, id string, since time.Time) ([]models.AttackEvent, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []models.AttackEvent
	for _, ev := range f.s.events {
		if ev.AttackerID == id && !ev.At.Before(since) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f fakeEvents) ListBetween(_ context.Context, from, to time.Time) ([]models.AttackEvent, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []models.AttackEvent
	for _, ev := range f.s.events {
		if !ev.At.Before(from) && ev.At.Before(to) {
			out = append(out, ev)
		}
	}
	return out, nil
}

type fakeProfiles struct{ s *memStore }

func (f fakeProfiles) Get(_ context.Context, id string) (*models.Profile, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	p, ok := f.s.profiles[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *p
	return &c, nil
}

func (f fakeProfiles) Ensure(_ context.Context, id string) (*models.Profile, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	p, ok := f.s.profiles[id]
	if !ok {
		p = &models.Profile{PlayerID: id}
		f.s.profiles[id] = p
	}
	c := *p
	return &c, nil
}

func (f fakeProfiles) Credit(_ context.Context, id string, amount, xp int64) (*models.Profile, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	p, ok := f.s.profiles[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	p.Balance += amount
	p.XP += xp
	c := *p
	return &c, nil
}

func (f fakeProfiles) Debit(_ context.Context, id string, amount int64) (*models.Profile, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	p, ok := f.s.profiles[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if p.Balance < amount {
		return nil, common.ErrInsufficientFunds
	}
	p.Balance -= amount
	c := *p
	return &c, nil
}

type fakeMoves struct{ s *memStore }

func moveKey(player, move string) string { return player + "/" + move }

func (f fakeMoves) List(_ context.Context, id string) ([]models.PlayerMove, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []models.PlayerMove
	for _, m := range f.s.moves {
		if m.PlayerID == id {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MoveID < out[j].MoveID })
	return out, nil
}

func (f fakeMoves) Get(_ context.Context, player, move string) (*models.PlayerMove, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	m, ok := f.s.moves[moveKey(player, move)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &m, nil
}

func (f fakeMoves) Save(_ context.Context, m *models.PlayerMove) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	k := moveKey(m.PlayerID, m.MoveID)
	c := *m
	if prev, ok := f.s.moves[k]; ok && prev.Unlocked {
		c.Unlocked = true
	}
	f.s.moves[k] = c
	return nil
}

func (f fakeMoves) UpdateLevel(_ context.Context, m *models.PlayerMove, fromLevel int) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.moveConflicts > 0 {
		f.s.moveConflicts--
		return common.ErrVersionConflict
	}
	k := moveKey(m.PlayerID, m.MoveID)
	c := *m
	if prev, ok := f.s.moves[k]; ok {
		if prev.MasteryLevel != fromLevel {
			return common.ErrVersionConflict
		}
		c.Unlocked = c.Unlocked || prev.Unlocked
	}
	f.s.moves[k] = c
	return nil
}

func (f fakeMoves) Unlock(_ context.Context, player, move string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	k := moveKey(player, move)
	m, ok := f.s.moves[k]
	if !ok {
		return common.ErrorNotFound
	}
	m.Unlocked = true
	f.s.moves[k] = m
	return nil
}

type fakeCards struct{ s *memStore }

func (f fakeCards) Get(_ context.Context, player, card string) (*models.PlayerCard, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	c, ok := f.s.cards[moveKey(player, card)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &c, nil
}

func (f fakeCards) Grant(_ context.Context, player, card string, uses int64) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	k := moveKey(player, card)
	c := f.s.cards[k]
	c.PlayerID, c.CardID, c.Unlocked = player, card, true
	c.UsesRemaining += uses
	f.s.cards[k] = c
	return nil
}

func (f fakeCards) ConsumeUse(_ context.Context, player, card string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	k := moveKey(player, card)
	c, ok := f.s.cards[k]
	if !ok || !c.Unlocked || c.UsesRemaining <= 0 {
		return common.ErrCardUnavailable
	}
	c.UsesRemaining--
	f.s.cards[k] = c
	return nil
}

type fakeArtifacts struct{ s *memStore }

func (f fakeArtifacts) Equipped(_ context.Context, id string) ([]string, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return append([]string(nil), f.s.artifacts[id]...), nil
}

func (f fakeArtifacts) Equip(_ context.Context, id, artifact string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, a := range f.s.artifacts[id] {
		if a == artifact {
			return nil
		}
	}
	f.s.artifacts[id] = append(f.s.artifacts[id], artifact)
	return nil
}

func (f fakeArtifacts) Unequip(_ context.Context, id, artifact string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	kept := f.s.artifacts[id][:0]
	for _, a := range f.s.artifacts[id] {
		if a != artifact {
			kept = append(kept, a)
		}
	}
	f.s.artifacts[id] = kept
	return nil
}

type fakeChallenges struct{ s *memStore }

func (f fakeChallenges) Increment(_ context.Context, id string, _ time.Time, eventType string, amount int64) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.progressErr != nil {
		return f.s.progressErr
	}
	f.s.progress[moveKey(id, eventType)] += amount
	return nil
}

func (f fakeChallenges) Progress(_ context.Context, id string, _ time.Time) (map[string]int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := map[string]int64{}
	prefix := id + "/"
	for k, v := range f.s.progress {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			out[k[len(prefix):]] = v
		}
	}
	return out, nil
}
