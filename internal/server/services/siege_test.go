package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/vaultsiege/internal/common"
	"github.com/dmitrijs2005/vaultsiege/internal/random"
	"github.com/dmitrijs2005/vaultsiege/internal/server/catalog"
	"github.com/dmitrijs2005/vaultsiege/internal/server/mastery"
	"github.com/dmitrijs2005/vaultsiege/internal/server/models"
	"github.com/dmitrijs2005/vaultsiege/internal/server/notify"
	"github.com/dmitrijs2005/vaultsiege/internal/server/vault"
)

type siegeFixture struct {
	s     *SiegeService
	store *memStore
	sink  *recordingSink
	env   *Env
	mock  sqlmock.Sqlmock
}

// newSiegeFixture seeds attacker "a" with 100 PP and target "t" with 500 PP.
// Both vaults have capacity 1000, so vault health starts at 100.
func newSiegeFixture(t *testing.T, rng random.Source) *siegeFixture {
	t.Helper()
	db, mock := newSQLMockDB(t)
	store := newMemStore()
	env, sink := newTestEnv(rng)

	store.seedProfile("a", 100)
	store.seedVault(vault.New("a", 100, now, env.Day, env.Params))
	store.seedProfile("t", 500)
	store.seedVault(vault.New("t", 500, now, env.Day, env.Params))

	return &siegeFixture{
		s:     NewSiegeService(db, &fakeRepoManager{s: store}, env),
		store: store,
		sink:  sink,
		env:   env,
		mock:  mock,
	}
}

func (f *siegeFixture) expectTx(commit bool) {
	f.mock.ExpectBegin()
	if commit {
		f.mock.ExpectCommit()
	} else {
		f.mock.ExpectRollback()
	}
}

func (f *siegeFixture) editVault(id string, fn func(v *models.Vault)) {
	v := f.store.vaults[id]
	fn(v)
}

func (f *siegeFixture) seedEvents(kind models.EventKind, n int, at time.Time) {
	for i := 0; i < n; i++ {
		f.store.events = append(f.store.events, models.AttackEvent{Kind: kind, AttackerID: "a", At: at})
	}
}

func TestAttack_StrikeStealsVaultHealth(t *testing.T) {
	f := newSiegeFixture(t, nil)
	f.expectTx(true)

	res, err := f.s.Attack(context.Background(), AttackRequest{AttackerID: "a", TargetID: "t", MoveID: "strike"})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, models.EventAttack, res.Kind)
	assert.Equal(t, int64(10), res.TotalDamage)
	assert.Zero(t, res.ShieldDamage)
	assert.Equal(t, int64(10), res.PPStolen)
	assert.Equal(t, int64(2), res.XPGained)
	assert.Equal(t, int64(3), res.MovesRemaining)
	assert.Equal(t, "stole 10 PP", res.Message)

	assert.Equal(t, models.Profile{PlayerID: "a", Balance: 110, XP: 2}, f.store.profile("a"))
	assert.Equal(t, int64(500), f.store.profile("t").Balance, "target balance is never reduced")

	attacker := f.store.vault("a")
	assert.Equal(t, int64(110), attacker.CurrentPP)
	assert.Equal(t, int64(3), attacker.MovesRemaining)
	assert.Equal(t, int64(90), f.store.vault("t").VaultHealth)

	require.Len(t, f.store.events, 1)
	ev := f.store.events[0]
	assert.Equal(t, "t", ev.TargetID)
	assert.Equal(t, "strike", ev.MoveID)
	assert.Equal(t, now, ev.At)
	assert.Equal(t, &models.Defenses{VaultHealth: 100}, ev.TargetBefore)
	assert.Equal(t, &models.Defenses{VaultHealth: 90}, ev.TargetAfter)

	assert.Equal(t, int64(1), f.store.progress["a/"+ChallengeSiegeAttack])
	assert.Equal(t, int64(10), f.store.progress["a/"+ChallengePPStolen])
	assert.Equal(t, []notify.Type{notify.TypeCurrency, notify.TypeAttacked}, f.sink.types())
	expectationsMet(t, f.mock)
}

func TestAttack_DepletionStartsCooldown(t *testing.T) {
	// overload rolls in [52, 65] at tier 4; the scripted draw lands on 60
	f := newSiegeFixture(t, &random.Fixed{Ints: []int{8}})
	f.expectTx(true)

	def, _ := catalog.Default().Move("overload")
	pm := mastery.Reset("a", def, true)
	f.store.moves[moveKey("a", "overload")] = pm

	f.store.profiles["t"].Balance = 40
	f.editVault("t", func(v *models.Vault) {
		v.CurrentPP = 40
		v.VaultHealth = 40
	})

	res, err := f.s.Attack(context.Background(), AttackRequest{AttackerID: "a", TargetID: "t", MoveID: "overload"})
	require.NoError(t, err)
	assert.Equal(t, int64(60), res.TotalDamage)
	assert.Zero(t, res.ShieldDamage)
	assert.Equal(t, int64(40), res.PPStolen)
	assert.False(t, res.OvershieldAbsorbed)
	assert.Equal(t, int64(3), res.XPGained)

	assert.Equal(t, int64(140), f.store.profile("a").Balance)
	target := f.store.vault("t")
	assert.Zero(t, target.VaultHealth)
	require.NotNil(t, target.VaultHealthCooldown)
	assert.Equal(t, now, *target.VaultHealthCooldown)
	assert.Contains(t, f.sink.types(), notify.TypeCooldown)
	expectationsMet(t, f.mock)
}

func TestAttack_TargetOnCooldown(t *testing.T) {
	f := newSiegeFixture(t, nil)
	f.expectTx(false)

	started := now.Add(-time.Hour)
	f.editVault("t", func(v *models.Vault) {
		v.VaultHealth = 0
		v.VaultHealthCooldown = &started
	})

	_, err := f.s.Attack(context.Background(), AttackRequest{AttackerID: "a", TargetID: "t", MoveID: "strike"})
	require.ErrorIs(t, err, common.ErrVaultOnCooldown)

	var cd *common.CooldownError
	require.True(t, errors.As(err, &cd))
	assert.Equal(t, 3*time.Hour, cd.Remaining)

	assert.Empty(t, f.store.events)
	assert.Equal(t, int64(100), f.store.profile("a").Balance)
	assert.Empty(t, f.sink.types())
	expectationsMet(t, f.mock)
}

func TestAttack_OvershieldAbsorbsAndConsumesQuota(t *testing.T) {
	f := newSiegeFixture(t, nil)
	f.expectTx(true)
	f.editVault("t", func(v *models.Vault) { v.Overshield = 1 })

	res, err := f.s.Attack(context.Background(), AttackRequest{AttackerID: "a", TargetID: "t", MoveID: "strike"})
	require.NoError(t, err)
	assert.True(t, res.OvershieldAbsorbed)
	assert.Zero(t, res.PPStolen)
	assert.Zero(t, res.ShieldDamage)
	assert.Zero(t, res.XPGained)
	assert.Equal(t, int64(3), res.MovesRemaining)

	assert.Zero(t, f.store.vault("t").Overshield)
	assert.Equal(t, int64(100), f.store.vault("t").VaultHealth)
	assert.Equal(t, int64(100), f.store.profile("a").Balance)
	require.Len(t, f.store.events, 1)
	assert.True(t, f.store.events[0].OvershieldAbsorbed)
	expectationsMet(t, f.mock)
}

func TestAttack_BreachCardBreaksShield(t *testing.T) {
	f := newSiegeFixture(t, nil)
	f.expectTx(true)
	f.editVault("t", func(v *models.Vault) { v.ShieldStrength = 30 })
	f.store.cards[moveKey("a", "breach")] = models.PlayerCard{PlayerID: "a", CardID: "breach", Unlocked: true, UsesRemaining: 3}

	res, err := f.s.Attack(context.Background(), AttackRequest{AttackerID: "a", TargetID: "t", MoveID: "strike", CardID: "breach"})
	require.NoError(t, err)
	assert.Equal(t, int64(30), res.ShieldDamage)
	assert.Zero(t, res.PPStolen)
	assert.Equal(t, int64(4), res.XPGained)

	assert.Zero(t, f.store.vault("t").ShieldStrength)
	assert.Equal(t, int64(2), f.store.cards[moveKey("a", "breach")].UsesRemaining)
	assert.Equal(t, int64(1), f.store.progress["a/"+ChallengeShieldBreak])
	assert.Equal(t, "breach", f.store.events[0].CardID)
	assert.Equal(t, []notify.Type{notify.TypeAttacked, notify.TypeShieldDown}, f.sink.types())
	expectationsMet(t, f.mock)
}

func TestAttack_DefensiveMoveActsOnAttacker(t *testing.T) {
	f := newSiegeFixture(t, nil)
	f.expectTx(true)

	res, err := f.s.Attack(context.Background(), AttackRequest{AttackerID: "a", TargetID: "t", MoveID: "barrier"})
	require.NoError(t, err)
	assert.Equal(t, models.EventDefend, res.Kind)
	assert.Zero(t, res.XPGained)
	assert.Equal(t, int64(3), res.MovesRemaining)

	assert.Equal(t, int64(15), f.store.vault("a").ShieldStrength)
	assert.Equal(t, int64(1), f.store.vault("t").Version, "target untouched")
	require.Len(t, f.store.events, 1)
	assert.Empty(t, f.store.events[0].TargetID)
	assert.Equal(t, int64(1), f.store.progress["a/"+ChallengeDefend])
	assert.Empty(t, f.sink.types())
	expectationsMet(t, f.mock)
}

func TestAttack_QuotaReplay(t *testing.T) {
	tests := []struct {
		name     string
		seed     func(f *siegeFixture)
		wantErr  error
		wantLeft int64
	}{
		{
			name:    "exhausted",
			seed:    func(f *siegeFixture) { f.seedEvents(models.EventAttack, 4, now.Add(-time.Hour)) },
			wantErr: common.ErrQuotaExhausted,
		},
		{
			name: "defends count too",
			seed: func(f *siegeFixture) {
				f.seedEvents(models.EventAttack, 2, now.Add(-time.Hour))
				f.seedEvents(models.EventDefend, 2, now.Add(-2*time.Hour))
			},
			wantErr: common.ErrQuotaExhausted,
		},
		{
			name: "restore gives one back",
			seed: func(f *siegeFixture) {
				f.seedEvents(models.EventAttack, 4, now.Add(-time.Hour))
				f.seedEvents(models.EventRestore, 1, now.Add(-time.Minute))
			},
			wantLeft: 0,
		},
		{
			name:     "yesterday does not count",
			seed:     func(f *siegeFixture) { f.seedEvents(models.EventAttack, 4, now.Add(-24*time.Hour)) },
			wantLeft: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSiegeFixture(t, nil)
			f.expectTx(tt.wantErr == nil)
			tt.seed(f)
			before := len(f.store.events)

			res, err := f.s.Attack(context.Background(), AttackRequest{AttackerID: "a", TargetID: "t", MoveID: "strike"})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Len(t, f.store.events, before)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantLeft, res.MovesRemaining)
			}
			expectationsMet(t, f.mock)
		})
	}
}

func TestAttack_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     AttackRequest
		setup   func(f *siegeFixture)
		tx      bool
		wantErr error
	}{
		{name: "nothing selected", req: AttackRequest{AttackerID: "a", TargetID: "t"}, wantErr: common.ErrNoMoveSelected},
		{name: "unknown move", req: AttackRequest{AttackerID: "a", TargetID: "t", MoveID: "nope"}, wantErr: common.ErrUnknownMove},
		{name: "locked move", req: AttackRequest{AttackerID: "a", TargetID: "t", MoveID: "fireball"}, wantErr: common.ErrMoveLocked},
		{name: "unknown card", req: AttackRequest{AttackerID: "a", TargetID: "t", CardID: "joker"}, wantErr: common.ErrUnknownCard},
		{name: "card not owned", req: AttackRequest{AttackerID: "a", TargetID: "t", CardID: "breach"}, wantErr: common.ErrCardUnavailable},
		{
			name: "card out of uses",
			req:  AttackRequest{AttackerID: "a", TargetID: "t", CardID: "sabotage"},
			setup: func(f *siegeFixture) {
				f.store.cards[moveKey("a", "sabotage")] = models.PlayerCard{PlayerID: "a", CardID: "sabotage", Unlocked: true}
			},
			wantErr: common.ErrCardUnavailable,
		},
		{name: "missing target", req: AttackRequest{AttackerID: "a", MoveID: "strike"}, tx: true, wantErr: common.ErrNoTarget},
		{name: "unknown target", req: AttackRequest{AttackerID: "a", TargetID: "nobody", MoveID: "strike"}, tx: true, wantErr: common.ErrorNotFound},
		{name: "self attack", req: AttackRequest{AttackerID: "a", TargetID: "a", MoveID: "strike"}, tx: true, wantErr: common.ErrSelfAttack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSiegeFixture(t, nil)
			if tt.tx {
				f.expectTx(false)
			}
			if tt.setup != nil {
				tt.setup(f)
			}

			_, err := f.s.Attack(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.store.events)
			expectationsMet(t, f.mock)
		})
	}
}

func TestAttack_RetriesAfterVersionConflict(t *testing.T) {
	f := newSiegeFixture(t, nil)
	f.expectTx(false)
	f.expectTx(true)
	f.store.conflicts = 1

	res, err := f.s.Attack(context.Background(), AttackRequest{AttackerID: "a", TargetID: "t", MoveID: "strike"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), res.PPStolen)
	assert.Len(t, f.store.events, 1)
	expectationsMet(t, f.mock)
}

func TestAttack_SideEffectFailuresAreSwallowed(t *testing.T) {
	f := newSiegeFixture(t, nil)
	f.expectTx(true)
	f.store.progressErr = errors.New("challenges down")
	f.sink.err = errors.New("redis down")

	res, err := f.s.Attack(context.Background(), AttackRequest{AttackerID: "a", TargetID: "t", MoveID: "strike"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Len(t, f.store.events, 1)
	expectationsMet(t, f.mock)
}

type blockingSink struct {
	release chan struct{}
	got     chan context.Context
}

func (s *blockingSink) Notify(ctx context.Context, _ notify.Notification) error {
	<-s.release
	s.got <- ctx
	return nil
}

func TestAttack_SideEffectsDoNotBlockTheCaller(t *testing.T) {
	orig := dispatch
	dispatch = func(f func()) { go f() }
	t.Cleanup(func() { dispatch = orig })

	f := newSiegeFixture(t, nil)
	f.expectTx(true)
	sink := &blockingSink{release: make(chan struct{}), got: make(chan context.Context, 8)}
	f.env.Notifier = sink

	ctx, cancel := context.WithCancel(context.Background())
	res, err := f.s.Attack(ctx, AttackRequest{AttackerID: "a", TargetID: "t", MoveID: "strike"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	cancel()

	close(sink.release)
	select {
	case got := <-sink.got:
		require.NoError(t, got.Err(), "side effects must outlive the request")
		_, ok := got.Deadline()
		assert.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("notification was not delivered")
	}
	expectationsMet(t, f.mock)
}

func TestRemainingMoves(t *testing.T) {
	f := newSiegeFixture(t, nil)
	f.seedEvents(models.EventAttack, 2, now.Add(-time.Hour))
	f.seedEvents(models.EventDefend, 1, now.Add(-time.Minute))
	f.seedEvents(models.EventAttack, 3, now.Add(-30*time.Hour))

	left, err := f.s.RemainingMoves(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), left)
}

func TestRestoreMoves(t *testing.T) {
	f := newSiegeFixture(t, nil)
	f.expectTx(true)
	f.seedEvents(models.EventAttack, 3, now.Add(-time.Hour))

	left, err := f.s.RestoreMoves(context.Background(), "a", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), left)
	assert.Len(t, f.store.events, 5)
	assert.Equal(t, models.EventRestore, f.store.events[4].Kind)
	expectationsMet(t, f.mock)
}

func TestRestoreMoves_RejectsNonPositive(t *testing.T) {
	f := newSiegeFixture(t, nil)

	_, err := f.s.RestoreMoves(context.Background(), "a", 0)
	require.ErrorIs(t, err, common.ErrInvalidArgument)
	assert.Empty(t, f.store.events)
}

func TestRestoreMoves_RefundsOnlySpentMoves(t *testing.T) {
	f := newSiegeFixture(t, nil)
	f.expectTx(true)
	f.seedEvents(models.EventAttack, 1, now.Add(-time.Hour))

	left, err := f.s.RestoreMoves(context.Background(), "a", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(4), left)
	assert.Len(t, f.store.events, 2)
	expectationsMet(t, f.mock)
}

func TestRestoreMoves_NothingSpent(t *testing.T) {
	f := newSiegeFixture(t, nil)
	f.expectTx(false)

	_, err := f.s.RestoreMoves(context.Background(), "a", 1000)
	require.ErrorIs(t, err, common.ErrNothingToRestore)
	assert.Empty(t, f.store.events)
	expectationsMet(t, f.mock)
}

func TestRestoreMoves_CannotLiftDailyLimit(t *testing.T) {
	f := newSiegeFixture(t, nil)
	f.expectTx(false)
	for i := 0; i < 4; i++ {
		f.expectTx(true)
	}
	f.expectTx(false)
	for i := 0; i < 5; i++ {
		f.expectTx(true)
	}

	_, err := f.s.RestoreMoves(context.Background(), "a", 1000)
	require.ErrorIs(t, err, common.ErrNothingToRestore)

	attack := func() error {
		_, err := f.s.Attack(context.Background(), AttackRequest{AttackerID: "a", TargetID: "t", MoveID: "strike"})
		return err
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, attack(), "attack %d", i+1)
	}
	require.ErrorIs(t, attack(), common.ErrQuotaExhausted)

	left, err := f.s.RestoreMoves(context.Background(), "a", 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(4), left)

	for i := 0; i < 4; i++ {
		require.NoError(t, attack(), "attack %d after restore", i+1)
	}
	left, err = f.s.RemainingMoves(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, int64(0), left)
	expectationsMet(t, f.mock)
}

func TestChallengeProgress(t *testing.T) {
	f := newSiegeFixture(t, nil)
	f.expectTx(true)

	_, err := f.s.Attack(context.Background(), AttackRequest{AttackerID: "a", TargetID: "t", MoveID: "strike"})
	require.NoError(t, err)

	got, err := f.s.ChallengeProgress(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{ChallengeSiegeAttack: 1, ChallengePPStolen: 10}, got)
}
