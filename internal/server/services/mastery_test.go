package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/vaultsiege/internal/common"
	"github.com/dmitrijs2005/vaultsiege/internal/random"
	"github.com/dmitrijs2005/vaultsiege/internal/server/catalog"
	"github.com/dmitrijs2005/vaultsiege/internal/server/models"
	"github.com/dmitrijs2005/vaultsiege/internal/server/notify"
	"github.com/dmitrijs2005/vaultsiege/internal/server/vault"
)

func newMasteryFixture(t *testing.T, rng random.Source) (*MasteryService, *memStore, *recordingSink, *siegeFixture) {
	t.Helper()
	f := newSiegeFixture(t, rng)
	s := NewMasteryService(f.s.db, &fakeRepoManager{s: f.store}, f.env)
	return s, f.store, f.sink, f
}

func findMove(t *testing.T, views []MoveView, id string) MoveView {
	t.Helper()
	for _, v := range views {
		if v.Move.ID == id {
			return v
		}
	}
	t.Fatalf("move %q not listed", id)
	return MoveView{}
}

func TestListMoves_MergesCatalogAndProgress(t *testing.T) {
	s, store, _, _ := newMasteryFixture(t, nil)
	store.moves[moveKey("a", "fireball")] = models.PlayerMove{
		PlayerID: "a", MoveID: "fireball", Unlocked: true, MasteryLevel: 3,
		Stats: models.MoveStats{Damage: 35},
	}

	views, err := s.ListMoves(context.Background(), "a")
	require.NoError(t, err)
	assert.Len(t, views, len(catalog.Default().Moves()))

	strike := findMove(t, views, "strike")
	assert.True(t, strike.Unlocked)
	assert.Equal(t, 1, strike.MasteryLevel)
	assert.Equal(t, int64(10), strike.Stats.Damage)
	assert.Equal(t, int64(100), strike.NextCost)

	fireball := findMove(t, views, "fireball")
	assert.True(t, fireball.Unlocked)
	assert.Equal(t, 3, fireball.MasteryLevel)
	assert.Equal(t, int64(35), fireball.Stats.Damage)
	assert.Equal(t, int64(400), fireball.NextCost)

	assert.False(t, findMove(t, views, "inferno").Unlocked)
}

func TestUpgradeMove_CompoundsOnCurrentStats(t *testing.T) {
	s, store, _, f := newMasteryFixture(t, &random.Fixed{Floats: []float64{0}})
	f.expectTx(true)
	f.expectTx(true)
	store.profiles["a"].Balance = 500

	v, err := s.UpgradeMove(context.Background(), "a", "strike")
	require.NoError(t, err)
	assert.Equal(t, 2, v.MasteryLevel)
	assert.Equal(t, int64(20), v.Stats.Damage)
	assert.Equal(t, 2.0, v.Multiplier)
	assert.Equal(t, int64(200), v.NextCost)

	// 2 -> 3 draws from the low band and multiplies the boosted value
	v, err = s.UpgradeMove(context.Background(), "a", "strike")
	require.NoError(t, err)
	assert.Equal(t, 3, v.MasteryLevel)
	assert.Equal(t, int64(25), v.Stats.Damage)

	assert.Equal(t, int64(200), store.profile("a").Balance)
	assert.Equal(t, []int64{400, 200}, store.syncs)
	assert.Equal(t, int64(200), store.vault("a").CurrentPP)

	stored := store.moves[moveKey("a", "strike")]
	assert.True(t, stored.Unlocked)
	assert.Equal(t, 3, stored.MasteryLevel)
	expectationsMet(t, f.mock)
}

func TestUpgradeMove_ReachingMaxIsAMilestone(t *testing.T) {
	s, store, sink, f := newMasteryFixture(t, &random.Fixed{Floats: []float64{0}})
	f.expectTx(true)
	store.profiles["a"].Balance = 30000
	store.moves[moveKey("a", "strike")] = models.PlayerMove{
		PlayerID: "a", MoveID: "strike", Unlocked: true, MasteryLevel: 9,
		Stats: models.MoveStats{Damage: 100},
	}

	v, err := s.UpgradeMove(context.Background(), "a", "strike")
	require.NoError(t, err)
	assert.Equal(t, models.MaxMastery, v.MasteryLevel)
	assert.Equal(t, int64(300), v.Stats.Damage)
	assert.Zero(t, v.NextCost)
	assert.Equal(t, int64(30000-25600), store.profile("a").Balance)
	assert.Equal(t, []notify.Type{notify.TypeMilestone}, sink.types())
	expectationsMet(t, f.mock)
}

func TestUpgradeMove_Errors(t *testing.T) {
	tests := []struct {
		name    string
		move    string
		setup   func(store *memStore)
		tx      bool
		wantErr error
	}{
		{name: "unknown", move: "nope", wantErr: common.ErrUnknownMove},
		{name: "locked", move: "fireball", tx: true, wantErr: common.ErrMoveLocked},
		{
			name: "at max",
			move: "strike",
			setup: func(store *memStore) {
				store.moves[moveKey("a", "strike")] = models.PlayerMove{PlayerID: "a", MoveID: "strike", Unlocked: true, MasteryLevel: 10}
			},
			tx:      true,
			wantErr: common.ErrMaxMastery,
		},
		{
			name:    "insufficient funds",
			move:    "strike",
			setup:   func(store *memStore) { store.profiles["a"].Balance = 50 },
			tx:      true,
			wantErr: common.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, store, _, f := newMasteryFixture(t, nil)
			if tt.tx {
				f.expectTx(false)
			}
			if tt.setup != nil {
				tt.setup(store)
			}

			_, err := s.UpgradeMove(context.Background(), "a", tt.move)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, store.syncs)
			expectationsMet(t, f.mock)
		})
	}
}

func TestUpgradeMove_RetriesLostLevelRace(t *testing.T) {
	s, store, _, f := newMasteryFixture(t, &random.Fixed{Floats: []float64{0}})
	f.expectTx(false)
	f.expectTx(true)
	store.profiles["a"].Balance = 500
	store.moveConflicts = 1

	v, err := s.UpgradeMove(context.Background(), "a", "strike")
	require.NoError(t, err)
	assert.Equal(t, 2, v.MasteryLevel)

	// the losing attempt never reached the debit
	assert.Equal(t, int64(400), store.profile("a").Balance)
	assert.Equal(t, []int64{400}, store.syncs)
	expectationsMet(t, f.mock)
}

func TestUpgradeMove_StaleLevelIsNotCharged(t *testing.T) {
	s, store, _, f := newMasteryFixture(t, nil)
	for i := 0; i < maxConflictRetries; i++ {
		f.expectTx(false)
	}
	store.profiles["a"].Balance = 500
	store.moveConflicts = maxConflictRetries

	_, err := s.UpgradeMove(context.Background(), "a", "strike")
	require.ErrorIs(t, err, common.ErrVersionConflict)
	assert.Equal(t, int64(500), store.profile("a").Balance)
	assert.Empty(t, store.syncs)
	expectationsMet(t, f.mock)
}

func TestFakeMoves_UpdateLevelRejectsStaleRead(t *testing.T) {
	store := newMemStore()
	repo := fakeMoves{store}
	store.moves[moveKey("a", "strike")] = models.PlayerMove{PlayerID: "a", MoveID: "strike", Unlocked: true, MasteryLevel: 3}

	err := repo.UpdateLevel(context.Background(), &models.PlayerMove{PlayerID: "a", MoveID: "strike", MasteryLevel: 3}, 2)
	require.ErrorIs(t, err, common.ErrVersionConflict)
	assert.Equal(t, 3, store.moves[moveKey("a", "strike")].MasteryLevel)
}

func TestResetMove_RestoresCatalogBase(t *testing.T) {
	s, store, _, _ := newMasteryFixture(t, nil)
	store.moves[moveKey("a", "strike")] = models.PlayerMove{
		PlayerID: "a", MoveID: "strike", Unlocked: true, MasteryLevel: 3,
		Stats: models.MoveStats{Damage: 25},
	}

	v, err := s.ResetMove(context.Background(), "a", "strike")
	require.NoError(t, err)
	assert.Equal(t, 1, v.MasteryLevel)
	assert.Equal(t, int64(10), v.Stats.Damage)

	stored := store.moves[moveKey("a", "strike")]
	assert.Equal(t, models.MoveStats{Damage: 10}, stored.Stats)
	assert.True(t, stored.Unlocked)
}

func TestResetMove_LockedMove(t *testing.T) {
	s, _, _, _ := newMasteryFixture(t, nil)

	_, err := s.ResetMove(context.Background(), "a", "inferno")
	require.ErrorIs(t, err, common.ErrMoveLocked)
}

func TestUnlockMove(t *testing.T) {
	s, store, _, _ := newMasteryFixture(t, nil)
	store.moves[moveKey("a", "inferno")] = models.PlayerMove{
		PlayerID: "a", MoveID: "inferno", MasteryLevel: 2, Stats: models.MoveStats{Damage: 56},
	}

	v, err := s.UnlockMove(context.Background(), "a", "fireball")
	require.NoError(t, err)
	assert.True(t, v.Unlocked)
	assert.Equal(t, int64(14), store.moves[moveKey("a", "fireball")].Stats.Damage)

	v, err = s.UnlockMove(context.Background(), "a", "inferno")
	require.NoError(t, err)
	assert.True(t, v.Unlocked)
	assert.Equal(t, 2, v.MasteryLevel, "unlocking keeps mastery")
	assert.True(t, store.moves[moveKey("a", "inferno")].Unlocked)

	_, err = s.UnlockMove(context.Background(), "a", "nope")
	require.ErrorIs(t, err, common.ErrUnknownMove)
}

func TestArtifacts_EquipAndUnequip(t *testing.T) {
	s, _, _, _ := newMasteryFixture(t, nil)
	ctx := context.Background()

	_, err := s.EquipArtifact(ctx, "a", "crown-of-nothing")
	require.ErrorIs(t, err, common.ErrUnknownArtifact)

	got, err := s.EquipArtifact(ctx, "a", "ember-crown")
	require.NoError(t, err)
	assert.Equal(t, []string{"ember-crown"}, got)

	got, err = s.UnequipArtifact(ctx, "a", "ember-crown")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEquippedArtifactBoostsAttack(t *testing.T) {
	s, store, _, f := newMasteryFixture(t, nil)
	f.expectTx(true)
	store.moves[moveKey("a", "fireball")] = models.PlayerMove{
		PlayerID: "a", MoveID: "fireball", Unlocked: true, MasteryLevel: 1,
		Stats: models.MoveStats{Damage: 20},
	}
	_, err := s.EquipArtifact(context.Background(), "a", "ember-crown")
	require.NoError(t, err)

	res, err := f.s.Attack(context.Background(), AttackRequest{AttackerID: "a", TargetID: "t", MoveID: "fireball"})
	require.NoError(t, err)
	// mastery 5 from the crown: floor(20*1.2) = 24, then x1.25
	assert.Equal(t, int64(30), res.TotalDamage)
	expectationsMet(t, f.mock)
}

func TestGrantCard(t *testing.T) {
	s, store, _, _ := newMasteryFixture(t, nil)
	ctx := context.Background()

	c, err := s.GrantCard(ctx, "a", "breach")
	require.NoError(t, err)
	assert.True(t, c.Unlocked)
	assert.Equal(t, int64(3), c.UsesRemaining)

	c, err = s.GrantCard(ctx, "a", "breach")
	require.NoError(t, err)
	assert.Equal(t, int64(6), c.UsesRemaining)
	assert.Equal(t, int64(6), store.cards[moveKey("a", "breach")].UsesRemaining)

	_, err = s.GrantCard(ctx, "a", "joker")
	require.ErrorIs(t, err, common.ErrUnknownCard)
}

func TestNewEnv_FromConfig(t *testing.T) {
	env, err := NewEnv(testConfig(), nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(6), env.Params.MaxMovesPerDay)
	assert.Equal(t, vault.DefaultParams().CooldownDuration, env.Params.CooldownDuration)
	assert.Equal(t, int64(250), env.MasteryBaseCost)
	assert.NotNil(t, env.Notifier)
	assert.NotNil(t, env.Rng)
}
