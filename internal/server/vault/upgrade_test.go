package vault

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/vaultsiege/internal/common"
)

func TestUpgradeCost(t *testing.T) {
	v := New("p1", 0, time.Now(), dc, DefaultParams())

	for _, tc := range []struct {
		kind UpgradeKind
		want []int64
	}{
		{UpgradeCapacity, []int64{200, 400, 800}},
		{UpgradeShield, []int64{150, 300, 600}},
		{UpgradeGenerator, []int64{500, 1000, 1500}},
	} {
		t.Run(string(tc.kind), func(t *testing.T) {
			c := v.Clone()
			for _, want := range tc.want {
				got, err := UpgradeCost(c, tc.kind)
				require.NoError(t, err)
				assert.Equal(t, want, got)
				require.NoError(t, ApplyUpgrade(c, tc.kind))
			}
		})
	}
}

func TestApplyUpgrade(t *testing.T) {
	v := New("p1", 2000, time.Now(), dc, DefaultParams())

	require.NoError(t, ApplyUpgrade(v, UpgradeCapacity))
	assert.Equal(t, int64(2500), v.Capacity)
	assert.Equal(t, int64(250), v.MaxVaultHealth)
	assert.Equal(t, int64(200), v.VaultHealth, "capacity upgrade does not refill health")

	require.NoError(t, ApplyUpgrade(v, UpgradeShield))
	assert.Equal(t, int64(150), v.MaxShieldStrength)

	require.NoError(t, ApplyUpgrade(v, UpgradeGenerator))
	assert.Equal(t, int64(2), v.GeneratorLevel)
	assert.Equal(t, int64(1), v.CapacityUpgrades)
	assert.Equal(t, int64(1), v.ShieldUpgrades)
	assert.Equal(t, int64(1), v.GeneratorUpgrades)
}

func TestUpgrade_Unknown(t *testing.T) {
	v := New("p1", 0, time.Now(), dc, DefaultParams())
	_, err := UpgradeCost(v, "turbo")
	assert.ErrorIs(t, err, common.ErrInvalidUpgrade)
	assert.ErrorIs(t, ApplyUpgrade(v, "turbo"), common.ErrInvalidUpgrade)
}

func TestCollectGenerator(t *testing.T) {
	v := New("p1", 0, time.Now(), dc, DefaultParams())
	v.GeneratorPendingPP = 75

	assert.Equal(t, int64(75), CollectGenerator(v))
	assert.Equal(t, int64(0), v.GeneratorPendingPP)
	assert.Equal(t, int64(0), CollectGenerator(v))
}
