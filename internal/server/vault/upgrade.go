package vault

import (
	"github.com/dmitrijs2005/vaultsiege/internal/common"
	"github.com/dmitrijs2005/vaultsiege/internal/server/models"
)

// UpgradeKind names a vault upgrade track.
type UpgradeKind string

const (
	UpgradeCapacity  UpgradeKind = "capacity"
	UpgradeShield    UpgradeKind = "shield"
	UpgradeGenerator UpgradeKind = "generator"
)

const (
	capacityStep = 500
	shieldStep   = 50
)

// UpgradeCost prices the next step of a track from its upgrade counter.
// Capacity and shield double per step; the generator grows linearly.
func UpgradeCost(v *models.Vault, kind UpgradeKind) (int64, error) {
	switch kind {
	case UpgradeCapacity:
		return 200 << uint(v.CapacityUpgrades), nil
	case UpgradeShield:
		return 150 << uint(v.ShieldUpgrades), nil
	case UpgradeGenerator:
		return 500 * (v.GeneratorUpgrades + 1), nil
	default:
		return 0, common.ErrInvalidUpgrade
	}
}

// ApplyUpgrade raises the track by one step. The caller debits the cost.
func ApplyUpgrade(v *models.Vault, kind UpgradeKind) error {
	switch kind {
	case UpgradeCapacity:
		v.Capacity += capacityStep
		v.CapacityUpgrades++
	case UpgradeShield:
		v.MaxShieldStrength += shieldStep
		v.ShieldUpgrades++
	case UpgradeGenerator:
		v.GeneratorLevel++
		v.GeneratorUpgrades++
	default:
		return common.ErrInvalidUpgrade
	}
	Normalize(v)
	return nil
}

// CollectGenerator empties the pending pool and returns the amount.
func CollectGenerator(v *models.Vault) int64 {
	n := v.GeneratorPendingPP
	v.GeneratorPendingPP = 0
	return n
}
