package models

// MoveCategory is the family a move belongs to.
type MoveCategory string

const (
	CategoryManifest  MoveCategory = "manifest"
	CategoryElemental MoveCategory = "elemental"
	CategorySystem    MoveCategory = "system"
)

// MoveType is what a move does when used.
type MoveType string

const (
	MoveAttack  MoveType = "attack"
	MoveDefense MoveType = "defense"
	MoveUtility MoveType = "utility"
)

const (
	MinMastery = 1
	MaxMastery = 10
)

// MoveStats are the numeric effects of a move. Every non-zero stat is scaled
// by mastery upgrades.
type MoveStats struct {
	Damage         int64 `json:"damage"`
	PPSteal        int64 `json:"pp_steal"`
	ShieldBoost    int64 `json:"shield_boost"`
	Healing        int64 `json:"healing"`
	DebuffStrength int64 `json:"debuff_strength"`
	BuffStrength   int64 `json:"buff_strength"`
}

// PlayerMove is the per-player overlay over a catalog move.
type PlayerMove struct {
	PlayerID     string
	MoveID       string
	Unlocked     bool
	MasteryLevel int
	// Stats are the current, possibly boosted values.
	Stats MoveStats
}

// CardKind is the effect family of an action card.
type CardKind string

const (
	CardShieldBreach  CardKind = "shield_breach"
	CardShieldRestore CardKind = "shield_restore"
	CardVaultDamage   CardKind = "vault_damage"
	CardOvershield    CardKind = "overshield"
)

// PlayerCard tracks unlock state and remaining uses of an action card.
type PlayerCard struct {
	PlayerID      string
	CardID        string
	Unlocked      bool
	UsesRemaining int64
}
