package catalog

import "github.com/dmitrijs2005/vaultsiege/internal/server/models"

var defaultMoves = []Move{
	// system moves every player starts with
	{ID: "strike", Name: "Strike", Category: models.CategorySystem, Type: models.MoveAttack, Level: 1,
		Base: models.MoveStats{Damage: 10}, StartsUnlocked: true},
	{ID: "barrier", Name: "Barrier", Category: models.CategorySystem, Type: models.MoveDefense, Level: 1,
		Base: models.MoveStats{ShieldBoost: 15}, StartsUnlocked: true},
	{ID: "siphon", Name: "Siphon", Category: models.CategorySystem, Type: models.MoveAttack, Level: 2,
		Base: models.MoveStats{PPSteal: 8}, StartsUnlocked: true},
	{ID: "mend", Name: "Mend", Category: models.CategorySystem, Type: models.MoveUtility, Level: 1,
		Base: models.MoveStats{Healing: 10}, StartsUnlocked: true},

	// manifest moves, unlocked by a one-time manifest choice
	{ID: "mind-lance", Name: "Mind Lance", Category: models.CategoryManifest, Type: models.MoveAttack, Level: 2,
		Base: models.MoveStats{Damage: 18, DebuffStrength: 2}},
	{ID: "aegis", Name: "Aegis", Category: models.CategoryManifest, Type: models.MoveDefense, Level: 2,
		Base: models.MoveStats{ShieldBoost: 30, BuffStrength: 2}},
	{ID: "overload", Name: "Overload", Category: models.CategoryManifest, Type: models.MoveAttack, Level: 4,
		Base: models.MoveStats{Damage: 40}, Damage: DamageValue{Min: 35, Max: 45}},

	// elemental moves, unlocked by a one-time element choice
	{ID: "fireball", Name: "Fireball", Category: models.CategoryElemental, Type: models.MoveAttack, Element: "fire", Level: 1,
		Base: models.MoveStats{Damage: 14}},
	{ID: "inferno", Name: "Inferno", Category: models.CategoryElemental, Type: models.MoveAttack, Element: "fire", Level: 3,
		Base: models.MoveStats{Damage: 28, DebuffStrength: 3}},
	{ID: "tidal-wave", Name: "Tidal Wave", Category: models.CategoryElemental, Type: models.MoveAttack, Element: "water", Level: 2,
		Base: models.MoveStats{Damage: 20}},
	{ID: "frost-ward", Name: "Frost Ward", Category: models.CategoryElemental, Type: models.MoveDefense, Element: "water", Level: 2,
		Base: models.MoveStats{ShieldBoost: 25}},
	{ID: "quake", Name: "Quake", Category: models.CategoryElemental, Type: models.MoveAttack, Element: "earth", Level: 3,
		Base: models.MoveStats{Damage: 26, PPSteal: 4}},
	{ID: "gale", Name: "Gale", Category: models.CategoryElemental, Type: models.MoveAttack, Element: "air", Level: 1,
		Base: models.MoveStats{Damage: 12, BuffStrength: 1}},
}

var defaultCards = []Card{
	{ID: "breach", Name: "Shield Breach", Kind: models.CardShieldBreach, Amount: 25, UsesPerGrant: 3},
	{ID: "restore", Name: "Shield Restore", Kind: models.CardShieldRestore, Amount: 30, UsesPerGrant: 3},
	{ID: "sabotage", Name: "Sabotage", Kind: models.CardVaultDamage, Amount: 15, UsesPerGrant: 2},
	{ID: "ward", Name: "Ward", Kind: models.CardOvershield, Amount: 1, UsesPerGrant: 1},
}

var defaultArtifacts = []Artifact{
	{ID: "ember-crown", Name: "Ember Crown", Element: "fire", MasteryLevel: 5, DamageMultiplier: 1.25},
	{ID: "tide-pendant", Name: "Tide Pendant", Element: "water", MasteryLevel: 4, DamageMultiplier: 1.2},
	{ID: "stone-ring", Name: "Stone Ring", Element: "earth", MasteryLevel: 6, DamageMultiplier: 1.1},
	{ID: "zephyr-cloak", Name: "Zephyr Cloak", Element: "air", MasteryLevel: 3, DamageMultiplier: 1.3},
}
