package combat

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/vaultsiege/internal/common"
	"github.com/dmitrijs2005/vaultsiege/internal/random"
	"github.com/dmitrijs2005/vaultsiege/internal/server/catalog"
	"github.com/dmitrijs2005/vaultsiege/internal/server/mastery"
	"github.com/dmitrijs2005/vaultsiege/internal/server/models"
	"github.com/dmitrijs2005/vaultsiege/internal/server/vault"
)

// MinimumDamage is used when an attack move has no resolvable damage at all.
const MinimumDamage int64 = 5

// MoveSelection is a catalog move together with the attacker's overlay.
type MoveSelection struct {
	Def    catalog.Move
	Player models.PlayerMove
}

// Input is everything Resolve needs. Vaults are not modified.
type Input struct {
	Attacker *models.Vault
	// Target is nil for self-targeted actions.
	Target *models.Vault

	Move *MoveSelection
	Card *catalog.Card

	// Equipped are the attacker's artifact IDs.
	Equipped []string

	Catalog  *catalog.Catalog
	Rng      random.Source
	Now      time.Time
	Cooldown time.Duration
}

// Outcome is the result of a resolved action with post-state snapshots.
type Outcome struct {
	Kind models.EventKind

	TotalDamage        int64
	ShieldDamage       int64
	VaultHealthDamage  int64
	PPStolen           int64
	OvershieldAbsorbed bool
	ShieldBroken       bool
	CooldownStarted    bool

	// Self effects on the attacker.
	ShieldGained     int64
	HealthRestored   int64
	OvershieldGained bool

	XP int64

	Attacker     *models.Vault
	Target       *models.Vault
	TargetBefore *models.Defenses
	TargetAfter  *models.Defenses

	CardUsed bool
}

// Message is the human-readable summary returned to the caller.
func (o Outcome) Message() string {
	switch {
	case o.Kind == models.EventDefend:
		return fmt.Sprintf("shields +%d, vault health +%d", o.ShieldGained, o.HealthRestored)
	case o.OvershieldAbsorbed:
		return "attack absorbed by overshield"
	case o.PPStolen > 0:
		return fmt.Sprintf("stole %d PP", o.PPStolen)
	case o.ShieldDamage > 0:
		return fmt.Sprintf("dealt %d shield damage", o.ShieldDamage)
	default:
		return "attack landed with no effect"
	}
}

// Event builds the audit record for this outcome. ID is left to the caller.
func (o Outcome) Event(in Input) models.AttackEvent {
	ev := models.AttackEvent{
		Kind:               o.Kind,
		AttackerID:         in.Attacker.PlayerID,
		TotalDamage:        o.TotalDamage,
		ShieldDamage:       o.ShieldDamage,
		VaultHealthDamage:  o.VaultHealthDamage,
		PPStolen:           o.PPStolen,
		OvershieldAbsorbed: o.OvershieldAbsorbed,
		XPGained:           o.XP,
		TargetBefore:       o.TargetBefore,
		TargetAfter:        o.TargetAfter,
		At:                 in.Now,
	}
	if in.Target != nil && o.Kind == models.EventAttack {
		ev.TargetID = in.Target.PlayerID
	}
	if in.Move != nil {
		ev.MoveID = in.Move.Def.ID
	}
	if in.Card != nil {
		ev.CardID = in.Card.ID
	}
	return ev
}

// Resolve applies a move and/or action card. Defensive and utility moves act
// on the attacker and never touch the target. Offensive selections route
// damage into the target and convert vault-health damage 1:1 into attacker
// currency; the target's balance is not reduced.
func Resolve(in Input) (Outcome, error) {
	if in.Attacker == nil {
		return Outcome{}, common.ErrorNotFound
	}
	if in.Move == nil && in.Card == nil {
		return Outcome{}, common.ErrNoMoveSelected
	}
	if in.Move != nil && in.Move.Def.Type != models.MoveAttack {
		return resolveSelf(in)
	}
	if in.Move == nil && !offensiveCard(in.Card) {
		return resolveSelf(in)
	}
	return resolveAttack(in)
}

func offensiveCard(c *catalog.Card) bool {
	return c != nil && (c.Kind == models.CardShieldBreach || c.Kind == models.CardVaultDamage)
}

func resolveSelf(in Input) (Outcome, error) {
	if offensiveCard(in.Card) {
		return Outcome{}, common.ErrNoApplicableEffect
	}

	var boost, heal int64
	if in.Move != nil {
		boost = in.Move.Player.Stats.ShieldBoost
		heal = in.Move.Player.Stats.Healing
	}
	if boost <= 0 && heal <= 0 && in.Card == nil {
		return Outcome{}, common.ErrNoApplicableEffect
	}

	a := in.Attacker.Clone()
	o := Outcome{Kind: models.EventDefend, Attacker: a}
	o.ShieldGained = gainShield(a, boost)
	if heal > 0 && a.VaultHealthCooldown == nil {
		ceil := vault.HealthCeiling(a)
		next := min(ceil, a.VaultHealth+heal)
		if next > a.VaultHealth {
			o.HealthRestored = next - a.VaultHealth
			a.VaultHealth = next
		}
	}
	applySelfCard(a, in.Card, &o)
	vault.Normalize(a)
	return o, nil
}

func gainShield(v *models.Vault, amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	next := min(v.MaxShieldStrength, v.ShieldStrength+amount)
	gained := max(next-v.ShieldStrength, 0)
	v.ShieldStrength += gained
	return gained
}

func applySelfCard(v *models.Vault, c *catalog.Card, o *Outcome) {
	if c == nil {
		return
	}
	switch c.Kind {
	case models.CardShieldRestore:
		o.ShieldGained += gainShield(v, c.Amount)
		o.CardUsed = true
	case models.CardOvershield:
		o.OvershieldGained = v.Overshield == 0
		v.Overshield = 1
		o.CardUsed = true
	}
}

func resolveAttack(in Input) (Outcome, error) {
	if in.Target == nil {
		return Outcome{}, common.ErrNoTarget
	}
	if in.Target.PlayerID == in.Attacker.PlayerID {
		return Outcome{}, common.ErrSelfAttack
	}
	if left := vault.CooldownRemaining(in.Target, in.Now, in.Cooldown); left > 0 {
		return Outcome{}, &common.CooldownError{Remaining: left}
	}

	a := in.Attacker.Clone()
	t := in.Target.Clone()
	before := t.Defenses()
	o := Outcome{Kind: models.EventAttack, Attacker: a, Target: t, TargetBefore: &before}

	var moveDamage, direct int64
	if in.Move != nil {
		moveDamage, direct = moveDamageFor(in)
	}
	var breach int64
	if in.Card != nil {
		switch in.Card.Kind {
		case models.CardShieldBreach:
			breach = in.Card.Amount
		case models.CardVaultDamage:
			direct += in.Card.Amount
		}
	}
	o.TotalDamage = moveDamage + breach + direct

	if t.Overshield > 0 {
		t.Overshield = 0
		o.OvershieldAbsorbed = true
	} else {
		r := Route(moveDamage, t.Defenses())
		t.ShieldStrength -= r.ShieldDamage
		t.VaultHealth -= r.VaultHealthDamage
		o.ShieldDamage = r.ShieldDamage
		o.VaultHealthDamage = r.VaultHealthDamage

		if breach > 0 {
			extra := min(breach, t.ShieldStrength)
			t.ShieldStrength -= extra
			o.ShieldDamage += extra
		}
		if direct > 0 {
			extra := min(direct, t.VaultHealth)
			t.VaultHealth -= extra
			o.VaultHealthDamage += extra
		}
	}
	if in.Card != nil {
		o.CardUsed = true
		applySelfCard(a, in.Card, &o)
	}

	o.ShieldBroken = before.ShieldStrength > 0 && t.ShieldStrength == 0
	o.CooldownStarted = vault.StartCooldown(t, before.VaultHealth, in.Now)

	o.PPStolen = o.VaultHealthDamage
	a.CurrentPP += o.PPStolen
	vault.ForfeitCooldown(a)
	vault.Normalize(a)
	vault.Normalize(t)

	after := t.Defenses()
	o.TargetAfter = &after
	o.XP = Experience(o)
	return o, nil
}

// moveDamageFor resolves the routed damage of an attack move and any
// direct vault-health damage. Stored stats win over the catalog; PP steal
// only applies when no regular damage value exists.
func moveDamageFor(in Input) (routed, direct int64) {
	def := in.Move.Def
	stats := in.Move.Player.Stats

	bonus := 0
	mult := 1.0
	if in.Catalog != nil {
		bonus = in.Catalog.MasteryBonus(def, in.Equipped)
		mult = in.Catalog.DamageMultiplier(def, in.Equipped)
	}
	lvl := mastery.EffectiveLevel(in.Move.Player.MasteryLevel, bonus)

	switch {
	case stats.Damage > 0:
		routed = mastery.RollDamage(in.Rng, stats.Damage, def.Level, lvl)
	case in.Catalog != nil && !in.Catalog.MoveDamage(def.Name).IsZero():
		dv := in.Catalog.MoveDamage(def.Name)
		if dv.IsRange() {
			routed = dv.Min
			if dv.Max > dv.Min {
				routed += int64(in.Rng.Intn(int(dv.Max - dv.Min + 1)))
			}
		} else {
			routed = mastery.RollDamage(in.Rng, dv.Fixed, def.Level, lvl)
		}
	case stats.PPSteal > 0:
		return 0, stats.PPSteal
	default:
		return MinimumDamage, 0
	}
	return mastery.ApplyMultiplier(routed, mult), 0
}
