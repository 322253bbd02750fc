// Package catalog holds the static move, action card and artifact
// definitions shared by all players.
package catalog

import (
	"sort"

	"github.com/dmitrijs2005/vaultsiege/internal/server/models"
)

// Move is a catalog entry. Base stats are the level-1 values a reset restores.
type Move struct {
	ID       string
	Name     string
	Category models.MoveCategory
	Type     models.MoveType
	// Element is set for elemental moves and matched against artifacts.
	Element string
	// Level is the catalog tier, 1–4.
	Level int
	Base  models.MoveStats
	// Damage overrides Base.Damage for the fallback lookup when set.
	Damage DamageValue
	// StartsUnlocked moves are available without a one-time unlock.
	StartsUnlocked bool
}

// DamageValue is the fallback damage lookup result: a fixed value, a
// range, or absent (the zero value).
type DamageValue struct {
	Fixed int64
	Min   int64
	Max   int64
}

// IsZero reports an absent value.
func (d DamageValue) IsZero() bool {
	return d.Fixed == 0 && d.Min == 0 && d.Max == 0
}

// IsRange reports whether the value is a {min,max} range.
func (d DamageValue) IsRange() bool {
	return d.Fixed == 0 && d.Max > 0
}

// Card is an action card definition.
type Card struct {
	ID     string
	Name   string
	Kind   models.CardKind
	Amount int64
	// UsesPerGrant is how many uses an unlock grants.
	UsesPerGrant int64
}

// Artifact is an equippable item that empowers one elemental family.
type Artifact struct {
	ID      string
	Name    string
	Element string
	// MasteryLevel is the effective mastery granted to matching moves.
	MasteryLevel int
	// DamageMultiplier applies to matching elemental damage after the roll.
	DamageMultiplier float64
}

// Catalog is an immutable, indexed set of definitions.
type Catalog struct {
	moves     map[string]Move
	byName    map[string]Move
	cards     map[string]Card
	artifacts map[string]Artifact
}

// New indexes the given definitions. Later duplicates win.
func New(moves []Move, cards []Card, artifacts []Artifact) *Catalog {
	c := &Catalog{
		moves:     make(map[string]Move, len(moves)),
		byName:    make(map[string]Move, len(moves)),
		cards:     make(map[string]Card, len(cards)),
		artifacts: make(map[string]Artifact, len(artifacts)),
	}
	for _, m := range moves {
		c.moves[m.ID] = m
		c.byName[m.Name] = m
	}
	for _, card := range cards {
		c.cards[card.ID] = card
	}
	for _, a := range artifacts {
		c.artifacts[a.ID] = a
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(defaultMoves, defaultCards, defaultArtifacts)
}

// Move looks up a move by ID.
func (c *Catalog) Move(id string) (Move, bool) {
	m, ok := c.moves[id]
	return m, ok
}

// Moves returns all moves ordered by ID.
func (c *Catalog) Moves() []Move {
	out := make([]Move, 0, len(c.moves))
	for _, m := range c.moves {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Card looks up an action card by ID.
func (c *Catalog) Card(id string) (Card, bool) {
	card, ok := c.cards[id]
	return card, ok
}

// Artifact looks up an artifact by ID.
func (c *Catalog) Artifact(id string) (Artifact, bool) {
	a, ok := c.artifacts[id]
	return a, ok
}

// MoveDamage is the fallback damage lookup by move name or ID.
func (c *Catalog) MoveDamage(name string) DamageValue {
	m, ok := c.byName[name]
	if !ok {
		m, ok = c.moves[name]
	}
	if !ok {
		return DamageValue{}
	}
	if !m.Damage.IsZero() {
		return m.Damage
	}
	if m.Base.Damage > 0 {
		return DamageValue{Fixed: m.Base.Damage}
	}
	return DamageValue{}
}

// MasteryBonus returns the effective mastery an equipped artifact grants to
// move, or 0 when nothing matches. The highest matching artifact wins.
func (c *Catalog) MasteryBonus(move Move, equipped []string) int {
	best := 0
	for _, a := range c.matching(move, equipped) {
		if a.MasteryLevel > best {
			best = a.MasteryLevel
		}
	}
	return best
}

// DamageMultiplier returns the product of matching artifact multipliers,
// or 1 when nothing matches.
func (c *Catalog) DamageMultiplier(move Move, equipped []string) float64 {
	mult := 1.0
	for _, a := range c.matching(move, equipped) {
		if a.DamageMultiplier > 0 {
			mult *= a.DamageMultiplier
		}
	}
	return mult
}

func (c *Catalog) matching(move Move, equipped []string) []Artifact {
	if move.Category != models.CategoryElemental || move.Element == "" {
		return nil
	}
	var out []Artifact
	for _, id := range equipped {
		a, ok := c.artifacts[id]
		if ok && a.Element == move.Element {
			out = append(out, a)
		}
	}
	return out
}
