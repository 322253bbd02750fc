package combat

// stolenTiers maps currency stolen to XP, highest threshold first.
var stolenTiers = []struct {
	min int64
	xp  int64
}{
	{100, 5},
	{50, 4},
	{25, 3},
	{10, 2},
	{1, 1},
}

const (
	shieldXPCap      = 2
	shieldXPStep     = 25
	shieldBreakBonus = 2
)

// Experience awards XP for a resolved attack. An overshield-absorbed attack
// earns nothing; any other resolved attack earns at least 1.
func Experience(o Outcome) int64 {
	if o.OvershieldAbsorbed {
		return 0
	}
	var xp int64
	for _, t := range stolenTiers {
		if o.PPStolen >= t.min {
			xp += t.xp
			break
		}
	}
	if o.ShieldDamage > 0 {
		xp += min(shieldXPCap, 1+o.ShieldDamage/shieldXPStep)
	}
	if o.ShieldBroken {
		xp += shieldBreakBonus
	}
	if xp == 0 {
		xp = 1
	}
	return xp
}
