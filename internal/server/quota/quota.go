// Package quota derives the daily move allowance from the event log.
package quota

import (
	"cmp"
	"slices"
	"time"

	"github.com/dmitrijs2005/vaultsiege/internal/clock"
	"github.com/dmitrijs2005/vaultsiege/internal/server/models"
)

// Remaining replays events authored by playerID in the game day containing
// now, in time order. Quota-consuming events spend a move; a restore refunds
// one spent earlier, so restores cannot be banked above the limit. The
// result is clamped to [0, limit] and does not depend on slice order.
func Remaining(playerID string, events []models.AttackEvent, now time.Time, dc clock.DayClock, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	today := dc.DayStart(now)

	var day []models.AttackEvent
	for _, ev := range events {
		if ev.AttackerID != playerID || !dc.DayStart(ev.At).Equal(today) {
			continue
		}
		if ev.Kind.ConsumesMove() || ev.Kind == models.EventRestore {
			day = append(day, ev)
		}
	}
	slices.SortFunc(day, compareEvents)

	var used int64
	for _, ev := range day {
		if ev.Kind.ConsumesMove() {
			used++
		} else if used > 0 {
			used--
		}
	}

	return max(0, limit-used)
}

// compareEvents orders by time; at the same instant spends go before
// refunds, then IDs break ties.
func compareEvents(a, b models.AttackEvent) int {
	if c := a.At.Compare(b.At); c != 0 {
		return c
	}
	if c := cmp.Compare(rank(a), rank(b)); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func rank(ev models.AttackEvent) int {
	if ev.Kind.ConsumesMove() {
		return 0
	}
	return 1
}
