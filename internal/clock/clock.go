// Package clock abstracts wall time and computes game-day boundaries.
package clock

import (
	"fmt"
	"time"

	// Embedded IANA database so day boundaries do not depend on host zoneinfo.
	_ "time/tzdata"
)

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

// Now returns the current time using the system clock.
func (RealClock) Now() time.Time {
	return time.Now()
}

const (
	DefaultTimezone = "America/New_York"
	DefaultHour     = 8
)

// DayClock maps instants to the start of their game day: a fixed civil hour
// in a fixed timezone. Offsets are resolved per date, so DST is handled by
// the zone rules rather than a hard-coded offset.
type DayClock struct {
	loc  *time.Location
	hour int
}

// NewDayClock loads tz and returns a DayClock for the given civil hour.
func NewDayClock(tz string, hour int) (DayClock, error) {
	if hour < 0 || hour > 23 {
		return DayClock{}, fmt.Errorf("day start hour out of range: %d", hour)
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return DayClock{}, fmt.Errorf("load timezone %q: %w", tz, err)
	}
	return DayClock{loc: loc, hour: hour}, nil
}

// MustDayClock is NewDayClock for static configuration; it panics on error.
func MustDayClock(tz string, hour int) DayClock {
	dc, err := NewDayClock(tz, hour)
	if err != nil {
		panic(err)
	}
	return dc
}

// Location returns the civil timezone of the boundary.
func (c DayClock) Location() *time.Location {
	return c.loc
}

// DayStart returns the boundary instant of the game day containing t.
// Before the civil hour the boundary is on the previous calendar day.
func (c DayClock) DayStart(t time.Time) time.Time {
	local := t.In(c.loc)
	y, m, d := local.Date()
	start := time.Date(y, m, d, c.hour, 0, 0, 0, c.loc)
	if local.Before(start) {
		start = time.Date(y, m, d-1, c.hour, 0, 0, 0, c.loc)
	}
	return start
}

// NextDayStart returns the boundary that ends the game day containing t.
func (c DayClock) NextDayStart(t time.Time) time.Time {
	start := c.DayStart(t)
	y, m, d := start.Date()
	return time.Date(y, m, d+1, c.hour, 0, 0, 0, c.loc)
}

// SameDay reports whether a and b fall in the same game day.
func (c DayClock) SameDay(a, b time.Time) bool {
	return c.DayStart(a).Equal(c.DayStart(b))
}
