package biztime

import "time"

const (
	// BusinessDayStartHour is when the SLA clock starts on a weekday after a
	// weekend creation.
	BusinessDayStartHour = 9

	// DefaultSLAWindowHours is the intervention SLA window.
	DefaultSLAWindowHours = 48
)

// SLAClock computes remaining SLA hours for an intervention, excluding
// weekends from the clock. Saturday and Sunday never count; an intervention
// created on a weekend does not start its clock until Monday 09:00.
//
// The default accounting mode reproduces the historical behavior: weekend
// time inside the elapsed window is approximated with whole 24h day-buckets
// anchored on the creation instant. This can under- or over-count near
// midnight boundaries. ExactWeekend enables exact interval arithmetic
// instead; it changes user-visible urgency numbers, so it is opt-in.
type SLAClock struct {
	WindowHours  int
	ExactWeekend bool
}

// DefaultClock is the production SLA policy: 48 hours, legacy weekend
// accounting.
var DefaultClock = SLAClock{WindowHours: DefaultSLAWindowHours}

// IsWeekend reports whether t falls on Saturday or Sunday in the business
// timezone.
func IsWeekend(t time.Time) bool {
	wd := t.In(Location()).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// NextBusinessClockStart returns the first weekday 09:00 at or after t when t
// falls on a weekend, in the business timezone. For a weekday t it returns t
// unchanged: the clock starts immediately.
func NextBusinessClockStart(t time.Time) time.Time {
	if !IsWeekend(t) {
		return t
	}
	day := StartOfDay(t)
	for IsWeekend(day) {
		day = day.AddDate(0, 0, 1)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), BusinessDayStartHour, 0, 0, 0, Location())
}

// HoursRemaining returns the SLA hours left for an intervention created at
// createdAt, as observed at now. The result is clamped to [0, WindowHours];
// zero means due now or overdue. Use Overdue to distinguish the two.
func (c SLAClock) HoursRemaining(createdAt, now time.Time) float64 {
	remaining := c.hoursRemainingSigned(createdAt, now)
	window := float64(c.WindowHours)
	if remaining < 0 {
		return 0
	}
	if remaining > window {
		return window
	}
	return remaining
}

// Overdue reports whether the SLA window has fully elapsed.
func (c SLAClock) Overdue(createdAt, now time.Time) bool {
	return c.hoursRemainingSigned(createdAt, now) < 0
}

func (c SLAClock) hoursRemainingSigned(createdAt, now time.Time) float64 {
	window := float64(c.WindowHours)

	if IsWeekend(createdAt) {
		start := NextBusinessClockStart(createdAt)
		if c.ExactWeekend {
			return window - businessHoursBetween(start, now)
		}
		return window - now.Sub(start).Hours()
	}

	if c.ExactWeekend {
		return window - businessHoursBetween(createdAt, now)
	}

	elapsed := now.Sub(createdAt).Hours()
	if elapsed < 0 {
		elapsed = 0
	}

	// Legacy approximation: whole 24h buckets anchored on the creation
	// instant, each bucket counted as weekend when its start lands on one.
	weekendHours := 0.0
	for k := 0; k < int(elapsed/24); k++ {
		if IsWeekend(createdAt.Add(time.Duration(k) * 24 * time.Hour)) {
			weekendHours += 24
		}
	}

	return window - (elapsed - weekendHours)
}

// businessHoursBetween returns the exact number of non-weekend hours between
// from and to.
func businessHoursBetween(from, to time.Time) float64 {
	if !to.After(from) {
		return 0
	}
	total := 0.0
	cur := from.In(Location())
	end := to.In(Location())
	for cur.Before(end) {
		dayEnd := StartOfDay(cur).AddDate(0, 0, 1)
		if dayEnd.After(end) {
			dayEnd = end
		}
		if !IsWeekend(cur) {
			total += dayEnd.Sub(cur).Hours()
		}
		cur = dayEnd
	}
	return total
}

// WindowStart returns the earliest creation instant still inside the SLA
// window at now. The repository uses it to keep the urgent predicate a single
// parameterized timestamp comparison.
func (c SLAClock) WindowStart(now time.Time) time.Time {
	return c.HoursBack(now, c.WindowHours)
}

// HoursBack walks the given number of business hours backward from now,
// skipping weekend hours, and returns the resulting instant in UTC.
func (c SLAClock) HoursBack(now time.Time, hours int) time.Time {
	t := now.In(Location())
	remaining := hours
	for remaining > 0 {
		t = t.Add(-time.Hour)
		if !IsWeekend(t) {
			remaining--
		}
	}
	return t.UTC()
}
