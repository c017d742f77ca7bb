package cronexpr

import (
	"fmt"
	"time"
)

// NextAfter returns the first firing strictly after t, as a wall-clock time
// in the schedule's zone.
//
// The search advances field by field in local time: whole months are skipped
// while the month does not match, then days, hours, and minutes, with the
// day-of-week constraint checked last. If nothing matches within four years
// the schedule is unsatisfiable and an error is returned.
func (s *Schedule) NextAfter(t time.Time) (time.Time, error) {
	next := t.In(s.location)
	bound := next.AddDate(searchYears, 0, 0)

	// at least the next minute, aligned to minute resolution
	next = truncateToMinute(next.Add(time.Minute))

	for {
		if next.After(bound) {
			return time.Time{}, errorf(
				"failed to find next timestamp in four years; end with %s", formatZoned(next))
		}

		if !s.months.contains(int(next.Month())) {
			restDays := daysInMonth(next) - next.Day() + 1
			next = truncateToDay(next.AddDate(0, 0, restDays))
			continue
		}

		if !s.daysOfMonth.matches(next) {
			next = truncateToDay(next.AddDate(0, 0, 1))
			continue
		}

		if !s.hours.contains(next.Hour()) {
			next = truncateToHour(next.Add(time.Hour))
			continue
		}

		if !s.minutes.contains(next.Minute()) {
			next = truncateToMinute(next.Add(time.Minute))
			continue
		}

		if !s.daysOfWeek.matches(next) {
			next = truncateToDay(next.AddDate(0, 0, 1))
			continue
		}

		return next, nil
	}
}

// Driver returns a driver whose first firing is the first one strictly after
// start.
func (s *Schedule) Driver(start time.Time) *Driver {
	return &Driver{schedule: s, last: start}
}

// Driver walks the successive firings of a Schedule. It remembers the last
// emitted instant, so repeated calls to Next yield a strictly increasing
// sequence. A Driver is single-owner; sharing one across goroutines needs
// external synchronization.
type Driver struct {
	schedule *Schedule
	last     time.Time
}

// Next advances the driver and returns the next firing in the schedule's
// zone.
func (d *Driver) Next() (time.Time, error) {
	next, err := d.schedule.NextAfter(d.last)
	if err != nil {
		return time.Time{}, err
	}
	d.last = next
	return next, nil
}

// NextInstant advances the driver and returns the next firing as a UTC
// instant.
func (d *Driver) NextInstant() (time.Time, error) {
	next, err := d.Next()
	if err != nil {
		return time.Time{}, err
	}
	return next.UTC(), nil
}

// Peek returns the next firing without advancing the driver.
func (d *Driver) Peek() (time.Time, error) {
	return d.schedule.NextAfter(d.last)
}

// PeekInstant returns the next firing as a UTC instant without advancing the
// driver.
func (d *Driver) PeekInstant() (time.Time, error) {
	next, err := d.Peek()
	if err != nil {
		return time.Time{}, err
	}
	return next.UTC(), nil
}

// Truncation is in local time, rounding toward the past.

func truncateToMinute(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
}

func truncateToHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func formatZoned(t time.Time) string {
	return fmt.Sprintf("%s[%s]", t.Format("2006-01-02T15:04:05-07:00"), t.Location())
}
