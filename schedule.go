package cronexpr

import (
	"sort"
	"time"
)

// Schedule is the immutable, validated form of a crontab expression. It is
// safe to share across goroutines without synchronization.
type Schedule struct {
	expression  string
	minutes     valueSet
	hours       valueSet
	months      valueSet
	daysOfMonth daysOfMonth
	daysOfWeek  daysOfWeek
	location    *time.Location
}

// String returns the normalized expression the schedule was parsed from.
func (s *Schedule) String() string { return s.expression }

// Location returns the resolved time zone the schedule fires in.
func (s *Schedule) Location() *time.Location { return s.location }

// valueSet is an ordered set of small integers. Keeping it sorted makes
// debug dumps deterministic across runs.
type valueSet struct {
	values []int
}

func newValueSet(values []int) valueSet {
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	unique := sorted[:0]
	for i, n := range sorted {
		if i == 0 || n != sorted[i-1] {
			unique = append(unique, n)
		}
	}
	return valueSet{values: unique}
}

func (v valueSet) contains(n int) bool {
	i := sort.SearchInts(v.values, n)
	return i < len(v.values) && v.values[i] == n
}

func (v valueSet) empty() bool { return len(v.values) == 0 }

// daysOfMonth is the composite day-of-month matcher: literal days, the L
// marker, and the <d>W nearest-weekday days. wildcard records whether the
// field was literally "*", kept around for the Vixie day-field disjunction
// rule should it ever be adopted.
type daysOfMonth struct {
	literals        valueSet
	lastDayOfMonth  bool
	nearestWeekdays valueSet
	wildcard        bool
}

func (d daysOfMonth) matches(t time.Time) bool {
	day := t.Day()
	if d.literals.contains(day) {
		return true
	}
	if d.lastDayOfMonth && day == daysInMonth(t) {
		return true
	}
	if d.nearestWeekdays.empty() {
		return false
	}
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		// the nearest weekday to any day is never a weekend day
		return false
	case time.Tuesday, time.Wednesday, time.Thursday:
		return d.nearestWeekdays.contains(day)
	case time.Monday:
		if d.nearestWeekdays.contains(day) {
			return true
		}
		// the target fell on Sunday and rolls forward
		if d.nearestWeekdays.contains(day - 1) {
			return true
		}
		// the 1st was a Saturday; the match may not cross into the previous
		// month, so it rolls forward to Monday the 3rd
		return day == 3 && d.nearestWeekdays.contains(1)
	case time.Friday:
		if d.nearestWeekdays.contains(day) {
			return true
		}
		last := daysInMonth(t)
		// the target falls on Saturday and rolls back
		if day+1 <= last && d.nearestWeekdays.contains(day+1) {
			return true
		}
		// the target is the last day of the month and falls on Sunday; the
		// match may not cross into the next month, so it rolls back two days
		return day+2 == last && d.nearestWeekdays.contains(day+2)
	}
	return false
}

// nthWeekday is one <w>#<n> term: the nth occurrence of the weekday in a
// month.
type nthWeekday struct {
	nth     int
	weekday int
}

// appendNthWeekday inserts keeping (nth, weekday) order and uniqueness.
func appendNthWeekday(list []nthWeekday, nw nthWeekday) []nthWeekday {
	i := sort.Search(len(list), func(i int) bool {
		if list[i].nth != nw.nth {
			return list[i].nth >= nw.nth
		}
		return list[i].weekday >= nw.weekday
	})
	if i < len(list) && list[i] == nw {
		return list
	}
	list = append(list, nthWeekday{})
	copy(list[i+1:], list[i:])
	list[i] = nw
	return list
}

// daysOfWeek is the composite day-of-week matcher: literal weekdays
// (Monday=1 .. Sunday=7), the <w>L last-occurrence weekdays, and the <w>#<n>
// nth-occurrence pairs.
type daysOfWeek struct {
	literals       valueSet
	lastDaysOfWeek valueSet
	nthDaysOfWeek  []nthWeekday
	wildcard       bool
}

func (d daysOfWeek) matches(t time.Time) bool {
	weekday := isoWeekday(t)
	if d.literals.contains(weekday) {
		return true
	}
	if d.lastDaysOfWeek.contains(weekday) && t.Day()+7 > daysInMonth(t) {
		return true
	}
	for _, nw := range d.nthDaysOfWeek {
		if nw.weekday != weekday {
			continue
		}
		if nthWeekdayOfMonth(t.Year(), t.Month(), nw.nth, nw.weekday, t.Location()) == t.Day() {
			return true
		}
	}
	return false
}

// isoWeekday maps time.Weekday onto Monday=1 .. Sunday=7.
func isoWeekday(t time.Time) int {
	if wd := int(t.Weekday()); wd != 0 {
		return wd
	}
	return 7
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// nthWeekdayOfMonth returns the day of month of the nth occurrence of the
// weekday (Monday=1 .. Sunday=7), or 0 when the month has no such
// occurrence.
func nthWeekdayOfMonth(year int, month time.Month, nth, weekday int, loc *time.Location) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	day := 1 + (weekday-isoWeekday(first)+7)%7 + (nth-1)*7
	if day > daysInMonth(first) {
		return 0
	}
	return day
}
