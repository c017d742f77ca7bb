package cronexpr

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parse parses an extended cron expression into a Schedule.
//
// The expression has six space-separated tokens: minute, hour, day-of-month,
// month, day-of-week, and an IANA time zone identifier. The input is
// normalized first (see Normalize); parse errors quote the normalized form
// with a caret under the offending column.
func Parse(input string) (*Schedule, error) {
	normalized := Normalize(input)

	parts, starts := splitExpression(normalized)

	minutes, ferr := parseLiteralField(parts[0], minuteGrammar)
	if ferr != nil {
		return nil, newParseError(normalized, starts[0]+ferr.offset, ferr.msg)
	}

	hours, ferr := parseLiteralField(parts[1], hourGrammar)
	if ferr != nil {
		return nil, newParseError(normalized, starts[1]+ferr.offset, ferr.msg)
	}

	dom, ferr := parseDaysOfMonth(parts[2])
	if ferr != nil {
		return nil, newParseError(normalized, starts[2]+ferr.offset, ferr.msg)
	}

	months, ferr := parseLiteralField(parts[3], monthGrammar)
	if ferr != nil {
		return nil, newParseError(normalized, starts[3]+ferr.offset, ferr.msg)
	}

	dow, ferr := parseDaysOfWeek(parts[4])
	if ferr != nil {
		return nil, newParseError(normalized, starts[4]+ferr.offset, ferr.msg)
	}

	location, ferr := parseTimezone(parts[5])
	if ferr != nil {
		return nil, newParseError(normalized, starts[5]+ferr.offset, ferr.msg)
	}

	return &Schedule{
		expression:  normalized,
		minutes:     minutes,
		hours:       hours,
		months:      months,
		daysOfMonth: dom,
		daysOfWeek:  dow,
		location:    location,
	}, nil
}

// MustParse is like Parse but panics on error. It simplifies package-level
// schedule variables.
func MustParse(input string) *Schedule {
	schedule, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return schedule
}

// splitExpression cuts the normalized input into the five time fields plus
// the trailing zone token, which is greedy to the end of the input. Missing
// tokens come back as empty strings anchored at the end of the input, so
// their sub-parses fail there.
func splitExpression(normalized string) (parts [6]string, starts [6]int) {
	pos := 0
	for i := 0; i < 6; i++ {
		if pos >= len(normalized) {
			parts[i] = ""
			starts[i] = len(normalized)
			pos = len(normalized) + 1
			continue
		}
		starts[i] = pos
		if i == 5 {
			parts[i] = normalized[pos:]
			continue
		}
		if end := strings.IndexByte(normalized[pos:], ' '); end >= 0 {
			parts[i] = normalized[pos : pos+end]
			pos += end + 1
		} else {
			parts[i] = normalized[pos:]
			pos = len(normalized) + 1
		}
	}
	return parts, starts
}

// domain is the inclusive value range of one field.
type domain struct {
	lo, hi int
}

func (d domain) contains(n int) bool { return n >= d.lo && n <= d.hi }

// String renders the domain the way error messages spell it, e.g. "0..=59".
func (d domain) String() string { return fmt.Sprintf("%d..=%d", d.lo, d.hi) }

func (d domain) values() []int {
	values := make([]int, 0, d.hi-d.lo+1)
	for n := d.lo; n <= d.hi; n++ {
		values = append(values, n)
	}
	return values
}

var (
	minuteDomain     = domain{MinMinute, MaxMinute}
	hourDomain       = domain{MinHour, MaxHour}
	dayOfMonthDomain = domain{MinDayOfMonth, MaxDayOfMonth}
	monthDomain      = domain{MinMonth, MaxMonth}
	dayOfWeekDomain  = domain{MinDayOfWeek, MaxDayOfWeek}
	nthDomain        = domain{MinNthOfMonth, MaxNthOfMonth}
)

// termKind tags the closed set of parsed term shapes.
type termKind int

const (
	termLiteral termKind = iota
	termLastDayOfMonth
	termNearestWeekday
	termLastDayOfWeek
	termNthDayOfWeek
)

// termValue is one parsed term of a field list. value holds the literal, the
// nearest-weekday day, or the weekday; nth is set for termNthDayOfWeek only.
type termValue struct {
	kind  termKind
	value int
	nth   int
}

// singleParser parses one scalar of a field. A return of ok=false with a nil
// error is a structural mismatch the caller may backtrack from; a non-nil
// error is committed and aborts the whole field parse.
type singleParser func(s *fieldScanner) (int, *fieldError, bool)

// fieldGrammar bundles what parseTerm needs to know about one field: its
// domain, its scalar parser, the normalization applied to expanded literals,
// and the optional field-specific single-term forms.
type fieldGrammar struct {
	domain domain
	single singleParser
	norm   func(int) int
	ext    func(s *fieldScanner) (termValue, *fieldError, bool)
}

var (
	minuteGrammar = fieldGrammar{domain: minuteDomain, single: parseSingleNumber(minuteDomain), norm: identity}
	hourGrammar   = fieldGrammar{domain: hourDomain, single: parseSingleNumber(hourDomain), norm: identity}
	monthGrammar  = fieldGrammar{domain: monthDomain, single: parseSingleMonth, norm: identity}

	dayOfMonthGrammar = fieldGrammar{
		domain: dayOfMonthDomain,
		single: parseSingleNumber(dayOfMonthDomain),
		norm:   identity,
		ext:    parseDayOfMonthExt,
	}

	dayOfWeekGrammar = fieldGrammar{
		domain: dayOfWeekDomain,
		single: parseSingleDayOfWeek,
		norm:   normalizeSunday,
		ext:    parseDayOfWeekExt,
	}
)

func identity(n int) int { return n }

// normalizeSunday maps the Sunday alias 0 to the canonical 7, leaving every
// other weekday (Monday=1 .. Saturday=6) untouched.
func normalizeSunday(n int) int {
	if n == 0 {
		return 7
	}
	return n
}

// fieldScanner walks one field's text. Positions are byte offsets relative to
// the field start.
type fieldScanner struct {
	text string
	pos  int
}

func (s *fieldScanner) eof() bool { return s.pos >= len(s.text) }

func (s *fieldScanner) eat(c byte) bool {
	if s.pos < len(s.text) && s.text[s.pos] == c {
		s.pos++
		return true
	}
	return false
}

func (s *fieldScanner) eatName(name string) bool {
	if strings.HasPrefix(s.text[s.pos:], name) {
		s.pos += len(name)
		return true
	}
	return false
}

// number consumes a run of decimal digits. ok is false when no digit is
// present or the run overflows an int.
func (s *fieldScanner) number() (int, bool) {
	start := s.pos
	for s.pos < len(s.text) && s.text[s.pos] >= '0' && s.text[s.pos] <= '9' {
		s.pos++
	}
	if s.pos == start {
		return 0, false
	}
	n, err := strconv.Atoi(s.text[start:s.pos])
	if err != nil {
		s.pos = start
		return 0, false
	}
	return n, true
}

// parseSingleNumber parses one integer literal and commits to the domain
// check: a structurally valid number outside the domain is a hard error, not
// a fallthrough into a weaker alternative.
func parseSingleNumber(d domain) singleParser {
	return func(s *fieldScanner) (int, *fieldError, bool) {
		start := s.pos
		n, ok := s.number()
		if !ok {
			s.pos = start
			return 0, nil, false
		}
		if !d.contains(n) {
			s.pos = start
			return 0, &fieldError{
				offset: start,
				msg:    fmt.Sprintf("value must be in range %s; found %d", d, n),
			}, false
		}
		return n, nil, true
	}
}

// parseSingleDayOfWeek accepts the three-letter day names or a raw 0..7
// value. 0 stays 0 here; normalization to 7 happens when literals are
// collected, so ranges like 0-6 expand over the raw input values.
func parseSingleDayOfWeek(s *fieldScanner) (int, *fieldError, bool) {
	for _, sym := range dayOfWeekSymbols {
		if s.eatName(sym.name) {
			return sym.value, nil, true
		}
	}
	return parseSingleNumber(dayOfWeekDomain)(s)
}

// parseSingleMonth accepts the three-letter month names or a 1..12 value.
func parseSingleMonth(s *fieldScanner) (int, *fieldError, bool) {
	for _, sym := range monthSymbols {
		if s.eatName(sym.name) {
			return sym.value, nil, true
		}
	}
	return parseSingleNumber(monthDomain)(s)
}

// parseDayOfMonthExt handles the day-of-month single-term forms: L, <d>W,
// and the plain literal. Neither L nor W composes with ranges or steps.
func parseDayOfMonthExt(s *fieldScanner) (termValue, *fieldError, bool) {
	if s.eat('L') {
		return termValue{kind: termLastDayOfMonth}, nil, true
	}
	n, err, ok := parseSingleNumber(dayOfMonthDomain)(s)
	if err != nil || !ok {
		return termValue{}, err, false
	}
	if s.eat('W') {
		return termValue{kind: termNearestWeekday, value: n}, nil, true
	}
	return termValue{kind: termLiteral, value: n}, nil, true
}

// parseDayOfWeekExt handles the day-of-week single-term forms: <w>L, <w>#<n>,
// and the plain literal (name or number).
func parseDayOfWeekExt(s *fieldScanner) (termValue, *fieldError, bool) {
	n, err, ok := parseSingleDayOfWeek(s)
	if err != nil || !ok {
		return termValue{}, err, false
	}
	if s.eat('L') {
		return termValue{kind: termLastDayOfWeek, value: normalizeSunday(n)}, nil, true
	}
	if s.eat('#') {
		hashPos := s.pos - 1
		nthStart := s.pos
		nth, ok := s.number()
		if !ok {
			// a bare '#' is not part of this term; leave it for the list
			// parser to reject
			s.pos = hashPos
			return termValue{kind: termLiteral, value: normalizeSunday(n)}, nil, true
		}
		if !nthDomain.contains(nth) {
			return termValue{}, &fieldError{
				offset: nthStart,
				msg:    fmt.Sprintf("value must be in range %s; found %d", nthDomain, nth),
			}, false
		}
		return termValue{kind: termNthDayOfWeek, value: normalizeSunday(n), nth: nth}, nil, true
	}
	return termValue{kind: termLiteral, value: normalizeSunday(n)}, nil, true
}

// parseRange parses a-b over the grammar's scalar parser and commits to the
// ordering check.
func parseRange(s *fieldScanner, g fieldGrammar) ([]int, *fieldError, bool) {
	start := s.pos
	lo, err, ok := g.single(s)
	if err != nil || !ok {
		s.pos = start
		return nil, err, false
	}
	if !s.eat('-') {
		s.pos = start
		return nil, nil, false
	}
	hi, err, ok := g.single(s)
	if err != nil {
		return nil, err, false
	}
	if !ok {
		s.pos = start
		return nil, nil, false
	}
	if lo > hi {
		return nil, &fieldError{
			offset: start,
			msg:    fmt.Sprintf("range must be in ascending order; found %d-%d", lo, hi),
		}, false
	}
	values := make([]int, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		values = append(values, n)
	}
	return values, nil, true
}

// parseStep parses <base>/<step> where base is an asterisk, a range, or a
// single value extending to the top of the domain. The step checks commit.
func parseStep(s *fieldScanner, g fieldGrammar) ([]int, *fieldError, bool) {
	start := s.pos

	var candidates []int
	if s.eat('*') {
		candidates = g.domain.values()
	} else if values, err, ok := parseRange(s, g); err != nil {
		return nil, err, false
	} else if ok {
		candidates = values
	} else if n, err, ok := g.single(s); err != nil {
		return nil, err, false
	} else if ok {
		for v := n; v <= g.domain.hi; v++ {
			candidates = append(candidates, v)
		}
	} else {
		s.pos = start
		return nil, nil, false
	}

	if !s.eat('/') {
		s.pos = start
		return nil, nil, false
	}

	step, ok := s.number()
	if !ok {
		s.pos = start
		return nil, nil, false
	}
	if step == 0 {
		return nil, &fieldError{offset: start, msg: "step must be greater than 0"}, false
	}
	if !g.domain.contains(step) {
		return nil, &fieldError{
			offset: start,
			msg:    fmt.Sprintf("step must be in range %s; found %d", g.domain, step),
		}, false
	}

	var values []int
	for i := 0; i < len(candidates); i += step {
		values = append(values, candidates[i])
	}
	return values, nil, true
}

// parseTerm parses one comma-separated term. Alternatives are tried in
// order: step, range, field-specific single forms, asterisk. A nil result
// with a nil error means no alternative matched at this position.
func parseTerm(s *fieldScanner, g fieldGrammar) ([]termValue, *fieldError) {
	if values, err, ok := parseStep(s, g); err != nil {
		return nil, err
	} else if ok {
		return literalTerms(values, g.norm), nil
	}

	if values, err, ok := parseRange(s, g); err != nil {
		return nil, err
	} else if ok {
		return literalTerms(values, g.norm), nil
	}

	if g.ext != nil {
		if value, err, ok := g.ext(s); err != nil {
			return nil, err
		} else if ok {
			return []termValue{value}, nil
		}
	} else if n, err, ok := g.single(s); err != nil {
		return nil, err
	} else if ok {
		return []termValue{{kind: termLiteral, value: g.norm(n)}}, nil
	}

	if s.eat('*') {
		return literalTerms(g.domain.values(), g.norm), nil
	}

	return nil, nil
}

func literalTerms(values []int, norm func(int) int) []termValue {
	terms := make([]termValue, 0, len(values))
	for _, n := range values {
		terms = append(terms, termValue{kind: termLiteral, value: norm(n)})
	}
	return terms
}

// parseFieldTerms parses the whole field as a non-empty comma list of terms
// and requires the field to be consumed entirely.
func parseFieldTerms(text string, g fieldGrammar) ([]termValue, *fieldError) {
	s := &fieldScanner{text: text}
	var values []termValue
	for {
		termStart := s.pos
		terms, err := parseTerm(s, g)
		if err != nil {
			return nil, err
		}
		if terms == nil {
			return nil, &fieldError{offset: termStart}
		}
		values = append(values, terms...)
		if s.eat(',') {
			continue
		}
		if !s.eof() {
			return nil, &fieldError{offset: s.pos}
		}
		return values, nil
	}
}

// parseLiteralField parses a field whose terms all expand to plain literals
// (minutes, hours, months).
func parseLiteralField(text string, g fieldGrammar) (valueSet, *fieldError) {
	terms, err := parseFieldTerms(text, g)
	if err != nil {
		return valueSet{}, err
	}
	values := make([]int, 0, len(terms))
	for _, term := range terms {
		values = append(values, term.value)
	}
	return newValueSet(values), nil
}

func parseDaysOfMonth(text string) (daysOfMonth, *fieldError) {
	terms, err := parseFieldTerms(text, dayOfMonthGrammar)
	if err != nil {
		return daysOfMonth{}, err
	}
	var literals, nearest []int
	dom := daysOfMonth{wildcard: text == "*"}
	for _, term := range terms {
		switch term.kind {
		case termLiteral:
			literals = append(literals, term.value)
		case termLastDayOfMonth:
			dom.lastDayOfMonth = true
		case termNearestWeekday:
			nearest = append(nearest, term.value)
		}
	}
	dom.literals = newValueSet(literals)
	dom.nearestWeekdays = newValueSet(nearest)
	return dom, nil
}

func parseDaysOfWeek(text string) (daysOfWeek, *fieldError) {
	terms, err := parseFieldTerms(text, dayOfWeekGrammar)
	if err != nil {
		return daysOfWeek{}, err
	}
	var literals, last []int
	dow := daysOfWeek{wildcard: text == "*"}
	for _, term := range terms {
		switch term.kind {
		case termLiteral:
			literals = append(literals, term.value)
		case termLastDayOfWeek:
			last = append(last, term.value)
		case termNthDayOfWeek:
			dow.nthDaysOfWeek = appendNthWeekday(dow.nthDaysOfWeek, nthWeekday{nth: term.nth, weekday: term.value})
		}
	}
	dow.literals = newValueSet(literals)
	dow.lastDaysOfWeek = newValueSet(last)
	return dow, nil
}

const timezoneHint = "for a list of time zones, see the list of tz database time zones on Wikipedia: " +
	"https://en.wikipedia.org/wiki/List_of_tz_database_time_zones#List"

// parseTimezone resolves the trailing zone token against the host zone
// database.
func parseTimezone(text string) (*time.Location, *fieldError) {
	if text == "" {
		return nil, &fieldError{}
	}
	location, err := time.LoadLocation(text)
	if err != nil {
		return nil, &fieldError{
			msg: fmt.Sprintf("failed to find timezone %s; %s", text, timezoneHint),
		}
	}
	return location, nil
}
