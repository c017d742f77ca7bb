package cronexpr

// symbol maps a three-letter name to its numeric field value. Names are
// matched case-sensitively: only the exact upper-case forms are part of the
// grammar.
type symbol struct {
	name  string
	value int
}

// dayOfWeekSymbols lists the day-of-week names with their raw input values
// (Sunday is 0 on input and normalizes to 7 internally).
var dayOfWeekSymbols = []symbol{
	{"SUN", 0},
	{"MON", 1},
	{"TUE", 2},
	{"WED", 3},
	{"THU", 4},
	{"FRI", 5},
	{"SAT", 6},
}

// monthSymbols lists the month names with their numeric values.
var monthSymbols = []symbol{
	{"JAN", 1},
	{"FEB", 2},
	{"MAR", 3},
	{"APR", 4},
	{"MAY", 5},
	{"JUN", 6},
	{"JUL", 7},
	{"AUG", 8},
	{"SEP", 9},
	{"OCT", 10},
	{"NOV", 11},
	{"DEC", 12},
}
