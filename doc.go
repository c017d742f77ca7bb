// Package cronexpr parses extended cron expressions and computes their next
// firing times in a named IANA time zone.
//
// An expression has five time fields followed by a time zone identifier:
//
//	┌───────────── minute (0-59)
//	│ ┌───────────── hour (0-23)
//	│ │ ┌───────────── day of month (1-31, L, <d>W)
//	│ │ │ ┌───────────── month (1-12 or JAN-DEC)
//	│ │ │ │ ┌───────────── day of week (0-7 or SUN-SAT, <w>L, <w>#<n>)
//	│ │ │ │ │ ┌───────────── time zone (IANA identifier)
//	│ │ │ │ │ │
//	* * * * * Asia/Shanghai
//
// Every field accepts comma lists of single values, ranges (1-5), and steps
// (*/15, 2-30/4). The day-of-month field additionally accepts L (last day of
// the month) and <d>W (the weekday nearest to day d, never crossing a month
// boundary). The day-of-week field accepts three-letter names, <w>L (last
// occurrence of weekday w in the month), and <w>#<n> (the n-th occurrence).
// Both 0 and 7 mean Sunday.
//
// # Quick start
//
//	schedule, err := cronexpr.Parse("0 18 * * 1-5 Asia/Shanghai")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	next, err := schedule.NextAfter(time.Now())
//
// To walk successive firings, use a Driver:
//
//	driver := schedule.Driver(time.Now())
//	for i := 0; i < 5; i++ {
//	    z, err := driver.Next()
//	    ...
//	}
//
// A Schedule is immutable and safe for concurrent use. A Driver carries a
// mutable cursor and is not.
package cronexpr
