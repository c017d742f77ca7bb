package cronfile

import (
	"strings"

	"github.com/cratesland/cronexpr"
)

// ParseLine parses a single line from a schedule file and returns an Entry.
// A schedule file carries one crontab expression per line; blank lines and
// lines starting with '#' are ignored.
func ParseLine(line string, lineNumber int) *Entry {
	entry := &Entry{
		LineNumber: lineNumber,
		Raw:        line,
	}

	trimmed := strings.TrimSpace(line)

	if trimmed == "" {
		entry.Type = EntryTypeEmpty
		return entry
	}

	if strings.HasPrefix(trimmed, "#") {
		entry.Type = EntryTypeComment
		return entry
	}

	entry.Type = EntryTypeExpression
	entry.Expression = cronexpr.Normalize(trimmed)

	if _, err := cronexpr.Parse(trimmed); err != nil {
		entry.Error = err.Error()
		return entry
	}

	entry.Valid = true
	return entry
}
