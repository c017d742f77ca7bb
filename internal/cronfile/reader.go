package cronfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Reader provides methods to read schedule files
type Reader interface {
	// ReadFile reads and parses all entries from a file
	ReadFile(path string) ([]*Entry, error)

	// Read reads and parses all entries from a stream
	Read(r io.Reader) ([]*Entry, error)
}

// reader implements the Reader interface
type reader struct{}

// NewReader creates a new schedule file reader
func NewReader() Reader {
	return &reader{}
}

// ReadFile reads and parses all entries from a file
func (r *reader) ReadFile(path string) ([]*Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schedule file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return r.Read(file)
}

// Read reads and parses all entries from a stream
func (r *reader) Read(rd io.Reader) ([]*Entry, error) {
	var entries []*Entry

	scanner := bufio.NewScanner(rd)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		entries = append(entries, ParseLine(scanner.Text(), lineNumber))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read schedule file: %w", err)
	}

	return entries, nil
}

// Expressions filters the expression entries out of a parsed file.
func Expressions(entries []*Entry) []*Entry {
	var expressions []*Entry
	for _, entry := range entries {
		if entry.Type == EntryTypeExpression {
			expressions = append(expressions, entry)
		}
	}
	return expressions
}
