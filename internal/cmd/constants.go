package cmd

// Next command constants
const (
	// DefaultNextCount is the default number of firings to show
	DefaultNextCount = 10
	// MinNextCount is the minimum number of firings to show
	MinNextCount = 1
	// MaxNextCount is the maximum number of firings to show
	MaxNextCount = 100
)
