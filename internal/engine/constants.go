package engine

// Progress reporting constants
const (
	// DefaultProgressInterval is the default number of outer iterations
	// between progress reports.
	DefaultProgressInterval = 100
)

// Parallel execution constants
const (
	// MinParallelSize is the smallest transform split across goroutines.
	// Below this the scheduling overhead outweighs the O(N²) work saved.
	MinParallelSize = 64
)
