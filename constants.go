package epicycles

import (
	"math"

	"github.com/tphakala/go-epicycles/internal/engine"
)

// Decomposition defaults
const (
	// DefaultDecimationTarget is the point count DecimateToTarget aims for
	// when preparing a traced path for the quadratic-time transform.
	DefaultDecimationTarget = 1000

	// DefaultProgressInterval is the number of completed frequency bins
	// between progress callbacks when Config.ProgressInterval is zero.
	DefaultProgressInterval = engine.DefaultProgressInterval
)

// Worker limits
const (
	maxWorkers = 256 // Maximum supported worker count
)

const twoPi = 2 * math.Pi
