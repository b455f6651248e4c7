// meta/meta.go
package meta

// VERSION is reported by the engine boundary.
const VERSION = "1.0.0"

// DEPTH is the search depth used when a caller does not pick one.
const DEPTH = 4

// MAX_DEPTH bounds caller supplied search depths.
const MAX_DEPTH = 255

// ALGORITHM is the default search algorithm.
const ALGORITHM = AlphaBeta

// RESOLUTION_THRESHOLD is the success probability above which claims hold under deterministic resolution.
const RESOLUTION_THRESHOLD = 0.5

// ADDR is the default listen address of the agent server.
const ADDR = ":8080"

// Search algorithms
const (
	Minimax   = "minimax"
	AlphaBeta = "alphabeta"
)
