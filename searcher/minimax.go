package searcher

import (
	"mindgames/game"

	"github.com/rs/zerolog/log"
)

// Minimax is the reference exhaustive search, without pruning.
type Minimax struct {
	settings
	depth int
}

func NewMinimax(depth int, options ...Option) *Minimax {
	if depth < 0 {
		panic("search depth cannot be negative")
	}
	return &Minimax{
		settings: newSettings(options),
		depth:    depth,
	}
}

func (m *Minimax) Search(state game.State, player game.Player) Result {
	metrics := NewMetricsCollector()
	metrics.Start(1)

	w := newWalk(m.rules, m.evaluate, state, metrics)
	move, evaluation := w.minimax(w.tree.Root(), m.depth, player, true)

	result := complete(metrics.Complete(), move, evaluation, m.depth)
	if m.trace {
		result.Line = w.tree.PrincipalVariation()
	}
	logResult("minimax", result)
	return result
}

func (w *walk) minimax(node int, depth int, player game.Player, maximizing bool) (*game.Move, float64) {
	w.metrics.AddNode()

	moves := w.moves(node, depth, player)
	if len(moves) == 0 {
		return nil, w.leaf(node, player)
	}

	var best *game.Move
	bestValue := worst(maximizing)
	for i := range moves {
		child := w.expand(node, moves[i])
		_, value := w.minimax(child, depth-1, player.Opponent(), !maximizing)

		// Strict comparison keeps the first generated move on ties
		if better(value, bestValue, maximizing) {
			bestValue = value
			best = &moves[i]
			w.tree.SetBest(node, child)
		}
	}

	w.tree.SetEvaluation(node, bestValue)
	return best, bestValue
}

func complete(metrics SearchMetrics, move *game.Move, evaluation float64, depth int) Result {
	return Result{
		Move:       move,
		Evaluation: evaluation,
		Nodes:      metrics.Nodes,
		Cutoffs:    metrics.Cutoffs,
		Depth:      depth,
		Duration:   metrics.Duration,
		Workers:    metrics.Workers,
	}
}

func logResult(algorithm string, result Result) {
	e := log.Debug().
		Str("algorithm", algorithm).
		Int("depth", result.Depth).
		Int("workers", result.Workers).
		Int64("nodes", result.Nodes).
		Int64("cutoffs", result.Cutoffs).
		Float64("evaluation", result.Evaluation).
		Dur("duration", result.Duration)
	if result.Move != nil {
		e = e.Stringer("move", result.Move)
	}
	e.Msg("search complete")
}
