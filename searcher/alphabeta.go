package searcher

import (
	"math"
	"mindgames/game"

	"golang.org/x/sync/errgroup"
)

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

// AlphaBeta is a minimax search with alpha-beta pruning. With more than one
// worker and a depth above ParallelThreshold, root moves are searched concurrently.
type AlphaBeta struct {
	settings
	depth int
}

func NewAlphaBeta(depth int, options ...Option) *AlphaBeta {
	if depth < 0 {
		panic("search depth cannot be negative")
	}
	return &AlphaBeta{
		settings: newSettings(options),
		depth:    depth,
	}
}

func (a *AlphaBeta) Search(state game.State, player game.Player) Result {
	if a.workers > 1 && a.depth > ParallelThreshold {
		return a.searchParallel(state, player)
	}

	metrics := NewMetricsCollector()
	metrics.Start(1)

	w := newWalk(a.rules, a.evaluate, state, metrics)
	move, evaluation := w.alphaBeta(w.tree.Root(), a.depth, negInf, posInf, player, true)

	result := complete(metrics.Complete(), move, evaluation, a.depth)
	if a.trace {
		result.Line = w.tree.PrincipalVariation()
	}
	logResult("alphabeta", result)
	return result
}

func (w *walk) alphaBeta(node int, depth int, alpha, beta float64, player game.Player, maximizing bool) (*game.Move, float64) {
	w.metrics.AddNode()

	moves := w.moves(node, depth, player)
	if len(moves) == 0 {
		return nil, w.leaf(node, player)
	}

	var best *game.Move
	bestValue := worst(maximizing)
	for i := range moves {
		child := w.expand(node, moves[i])
		_, value := w.alphaBeta(child, depth-1, alpha, beta, player.Opponent(), !maximizing)

		if better(value, bestValue, maximizing) {
			bestValue = value
			best = &moves[i]
			w.tree.SetBest(node, child)
		}
		if maximizing {
			alpha = math.Max(alpha, value)
		} else {
			beta = math.Min(beta, value)
		}

		// Remaining siblings cannot change the parent's choice
		if beta <= alpha {
			w.metrics.AddCutoff()
			break
		}
	}

	w.tree.SetEvaluation(node, bestValue)
	return best, bestValue
}

// branch is the outcome of searching one root move.
type branch struct {
	move  game.Move
	value float64
	line  []game.Move
}

// searchParallel searches every root move in its own task with fresh bounds, its
// own tree and its own rules forked by move index, so a seeded search draws the
// same outcomes however tasks are scheduled. Node counts of all workers are
// summed into the result.
func (a *AlphaBeta) searchParallel(state game.State, player game.Player) Result {
	metrics := NewMetricsCollector()
	metrics.Start(a.workers)

	root := newWalk(a.rules, a.evaluate, state, metrics)
	metrics.AddNode()
	moves := root.moves(root.tree.Root(), a.depth, player)
	if len(moves) == 0 {
		evaluation := root.leaf(root.tree.Root(), player)
		result := complete(metrics.Complete(), nil, evaluation, a.depth)
		logResult("alphabeta-parallel", result)
		return result
	}

	branches := make([]branch, len(moves))
	var g errgroup.Group
	g.SetLimit(a.workers)
	for i, move := range moves {
		i, move := i, move
		rules := a.rules.Fork(i)
		g.Go(func() error {
			child := rules.Apply(state, move)
			w := newWalk(rules, a.evaluate, child, metrics)
			_, value := w.alphaBeta(w.tree.Root(), a.depth-1, negInf, posInf, player.Opponent(), false)

			branches[i] = branch{move: move, value: value}
			if a.trace {
				branches[i].line = append([]game.Move{move}, w.tree.PrincipalVariation()...)
			}
			return nil
		})
	}
	_ = g.Wait() // Tasks never fail

	// Reduce in generation order so ties keep the first root move
	best := 0
	for i := 1; i < len(branches); i++ {
		if branches[i].value > branches[best].value {
			best = i
		}
	}

	result := complete(metrics.Complete(), &branches[best].move, branches[best].value, a.depth)
	result.Line = branches[best].line
	logResult("alphabeta-parallel", result)
	return result
}
