package searcher

import (
	"mindgames/game"
)

// walk is the state of one recursive traversal. Each search call, and each
// parallel worker, owns its own walk, tree and rules.
type walk struct {
	rules    *game.Rules
	evaluate game.Evaluate
	tree     *game.Tree
	metrics  MetricsCollector
}

func newWalk(rules *game.Rules, evaluate game.Evaluate, root game.State, metrics MetricsCollector) *walk {
	return &walk{
		rules:    rules,
		evaluate: evaluate,
		tree:     game.NewTree(root),
		metrics:  metrics,
	}
}

// expand applies move to node's state and records the successor in the tree.
func (w *walk) expand(node int, move game.Move) int {
	state := w.tree.Node(node).State
	return w.tree.AddChild(node, w.rules.Apply(state, move), move)
}

// moves returns the legal moves at node, or nil when node is a leaf.
func (w *walk) moves(node int, depth int, player game.Player) []game.Move {
	state := w.tree.Node(node).State
	if depth == 0 || w.rules.IsTerminal(state) {
		return nil
	}
	return w.rules.GenerateMoves(state, player)
}

// leaf scores node for the player acting at its ply.
func (w *walk) leaf(node int, player game.Player) float64 {
	value := w.evaluate(w.tree.Node(node).State, player)
	w.tree.SetEvaluation(node, value)
	return value
}

func worst(maximizing bool) float64 {
	if maximizing {
		return negInf
	}
	return posInf
}

func better(value, best float64, maximizing bool) bool {
	if maximizing {
		return value > best
	}
	return value < best
}
