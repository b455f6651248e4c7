package searcher

import (
	"mindgames/game"
	"time"
)

// Searcher finds the best move for player from state.
type Searcher interface {
	Search(state game.State, player game.Player) Result
}

// Result bundles the chosen move with search diagnostics.
type Result struct {
	Move       *game.Move // nil when no move was selected
	Evaluation float64    // Root value from the searching player's perspective
	Nodes      int64
	Cutoffs    int64
	Depth      int
	Duration   time.Duration
	Workers    int
	Line       []game.Move // Principal variation, only collected WithTrace
}

// BestMove returns the chosen move, or an Accept fallback when the search selected none.
func (r Result) BestMove(player game.Player) game.Move {
	if r.Move != nil {
		return *r.Move
	}
	return game.FallbackMove(player)
}

type settings struct {
	rules    *game.Rules
	evaluate game.Evaluate
	workers  int
	trace    bool
}

type Option func(s *settings)

func WithRules(rules *game.Rules) Option {
	return func(s *settings) {
		if rules != nil {
			s.rules = rules
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *settings) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithParallel fans root moves out to at most workers goroutines. Only alpha-beta honours it.
func WithParallel(workers int) Option {
	return func(s *settings) {
		if workers > 0 {
			s.workers = workers
		}
	}
}

// WithTrace keeps the principal variation of each search in Result.Line.
func WithTrace() Option {
	return func(s *settings) {
		s.trace = true
	}
}

func newSettings(options []Option) settings {
	s := settings{ // Default values
		evaluate: game.EvaluateTrust,
		workers:  1,
	}
	for _, option := range options {
		option(&s)
	}
	if s.rules == nil {
		s.rules = game.NewRules(nil)
	}
	return s
}
