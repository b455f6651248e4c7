package engine

import (
	"errors"
	"fmt"
	"mindgames/game"
	"mindgames/meta"
	"mindgames/searcher"
	"sync"

	"github.com/rs/zerolog/log"
)

var ErrDepth = errors.New("invalid search depth")

// MoveResult describes the chosen move to a host.
type MoveResult struct {
	Action     string      `json:"action"`
	Confidence float64     `json:"confidence"`
	Claim      *game.Claim `json:"claim,omitempty"`
}

// Response is the outcome of ComputeMove. BestMove is nil when the search selected no move.
type Response struct {
	BestMove      *MoveResult `json:"best_move"`
	Evaluation    float64     `json:"evaluation"`
	NodesExplored int64       `json:"nodes_explored"`
	DepthReached  int         `json:"depth_reached"`
	TimeMs        int64       `json:"time_ms"`
}

// Engine exposes search and evaluation over encoded states. It holds no state
// between calls beyond its configuration.
type Engine struct {
	cfg       meta.Config
	evaluator *game.Evaluator

	once    sync.Once
	initErr error
}

// New builds an engine for cfg and initializes it.
func New(cfg meta.Config) (*Engine, error) {
	e := &Engine{
		cfg:       cfg,
		evaluator: game.NewEvaluatorWithWeights(cfg.Weights),
	}
	if err := e.Initialize(); err != nil {
		return nil, err
	}
	return e, nil
}

// Initialize validates the configuration and logs readiness. Only the first
// call does any work; later calls return the same result.
func (e *Engine) Initialize() error {
	e.once.Do(func() {
		if err := e.cfg.Validate(); err != nil {
			e.initErr = err
			return
		}
		log.Info().Msgf("engine %s ready: algorithm=%s parallel=%t workers=%d deterministic=%t",
			e.cfg.Version, e.cfg.Algorithm, e.cfg.Parallel, e.cfg.Workers, e.cfg.Deterministic)
	})
	return e.initErr
}

func (e *Engine) Version() string {
	return e.cfg.Version
}

// Depth is the configured search depth, used when a caller does not pick one.
func (e *Engine) Depth() int {
	return e.cfg.Depth
}

// Searcher builds the configured searcher for one call.
func (e *Engine) Searcher(depth int) searcher.Searcher {
	options := []searcher.Option{
		searcher.WithRules(e.rules()),
		searcher.WithEvaluationFn(e.evaluator.Evaluate),
	}

	if e.cfg.Algorithm == meta.Minimax {
		return searcher.NewMinimax(depth, options...)
	}
	if e.cfg.Parallel {
		options = append(options, searcher.WithParallel(e.cfg.Workers))
	}
	return searcher.NewAlphaBeta(depth, options...)
}

func (e *Engine) rules() *game.Rules {
	switch {
	case e.cfg.Deterministic:
		return game.NewRules(game.ThresholdResolver{Threshold: e.cfg.Threshold})
	case e.cfg.Seed != 0:
		return game.NewRules(game.NewRandomResolver(e.cfg.Seed))
	}
	return game.NewRules(nil)
}

// ComputeMove decodes state, searches it for the player with the given id
// (1 or 2) to maxDepth plies and reports the chosen move.
func (e *Engine) ComputeMove(state []byte, playerID int, maxDepth int) (Response, error) {
	if maxDepth < 0 || maxDepth > meta.MAX_DEPTH {
		return Response{}, fmt.Errorf("depth %d outside [0, %d]: %w", maxDepth, meta.MAX_DEPTH, ErrDepth)
	}
	s, player, err := decode(state, playerID)
	if err != nil {
		return Response{}, err
	}

	result := e.Searcher(maxDepth).Search(s, player)

	response := Response{
		Evaluation:    result.Evaluation,
		NodesExplored: result.Nodes,
		DepthReached:  result.Depth,
		TimeMs:        result.Duration.Milliseconds(),
	}
	if result.Move != nil {
		response.BestMove = &MoveResult{
			Action:     result.Move.Action.String(),
			Confidence: result.Move.Confidence,
			Claim:      result.Move.Claim,
		}
	}
	return response, nil
}

// EvaluateState scores an encoded state for the player with the given id without searching.
func (e *Engine) EvaluateState(state []byte, playerID int) (float64, error) {
	s, player, err := decode(state, playerID)
	if err != nil {
		return 0, err
	}
	return e.evaluator.Evaluate(s, player), nil
}

func decode(data []byte, playerID int) (game.State, game.Player, error) {
	player, err := game.PlayerFromID(playerID)
	if err != nil {
		log.Warn().Err(err).Msg("rejecting request")
		return game.State{}, player, err
	}
	state, err := game.DecodeState(data)
	if err != nil {
		log.Warn().Err(err).Msg("rejecting request")
		return game.State{}, player, err
	}
	return state, player, nil
}
