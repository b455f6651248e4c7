package engine

import (
	"encoding/json"
	"mindgames/game"
	"mindgames/meta"
	"testing"

	"github.com/stretchr/testify/require"
)

const openingJSON = `{"round":1,"phase":"Claim","player1_trust":50,"player2_trust":50,"current_claim":null,"move_history":[]}`

func deterministicConfig(algorithm string) meta.Config {
	cfg := meta.DefaultConfig()
	cfg.Algorithm = algorithm
	cfg.Deterministic = true
	cfg.Workers = 4
	return cfg
}

func newEngine(t *testing.T, cfg meta.Config) *Engine {
	e, err := New(cfg)
	require.NoError(t, err)
	return e
}

func TestNew(t *testing.T) {
	t.Run("reporting the configured version", func(t *testing.T) {
		e := newEngine(t, meta.DefaultConfig())
		require.Equal(t, meta.VERSION, e.Version())
	})

	t.Run("initialize is idempotent", func(t *testing.T) {
		e := newEngine(t, meta.DefaultConfig())

		for i := 0; i < 3; i++ {
			require.NoError(t, e.Initialize())
		}
	})

	t.Run("initialize reports an invalid config every time", func(t *testing.T) {
		cfg := meta.DefaultConfig()
		cfg.Workers = 0
		e := &Engine{cfg: cfg}

		require.ErrorIs(t, e.Initialize(), meta.ErrConfig)
		require.ErrorIs(t, e.Initialize(), meta.ErrConfig)
	})

	t.Run("rejecting an invalid config", func(t *testing.T) {
		cfg := meta.DefaultConfig()
		cfg.Algorithm = "mcts"

		_, err := New(cfg)
		require.ErrorIs(t, err, meta.ErrConfig)
	})
}

func TestComputeMove(t *testing.T) {
	t.Run("minimax from the opening", func(t *testing.T) {
		e := newEngine(t, deterministicConfig(meta.Minimax))

		response, err := e.ComputeMove([]byte(openingJSON), 1, 2)

		require.NoError(t, err)
		require.NotNil(t, response.BestMove)
		require.Equal(t, "MakeClaim", response.BestMove.Action)
		require.InDelta(t, 0.94, response.BestMove.Confidence, 1e-9)
		require.Equal(t, 0.2, response.BestMove.Claim.Boldness)
		require.InDelta(t, 5.0/3.0, response.Evaluation, 1e-9)
		require.Equal(t, int64(49), response.NodesExplored)
		require.Equal(t, 2, response.DepthReached)
		require.GreaterOrEqual(t, response.TimeMs, int64(0))
	})

	t.Run("alpha-beta agrees with minimax", func(t *testing.T) {
		e := newEngine(t, deterministicConfig(meta.AlphaBeta))

		response, err := e.ComputeMove([]byte(openingJSON), 1, 2)

		require.NoError(t, err)
		require.InDelta(t, 5.0/3.0, response.Evaluation, 1e-9)
		require.Equal(t, int64(37), response.NodesExplored)
	})

	t.Run("parallel search at depth above the threshold", func(t *testing.T) {
		e := newEngine(t, deterministicConfig(meta.AlphaBeta))

		parallel, err := e.ComputeMove([]byte(openingJSON), 1, 4)
		require.NoError(t, err)

		cfg := deterministicConfig(meta.Minimax)
		sequential, err := newEngine(t, cfg).ComputeMove([]byte(openingJSON), 1, 4)
		require.NoError(t, err)

		require.InDelta(t, sequential.Evaluation, parallel.Evaluation, 1e-9)
		require.Equal(t, sequential.BestMove, parallel.BestMove)
		require.Equal(t, 4, parallel.DepthReached)
	})

	t.Run("depth zero selects no move", func(t *testing.T) {
		e := newEngine(t, deterministicConfig(meta.AlphaBeta))

		response, err := e.ComputeMove([]byte(openingJSON), 2, 0)

		require.NoError(t, err)
		require.Nil(t, response.BestMove)
		require.Equal(t, int64(1), response.NodesExplored)
		require.Equal(t, 0, response.DepthReached)
	})

	t.Run("a random resolver still yields a legal move", func(t *testing.T) {
		cfg := meta.DefaultConfig()
		cfg.Seed = 7
		e := newEngine(t, cfg)

		response, err := e.ComputeMove([]byte(openingJSON), 1, 4)

		require.NoError(t, err)
		require.NotNil(t, response.BestMove)
		require.Equal(t, "MakeClaim", response.BestMove.Action)
		require.LessOrEqual(t, response.Evaluation, game.MaxEvaluation)
		require.GreaterOrEqual(t, response.Evaluation, game.MinEvaluation)
	})

	t.Run("encodes with snake case fields", func(t *testing.T) {
		e := newEngine(t, deterministicConfig(meta.Minimax))

		response, err := e.ComputeMove([]byte(openingJSON), 1, 1)
		require.NoError(t, err)
		data, err := json.Marshal(response)
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(data, &fields))
		for _, key := range []string{"best_move", "evaluation", "nodes_explored", "depth_reached", "time_ms"} {
			require.Contains(t, fields, key)
		}
		require.Contains(t, fields["best_move"], "action")
		require.Contains(t, fields["best_move"], "confidence")
	})

	t.Run("rejecting bad input", func(t *testing.T) {
		e := newEngine(t, deterministicConfig(meta.AlphaBeta))

		_, err := e.ComputeMove([]byte(`{"round":1}`), 1, 2)
		require.ErrorIs(t, err, game.ErrDecode)

		_, err = e.ComputeMove([]byte(openingJSON), 3, 2)
		require.ErrorIs(t, err, game.ErrPlayer)

		_, err = e.ComputeMove([]byte(openingJSON), 1, -1)
		require.ErrorIs(t, err, ErrDepth)

		_, err = e.ComputeMove([]byte(openingJSON), 1, meta.MAX_DEPTH+1)
		require.ErrorIs(t, err, ErrDepth)
	})
}

func TestEvaluateState(t *testing.T) {
	e := newEngine(t, meta.DefaultConfig())
	leading := `{"round":1,"phase":"Claim","player1_trust":80,"player2_trust":50,"current_claim":null,"move_history":[]}`

	t.Run("scoring from each side", func(t *testing.T) {
		first, err := e.EvaluateState([]byte(leading), 1)
		require.NoError(t, err)
		require.InDelta(t, 20.0, first, 1e-9, "Differential of 10 and a high trust bonus of 10")

		second, err := e.EvaluateState([]byte(leading), 2)
		require.NoError(t, err)
		require.InDelta(t, -10.0, second, 1e-9)
	})

	t.Run("honoring configured weights", func(t *testing.T) {
		cfg := meta.DefaultConfig()
		cfg.Weights.TrustAbsolute = 0
		value, err := newEngine(t, cfg).EvaluateState([]byte(leading), 1)

		require.NoError(t, err)
		require.InDelta(t, 10.0, value, 1e-9)
	})

	t.Run("rejecting bad input", func(t *testing.T) {
		_, err := e.EvaluateState([]byte("not json"), 1)
		require.ErrorIs(t, err, game.ErrDecode)

		_, err = e.EvaluateState([]byte(openingJSON), 0)
		require.ErrorIs(t, err, game.ErrPlayer)
	})
}
