package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func stateAt(round uint8, p1, p2 int) State {
	return State{Round: round, Phase: ClaimPhase, Player1Trust: p1, Player2Trust: p2}
}

func TestEvaluate(t *testing.T) {
	evaluator := NewEvaluator()

	t.Run("balanced state is near zero for both players", func(t *testing.T) {
		state := stateAt(10, 50, 50)

		require.Less(t, abs(evaluator.Evaluate(state, First)), 10.0)
		require.Less(t, abs(evaluator.Evaluate(state, Second)), 10.0)
	})

	t.Run("higher trust is favoured", func(t *testing.T) {
		state := stateAt(10, 80, 30)

		require.Greater(t, evaluator.Evaluate(state, First), 0.0)
		require.Less(t, evaluator.Evaluate(state, Second), 0.0)
		require.InDelta(t, 50.0/3.0+10.0, evaluator.Evaluate(state, First), 1e-9,
			"Differential plus weighted absolute bonus")
	})

	t.Run("lower trust is penalised", func(t *testing.T) {
		require.Less(t, evaluator.Evaluate(stateAt(10, 20, 70), First), 0.0)
	})

	t.Run("late game leads weigh more", func(t *testing.T) {
		early := evaluator.Evaluate(stateAt(10, 60, 40), First)
		late := evaluator.Evaluate(stateAt(18, 60, 40), First)

		require.InDelta(t, 20.0/3.0, early, 1e-9)
		require.InDelta(t, 20.0/3.0+20*1.8*0.3, late, 1e-9)
	})

	t.Run("clamps to the evaluation range", func(t *testing.T) {
		require.Equal(t, MaxEvaluation, evaluator.Evaluate(stateAt(10, 95, -45), First))
		require.Equal(t, MinEvaluation, evaluator.Evaluate(stateAt(10, 95, -45), Second))
	})

	t.Run("custom weights", func(t *testing.T) {
		only := NewEvaluatorWithWeights(Weights{TrustDifferential: 2})

		require.InDelta(t, 2*50.0/3.0, only.Evaluate(stateAt(10, 80, 30), First), 1e-9)
	})

	t.Run("stays within range for reachable states", func(t *testing.T) {
		for round := uint8(1); round <= MaxRounds; round++ {
			for p1 := MinTrust; p1 <= MaxTrust; p1 += 5 {
				for p2 := MinTrust; p2 <= MaxTrust; p2 += 5 {
					for _, player := range []Player{First, Second} {
						v := evaluator.Evaluate(stateAt(round, p1, p2), player)
						require.GreaterOrEqual(t, v, MinEvaluation)
						require.LessOrEqual(t, v, MaxEvaluation)
					}
				}
			}
		}
	})
}

func TestEvaluateTerms(t *testing.T) {
	t.Run("trust differential is clamped to 50", func(t *testing.T) {
		require.Equal(t, 50.0, evaluateTrustDifferential(stateAt(1, 100, -50), First))
		require.Equal(t, -50.0, evaluateTrustDifferential(stateAt(1, 100, -50), Second))
	})

	t.Run("absolute trust bonus", func(t *testing.T) {
		require.Equal(t, 20.0, evaluateTrustAbsolute(stateAt(1, 80, 0), First))
		require.Equal(t, -20.0, evaluateTrustAbsolute(stateAt(1, 80, 0), Second))
		require.Equal(t, 0.0, evaluateTrustAbsolute(stateAt(1, 79, 1), First))
	})

	t.Run("round progress only counts past three quarters", func(t *testing.T) {
		require.Equal(t, 0.0, evaluateRoundProgress(stateAt(15, 60, 40), First))
		require.InDelta(t, 20*1.6, evaluateRoundProgress(stateAt(16, 60, 40), First), 1e-9)
		require.InDelta(t, -20*1.6, evaluateRoundProgress(stateAt(16, 60, 40), Second), 1e-9)
	})

	t.Run("momentum averages the player's recent confidence", func(t *testing.T) {
		state := stateAt(1, 50, 50)
		state.History = []Move{
			{Player: First, Confidence: 0.1}, // Outside the last five
			{Player: First, Confidence: 0.94},
			{Player: Second, Confidence: 0.7},
			{Player: First, Confidence: 0.88},
			{Player: Second, Confidence: 0.6},
			{Player: Second, Confidence: 0.7},
		}

		require.InDelta(t, (0.91-0.5)*20, evaluateMomentum(state, First), 1e-9)
		require.InDelta(t, (2.0/3.0-0.5)*20, evaluateMomentum(state, Second), 1e-9)
	})

	t.Run("momentum needs three moves", func(t *testing.T) {
		state := stateAt(1, 50, 50)
		state.History = []Move{{Player: First, Confidence: 1}, {Player: First, Confidence: 1}}

		require.Equal(t, 0.0, evaluateMomentum(state, First))
	})

	t.Run("momentum is zero without own moves", func(t *testing.T) {
		state := stateAt(1, 50, 50)
		state.History = []Move{{Player: Second}, {Player: Second}, {Player: Second}}

		require.Equal(t, 0.0, evaluateMomentum(state, First))
	})

	t.Run("position advantage terms add up", func(t *testing.T) {
		require.Equal(t, 55.0, evaluatePositionAdvantage(stateAt(1, 90, -40), First))
		require.Equal(t, -55.0, evaluatePositionAdvantage(stateAt(1, 90, -40), Second))
		require.Equal(t, 0.0, evaluatePositionAdvantage(stateAt(1, 89, -39), First))
	})
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
