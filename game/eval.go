package game

import "math"

const (
	MaxEvaluation = 100.0
	MinEvaluation = -100.0
)

// Weights scale the five heuristic terms of the evaluator.
type Weights struct {
	TrustDifferential float64 `yaml:"trust_differential"`
	TrustAbsolute     float64 `yaml:"trust_absolute"`
	RoundProgress     float64 `yaml:"round_progress"`
	Momentum          float64 `yaml:"momentum"`
	PositionAdvantage float64 `yaml:"position_advantage"`
}

func DefaultWeights() Weights {
	return Weights{
		TrustDifferential: 1.0,
		TrustAbsolute:     0.5,
		RoundProgress:     0.3,
		Momentum:          0.7,
		PositionAdvantage: 0.8,
	}
}

// Evaluator scores states with a weighted sum of heuristic terms. It never consults randomness.
type Evaluator struct {
	weights Weights
}

func NewEvaluator() *Evaluator {
	return &Evaluator{weights: DefaultWeights()}
}

func NewEvaluatorWithWeights(weights Weights) *Evaluator {
	return &Evaluator{weights: weights}
}

// Evaluate scores state from player's perspective, between -100 and 100.
func (e *Evaluator) Evaluate(state State, player Player) float64 {
	score := 0.0
	score += evaluateTrustDifferential(state, player) * e.weights.TrustDifferential
	score += evaluateTrustAbsolute(state, player) * e.weights.TrustAbsolute
	score += evaluateRoundProgress(state, player) * e.weights.RoundProgress
	score += evaluateMomentum(state, player) * e.weights.Momentum
	score += evaluatePositionAdvantage(state, player) * e.weights.PositionAdvantage

	return clamp(score, MinEvaluation, MaxEvaluation)
}

// EvaluateTrust is the default evaluation function.
func EvaluateTrust(state State, player Player) float64 {
	return defaultEvaluator.Evaluate(state, player)
}

var defaultEvaluator = NewEvaluator()

// evaluateTrustDifferential is the dominant term, in [-50, 50]
func evaluateTrustDifferential(state State, player Player) float64 {
	own, opp := state.Trusts(player)
	return clamp(float64(own-opp)/3.0, -50, 50)
}

func evaluateTrustAbsolute(state State, player Player) float64 {
	own := state.Trust(player)
	switch {
	case own >= 80:
		return 20
	case own <= 0:
		return -20
	}
	return 0
}

// evaluateRoundProgress weighs a trust lead more heavily as the round limit approaches
func evaluateRoundProgress(state State, player Player) float64 {
	progress := float64(state.Round) / MaxRounds
	if progress <= 0.75 {
		return 0
	}
	own, opp := state.Trusts(player)
	return float64(own-opp) * (progress * 2.0)
}

func evaluateMomentum(state State, player Player) float64 {
	if len(state.History) < 3 {
		return 0
	}

	recent := state.History[max(0, len(state.History)-5):]
	total, count := 0.0, 0
	for _, move := range recent {
		if move.Player == player {
			total += move.Confidence
			count++
		}
	}
	if count == 0 {
		return 0
	}

	return (total/float64(count) - 0.5) * 20.0
}

func evaluatePositionAdvantage(state State, player Player) float64 {
	own, opp := state.Trusts(player)
	advantage := 0.0
	if own >= 90 { // Near victory
		advantage += 30
	}
	if opp <= -40 {
		advantage += 25
	}
	if own <= -40 { // Danger zone
		advantage -= 25
	}
	if opp >= 90 {
		advantage -= 30
	}
	return advantage
}

func clamp(value, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, value))
}
