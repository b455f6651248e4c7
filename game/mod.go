package game

import "errors"

var (
	ErrDecode = errors.New("cannot decode game state")
	ErrPlayer = errors.New("invalid player")
)

const (
	MaxRounds     = 20
	MaxTrust      = 100
	MinTrust      = -50
	StartingTrust = 50
)

// Claim generation and resolution constants
const (
	BluffThreshold  = 0.5
	ConfidenceDecay = 0.3 // Confidence lost per unit of boldness
	BaseSuccess     = 0.6
	BoldnessPenalty = 0.3
	ChallengeSwing  = 15
	AcceptReward    = 5
)

// BoldnessLevels are the claim intensities offered during the claim phase, in generation order.
var BoldnessLevels = []float64{0.2, 0.4, 0.6, 0.8}

// Evaluate scores a state from the given player's perspective, between -100 and 100.
type Evaluate func(state State, player Player) float64
