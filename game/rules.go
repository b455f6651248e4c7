package game

import "fmt"

// Rules is the transition model: move generation, move application and terminal detection.
type Rules struct {
	resolver Resolver
}

// NewRules returns rules that resolve claims with resolver. A nil resolver
// falls back to a time-seeded random one.
func NewRules(resolver Resolver) *Rules {
	if resolver == nil {
		resolver = NewRandomResolver(timeSeed())
	}
	return &Rules{resolver: resolver}
}

// Fork returns rules resolving claims with resolver fork i, for use by the i-th concurrent task.
func (r *Rules) Fork(i int) *Rules {
	return &Rules{resolver: r.resolver.Fork(i)}
}

// GenerateMoves lists the legal moves for player, in a stable order.
func (r *Rules) GenerateMoves(state State, player Player) []Move {
	switch state.Phase {
	case ClaimPhase:
		return claimMoves(player)
	case ChallengePhase:
		return challengeMoves(player)
	default: // Resolution is a pass-through state
		return nil
	}
}

func claimMoves(player Player) []Move {
	moves := make([]Move, 0, len(BoldnessLevels)*len(ClaimTypes))
	for _, boldness := range BoldnessLevels {
		for _, claimType := range ClaimTypes {
			claim := &Claim{
				Description: fmt.Sprintf("Generated claim with boldness %v", boldness),
				Type:        claimType,
				Boldness:    boldness,
				IsBluff:     boldness > BluffThreshold,
			}
			moves = append(moves, Move{
				Action:     MakeClaim,
				Player:     player,
				Claim:      claim,
				Confidence: 1.0 - boldness*ConfidenceDecay,
			})
		}
	}
	return moves
}

func challengeMoves(player Player) []Move {
	return []Move{
		{Action: Challenge, Player: player, Confidence: 0.7},
		{Action: Accept, Player: player, Confidence: 0.6},
	}
}

// Apply returns the successor of state after move. The input state is left untouched.
func (r *Rules) Apply(state State, move Move) State {
	next := state.Copy()

	switch move.Action {
	case MakeClaim:
		next.CurrentClaim = move.Claim
		next.Phase = ChallengePhase
	case Challenge, Accept:
		next.Phase = ResolutionPhase
		if next.CurrentClaim != nil {
			r.resolve(&next, move)
		}
	}

	next.History = append(next.History, move)
	return next
}

func (r *Rules) resolve(state *State, move Move) {
	claim := *state.CurrentClaim
	held := r.resolver.Holds(claim, claim.SuccessProbability())

	if move.Action == Accept {
		// The claimant is rewarded for being believed
		state.addTrust(move.Player.Opponent(), AcceptReward)
		return
	}

	if held {
		state.addTrust(move.Player, -ChallengeSwing)
	} else { // Exposed a bluff
		state.addTrust(move.Player, ChallengeSwing)
	}
}

// IsTerminal reports whether the game is over: round limit reached or a trust bound crossed.
func (r *Rules) IsTerminal(state State) bool {
	return state.Round >= MaxRounds ||
		state.Player1Trust >= MaxTrust ||
		state.Player2Trust >= MaxTrust ||
		state.Player1Trust <= MinTrust ||
		state.Player2Trust <= MinTrust
}
