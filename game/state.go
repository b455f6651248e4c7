package game

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// State is one round of play. States are values: transitions return a copy and
// never touch the input, so sibling branches of a search never alias.
type State struct {
	Round        uint8  `json:"round"`
	Phase        Phase  `json:"phase"`
	Player1Trust int    `json:"player1_trust"`
	Player2Trust int    `json:"player2_trust"`
	CurrentClaim *Claim `json:"current_claim"`
	History      []Move `json:"move_history"`
}

// NewState returns the opening state: round 1, claim phase, even trust.
func NewState() State {
	return State{
		Round:        1,
		Phase:        ClaimPhase,
		Player1Trust: StartingTrust,
		Player2Trust: StartingTrust,
		History:      []Move{},
	}
}

// Copy returns a state that shares no mutable memory with s.
// Claims are immutable once created and may be shared.
func (s State) Copy() State {
	history := make([]Move, len(s.History), len(s.History)+1)
	copy(history, s.History)
	s.History = history
	return s
}

// Trust returns the trust held by player.
func (s State) Trust(player Player) int {
	if player == First {
		return s.Player1Trust
	}
	return s.Player2Trust
}

// Trusts returns (own, opponent) trust from player's perspective.
func (s State) Trusts(player Player) (int, int) {
	return s.Trust(player), s.Trust(player.Opponent())
}

func (s *State) addTrust(player Player, delta int) {
	if player == First {
		s.Player1Trust += delta
	} else {
		s.Player2Trust += delta
	}
}

// stateWire mirrors State with pointers so that required fields can be told apart from zero values.
type stateWire struct {
	Round        *uint8  `json:"round"`
	Phase        *Phase  `json:"phase"`
	Player1Trust *int    `json:"player1_trust"`
	Player2Trust *int    `json:"player2_trust"`
	CurrentClaim *Claim  `json:"current_claim"`
	History      *[]Move `json:"move_history"`
}

// DecodeState parses a JSON encoded state. Every error wraps ErrDecode.
func DecodeState(data []byte) (State, error) {
	var w stateWire
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&w); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if dec.More() {
		return State{}, fmt.Errorf("%w: trailing data after state", ErrDecode)
	}

	missing := ""
	switch {
	case w.Round == nil:
		missing = "round"
	case w.Phase == nil:
		missing = "phase"
	case w.Player1Trust == nil:
		missing = "player1_trust"
	case w.Player2Trust == nil:
		missing = "player2_trust"
	case w.History == nil:
		missing = "move_history"
	}
	if missing != "" {
		return State{}, fmt.Errorf("%w: missing field %q", ErrDecode, missing)
	}

	history := *w.History
	if history == nil {
		history = []Move{}
	}
	return State{
		Round:        *w.Round,
		Phase:        *w.Phase,
		Player1Trust: *w.Player1Trust,
		Player2Trust: *w.Player2Trust,
		CurrentClaim: w.CurrentClaim,
		History:      history,
	}, nil
}

// Encode is the inverse of DecodeState.
func (s State) Encode() ([]byte, error) {
	if s.History == nil {
		s.History = []Move{}
	}
	return json.Marshal(s)
}
