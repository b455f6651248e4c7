package game

import (
	"encoding/json"
	"fmt"
)

// Move is the edge between two states. It is never modified once created.
type Move struct {
	Action     Action  `json:"action"`
	Player     Player  `json:"player"`
	Claim      *Claim  `json:"claim"`
	Confidence float64 `json:"confidence"`
}

// moveWire mirrors Move with pointers so that required fields can be told apart from zero values.
type moveWire struct {
	Action     *Action  `json:"action"`
	Player     *Player  `json:"player"`
	Claim      *Claim   `json:"claim"`
	Confidence *float64 `json:"confidence"`
}

// UnmarshalJSON requires action, player and confidence. Errors wrap ErrDecode.
func (m *Move) UnmarshalJSON(data []byte) error {
	var w moveWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: move: %v", ErrDecode, err)
	}

	missing := ""
	switch {
	case w.Action == nil:
		missing = "action"
	case w.Player == nil:
		missing = "player"
	case w.Confidence == nil:
		missing = "confidence"
	}
	if missing != "" {
		return fmt.Errorf("%w: move missing field %q", ErrDecode, missing)
	}

	*m = Move{
		Action:     *w.Action,
		Player:     *w.Player,
		Claim:      w.Claim,
		Confidence: *w.Confidence,
	}
	return nil
}

// FallbackMove is played when a search yields no move.
func FallbackMove(player Player) Move {
	return Move{Action: Accept, Player: player, Confidence: 0.5}
}

// IsStochastic reports whether applying the move samples a resolution outcome.
func (m Move) IsStochastic() bool {
	return m.Action != MakeClaim
}

func (m Move) String() string {
	if m.Claim != nil {
		return fmt.Sprintf("%s %s(%s %.1f) conf=%.2f", m.Player, m.Action, m.Claim.Type, m.Claim.Boldness, m.Confidence)
	}
	return fmt.Sprintf("%s %s conf=%.2f", m.Player, m.Action, m.Confidence)
}
