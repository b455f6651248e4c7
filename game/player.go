package game

import "fmt"

// Player identifies one of the two sides of the game.
type Player int

const (
	First Player = iota
	Second
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == First {
		return Second
	}
	return First
}

// PlayerFromID maps the numeric ids used by hosts (1 and 2) to a Player.
func PlayerFromID(id int) (Player, error) {
	switch id {
	case 1:
		return First, nil
	case 2:
		return Second, nil
	}
	return First, fmt.Errorf("player id %d: %w", id, ErrPlayer)
}

// ID is the inverse of PlayerFromID.
func (p Player) ID() int {
	return int(p) + 1
}

func (p Player) String() string {
	switch p {
	case First:
		return "Player1"
	case Second:
		return "Player2"
	}
	return fmt.Sprintf("Player(%d)", int(p))
}

func (p Player) MarshalText() ([]byte, error) {
	if p != First && p != Second {
		return nil, fmt.Errorf("player %d: %w", int(p), ErrDecode)
	}
	return []byte(p.String()), nil
}

func (p *Player) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Player1":
		*p = First
	case "Player2":
		*p = Second
	default:
		return fmt.Errorf("unknown player %q: %w", text, ErrDecode)
	}
	return nil
}
