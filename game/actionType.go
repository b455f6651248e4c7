package game

import "fmt"

// Action is what a player does with a move.
type Action int

const (
	MakeClaim Action = iota
	Challenge
	Accept
)

var actionNames = []string{"MakeClaim", "Challenge", "Accept"}

func (a Action) String() string {
	return nameOf(actionNames, int(a))
}

func (a Action) MarshalText() ([]byte, error) {
	return marshalName("action", actionNames, int(a))
}

func (a *Action) UnmarshalText(text []byte) error {
	i, err := parseName("action", actionNames, text)
	if err != nil {
		return err
	}
	*a = Action(i)
	return nil
}

// Phase governs which moves are legal in a state.
type Phase int

const (
	ClaimPhase Phase = iota
	ChallengePhase
	ResolutionPhase
)

var phaseNames = []string{"Claim", "Challenge", "Resolution"}

func (p Phase) String() string {
	return nameOf(phaseNames, int(p))
}

func (p Phase) MarshalText() ([]byte, error) {
	return marshalName("phase", phaseNames, int(p))
}

func (p *Phase) UnmarshalText(text []byte) error {
	i, err := parseName("phase", phaseNames, text)
	if err != nil {
		return err
	}
	*p = Phase(i)
	return nil
}

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("%d", i)
	}
	return names[i]
}

func marshalName(kind string, names []string, i int) ([]byte, error) {
	if i < 0 || i >= len(names) {
		return nil, fmt.Errorf("%s %d out of range: %w", kind, i, ErrDecode)
	}
	return []byte(names[i]), nil
}

func parseName(kind string, names []string, text []byte) (int, error) {
	for i, name := range names {
		if name == string(text) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q: %w", kind, text, ErrDecode)
}
