package game

// ClaimType labels a claim. It carries no behaviour of its own.
type ClaimType int

const (
	Information ClaimType = iota
	Prediction
	Accusation
	Alliance
)

// ClaimTypes lists every claim type in generation order.
var ClaimTypes = []ClaimType{Information, Prediction, Accusation, Alliance}

var claimTypeNames = []string{"Information", "Prediction", "Accusation", "Alliance"}

func (c ClaimType) String() string {
	return nameOf(claimTypeNames, int(c))
}

func (c ClaimType) MarshalText() ([]byte, error) {
	return marshalName("claim type", claimTypeNames, int(c))
}

func (c *ClaimType) UnmarshalText(text []byte) error {
	i, err := parseName("claim type", claimTypeNames, text)
	if err != nil {
		return err
	}
	*c = ClaimType(i)
	return nil
}

// Claim is an assertion put on the table during the claim phase.
// IsBluff is set at generation time (boldness above BluffThreshold), it is not verified truth.
type Claim struct {
	Description string    `json:"description"`
	Type        ClaimType `json:"claim_type"`
	Boldness    float64   `json:"boldness"`
	IsBluff     bool      `json:"is_bluff"`
}

// SuccessProbability is the chance that the claim holds when resolved.
func (c Claim) SuccessProbability() float64 {
	return BaseSuccess - c.Boldness*BoldnessPenalty
}
