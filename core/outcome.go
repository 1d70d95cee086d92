package core

// Outcome is the terminal result of a session, OutcomeNone until game over
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeLost
	OutcomeWon
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLost:
		return "lost"
	case OutcomeWon:
		return "won"
	}
	return "none"
}

// ColorRole selects how a snake segment is painted
type ColorRole uint8

const (
	RoleHead ColorRole = iota
	RoleBody
	RoleDead
)

// AnchorSide places banner text relative to its anchor glyph
type AnchorSide uint8

const (
	AnchorLeft AnchorSide = iota
	AnchorRight
	AnchorTop
	AnchorBottom
)
