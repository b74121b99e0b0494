package entity

// State of a game.
type State uint8

const (
	InProgress State = iota
	Won
)

const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
)

// Status is InProgress or Won(Winner). Winner is Empty while in progress.
type Status struct {
	State  State
	Winner Color
}

func WonBy(winner Color) Status {
	return Status{State: Won, Winner: winner}
}

func (that Status) IsWon() bool {
	return that.State == Won
}

func (that Status) String() string {
	if that.IsWon() {
		return StatusWon
	}

	return StatusInProgress
}

// OutcomeKind tells the caller what a placement did.
type OutcomeKind uint8

const (
	Ignored OutcomeKind = iota
	Placed
	PlacedAndWon
)

const (
	OutcomeIgnored      = "ignored"
	OutcomePlaced       = "placed"
	OutcomePlacedAndWon = "placed_and_won"
)

// Outcome is the result of a placement: Ignored, Placed or PlacedAndWon(Winner).
type Outcome struct {
	Kind   OutcomeKind
	Winner Color
}

func IgnoredOutcome() Outcome {
	return Outcome{Kind: Ignored}
}

func PlacedOutcome() Outcome {
	return Outcome{Kind: Placed}
}

func WonOutcome(winner Color) Outcome {
	return Outcome{Kind: PlacedAndWon, Winner: winner}
}

func (that Outcome) IsIgnored() bool {
	return that.Kind == Ignored
}

func (that Outcome) IsWin() bool {
	return that.Kind == PlacedAndWon
}

func (that Outcome) String() string {
	switch that.Kind {
	case Placed:
		return OutcomePlaced
	case PlacedAndWon:
		return OutcomePlacedAndWon
	default:
		return OutcomeIgnored
	}
}

func (that Outcome) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}
