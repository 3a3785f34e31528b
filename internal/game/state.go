package game

// MatchStatus represents the current state of a match
type MatchStatus string

const (
	StatusWaiting    MatchStatus = "WAITING"
	StatusInProgress MatchStatus = "IN_PROGRESS"
	StatusCompleted  MatchStatus = "COMPLETED"
)

// Side identifies who is throwing.
type Side string

const (
	SidePlayer   Side = "PLAYER"
	SideOpponent Side = "OPPONENT"
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SidePlayer {
		return SideOpponent
	}
	return SidePlayer
}
