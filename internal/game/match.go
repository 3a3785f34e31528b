package game

import (
	"errors"
	"fmt"
	"log"
)

var (
	ErrInvalidStartingScore = errors.New("starting score must be positive")
	ErrInvalidDartsPerTurn  = errors.New("darts per turn must be positive")
	ErrMatchNotInProgress   = errors.New("match is not in progress")
	ErrNoDartsLeft          = errors.New("no darts left this turn")
)

// ScoreBoard holds the running "down" totals of both sides.
type ScoreBoard struct {
	Player   int `json:"player"`
	Opponent int `json:"opponent"`
}

// Get returns the total of one side.
func (sb *ScoreBoard) Get(side Side) int {
	if side == SidePlayer {
		return sb.Player
	}
	return sb.Opponent
}

// Apply adds a score delta to one side and returns the new total.
func (sb *ScoreBoard) Apply(side Side, delta int) int {
	if side == SidePlayer {
		sb.Player += delta
		return sb.Player
	}
	sb.Opponent += delta
	return sb.Opponent
}

// Match is the turn and score state of a single 301-down game.
// It is owned by one caller and not safe for concurrent use.
type Match struct {
	Scores       ScoreBoard  `json:"scores"`
	CurrentTurn  Side        `json:"current_turn"`
	DartsLeft    int         `json:"darts_left"`
	DartsPerTurn int         `json:"darts_per_turn"`
	Status       MatchStatus `json:"status"`
	Winner       Side        `json:"winner,omitempty"`
	Throws       int         `json:"throws"`
	LastShot     *ShotResult `json:"last_shot,omitempty"`
}

// NewMatch creates a match waiting to start with both totals at startingScore.
func NewMatch(startingScore, dartsPerTurn int) (*Match, error) {
	if startingScore <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStartingScore, startingScore)
	}
	if dartsPerTurn <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDartsPerTurn, dartsPerTurn)
	}
	return &Match{
		Scores:       ScoreBoard{Player: startingScore, Opponent: startingScore},
		CurrentTurn:  SidePlayer,
		DartsLeft:    dartsPerTurn,
		DartsPerTurn: dartsPerTurn,
		Status:       StatusWaiting,
	}, nil
}

// Start puts the match in progress with the player throwing first.
func (m *Match) Start() {
	if m.Status != StatusWaiting {
		log.Printf("[MATCH] Start ignored, match is %s", m.Status)
		return
	}
	m.Status = StatusInProgress
	m.CurrentTurn = SidePlayer
	m.DartsLeft = m.DartsPerTurn
	log.Printf("[MATCH] Started at %d, %s throws first", m.Scores.Player, m.CurrentTurn)
}

// IsPlayerTurn reports whether the player is the current thrower.
func (m *Match) IsPlayerTurn() bool {
	return m.CurrentTurn == SidePlayer
}

// Throw resolves one dart for the current thrower and updates the match.
func (m *Match) Throw(landing Vec2, layout *BoardLayout) (ShotResult, error) {
	if m.Status != StatusInProgress {
		return ShotResult{}, ErrMatchNotInProgress
	}
	if m.DartsLeft <= 0 {
		return ShotResult{}, ErrNoDartsLeft
	}

	res := ResolveShot(landing, layout)
	thrower := m.CurrentTurn
	total := m.Scores.Apply(thrower, res.ScoreDelta)
	m.DartsLeft--
	m.Throws++
	m.LastShot = &res

	if res.Outcome.Kind == HitMiss {
		log.Printf("[MATCH] %s missed the board (n_dist=%.2f)", thrower, res.NormalizedDistance)
	} else {
		log.Printf("[MATCH] %s hit %s worth %d pts, %d left", thrower, res.Outcome, res.Outcome.Points(), total)
	}

	// No bust rule: reaching or passing zero ends the match.
	if total <= 0 {
		m.Status = StatusCompleted
		m.Winner = thrower
		m.DartsLeft = 0
		log.Printf("[MATCH] %s wins after %d throws", thrower, m.Throws)
		return res, nil
	}

	m.CheckTurn()
	return res, nil
}

// CheckTurn hands the board to the other side once the thrower is out of darts.
func (m *Match) CheckTurn() {
	if m.Status != StatusInProgress || m.DartsLeft > 0 {
		return
	}
	m.CurrentTurn = m.CurrentTurn.Other()
	m.DartsLeft = m.DartsPerTurn
	log.Printf("[MATCH] Turn passes to %s", m.CurrentTurn)
}
