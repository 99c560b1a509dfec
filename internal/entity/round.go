package entity

import (
	"fmt"
	"strings"
)

type OutcomeKind string

const (
	OutcomeNone OutcomeKind = ""
	OutcomeWin  OutcomeKind = "win"
	OutcomeDraw OutcomeKind = "draw"
)

type Outcome struct {
	Kind   OutcomeKind
	Winner *Player
}

func Win(player *Player) Outcome {
	return Outcome{Kind: OutcomeWin, Winner: player}
}

func Draw() Outcome {
	return Outcome{Kind: OutcomeDraw}
}

func (that Outcome) IsWin() bool {
	return that.Kind == OutcomeWin
}

func (that Outcome) IsDraw() bool {
	return that.Kind == OutcomeDraw
}

// RoundResult is the event emitted when a round is over.
type RoundResult struct {
	SessionID string      `json:"session_id"`
	Round     int         `json:"round"`
	Outcome   OutcomeKind `json:"outcome"`
	Winner    string      `json:"winner,omitempty"`
	Token     Token       `json:"token,omitempty"`
	Moves     int         `json:"moves"`
	Board     Snapshot    `json:"board"`
}

func NewRoundResult(sessionID string, round, moves int, outcome Outcome, board Snapshot) *RoundResult {
	result := &RoundResult{
		SessionID: sessionID,
		Round:     round,
		Outcome:   outcome.Kind,
		Moves:     moves,
		Board:     board,
	}

	if outcome.IsWin() {
		result.Winner = outcome.Winner.Identity()
		result.Token = outcome.Winner.Token()
	}

	return result
}

// Scoreboard tallies the rounds played in one session.
type Scoreboard struct {
	Rounds int
	Draws  int
	Wins   map[string]int
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{Wins: make(map[string]int)}
}

func (that *Scoreboard) Record(outcome Outcome) {
	that.Rounds++

	switch outcome.Kind {
	case OutcomeWin:
		that.Wins[outcome.Winner.Identity()]++
	case OutcomeDraw:
		that.Draws++
	}
}

// Clone - returns a copy that shares nothing with the receiver.
func (that *Scoreboard) Clone() Scoreboard {
	wins := make(map[string]int, len(that.Wins))
	for identity, count := range that.Wins {
		wins[identity] = count
	}

	return Scoreboard{Rounds: that.Rounds, Draws: that.Draws, Wins: wins}
}

// Summary - formats the tally in the order of the given identities.
func (that *Scoreboard) Summary(identities ...string) string {
	parts := make([]string, 0, len(identities)+1)
	for _, identity := range identities {
		parts = append(parts, fmt.Sprintf("%s: %d", identity, that.Wins[identity]))
	}
	parts = append(parts, fmt.Sprintf("draws: %d", that.Draws))

	return strings.Join(parts, ", ")
}
