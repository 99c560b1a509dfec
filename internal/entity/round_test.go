package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoundResult(t *testing.T) {
	t.Run("Win carries the winner", func(t *testing.T) {
		// Given: a player who won
		board := NewBoard()
		player := NewPlayer("Player 1", board)
		player.ChooseToken("X")
		_, err := player.Drop(0)
		require.NoError(t, err)

		// When: the result is built
		result := NewRoundResult("session", 2, 7, Win(player), board.Snapshot())

		// Then: the winner and token are set
		assert.Equal(t, OutcomeWin, result.Outcome)
		assert.Equal(t, "Player 1", result.Winner)
		assert.Equal(t, Token("X"), result.Token)
		assert.Equal(t, Token("X"), result.Board.Cells[5][0])
	})

	t.Run("Draw has no winner", func(t *testing.T) {
		result := NewRoundResult("session", 1, MaxMoves, Draw(), NewBoard().Snapshot())

		raw, err := json.Marshal(result)
		require.NoError(t, err)

		assert.Equal(t, OutcomeDraw, result.Outcome)
		assert.NotContains(t, string(raw), "winner")
		assert.Contains(t, string(raw), `"outcome":"draw"`)
	})
}

func TestScoreboard(t *testing.T) {
	// Given: two players and an empty scoreboard
	first := NewPlayer("Player 1", nil)
	second := NewPlayer("Player 2", nil)
	score := NewScoreboard()

	// When: three rounds are recorded
	score.Record(Win(first))
	score.Record(Draw())
	score.Record(Win(first))

	// Then: the tally follows the given order
	assert.Equal(t, 3, score.Rounds)
	assert.Equal(t, "Player 1: 2, Player 2: 0, draws: 1", score.Summary(first.Identity(), second.Identity()))
}

func TestScoreboard_Clone(t *testing.T) {
	// Given: a scoreboard with one win
	winner := NewPlayer("Player 1", nil)
	score := NewScoreboard()
	score.Record(Win(winner))

	// When: the clone is modified
	clone := score.Clone()
	clone.Wins["Player 1"]++
	clone.Draws++

	// Then: the original keeps its tally
	assert.Equal(t, 1, score.Wins["Player 1"])
	assert.Zero(t, score.Draws)
	assert.Equal(t, 2, clone.Wins["Player 1"])
	assert.Equal(t, 1, clone.Rounds)
}
