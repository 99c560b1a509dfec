package entity

import "github.com/rocketscienceinc/connectfour/internal/apperror"

// Player references the shared board but does not own it.
type Player struct {
	identity string
	token    Token
	board    *Board
}

func NewPlayer(identity string, board *Board) *Player {
	return &Player{
		identity: identity,
		board:    board,
	}
}

func (that *Player) Identity() string {
	return that.identity
}

func (that *Player) Token() Token {
	return that.token
}

func (that *Player) HasToken() bool {
	return !that.token.IsEmpty()
}

func (that *Player) ChooseToken(token Token) {
	that.token = token
}

func (that *Player) ClearToken() {
	that.token = NoToken
}

// Drop - places the player's token into the column of the shared board.
func (that *Player) Drop(column int) (Coord, error) {
	if !that.HasToken() {
		return Coord{}, apperror.ErrTokenNotChosen
	}

	return that.board.Place(column, that.token)
}
