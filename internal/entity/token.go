package entity

import (
	"strings"
	"unicode/utf8"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

// Token is the symbol a player's pieces display. NoToken marks an empty slot
// and a player that has not chosen yet.
type Token string

const NoToken Token = ""

// NewToken - builds a token from the first character of the trimmed input.
func NewToken(input string) (Token, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return NoToken, apperror.ErrInvalidEntry
	}

	first, _ := utf8.DecodeRuneInString(trimmed)

	return Token(string(first)), nil
}

func (that Token) IsEmpty() bool {
	return that == NoToken
}

func (that Token) String() string {
	return string(that)
}
