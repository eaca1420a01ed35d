package board

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPlayer = errors.New("invalid player")

// A Square is the content of one cell of the bordered grid.
type Square uint8

const (
	Empty Square = iota
	BlackDisc
	WhiteDisc
	Border
)

var squareNames = [4]byte{'.', 'b', 'w', '?'}

// DisplayString returns the single-character representation of the square.
func (s Square) DisplayString() string {
	if int(s) >= len(squareNames) {
		return "!"
	}
	return string(squareNames[s])
}

// Colour is one of the two players. Its numeric value matches the Square
// holding a disc of that colour.
type Colour uint8

const (
	Black = Colour(BlackDisc)
	White = Colour(WhiteDisc)
)

// Valid returns whether c is one of the two playing colours.
func (c Colour) Valid() bool {
	return c == Black || c == White
}

// Opponent returns the other colour. Only Black and White have an opponent;
// anything else is a programming error.
func (c Colour) Opponent() Colour {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	panic(fmt.Errorf("%w: %d", ErrInvalidPlayer, c))
}

// Disc returns the square occupied by a disc of this colour.
func (c Colour) Disc() Square {
	return Square(c)
}

func (c Colour) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return fmt.Sprintf("colour(%d)", c)
}

// ParseColour reads a colour name. It accepts "black"/"white" and the
// single letters used on the display board.
func ParseColour(s string) (Colour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPlayer, s)
}
