package board

// This file contains some sample positions, used solely for testing.

// Position is a plaintext board.
type Position string

const (
	// OpeningAfterD3 is the start position after black plays row 2 col 3.
	OpeningAfterD3 Position = `
		........
		........
		...b....
		...bb...
		...bw...
		........
		........
		........
	`
	// Midgame is an ordinary middle-game position with play for both sides.
	Midgame Position = `
		........
		........
		..wbbb..
		..wwbw..
		..wbbb..
		...w.b..
		........
		........
	`
	// CornerFight has black able to take the top-left corner.
	CornerFight Position = `
		........
		.ww.....
		..wb....
		...bw...
		...wb...
		........
		........
		........
	`
	// BlackStuck is a position where black has no legal move but white does.
	BlackStuck Position = `
		wb......
		........
		........
		........
		........
		........
		........
		........
	`
	// FullBoard has no empty cells at all.
	FullBoard Position = `
		bbbbbbbb
		bbbbbbbb
		bbbbwwww
		bbwwwwww
		wwwwwwww
		wwwwbbbb
		bbbbbbbb
		wwwwwwww
	`
)

// MustBoard parses a sample position and panics if it is malformed.
func (p Position) MustBoard() Board {
	b, err := FromPlaintext(string(p))
	if err != nil {
		panic(err)
	}
	return b
}
