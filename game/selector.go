package game

import (
	"github.com/samber/lo"

	"github.com/domino14/klondike/board"
	"github.com/domino14/klondike/cards"
	"github.com/domino14/klondike/rules"
)

// FromWaste is passed as the source column for cards coming off the waste.
const FromWaste = -1

// Selector decides which tableau column a card goes to when more than one
// could take it. It is the single decision point of the engine: the drivers
// call nothing else to choose between legal moves.
type Selector interface {
	// SelectColumn returns the destination column for c, which currently
	// sits in column from (or FromWaste), and false if there is none.
	SelectColumn(b *board.Board, c cards.Card, from int) (int, bool)
}

// Candidates lists every column that can legally take c, left to right,
// skipping from.
func Candidates(b *board.Board, c cards.Card, from int) []int {
	return lo.Filter(lo.Range(board.NumColumns), func(col int, _ int) bool {
		return col != from && canTake(b, col, c)
	})
}

func canTake(b *board.Board, col int, c cards.Card) bool {
	p := b.Column(col)
	top, _ := p.Top()
	return rules.CanPlaceOnColumn(c, p.Len(), top)
}

// FirstFit takes the first legal column scanning left to right.
type FirstFit struct{}

func (FirstFit) SelectColumn(b *board.Board, c cards.Card, from int) (int, bool) {
	for col := 0; col < board.NumColumns; col++ {
		if col == from {
			continue
		}
		if canTake(b, col, c) {
			return col, true
		}
	}
	return 0, false
}
