package game

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/klondike/board"
	"github.com/domino14/klondike/cards"
	"github.com/domino14/klondike/move"
	"github.com/domino14/klondike/rules"
)

// playTableau runs every column, left to right, until each is exhausted.
func (g *Game) playTableau() {
	for col := 0; col < board.NumColumns; col++ {
		if rules.IsColumnEmpty(g.board.Column(col)) {
			continue
		}
		for g.stepColumn(col) {
		}
	}
}

// stepColumn makes at most one move out of col and reports whether it did.
// The face-up run is scanned from the top card down; the first card that can
// go somewhere goes, carrying everything above it.
func (g *Game) stepColumn(col int) bool {
	p := g.board.Column(col)
	if p.Len() == 0 {
		return false
	}
	g.exposeTop(col)
	top := p.Len() - 1
	for i := top; i >= p.RunStart(); i-- {
		c := p.MustAt(i, "scanning the face-up run")
		if i == top && rules.CanFoundation(c, g.board.FoundationTop(c.Suit)) {
			p.Pop("the top card was just read")
			g.board.Foundation(c.Suit).Push(c)
			g.record([]cards.Card{c}, move.Column(col), move.Foundation(c.Suit))
			return true
		}
		if !g.worthMoving(col, i) {
			continue
		}
		if dest, ok := g.opts.Selector.SelectColumn(g.board, c, col); ok {
			run := p.TakeFrom(i, "the moving card is in its column")
			g.board.Column(dest).Push(run...)
			g.record(run, move.Column(col), move.Column(dest))
			return true
		}
	}
	return false
}

// worthMoving decides whether moving the run from index i of col to another
// column makes progress. Moving the whole face-up run is worthwhile when it
// uncovers a face-down card, or empties the column of anything but a King.
// Splitting the run is worthwhile only when the card it uncovers can go up
// to its foundation at once. Anything else just shuffles cards between
// equal homes and could repeat forever.
func (g *Game) worthMoving(col, i int) bool {
	p := g.board.Column(col)
	start := p.RunStart()
	if i == start {
		if i > 0 {
			return true
		}
		return p.MustAt(i, "run head").Rank != cards.King
	}
	below := p.MustAt(i-1, "card under the split")
	return rules.CanFoundation(below, g.board.FoundationTop(below.Suit))
}

// exposeTop turns the top card of col face up. Flipping is not a move.
func (g *Game) exposeTop(col int) {
	p := g.board.Column(col)
	c, ok := p.Top()
	if !ok || c.Face == cards.FaceUp {
		return
	}
	p.SetFace(p.Len()-1, cards.FaceUp)
	log.Debug().Int("col", col).Str("card", c.String()).Msg("flip")
}
