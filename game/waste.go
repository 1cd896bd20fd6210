package game

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/klondike/cards"
	"github.com/domino14/klondike/move"
	"github.com/domino14/klondike/rules"
)

// playWaste draws from the stock, recycling the waste first if the stock is
// out, and then plays the waste top for as long as it has somewhere to go.
// The first card that cannot be placed ends the phase, even if a card under
// it could have been.
func (g *Game) playWaste() {
	if g.board.StockCount() == 0 {
		g.recycle()
	}
	g.draw()

	waste := g.board.Waste()
	for {
		c, ok := waste.Top()
		if !ok {
			return
		}
		if rules.CanFoundation(c, g.board.FoundationTop(c.Suit)) {
			waste.Pop("the waste top was just read")
			g.board.Foundation(c.Suit).Push(c)
			g.record([]cards.Card{c}, move.Waste(), move.Foundation(c.Suit))
			continue
		}
		dest, ok := g.opts.Selector.SelectColumn(g.board, c, FromWaste)
		if !ok {
			return
		}
		waste.Pop("the waste top was just read")
		g.board.Column(dest).Push(c)
		g.record([]cards.Card{c}, move.Waste(), move.Column(dest))
	}
}

// recycle turns the waste back over into the stock, face down, keeping the
// order in which the cards were drawn.
func (g *Game) recycle() {
	cs := g.board.Waste().TakeAll()
	if len(cs) == 0 {
		return
	}
	for i := range cs {
		cs[i].Face = cards.FaceDown
	}
	g.board.Stock().Push(cs...)
	log.Debug().Int("cards", len(cs)).Msg("recycle")
}

func (g *Game) draw() {
	cs := g.board.Stock().TakeFront(g.opts.DrawCount)
	for i := range cs {
		cs[i].Face = cards.FaceUp
	}
	g.board.Waste().Push(cs...)
}
