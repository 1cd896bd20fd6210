package zobrist

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/klondike/board"
	"github.com/domino14/klondike/cards"
)

func TestSameLayoutSameHash(t *testing.T) {
	is := is.New(t)
	z := New()
	b1, err := board.Deal(cards.NewDeck())
	is.NoErr(err)
	b2, err := board.Deal(cards.NewDeck())
	is.NoErr(err)
	is.Equal(z.Hash(b1), z.Hash(b2))
}

func TestHashChangesWithLayout(t *testing.T) {
	is := is.New(t)
	z := New()
	b, err := board.Deal(cards.NewDeck())
	is.NoErr(err)
	h := z.Hash(b)

	// draw one card to the waste
	c := b.Stock().TakeFront(1)[0]
	b.Waste().Push(c.WithFace(cards.FaceUp))
	h1 := z.Hash(b)
	is.True(h != h1)

	// flipping it face down is a different position too
	b.Waste().SetFace(0, cards.FaceDown)
	is.True(z.Hash(b) != h1)

	// and putting it back restores the original key
	back := b.Waste().TakeAll()
	b.Stock().Push(back[0])
	stock := b.Stock().TakeAll()
	b.Stock().Push(stock[len(stock)-1])
	b.Stock().Push(stock[:len(stock)-1]...)
	is.Equal(z.Hash(b), h)
}

func TestSharedIsStable(t *testing.T) {
	is := is.New(t)
	is.True(Shared() == Shared())
}
