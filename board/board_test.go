package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/klondike/cards"
)

func up(r cards.Rank, s cards.Suit) cards.Card {
	return cards.Card{Rank: r, Suit: s, Face: cards.FaceUp}
}

func TestDealLayout(t *testing.T) {
	is := is.New(t)
	deck := cards.NewDeck()
	b, err := Deal(deck)
	is.NoErr(err)

	next := 0
	for col := 0; col < NumColumns; col++ {
		p := b.Column(col)
		is.Equal(p.Len(), col+1)
		for row, c := range p.Cards() {
			is.True(c.Same(deck[next]))
			if row == col {
				is.Equal(c.Face, cards.FaceUp)
			} else {
				is.Equal(c.Face, cards.FaceDown)
			}
			next++
		}
	}
	is.Equal(b.TableauCount(), 28)
	is.Equal(b.StockCount(), 24)
	is.True(b.Stock().Cards()[0].Same(deck[28]))
	is.Equal(b.WasteCount(), 0)
	is.Equal(b.TotalFoundationCount(), 0)
	is.Equal(b.TotalCards(), cards.DeckSize)
	for _, s := range cards.Suits {
		is.True(b.FoundationTop(s).IsNull())
	}
	is.Equal(b.FaceDownCount(), 21)
	is.NoErr(b.Check())
}

func TestDealRejectsBadDeck(t *testing.T) {
	is := is.New(t)
	_, err := Deal(cards.NewDeck()[:40])
	is.True(errors.Is(err, cards.ErrInvalidDeck))
}

func TestMustTopPanicsWithInvariant(t *testing.T) {
	is := is.New(t)
	b := Empty()
	defer func() {
		r := recover()
		v, ok := r.(*InvariantViolation)
		is.True(ok)
		is.Equal(v.Pile, "column 3")
		is.True(strings.Contains(v.Error(), "column must have a face-up card"))
	}()
	b.Column(3).MustTop("column must have a face-up card")
}

func TestColumnOutOfRangePanics(t *testing.T) {
	is := is.New(t)
	defer func() {
		_, ok := recover().(*InvariantViolation)
		is.True(ok)
	}()
	Empty().Column(NumColumns)
}

func TestPileOperations(t *testing.T) {
	is := is.New(t)
	p := NewPile("test",
		cards.New(cards.King, cards.Spades),
		up(cards.Nine, cards.Clubs),
		up(cards.Eight, cards.Hearts),
		up(cards.Seven, cards.Spades),
	)
	is.Equal(p.RunStart(), 1)
	is.Equal(p.FaceDownCount(), 1)

	taken := p.TakeFrom(2, "index exists")
	is.Equal(len(taken), 2)
	is.Equal(taken[0].String(), "8♥")
	is.Equal(p.Len(), 2)

	front := p.TakeFront(5)
	is.Equal(len(front), 2)
	is.Equal(p.Len(), 0)
	is.Equal(p.RunStart(), 0)
	_, ok := p.Top()
	is.True(!ok)
}

func TestCheckCatchesBrokenBoards(t *testing.T) {
	is := is.New(t)
	b, err := Deal(cards.NewDeck())
	is.NoErr(err)

	c := b.Copy()
	c.Column(2).SetFace(2, cards.FaceDown)
	is.True(c.Check() != nil)

	c = b.Copy()
	c.Stock().Pop("stock has cards")
	is.True(c.Check() != nil)

	c = b.Copy()
	card := c.Stock().Pop("stock has cards")
	c.Waste().Push(card)
	is.True(c.Check() != nil) // face down on the waste

	// the original is untouched by copies
	is.NoErr(b.Check())
}

func TestSnapshotMasksFaceDown(t *testing.T) {
	is := is.New(t)
	b, err := Deal(cards.NewDeck())
	is.NoErr(err)

	snap := b.Snapshot(false)
	col := snap.Columns[2].Cards
	is.True(col[0].Masked)
	is.Equal(col[0].Symbol, "X")
	is.True(!col[2].Masked)
	is.Equal(col[2].Symbol, col[2].Card.String())

	all := b.Snapshot(true)
	is.True(!all.Columns[2].Cards[0].Masked)

	text := b.ToDisplayText(false)
	is.True(strings.Contains(text, "Stock: 24"))
	is.True(strings.Contains(text, " C6"))
}
