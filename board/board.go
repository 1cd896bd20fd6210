// Package board holds the Klondike layout: stock, waste, the seven tableau
// columns and the four foundations.
package board

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/domino14/klondike/cards"
	"github.com/domino14/klondike/rules"
)

// NumColumns is the number of tableau columns.
const NumColumns = 7

// Board is the full layout of one deal. It has exactly one owner; nothing
// here is safe for concurrent use.
type Board struct {
	stock       Pile
	waste       Pile
	columns     [NumColumns]Pile
	foundations [cards.NumSuits]Pile
}

// Deal lays out a deck: column c receives c+1 cards, the last of them face
// up, and the rest of the deck goes face down to the stock. Each foundation
// starts with the null card.
func Deal(deck cards.Deck) (*Board, error) {
	if err := deck.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		stock: NewPile("stock"),
		waste: NewPile("waste"),
	}
	next := 0
	for col := 0; col < NumColumns; col++ {
		b.columns[col] = NewPile(fmt.Sprintf("column %d", col))
		for row := 0; row <= col; row++ {
			c := deck[next].WithFace(cards.FaceDown)
			if row == col {
				c.Face = cards.FaceUp
			}
			b.columns[col].Push(c)
			next++
		}
	}
	for _, c := range deck[next:] {
		b.stock.Push(c.WithFace(cards.FaceDown))
	}
	for _, s := range cards.Suits {
		b.foundations[s-cards.Hearts] = NewPile("foundation "+s.Symbol(), cards.NullCard)
	}
	return b, nil
}

// Empty returns a board with no cards and seeded foundations, for building
// positions by hand.
func Empty() *Board {
	b := &Board{stock: NewPile("stock"), waste: NewPile("waste")}
	for col := 0; col < NumColumns; col++ {
		b.columns[col] = NewPile(fmt.Sprintf("column %d", col))
	}
	for _, s := range cards.Suits {
		b.foundations[s-cards.Hearts] = NewPile("foundation "+s.Symbol(), cards.NullCard)
	}
	return b
}

func (b *Board) Stock() *Pile { return &b.stock }

func (b *Board) Waste() *Pile { return &b.waste }

// Column returns tableau column col, 0 through 6.
func (b *Board) Column(col int) *Pile {
	if col < 0 || col >= NumColumns {
		violate("tableau", fmt.Sprintf("column %d exists", col))
	}
	return &b.columns[col]
}

// Foundation returns the foundation for suit s.
func (b *Board) Foundation(s cards.Suit) *Pile {
	if !s.Valid() {
		violate("foundations", fmt.Sprintf("a foundation exists for %v", s))
	}
	return &b.foundations[s-cards.Hearts]
}

// FoundationTop is the top of the foundation for s. It is the null card
// until an ace is played.
func (b *Board) FoundationTop(s cards.Suit) cards.Card {
	return b.Foundation(s).MustTop("a foundation always holds at least its null card")
}

func (b *Board) StockCount() int { return b.stock.Len() }

func (b *Board) WasteCount() int { return b.waste.Len() }

func (b *Board) TableauCount() int {
	return lo.SumBy(b.columns[:], func(p Pile) int { return p.Len() })
}

// FoundationCount is the number of real cards on the foundation for s.
func (b *Board) FoundationCount(s cards.Suit) int {
	n := b.Foundation(s).Len()
	if n == 0 {
		return 0
	}
	return n - 1
}

func (b *Board) TotalFoundationCount() int {
	return lo.SumBy(cards.Suits[:], b.FoundationCount)
}

// TotalCards counts every real card on the board. It is always
// cards.DeckSize.
func (b *Board) TotalCards() int {
	return b.StockCount() + b.WasteCount() + b.TableauCount() + b.TotalFoundationCount()
}

// FaceDownCount is the number of concealed tableau cards.
func (b *Board) FaceDownCount() int {
	return lo.SumBy(b.columns[:], func(p Pile) int { return p.FaceDownCount() })
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	c := &Board{stock: b.stock.clone(), waste: b.waste.clone()}
	for i := range b.columns {
		c.columns[i] = b.columns[i].clone()
	}
	for i := range b.foundations {
		c.foundations[i] = b.foundations[i].clone()
	}
	return c
}

// Check verifies every structural invariant of the layout and returns the
// first one that fails.
func (b *Board) Check() error {
	if n := b.TotalCards(); n != cards.DeckSize {
		return fmt.Errorf("conservation: board holds %d cards, want %d", n, cards.DeckSize)
	}
	var seen [cards.DeckSize]bool
	mark := func(p *Pile) error {
		for _, c := range p.cards {
			if c.IsNull() {
				continue
			}
			idx := c.Index()
			if idx < 0 {
				return fmt.Errorf("%s: %v is not a real card", p.name, c)
			}
			if seen[idx] {
				return fmt.Errorf("%s: %v appears twice on the board", p.name, c)
			}
			seen[idx] = true
		}
		return nil
	}
	for _, c := range b.stock.cards {
		if c.Face != cards.FaceDown {
			return fmt.Errorf("stock: %v is face up", c)
		}
	}
	for _, c := range b.waste.cards {
		if c.Face != cards.FaceUp {
			return fmt.Errorf("waste: %v is face down", c)
		}
	}
	for _, p := range []*Pile{&b.stock, &b.waste} {
		if err := mark(p); err != nil {
			return err
		}
	}
	for i := range b.columns {
		p := &b.columns[i]
		if err := mark(p); err != nil {
			return err
		}
		if p.Len() == 0 {
			continue
		}
		if top, _ := p.Top(); top.Face != cards.FaceUp {
			return fmt.Errorf("%s: top card %v is face down", p.name, top)
		}
		start := p.RunStart()
		for _, c := range p.cards[:start] {
			if c.Face != cards.FaceDown {
				return fmt.Errorf("%s: face-up %v below a face-down card", p.name, c)
			}
		}
		if !rules.IsRun(p.cards[start:]) {
			return fmt.Errorf("%s: face-up cards %v are not a run", p.name, p.cards[start:])
		}
	}
	for _, s := range cards.Suits {
		p := b.Foundation(s)
		if err := mark(p); err != nil {
			return err
		}
		if p.Len() == 0 || !p.cards[0].IsNull() {
			return fmt.Errorf("%s: missing null card", p.name)
		}
		for i, c := range p.cards[1:] {
			if c.Suit != s || int(c.Rank) != i+1 {
				return fmt.Errorf("%s: %v at height %d", p.name, c, i+1)
			}
		}
	}
	return nil
}
