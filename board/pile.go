package board

import (
	"fmt"

	"github.com/domino14/klondike/cards"
)

// InvariantViolation is the panic value used when the board is not in a state
// the engine guarantees it must be in. It indicates a modeling bug, never a
// bad deal.
type InvariantViolation struct {
	Pile       string
	Assumption string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violated on %s: %s", e.Pile, e.Assumption)
}

func violate(pile, assumption string) {
	panic(&InvariantViolation{Pile: pile, Assumption: assumption})
}

// Pile is an ordered stack of cards. The last card is the top, the only
// accessible side for play.
type Pile struct {
	name  string
	cards []cards.Card
}

func NewPile(name string, cs ...cards.Card) Pile {
	p := Pile{name: name, cards: make([]cards.Card, 0, len(cs))}
	p.cards = append(p.cards, cs...)
	return p
}

func (p *Pile) Name() string { return p.name }

func (p *Pile) Len() int { return len(p.cards) }

// Cards returns the pile from bottom to top. The slice must not be modified.
func (p *Pile) Cards() []cards.Card { return p.cards }

// Top returns the top card if there is one.
func (p *Pile) Top() (cards.Card, bool) {
	if len(p.cards) == 0 {
		return cards.Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

// MustTop returns the top card. The pile must not be empty; assumption names
// why the caller knows that.
func (p *Pile) MustTop(assumption string) cards.Card {
	if len(p.cards) == 0 {
		violate(p.name, assumption)
	}
	return p.cards[len(p.cards)-1]
}

// MustAt returns the card at index i (0 is the bottom of the pile).
func (p *Pile) MustAt(i int, assumption string) cards.Card {
	if i < 0 || i >= len(p.cards) {
		violate(p.name, fmt.Sprintf("%s (index %d of %d)", assumption, i, len(p.cards)))
	}
	return p.cards[i]
}

// Push adds cards to the top, in order.
func (p *Pile) Push(cs ...cards.Card) {
	p.cards = append(p.cards, cs...)
}

// Pop removes the top card.
func (p *Pile) Pop(assumption string) cards.Card {
	c := p.MustTop(assumption)
	p.cards = p.cards[:len(p.cards)-1]
	return c
}

// TakeFrom removes and returns every card from index i to the top.
func (p *Pile) TakeFrom(i int, assumption string) []cards.Card {
	p.MustAt(i, assumption)
	taken := make([]cards.Card, len(p.cards)-i)
	copy(taken, p.cards[i:])
	p.cards = p.cards[:i]
	return taken
}

// TakeFront removes up to n cards from the bottom (oldest end) of the pile.
func (p *Pile) TakeFront(n int) []cards.Card {
	if n > len(p.cards) {
		n = len(p.cards)
	}
	taken := make([]cards.Card, n)
	copy(taken, p.cards[:n])
	p.cards = append(p.cards[:0], p.cards[n:]...)
	return taken
}

// TakeAll empties the pile.
func (p *Pile) TakeAll() []cards.Card {
	taken := p.cards
	p.cards = nil
	return taken
}

// SetFace changes the orientation of the card at index i.
func (p *Pile) SetFace(i int, f cards.Face) {
	p.MustAt(i, "setting face on an existing card")
	p.cards[i].Face = f
}

// RunStart returns the index of the first card of the face-up run at the top
// of the pile. It equals Len() when the top card is face down or the pile is
// empty.
func (p *Pile) RunStart() int {
	i := len(p.cards)
	for i > 0 && p.cards[i-1].Face == cards.FaceUp {
		i--
	}
	return i
}

// FaceDownCount is the number of concealed cards in the pile.
func (p *Pile) FaceDownCount() int {
	n := 0
	for _, c := range p.cards {
		if c.Face == cards.FaceDown {
			n++
		}
	}
	return n
}

func (p *Pile) clone() Pile {
	return NewPile(p.name, p.cards...)
}
