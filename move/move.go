// Package move records the transfers made during a game.
package move

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/domino14/klondike/cards"
)

// PileKind is the kind of pile a move touches.
type PileKind uint8

const (
	PileStock PileKind = iota
	PileWaste
	PileColumn
	PileFoundation
)

// PileRef names a single pile on the board.
type PileRef struct {
	Kind PileKind
	// Index is the column number for PileColumn and the suit for
	// PileFoundation.
	Index int
}

func Stock() PileRef { return PileRef{Kind: PileStock} }

func Waste() PileRef { return PileRef{Kind: PileWaste} }

func Column(col int) PileRef { return PileRef{Kind: PileColumn, Index: col} }

func Foundation(s cards.Suit) PileRef { return PileRef{Kind: PileFoundation, Index: int(s)} }

func (r PileRef) String() string {
	switch r.Kind {
	case PileStock:
		return "Stock"
	case PileWaste:
		return "Waste"
	case PileColumn:
		return fmt.Sprintf("Col%d", r.Index)
	case PileFoundation:
		return "Found" + cards.Suit(r.Index).Symbol()
	}
	return "?"
}

// Move is one successful transfer. Cards[0] is the card that was played;
// any further cards were resting on it and were carried along, in order.
type Move struct {
	Turn      int
	Cards     []cards.Card
	From      PileRef
	To        PileRef
	Timestamp time.Time
}

// Card is the card that was actually played.
func (m Move) Card() cards.Card {
	return m.Cards[0]
}

// ShortDescription is a stable, timestamp-free description of the move.
func (m Move) ShortDescription() string {
	names := lo.Map(m.Cards, func(c cards.Card, _ int) string { return c.String() })
	return fmt.Sprintf("%d: %s %s -> %s", m.Turn, strings.Join(names, ","), m.From, m.To)
}

func (m Move) String() string {
	return fmt.Sprintf("<turn: %d cards: %v from: %v to: %v ts: %v>",
		m.Turn, m.Cards, m.From, m.To, m.Timestamp.Format(time.RFC3339Nano))
}
