package board

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/klondike/cards"
)

// RenderedCard is a card as it is shown to a viewer.
type RenderedCard struct {
	Card   cards.Card
	Symbol string
	// Masked is set for a face-down card hidden from the viewer.
	Masked bool
}

// PileSnapshot is the rendered contents of one pile, bottom to top.
type PileSnapshot struct {
	Name  string
	Cards []RenderedCard
}

// Snapshot is a read-only rendering of the whole board.
type Snapshot struct {
	Stock       PileSnapshot
	Waste       PileSnapshot
	Columns     [NumColumns]PileSnapshot
	Foundations [cards.NumSuits]PileSnapshot
}

func renderPile(p *Pile, showAll bool) PileSnapshot {
	return PileSnapshot{
		Name: p.name,
		Cards: lo.Map(p.cards, func(c cards.Card, _ int) RenderedCard {
			return RenderedCard{
				Card:   c,
				Symbol: c.Display(showAll),
				Masked: !showAll && c.Face == cards.FaceDown,
			}
		}),
	}
}

// Snapshot renders the board. With showAll false face-down cards are masked,
// as the player would see them.
func (b *Board) Snapshot(showAll bool) Snapshot {
	s := Snapshot{
		Stock: renderPile(&b.stock, showAll),
		Waste: renderPile(&b.waste, showAll),
	}
	for i := range b.columns {
		s.Columns[i] = renderPile(&b.columns[i], showAll)
	}
	for i := range b.foundations {
		s.Foundations[i] = renderPile(&b.foundations[i], showAll)
	}
	return s
}

// ToDisplayText renders the board as a block of text: counts and tops on the
// first lines, then the tableau columns side by side.
func (b *Board) ToDisplayText(showAll bool) string {
	snap := b.Snapshot(showAll)
	var sb strings.Builder

	fmt.Fprintf(&sb, "Stock: %d", b.StockCount())
	if showAll && b.StockCount() > 0 {
		sb.WriteString(" [")
		sb.WriteString(strings.Join(symbols(snap.Stock.Cards), " "))
		sb.WriteString("]")
	}
	sb.WriteString("   Waste:")
	for i, rc := range snap.Waste.Cards {
		if i == len(snap.Waste.Cards)-1 {
			sb.WriteString(" [" + rc.Symbol + "]")
		} else {
			sb.WriteString(" " + rc.Symbol)
		}
	}
	sb.WriteString("\n")

	sb.WriteString("Foundations:")
	for i, s := range cards.Suits {
		top := "-"
		if f := snap.Foundations[i].Cards; len(f) > 1 {
			top = f[len(f)-1].Symbol
		}
		fmt.Fprintf(&sb, "  %s %s", s.Symbol(), top)
	}
	sb.WriteString("\n\n")

	height := 0
	for i := range snap.Columns {
		height = max(height, len(snap.Columns[i].Cards))
	}
	for i := range snap.Columns {
		fmt.Fprintf(&sb, " C%d  ", i)
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", NumColumns*5) + "\n")
	for row := 0; row < height; row++ {
		for col := range snap.Columns {
			cell := ""
			if cs := snap.Columns[col].Cards; row < len(cs) {
				cell = cs[row].Symbol
			}
			// glyphs are one column wide but several bytes long
			pad := 4 - len([]rune(cell))
			sb.WriteString(" " + cell + strings.Repeat(" ", max(pad, 0)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func symbols(rcs []RenderedCard) []string {
	return lo.Map(rcs, func(rc RenderedCard, _ int) string { return rc.Symbol })
}
