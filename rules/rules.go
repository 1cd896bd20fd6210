// Package rules contains the Klondike legality predicates. They are pure
// functions of card values and never fail.
package rules

import "github.com/domino14/klondike/cards"

// CanFoundation reports whether card may be placed on a foundation whose top
// card is top. Foundations are seeded with the null card, so an ace is just
// "one more than the top" like everything else. The caller routes the card
// to the foundation of its own suit.
func CanFoundation(card, top cards.Card) bool {
	return int(card.Rank)-int(top.Rank) == 1
}

// CanTableau reports whether from may be placed on onto, the top card of a
// tableau column: colors must differ and onto must be exactly one rank
// higher. Kings never pass; they move only onto empty columns.
func CanTableau(from, onto cards.Card) bool {
	if from.Color() == onto.Color() {
		return false
	}
	return int(onto.Rank)-int(from.Rank) == 1
}

// Stack is anything with a card count.
type Stack interface {
	Len() int
}

func IsColumnEmpty(col Stack) bool {
	return col.Len() == 0
}

// CanPlaceOnColumn combines the empty-column king rule with CanTableau.
func CanPlaceOnColumn(card cards.Card, colLen int, colTop cards.Card) bool {
	if colLen == 0 {
		return card.Rank == cards.King
	}
	return CanTableau(card, colTop)
}

// IsRun reports whether cs is strictly descending by one with alternating
// colors. Empty and single-card sequences are runs.
func IsRun(cs []cards.Card) bool {
	for i := 1; i < len(cs); i++ {
		if !CanTableau(cs[i], cs[i-1]) {
			return false
		}
	}
	return true
}
