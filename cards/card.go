// Package cards holds the playing card model for Klondike: ranks, suits,
// orientation, and full 52-card decks.
package cards

import "strconv"

// Face is the orientation of a card.
type Face uint8

const (
	FaceUp Face = iota
	FaceDown
	// NoFace is only ever carried by the null card.
	NoFace
)

func (f Face) String() string {
	switch f {
	case FaceUp:
		return "up"
	case FaceDown:
		return "down"
	}
	return "no face"
}

// Color of a suit.
type Color uint8

const (
	ColorNone Color = iota
	Red
	Black
)

// Suit is one of the four French suits, or NoSuit for the null card.
type Suit uint8

const (
	NoSuit Suit = iota
	Hearts
	Spades
	Diamonds
	Clubs
)

// NumSuits is the number of real suits.
const NumSuits = 4

// Suits lists the real suits in their canonical order.
var Suits = [NumSuits]Suit{Hearts, Spades, Diamonds, Clubs}

func (s Suit) Color() Color {
	switch s {
	case Hearts, Diamonds:
		return Red
	case Spades, Clubs:
		return Black
	}
	return ColorNone
}

// Symbol returns the suit glyph.
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	}
	return "NS"
}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	}
	return "no suit"
}

// Valid is true for the four real suits.
func (s Suit) Valid() bool {
	return s >= Hearts && s <= Clubs
}

// Rank is the card value. RankNull sits beneath every foundation so that
// placing an ace is the same "one more than the top" rule as any other card.
type Rank int8

const (
	RankNull Rank = iota
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// NumRanks is the number of real ranks.
const NumRanks = 13

// Symbol returns A, 2..10, J, Q, K.
func (r Rank) Symbol() string {
	switch r {
	case RankNull:
		return "N"
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return strconv.Itoa(int(r))
}

func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Card is a playing card. Two cards are the same card when rank and suit
// match; orientation is state, not identity.
type Card struct {
	Rank Rank
	Suit Suit
	Face Face
}

// NullCard seeds every foundation.
var NullCard = Card{Rank: RankNull, Suit: NoSuit, Face: NoFace}

// New returns a face-down card.
func New(r Rank, s Suit) Card {
	return Card{Rank: r, Suit: s, Face: FaceDown}
}

// IsNull reports whether c is the sentinel beneath a foundation.
func (c Card) IsNull() bool {
	return c.Rank == RankNull
}

// Same compares identity only.
func (c Card) Same(o Card) bool {
	return c.Rank == o.Rank && c.Suit == o.Suit
}

func (c Card) Color() Color {
	return c.Suit.Color()
}

// Index maps a real card to 0..51. It is -1 for the null card or anything
// that is not a real card.
func (c Card) Index() int {
	if !c.Rank.Valid() || !c.Suit.Valid() {
		return -1
	}
	return int(c.Suit-Hearts)*NumRanks + int(c.Rank-Ace)
}

// WithFace returns a copy of c with the given orientation.
func (c Card) WithFace(f Face) Card {
	c.Face = f
	return c
}

func (c Card) String() string {
	if c.IsNull() {
		return "N"
	}
	return c.Rank.Symbol() + c.Suit.Symbol()
}

// Display renders c the way a player at the table sees it unless showAll is
// set, in which case face-down cards are shown too.
func (c Card) Display(showAll bool) string {
	if c.IsNull() {
		return " "
	}
	if !showAll && c.Face == FaceDown {
		return "X"
	}
	return c.String()
}
