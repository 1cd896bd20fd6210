package cards

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash"
	"lukechampine.com/frand"
)

// DeckSize is the number of real cards in a full deck.
const DeckSize = NumSuits * NumRanks

var ErrInvalidDeck = errors.New("invalid deck")

// Deck is a sequence of cards in deal order.
type Deck []Card

// NewDeck returns an ordered deck, every rank of every suit, face down.
func NewDeck() Deck {
	d := make(Deck, 0, DeckSize)
	for r := Ace; r <= King; r++ {
		for _, s := range Suits {
			d = append(d, New(r, s))
		}
	}
	return d
}

// Copy returns an independent copy of the deck.
func (d Deck) Copy() Deck {
	c := make(Deck, len(d))
	copy(c, d)
	return c
}

// Validate makes sure the deck holds exactly the 52 real cards, once each.
func (d Deck) Validate() error {
	if len(d) != DeckSize {
		return fmt.Errorf("%w: have %d cards, need %d", ErrInvalidDeck, len(d), DeckSize)
	}
	var seen [DeckSize]bool
	for i, c := range d {
		idx := c.Index()
		if idx < 0 {
			return fmt.Errorf("%w: card %d (%v) is not a real card", ErrInvalidDeck, i+1, c)
		}
		if seen[idx] {
			return fmt.Errorf("%w: duplicate card %v at position %d", ErrInvalidDeck, c, i+1)
		}
		seen[idx] = true
	}
	return nil
}

func (d Deck) String() string {
	var sb strings.Builder
	for _, c := range d {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// ID is the serial number of a deal: a hash over every card in deck order.
// It identifies deals for logging and deduplication only.
func (d Deck) ID() uint64 {
	return xxhash.Sum64String(d.String())
}

// IDString is the hex form of ID.
func (d Deck) IDString() string {
	return strconv.FormatUint(d.ID(), 16)
}

// RandomSeed returns a fresh 32-byte seed for Shuffled.
func RandomSeed() [32]byte {
	var seed [32]byte
	frand.Read(seed[:])
	return seed
}

// Shuffled returns a shuffled copy of d. The same seed always produces the
// same order.
func (d Deck) Shuffled(seed [32]byte) Deck {
	out := d.Copy()
	rng := frand.NewCustom(seed[:], 1024, 12)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
