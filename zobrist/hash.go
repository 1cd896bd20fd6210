// Package zobrist hashes Klondike positions so the game loop can tell when a
// layout repeats.
// https://en.wikipedia.org/wiki/Zobrist_hashing
package zobrist

import (
	"sync"

	"lukechampine.com/frand"

	"github.com/domino14/klondike/board"
	"github.com/domino14/klondike/cards"
)

const bignum = 1<<63 - 2

// stock, waste, columns, foundations
const numPiles = 2 + board.NumColumns + cards.NumSuits

// A card can sit at any height up to the deck size.
const maxDepth = cards.DeckSize

type Zobrist struct {
	// indexed by pile, depth, card index and whether the card is face up
	posTable []uint64
}

func New() *Zobrist {
	z := &Zobrist{}
	z.Initialize()
	return z
}

func (z *Zobrist) Initialize() {
	z.posTable = make([]uint64, numPiles*maxDepth*cards.DeckSize*2)
	for i := range z.posTable {
		z.posTable[i] = frand.Uint64n(bignum) + 1
	}
}

func (z *Zobrist) key(pile, depth int, c cards.Card) uint64 {
	face := 0
	if c.Face == cards.FaceUp {
		face = 1
	}
	return z.posTable[((pile*maxDepth+depth)*cards.DeckSize+c.Index())*2+face]
}

func (z *Zobrist) hashPile(key uint64, pile int, p *board.Pile) uint64 {
	for depth, c := range p.Cards() {
		if c.IsNull() {
			continue
		}
		key ^= z.key(pile, depth, c)
	}
	return key
}

// Hash computes the key of the whole layout.
func (z *Zobrist) Hash(b *board.Board) uint64 {
	key := uint64(0)
	key = z.hashPile(key, 0, b.Stock())
	key = z.hashPile(key, 1, b.Waste())
	for col := 0; col < board.NumColumns; col++ {
		key = z.hashPile(key, 2+col, b.Column(col))
	}
	for i, s := range cards.Suits {
		key = z.hashPile(key, 2+board.NumColumns+i, b.Foundation(s))
	}
	return key
}

var (
	shared     *Zobrist
	sharedOnce sync.Once
)

// Shared returns a process-wide table. Its keys are random, so hashes are
// only comparable within one process.
func Shared() *Zobrist {
	sharedOnce.Do(func() {
		shared = New()
	})
	return shared
}
