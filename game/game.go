// Package game plays one deal of Klondike to completion with a fixed greedy
// strategy: each round runs the tableau driver over all seven columns, then
// draws from the stock and plays off the waste.
package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/klondike/board"
	"github.com/domino14/klondike/cards"
	"github.com/domino14/klondike/move"
	"github.com/domino14/klondike/zobrist"
)

type State uint8

const (
	StatePlaying State = iota
	StateTerminal
)

func (s State) String() string {
	if s == StateTerminal {
		return "terminal"
	}
	return "playing"
}

type Outcome uint8

const (
	OutcomeInProgress Outcome = iota
	OutcomeWon
	OutcomeStuck
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeStuck:
		return "stuck"
	}
	return "in progress"
}

// Game owns the board and ledger of a single deal. It is not safe for
// concurrent use; run one Game per goroutine.
type Game struct {
	opts   Options
	deck   cards.Deck
	dealID uint64

	board  *board.Board
	ledger *move.Ledger

	moveNum    int
	round      int
	stalled    int
	state      State
	stopReason string

	zobrist *zobrist.Zobrist
	seen    map[uint64]struct{}
}

// NewGame deals deck and readies it for play. The deck must hold each of the
// 52 cards exactly once.
func NewGame(deck cards.Deck, opts Options) (*Game, error) {
	if err := opts.fill(); err != nil {
		return nil, err
	}
	b, err := board.Deal(deck)
	if err != nil {
		return nil, err
	}
	g := &Game{
		opts:    opts,
		deck:    deck.Copy(),
		dealID:  deck.ID(),
		board:   b,
		ledger:  move.NewLedger(),
		zobrist: zobrist.Shared(),
		seen:    make(map[uint64]struct{}),
	}
	g.seen[g.zobrist.Hash(b)] = struct{}{}
	log.Debug().Str("deal", deck.IDString()).Int("draw", opts.DrawCount).Msg("new-game")
	return g, nil
}

func (g *Game) Board() *board.Board { return g.board }

func (g *Game) Ledger() *move.Ledger { return g.ledger }

func (g *Game) Deck() cards.Deck { return g.deck.Copy() }

func (g *Game) Options() Options { return g.opts }

func (g *Game) DealID() uint64 { return g.dealID }

func (g *Game) MoveCount() int { return g.moveNum }

func (g *Game) Rounds() int { return g.round }

func (g *Game) State() State { return g.state }

// StopReason says why the game became terminal; empty while playing.
func (g *Game) StopReason() string { return g.stopReason }

func (g *Game) StockCount() int { return g.board.StockCount() }

func (g *Game) WasteCount() int { return g.board.WasteCount() }

func (g *Game) TableauCount() int { return g.board.TableauCount() }

func (g *Game) FoundationCount(s cards.Suit) int { return g.board.FoundationCount(s) }

func (g *Game) TotalFoundationCount() int { return g.board.TotalFoundationCount() }

// Won is true once every card is on a foundation.
func (g *Game) Won() bool {
	return g.board.TotalFoundationCount() == cards.DeckSize
}

func (g *Game) Outcome() Outcome {
	switch {
	case g.Won():
		return OutcomeWon
	case g.state == StateTerminal:
		return OutcomeStuck
	}
	return OutcomeInProgress
}

func (g *Game) record(cs []cards.Card, from, to move.PileRef) {
	g.moveNum++
	m := move.Move{
		Turn:      g.moveNum,
		Cards:     cs,
		From:      from,
		To:        to,
		Timestamp: g.opts.Clock(),
	}
	g.ledger.Append(m)
	log.Debug().Msg(m.ShortDescription())
}

func (g *Game) String() string {
	return fmt.Sprintf("deal %s round %d moves %d foundation %d/%d (%s)",
		g.deck.IDString(), g.round, g.moveNum, g.TotalFoundationCount(),
		cards.DeckSize, g.Outcome())
}
