package game

import (
	"github.com/rs/zerolog/log"
)

// PlayRound runs one round, a tableau pass followed by one waste/stock pass,
// and returns the number of moves it made. A terminal game makes no moves.
func (g *Game) PlayRound() int {
	if g.state == StateTerminal {
		return 0
	}
	before := g.moveNum
	g.round++
	g.playTableau()
	g.playWaste()
	made := g.moveNum - before

	if g.opts.Paranoid {
		if err := g.board.Check(); err != nil {
			log.Error().Err(err).Int("round", g.round).Msg("board-check")
			panic(err)
		}
	}
	if made == 0 {
		g.stalled++
	} else {
		g.stalled = 0
	}
	h := g.zobrist.Hash(g.board)
	_, repeated := g.seen[h]
	g.seen[h] = struct{}{}

	switch {
	case g.opts.StallRounds > 0 && g.stalled >= g.opts.StallRounds:
		g.stop("no progress")
	case repeated:
		g.stop("position repeated")
	case g.opts.MaxRounds > 0 && g.round >= g.opts.MaxRounds:
		g.stop("round limit")
	}
	log.Debug().Int("round", g.round).Int("moves", made).
		Int("foundation", g.TotalFoundationCount()).Msg("round")

	if g.opts.OnRound != nil {
		g.opts.OnRound(g.round, g)
	}
	return made
}

// Play runs rounds until the game is terminal and returns the outcome.
func (g *Game) Play() Outcome {
	for g.state == StatePlaying {
		g.PlayRound()
	}
	log.Debug().Str("deal", g.deck.IDString()).Str("outcome", g.Outcome().String()).
		Str("reason", g.stopReason).Int("rounds", g.round).Int("moves", g.moveNum).
		Msg("game-over")
	return g.Outcome()
}

func (g *Game) stop(reason string) {
	g.state = StateTerminal
	g.stopReason = reason
}
