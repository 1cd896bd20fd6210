// Package automatic plays deals without a human: one at a time through a
// GameRunner, or thousands at once across worker goroutines.
package automatic

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/domino14/klondike/cards"
	"github.com/domino14/klondike/config"
	"github.com/domino14/klondike/dealstore"
	"github.com/domino14/klondike/game"
	"github.com/domino14/klondike/results"
)

// GameRunner plays deals end to end and reports each one to the deal store,
// the results publisher and the CSV log channel. Each runner is owned by a
// single goroutine.
type GameRunner struct {
	opts      game.Options
	store     dealstore.Repo
	publisher results.Publisher
	logchan   chan string

	game *game.Game
}

// NewGameRunner builds a runner. store, publisher and logchan may be nil.
func NewGameRunner(cfg *config.Config, store dealstore.Repo, publisher results.Publisher,
	logchan chan string) *GameRunner {

	if publisher == nil {
		publisher = results.NoopPublisher{}
	}
	return &GameRunner{
		opts:      game.OptionsFromConfig(cfg),
		store:     store,
		publisher: publisher,
		logchan:   logchan,
	}
}

// Game is the most recently played game.
func (r *GameRunner) Game() *game.Game {
	return r.game
}

// PlaySeed shuffles a fresh deck with seed and plays it.
func (r *GameRunner) PlaySeed(ctx context.Context, seed [32]byte) (results.Summary, error) {
	return r.PlayDeal(ctx, cards.NewDeck().Shuffled(seed), EncodeSeed(seed))
}

// PlayDeal plays deck to the end. seed is recorded alongside the result and
// may be empty for decks loaded from a file.
func (r *GameRunner) PlayDeal(ctx context.Context, deck cards.Deck, seed string) (results.Summary, error) {
	g, err := game.NewGame(deck, r.opts)
	if err != nil {
		return results.Summary{}, err
	}
	r.game = g
	g.Play()
	summary := results.SummaryOf(g, seed)

	zerolog.Ctx(ctx).Debug().Str("deal", summary.DealID).Str("outcome", summary.Outcome).
		Int("foundation", summary.Foundation).Int("moves", summary.Moves).Msg("deal-played")

	if r.store != nil {
		err := r.store.Save(ctx, dealstore.Deal{
			ID:     summary.DealID,
			Seed:   seed,
			Deck:   deck,
			Played: true,
			Result: summary.Result(),
		})
		if err != nil {
			return summary, err
		}
	}
	if err := r.publisher.Publish(ctx, summary); err != nil {
		return summary, fmt.Errorf("publishing deal %s: %w", summary.DealID, err)
	}
	if r.logchan != nil {
		r.logchan <- fmt.Sprintf("%s,%s,%t,%d,%d,%d\n",
			summary.DealID, seed, summary.Won, summary.Foundation, summary.Moves, summary.Rounds)
	}
	return summary, nil
}
