// Package results publishes the summary of every finished game.
package results

import (
	"context"
	"encoding/json"

	"github.com/domino14/klondike/game"
	"github.com/domino14/klondike/stats"
)

// Summary is the wire form of a finished game.
type Summary struct {
	DealID     string `json:"deal_id"`
	Seed       string `json:"seed,omitempty"`
	Outcome    string `json:"outcome"`
	Reason     string `json:"reason"`
	Won        bool   `json:"won"`
	Foundation int    `json:"foundation"`
	Moves      int    `json:"moves"`
	Rounds     int    `json:"rounds"`
	DrawCount  int    `json:"draw_count"`
}

func SummaryOf(g *game.Game, seed string) Summary {
	return Summary{
		DealID:     g.Deck().IDString(),
		Seed:       seed,
		Outcome:    g.Outcome().String(),
		Reason:     g.StopReason(),
		Won:        g.Won(),
		Foundation: g.TotalFoundationCount(),
		Moves:      g.MoveCount(),
		Rounds:     g.Rounds(),
		DrawCount:  g.Options().DrawCount,
	}
}

func (s Summary) Result() stats.Result {
	return stats.Result{
		DealID:     s.DealID,
		Seed:       s.Seed,
		Won:        s.Won,
		Foundation: s.Foundation,
		Moves:      s.Moves,
		Rounds:     s.Rounds,
	}
}

func (s Summary) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

// Publisher sends summaries somewhere. Implementations must be safe for
// concurrent use.
type Publisher interface {
	Publish(ctx context.Context, s Summary) error
	Close() error
}

// NoopPublisher drops everything.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Summary) error { return nil }

func (NoopPublisher) Close() error { return nil }
