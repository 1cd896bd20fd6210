package results

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/klondike/cards"
	"github.com/domino14/klondike/game"
)

type fakeConn struct {
	mu       sync.Mutex
	failures int
	sent     map[string][][]byte
	drained  bool
}

func (f *fakeConn) Publish(subject string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return errors.New("nats: connection reconnecting")
	}
	if f.sent == nil {
		f.sent = map[string][][]byte{}
	}
	f.sent[subject] = append(f.sent[subject], data)
	return nil
}

func (f *fakeConn) Drain() error {
	f.drained = true
	return nil
}

func playedSummary(t *testing.T) Summary {
	var seed [32]byte
	deck := cards.NewDeck().Shuffled(seed)
	g, err := game.NewGame(deck, game.DefaultOptions())
	require.NoError(t, err)
	g.Play()
	return SummaryOf(g, "00ff")
}

func TestSummaryOf(t *testing.T) {
	s := playedSummary(t)
	assert.NotEmpty(t, s.DealID)
	assert.Equal(t, "00ff", s.Seed)
	assert.Equal(t, 3, s.DrawCount)
	assert.Contains(t, []string{"won", "stuck"}, s.Outcome)
	assert.Equal(t, s.Won, s.Foundation == cards.DeckSize)

	r := s.Result()
	assert.Equal(t, s.Moves, r.Moves)
	assert.Equal(t, s.DealID, r.DealID)
}

func TestSummaryJSON(t *testing.T) {
	s := Summary{DealID: "abc", Outcome: "stuck", Reason: "no progress", Foundation: 7, Moves: 40, Rounds: 12, DrawCount: 3}
	data, err := s.Marshal()
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "abc", m["deal_id"])
	assert.Equal(t, float64(7), m["foundation"])
	_, hasSeed := m["seed"]
	assert.False(t, hasSeed)
}

func TestNatsPublisherRetries(t *testing.T) {
	fc := &fakeConn{failures: 2}
	p := &NatsPublisher{nc: fc, subject: "klondike.results"}
	require.NoError(t, p.Publish(context.Background(), Summary{DealID: "abc"}))
	assert.Len(t, fc.sent["klondike.results"], 1)
	require.NoError(t, p.Close())
	assert.True(t, fc.drained)
}

func TestNatsPublisherGivesUp(t *testing.T) {
	fc := &fakeConn{failures: publishAttempts}
	p := &NatsPublisher{nc: fc, subject: "klondike.results"}
	err := p.Publish(context.Background(), Summary{DealID: "abc"})
	assert.Error(t, err)
	assert.Empty(t, fc.sent)
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), Summary{}))
	assert.NoError(t, p.Close())
}
