package dealstore

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/klondike/cards"
	"github.com/domino14/klondike/stats"
)

func sampleDeal(n byte) Deal {
	var seed [32]byte
	seed[0] = n
	deck := cards.NewDeck().Shuffled(seed)
	return Deal{
		ID:   deck.IDString(),
		Seed: "seed",
		Deck: deck,
	}
}

func testRepo(t *testing.T, r Repo) {
	ctx := context.Background()
	_, err := r.Load(ctx, "nope")
	assert.True(t, errors.Is(err, ErrNotFound))

	d := sampleDeal(1)
	require.NoError(t, r.Save(ctx, d))
	got, err := r.Load(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d.Deck.String(), got.Deck.String())
	assert.False(t, got.Played)

	// saving again records the result
	d.Played = true
	d.Result = stats.Result{Won: true, Foundation: 52, Moves: 120, Rounds: 30}
	require.NoError(t, r.Save(ctx, d))
	got, err = r.Load(ctx, d.ID)
	require.NoError(t, err)
	assert.True(t, got.Played)
	assert.True(t, got.Result.Won)
	assert.Equal(t, 120, got.Result.Moves)

	var wg sync.WaitGroup
	for i := 2; i < 10; i++ {
		wg.Add(1)
		go func(n byte) {
			defer wg.Done()
			assert.NoError(t, r.Save(ctx, sampleDeal(n)))
		}(byte(i))
	}
	wg.Wait()
	ids, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 9)
	assert.IsNonDecreasing(t, ids)
	require.NoError(t, r.Close())
}

func TestMemoryRepo(t *testing.T) {
	testRepo(t, NewMemoryRepo())
}

func TestSQLiteRepo(t *testing.T) {
	r, err := Open(filepath.Join(t.TempDir(), "deals.db"))
	require.NoError(t, err)
	testRepo(t, r)
}

func TestMemoryRepoCopiesDeck(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()
	d := sampleDeal(1)
	require.NoError(t, r.Save(ctx, d))
	d.Deck[0], d.Deck[1] = d.Deck[1], d.Deck[0]
	got, err := r.Load(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d.ID, got.Deck.IDString())
}
