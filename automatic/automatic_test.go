package automatic

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/klondike/cards"
	"github.com/domino14/klondike/config"
	"github.com/domino14/klondike/dealstore"
	"github.com/domino14/klondike/game"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func fixedSeeds(n int) [][32]byte {
	seeds := make([][32]byte, n)
	for i := range seeds {
		seeds[i][0] = byte(i)
		seeds[i][1] = 0x5a
	}
	return seeds
}

func TestSeedsRoundTrip(t *testing.T) {
	is := is.New(t)
	seeds := GenerateSeeds(5)
	path := filepath.Join(t.TempDir(), "seeds.txt")
	is.NoErr(SaveSeeds(seeds, path))
	loaded, err := LoadSeeds(path)
	is.NoErr(err)
	is.Equal(loaded, seeds)

	_, err = DecodeSeed("dG9vIHNob3J0")
	is.True(err != nil)
}

func TestPlayDeal(t *testing.T) {
	is := is.New(t)
	store := dealstore.NewMemoryRepo()
	logchan := make(chan string, 1)
	r := NewGameRunner(config.DefaultConfig(), store, nil, logchan)

	seed := fixedSeeds(1)[0]
	summary, err := r.PlaySeed(context.Background(), seed)
	is.NoErr(err)
	is.Equal(r.Game().State(), game.StateTerminal)
	is.Equal(summary.Moves, r.Game().MoveCount())

	line := <-logchan
	is.True(strings.HasPrefix(line, summary.DealID+","+EncodeSeed(seed)+","))

	d, err := store.Load(context.Background(), summary.DealID)
	is.NoErr(err)
	is.True(d.Played)
	is.Equal(d.Deck.String(), cards.NewDeck().Shuffled(seed).String())

	// the same deal plays out the same way again
	again, err := r.PlayDeal(context.Background(), d.Deck, d.Seed)
	is.NoErr(err)
	<-logchan
	is.Equal(again, summary)
}

func TestStartAutoplayGames(t *testing.T) {
	is := is.New(t)
	out := filepath.Join(t.TempDir(), "games.csv")
	store := dealstore.NewMemoryRepo()
	seeds := fixedSeeds(30)

	tally, err := StartAutoplayGames(context.Background(), config.DefaultConfig(), store, nil, seeds, 3, out)
	is.NoErr(err)
	is.Equal(tally.Games(), 30)
	is.Equal(GamesPlayed.Value(), int64(30))
	is.Equal(IsPlaying.Value(), int64(0))

	ids, err := store.List(context.Background())
	is.NoErr(err)
	is.Equal(len(ids), 30)

	contents, err := os.ReadFile(out)
	is.NoErr(err)
	lines := strings.Split(strings.TrimSpace(string(contents)), "\n")
	is.Equal(len(lines), 31)
	is.Equal(lines[0]+"\n", logHeader)

	analyzed, err := AnalyzeLogFile(out)
	is.NoErr(err)
	is.Equal(analyzed.Games(), 30)
	is.Equal(analyzed.Wins(), tally.Wins())
}

func TestStartAutoplayGamesCancelled(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := filepath.Join(t.TempDir(), "games.csv")
	tally, err := StartAutoplayGames(ctx, config.DefaultConfig(), nil, nil, fixedSeeds(500), 2, out)
	is.NoErr(err)
	is.True(tally.Games() < 500)
}

func TestAnalyzeLogFileRejectsGarbage(t *testing.T) {
	is := is.New(t)
	out := filepath.Join(t.TempDir(), "games.csv")
	is.NoErr(os.WriteFile(out, []byte(logHeader+"abc,seed,maybe,1,2,3\n"), 0o644))
	_, err := AnalyzeLogFile(out)
	is.True(err != nil)
}
