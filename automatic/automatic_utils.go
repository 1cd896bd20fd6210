package automatic

import (
	"bufio"
	"context"
	"errors"
	"expvar"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/klondike/config"
	"github.com/domino14/klondike/dealstore"
	"github.com/domino14/klondike/results"
	"github.com/domino14/klondike/stats"
)

var (
	GamesPlayed *expvar.Int
	IsPlaying   *expvar.Int
)

func init() {
	GamesPlayed = expvar.NewInt("klondikeGamesPlayed")
	IsPlaying = expvar.NewInt("klondikeIsPlaying")
}

const logHeader = "dealID,seed,won,foundation,moves,rounds\n"

// StartAutoplayGames plays one deal per seed across threads workers, writing
// a CSV line per game to outputFilename. It blocks until every game is
// played or ctx is cancelled, and returns the tally of what was played.
func StartAutoplayGames(ctx context.Context, cfg *config.Config, store dealstore.Repo,
	publisher results.Publisher, seeds [][32]byte, threads int, outputFilename string) (*stats.Tally, error) {

	if IsPlaying.Value() > 0 {
		return nil, errors.New("games are already being played, please wait till complete")
	}
	if threads < 1 {
		return nil, errors.New("need at least one thread")
	}
	logfile, err := os.Create(outputFilename)
	if err != nil {
		return nil, err
	}
	defer logfile.Close()

	logger := zerolog.Ctx(ctx)
	logger.Info().Int("games", len(seeds)).Int("threads", threads).Msg("starting-autoplay")

	GamesPlayed.Set(0)
	tally := &stats.Tally{}
	jobs := make(chan [32]byte, 100)
	logChan := make(chan string, 100)

	writerDone := make(chan error, 1)
	go func() {
		w := bufio.NewWriter(logfile)
		w.WriteString(logHeader)
		for msg := range logChan {
			w.WriteString(msg)
		}
		writerDone <- w.Flush()
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i, seed := range seeds {
			select {
			case jobs <- seed:
			case <-gctx.Done():
				logger.Info().Msg("got stop signal, exiting soon...")
				return nil
			}
			if (i+1)%1000 == 0 {
				logger.Info().Int("queued", i+1).Msg("queued-jobs")
			}
		}
		return nil
	})
	for i := 0; i < threads; i++ {
		g.Go(func() error {
			IsPlaying.Add(1)
			defer IsPlaying.Add(-1)
			r := NewGameRunner(cfg, store, publisher, logChan)
			for seed := range jobs {
				if gctx.Err() != nil {
					return nil
				}
				summary, err := r.PlaySeed(gctx, seed)
				if err != nil {
					return err
				}
				tally.Add(summary.Result())
				GamesPlayed.Add(1)
			}
			return nil
		})
	}

	err = g.Wait()
	close(logChan)
	if werr := <-writerDone; err == nil {
		err = werr
	}
	if err != nil {
		logger.Err(err).Msg("autoplay-failed")
		return tally, err
	}
	logger.Info().Int("games", tally.Games()).Int("wins", tally.Wins()).Msg("all-games-finished")
	return tally, nil
}
