// autoplay plays a batch of random deals across several goroutines and
// prints a summary. With `analyze <file>` it summarizes an existing game log
// instead.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/klondike/automatic"
	"github.com/domino14/klondike/config"
	"github.com/domino14/klondike/dealstore"
	"github.com/domino14/klondike/results"
	"github.com/domino14/klondike/stats"
)

func setupLogger(cfg *config.Config) zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	level := zerolog.InfoLevel
	if cfg.GetBool(config.ConfigDebug) {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	return logger
}

func printTally(cfg *config.Config, tally *stats.Tally) {
	fmt.Print(tally.Summary())
	fmt.Println("Foundation cards:")
	if err := tally.Histogram(os.Stdout, 13); err != nil {
		log.Error().Err(err).Msg("histogram")
	}
	path := cfg.GetString(config.ConfigReport)
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		log.Error().Err(err).Msg("could not create report")
		return
	}
	defer f.Close()
	if err := tally.WriteYAML(f); err != nil {
		log.Error().Err(err).Msg("could not write report")
		return
	}
	log.Info().Str("report", path).Msg("wrote-report")
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := setupLogger(cfg)
	logger.Info().Interface("config", cfg.SanitizedSettings()).Msg("loaded-config")

	if args := cfg.Args(); len(args) == 2 && args[0] == "analyze" {
		tally, err := automatic.AnalyzeLogFile(args[1])
		if err != nil {
			log.Fatal().Err(err).Msg("could not analyze log")
		}
		printTally(cfg, tally)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	store, err := dealstore.Open(cfg.GetString(config.ConfigDealStore))
	if err != nil {
		log.Fatal().Err(err).Msg("could not open deal store")
	}
	defer store.Close()

	var pub results.Publisher = results.NoopPublisher{}
	if url := cfg.GetString(config.ConfigNatsURL); url != "" {
		np, err := results.NewNatsPublisher(url, cfg.GetString(config.ConfigNatsSubject))
		if err != nil {
			log.Fatal().Err(err).Msg("could not connect to nats")
		}
		pub = np
	}
	defer pub.Close()

	seeds := automatic.GenerateSeeds(cfg.GetInt(config.ConfigNumGames))
	start := time.Now()
	tally, err := automatic.StartAutoplayGames(ctx, cfg, store, pub, seeds,
		cfg.GetInt(config.ConfigThreads), cfg.GetString(config.ConfigOutput))
	if err != nil {
		log.Error().Err(err).Msg("autoplay stopped")
	}
	if tally != nil {
		log.Info().Dur("elapsed", time.Since(start)).Str("log", cfg.GetString(config.ConfigOutput)).
			Msg("autoplay-done")
		printTally(cfg, tally)
	}
}
