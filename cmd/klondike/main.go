// klondike deals one game and autoplays it, printing the board after every
// round.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/klondike/automatic"
	"github.com/domino14/klondike/cards"
	"github.com/domino14/klondike/config"
	"github.com/domino14/klondike/dealstore"
	"github.com/domino14/klondike/game"
	"github.com/domino14/klondike/results"
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

// chooseDeal picks the deck file if one is set, then the seed, then a fresh
// random shuffle.
func chooseDeal(cfg *config.Config) (cards.Deck, string, error) {
	if path := cfg.GetString(config.ConfigDeckFile); path != "" {
		deck, err := cards.LoadDeck(path)
		return deck, "", err
	}
	seed := cards.RandomSeed()
	if s := cfg.GetString(config.ConfigSeed); s != "" {
		var err error
		if seed, err = automatic.DecodeSeed(s); err != nil {
			return nil, "", err
		}
	}
	return cards.NewDeck().Shuffled(seed), automatic.EncodeSeed(seed), nil
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := setupLogger(cfg)
	logger.Debug().Interface("config", cfg.SanitizedSettings()).Msg("loaded-config")
	ctx := logger.WithContext(context.Background())

	deck, seed, err := chooseDeal(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could not set up deal")
	}
	showAll := cfg.GetBool(config.ConfigShowAllCards)
	opts := game.OptionsFromConfig(cfg)
	opts.OnRound = func(round int, g *game.Game) {
		fmt.Println(g.ToDisplayText(showAll))
		fmt.Println()
	}
	g, err := game.NewGame(deck, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("could not deal")
	}
	fmt.Printf("Deal %s (seed %s)\n", deck.IDString(), seed)
	fmt.Println(g.ToDisplayText(showAll))
	fmt.Println()

	outcome := g.Play()
	fmt.Print(g.Ledger().Transcript())
	fmt.Printf("%s after %d rounds and %d moves, %d cards on the foundations\n",
		outcome, g.Rounds(), g.MoveCount(), g.TotalFoundationCount())

	summary := results.SummaryOf(g, seed)
	if path := cfg.GetString(config.ConfigDealStore); path != "" {
		store, err := dealstore.Open(path)
		if err != nil {
			log.Fatal().Err(err).Msg("could not open deal store")
		}
		defer store.Close()
		err = store.Save(ctx, dealstore.Deal{ID: summary.DealID, Seed: seed, Deck: deck,
			Played: true, Result: summary.Result()})
		if err != nil {
			log.Error().Err(err).Msg("could not save deal")
		}
	}
	if url := cfg.GetString(config.ConfigNatsURL); url != "" {
		pub, err := results.NewNatsPublisher(url, cfg.GetString(config.ConfigNatsSubject))
		if err != nil {
			log.Fatal().Err(err).Msg("could not connect to nats")
		}
		if err := pub.Publish(ctx, summary); err != nil {
			log.Error().Err(err).Msg("could not publish result")
		}
		pub.Close()
	}
}
