package game

import (
	"errors"
	"time"

	"github.com/domino14/klondike/config"
)

// DefaultDrawCount is the number of cards turned from the stock at a time.
const DefaultDrawCount = 3

// Options are the fixed simulation parameters of one game. They are copied
// into the Game at construction and never change afterwards.
type Options struct {
	// DrawCount is how many cards move from stock to waste per draw.
	DrawCount int
	// StallRounds is the number of consecutive rounds without a move after
	// which the game stops. Zero means play on until an end-of-round
	// position repeats.
	StallRounds int
	// MaxRounds caps the number of rounds; zero means no cap.
	MaxRounds int
	// Paranoid runs the full board invariant check after every round.
	Paranoid bool

	Selector Selector
	Clock    func() time.Time
	// OnRound, if set, is called after every round. It must only read
	// from the game.
	OnRound func(round int, g *Game)
}

// DefaultOptions stop at the first round that makes no move, drawing three.
func DefaultOptions() Options {
	return Options{
		DrawCount:   DefaultDrawCount,
		StallRounds: 1,
		Selector:    FirstFit{},
		Clock:       time.Now,
	}
}

// OptionsFromConfig builds options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	opts.DrawCount = cfg.GetInt(config.ConfigDrawCount)
	opts.StallRounds = cfg.GetInt(config.ConfigStallRounds)
	opts.MaxRounds = cfg.GetInt(config.ConfigMaxRounds)
	opts.Paranoid = cfg.GetBool(config.ConfigParanoid)
	return opts
}

func (o *Options) fill() error {
	if o.DrawCount < 1 {
		return errors.New("draw count must be at least 1")
	}
	if o.StallRounds < 0 {
		return errors.New("stall rounds must not be negative")
	}
	if o.Selector == nil {
		o.Selector = FirstFit{}
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	return nil
}
