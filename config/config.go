package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug        = "debug"
	ConfigDrawCount    = "draw-count"
	ConfigStallRounds  = "stall-rounds"
	ConfigMaxRounds    = "max-rounds"
	ConfigParanoid     = "paranoid"
	ConfigDeckFile     = "deck-file"
	ConfigSeed         = "seed"
	ConfigNumGames     = "num-games"
	ConfigThreads      = "threads"
	ConfigOutput       = "output"
	ConfigDealStore    = "deal-store"
	ConfigNatsURL      = "nats-url"
	ConfigNatsSubject  = "nats-subject"
	ConfigShowAllCards = "show-all-cards"
	ConfigReport       = "report"
	ConfigConfigFile   = "config"
)

// Config wraps viper. Settings come from, in increasing priority: defaults,
// a klondike.yaml config file, KLONDIKE_* environment variables, and flags.
type Config struct {
	viper.Viper
	args []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigDrawCount, 3)
	v.SetDefault(ConfigStallRounds, 1)
	v.SetDefault(ConfigMaxRounds, 0)
	v.SetDefault(ConfigParanoid, false)
	v.SetDefault(ConfigDeckFile, "")
	v.SetDefault(ConfigSeed, "")
	v.SetDefault(ConfigNumGames, 1000)
	v.SetDefault(ConfigThreads, 4)
	v.SetDefault(ConfigOutput, "/tmp/klondike_games.csv")
	v.SetDefault(ConfigDealStore, "")
	v.SetDefault(ConfigNatsURL, "")
	v.SetDefault(ConfigNatsSubject, "klondike.results")
	v.SetDefault(ConfigShowAllCards, false)
	v.SetDefault(ConfigReport, "")
}

// DefaultConfig returns a config holding only the defaults. Handy for tests.
func DefaultConfig() *Config {
	c := &Config{Viper: *viper.New()}
	setDefaults(&c.Viper)
	return c
}

func flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("klondike", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Int(ConfigDrawCount, 3, "cards drawn from the stock at a time (1 or 3)")
	fs.Int(ConfigStallRounds, 1, "consecutive rounds without a move before the game stops; 0 plays until a position repeats")
	fs.Int(ConfigMaxRounds, 0, "hard cap on rounds per game; 0 means no cap")
	fs.Bool(ConfigParanoid, false, "check every board invariant after every round")
	fs.String(ConfigDeckFile, "", "play the deal in this deck file instead of shuffling")
	fs.String(ConfigSeed, "", "base64 seed for a reproducible shuffle")
	fs.Int(ConfigNumGames, 1000, "number of games for batch autoplay")
	fs.Int(ConfigThreads, 4, "worker goroutines for batch autoplay")
	fs.String(ConfigOutput, "/tmp/klondike_games.csv", "CSV log of batch games")
	fs.String(ConfigDealStore, "", "SQLite file recording every deal played")
	fs.String(ConfigNatsURL, "", "publish game results to this NATS server")
	fs.String(ConfigNatsSubject, "klondike.results", "NATS subject for game results")
	fs.Bool(ConfigShowAllCards, false, "render face-down cards")
	fs.String(ConfigReport, "", "write a YAML summary of the batch to this file")
	fs.String(ConfigConfigFile, "", "path to a config file")
	return fs
}

// Load reads settings from args, the environment and an optional config
// file.
func (c *Config) Load(args []string) error {
	c.Viper = *viper.New()
	setDefaults(&c.Viper)

	fs := flagSet()
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.args = fs.Args()

	c.SetEnvPrefix("klondike")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if path := c.GetString(ConfigConfigFile); path != "" {
		c.SetConfigFile(path)
	} else {
		c.SetConfigName("klondike")
		c.SetConfigType("yaml")
		c.AddConfigPath(".")
	}
	if err := c.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return c.Validate()
}

// Validate checks the settings that have a restricted range.
func (c *Config) Validate() error {
	if dc := c.GetInt(ConfigDrawCount); dc < 1 {
		return fmt.Errorf("%s must be at least 1, got %d", ConfigDrawCount, dc)
	}
	if sr := c.GetInt(ConfigStallRounds); sr < 0 {
		return fmt.Errorf("%s must not be negative, got %d", ConfigStallRounds, sr)
	}
	if th := c.GetInt(ConfigThreads); th < 1 {
		return fmt.Errorf("%s must be at least 1, got %d", ConfigThreads, th)
	}
	return nil
}

// Args are the command-line arguments left over after flags.
func (c *Config) Args() []string {
	return c.args
}

// SanitizedSettings is safe to log. The NATS URL may carry credentials.
func (c *Config) SanitizedSettings() map[string]any {
	settings := c.AllSettings()
	if url, ok := settings[ConfigNatsURL].(string); ok && url != "" {
		settings[ConfigNatsURL] = "<redacted>"
	}
	return settings
}
