package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/klondike/automatic"
	"github.com/domino14/klondike/cards"
	"github.com/domino14/klondike/config"
	"github.com/domino14/klondike/dealstore"
	"github.com/domino14/klondike/game"
	"github.com/domino14/klondike/results"
)

var (
	errQuit    = errors.New("quit")
	errNoStore = errors.New("no deal store configured")
)

type Response struct {
	message string
}

func (r *Response) Message() string {
	return r.message
}

func msg(message string) *Response {
	return &Response{message: message}
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func (sc *ShellController) handlers() map[string]func(*shellcmd) (*Response, error) {
	return map[string]func(*shellcmd) (*Response, error){
		"new":      sc.newGame,
		"load":     sc.load,
		"deal":     sc.deal,
		"deals":    sc.deals,
		"round":    sc.round,
		"play":     sc.play,
		"show":     sc.show,
		"ledger":   sc.ledger,
		"save":     sc.save,
		"set":      sc.set,
		"autoplay": sc.autoplay,
		"help":     sc.help,
		"exit":     sc.exit,
		"bye":      sc.exit,
	}
}

func (sc *ShellController) showAll() bool {
	return sc.config.GetBool(config.ConfigShowAllCards)
}

func (sc *ShellController) startGame(deck cards.Deck, seed string) (*Response, error) {
	g, err := game.NewGame(deck, game.OptionsFromConfig(sc.config))
	if err != nil {
		return nil, err
	}
	sc.game = g
	sc.seed = seed
	log.Debug().Str("deal", deck.IDString()).Msg("shell-new-game")
	return msg("Deal " + deck.IDString() + "\n" + g.ToDisplayText(sc.showAll())), nil
}

// new [-seed <seed>]
func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	seed := cards.RandomSeed()
	if s := cmd.options.String("seed"); s != "" {
		var err error
		if seed, err = automatic.DecodeSeed(s); err != nil {
			return nil, err
		}
	}
	return sc.startGame(cards.NewDeck().Shuffled(seed), automatic.EncodeSeed(seed))
}

// load <deckfile>
func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: load <deckfile>")
	}
	deck, err := cards.LoadDeck(cmd.args[0])
	if err != nil {
		return nil, err
	}
	return sc.startGame(deck, "")
}

// deal <id> reloads a stored deal.
func (sc *ShellController) deal(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: deal <id>")
	}
	if sc.store == nil {
		return nil, errNoStore
	}
	d, err := sc.store.Load(context.Background(), cmd.args[0])
	if err != nil {
		return nil, err
	}
	return sc.startGame(d.Deck, d.Seed)
}

func (sc *ShellController) deals(cmd *shellcmd) (*Response, error) {
	if sc.store == nil {
		return nil, errNoStore
	}
	ids, err := sc.store.List(context.Background())
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("%d deals\n%s", len(ids), strings.Join(ids, "\n"))), nil
}

// round [n]
func (sc *ShellController) round(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	n := 1
	if len(cmd.args) > 0 {
		var err error
		if n, err = strconv.Atoi(cmd.args[0]); err != nil {
			return nil, err
		}
	}
	made := 0
	for i := 0; i < n && sc.game.State() == game.StatePlaying; i++ {
		made += sc.game.PlayRound()
	}
	return msg(fmt.Sprintf("%d moves\n%s", made, sc.game.ToDisplayText(sc.showAll()))), nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	sc.game.Play()
	if err := sc.record(); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText(sc.showAll())), nil
}

// record saves the finished game in the deal store.
func (sc *ShellController) record() error {
	if sc.store == nil {
		return nil
	}
	s := results.SummaryOf(sc.game, sc.seed)
	return sc.store.Save(context.Background(), dealstore.Deal{
		ID:     s.DealID,
		Seed:   sc.seed,
		Deck:   sc.game.Deck(),
		Played: true,
		Result: s.Result(),
	})
}

// show [all]
func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	showAll := sc.showAll() || (len(cmd.args) > 0 && cmd.args[0] == "all")
	return msg(sc.game.ToDisplayText(showAll)), nil
}

// ledger [-file out.yaml]
func (sc *ShellController) ledger(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	path := cmd.options.String("file")
	if path == "" {
		return msg(strings.TrimRight(sc.game.Ledger().Transcript(), "\n")), nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := sc.game.Ledger().WriteYAML(f); err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("wrote %d moves to %s", sc.game.Ledger().Len(), path)), nil
}

// save <deckfile> writes the current deal.
func (sc *ShellController) save(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: save <deckfile>")
	}
	f, err := os.Create(cmd.args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := cards.WriteDeck(f, sc.game.Deck()); err != nil {
		return nil, err
	}
	return msg("saved deal to " + cmd.args[0]), nil
}

// set <key> <value> changes a setting for games started afterwards.
func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		var sb strings.Builder
		for _, k := range []string{config.ConfigDrawCount, config.ConfigStallRounds,
			config.ConfigMaxRounds, config.ConfigParanoid, config.ConfigShowAllCards} {
			fmt.Fprintf(&sb, "%-16s %v\n", k, sc.config.Get(k))
		}
		return msg(strings.TrimRight(sb.String(), "\n")), nil
	}
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: set <key> <value>")
	}
	key, value := cmd.args[0], cmd.args[1]
	prev := sc.config.Get(key)
	sc.config.Set(key, value)
	if err := sc.config.Validate(); err != nil {
		sc.config.Set(key, prev)
		return nil, err
	}
	return msg("set " + key + " to " + value), nil
}

// autoplay [-n games] [-threads t] [-file out.csv]
func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	n, err := cmd.options.IntDefault("n", sc.config.GetInt(config.ConfigNumGames))
	if err != nil {
		return nil, err
	}
	threads, err := cmd.options.IntDefault("threads", sc.config.GetInt(config.ConfigThreads))
	if err != nil {
		return nil, err
	}
	out := cmd.options.String("file")
	if out == "" {
		out = sc.config.GetString(config.ConfigOutput)
	}
	ctx := log.Logger.WithContext(context.Background())
	tally, err := automatic.StartAutoplayGames(ctx, sc.config, sc.store, nil,
		automatic.GenerateSeeds(n), threads, out)
	if err != nil {
		return nil, err
	}
	var hist bytes.Buffer
	if err := tally.Histogram(&hist, 13); err != nil {
		return nil, err
	}
	return msg(tally.Summary() + "\nFoundation cards:\n" + hist.String()), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(usage()), nil
	}
	return msg(usageTopic(cmd.args[0])), nil
}

func (sc *ShellController) exit(cmd *shellcmd) (*Response, error) {
	return nil, errQuit
}
