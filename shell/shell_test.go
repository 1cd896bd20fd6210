package shell

import (
	"bytes"
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

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"load '/path/with space/deck.txt'",
			&shellcmd{"load", []string{"/path/with space/deck.txt"}, CmdOptions{}},
			nil},
		{"round 5",
			&shellcmd{"round", []string{"5"}, CmdOptions{}},
			nil},
		{"autoplay -n 100 -threads 2 ",
			&shellcmd{"autoplay", nil, CmdOptions{"n": {"100"}, "threads": {"2"}}},
			nil},
		{"autoplay -n", nil, errWrongOptionSyntax},
	}
	for _, tc := range cases {
		cmd, err := extractFields(tc.line)
		is.Equal(cmd, tc.expCmd)
		is.Equal(err, tc.expErr)
	}
}

func newTestController(t *testing.T) (*ShellController, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return newController(config.DefaultConfig(), dealstore.NewMemoryRepo(), &out), &out
}

func TestCommandsDriveAGame(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)

	_, err := sc.Execute("round")
	is.Equal(err, errNoGame)

	seed := "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
	resp, err := sc.Execute("new -seed " + seed)
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.Message(), "Deal "))

	_, err = sc.Execute("round 2")
	is.NoErr(err)
	is.True(sc.game.Rounds() <= 2)

	_, err = sc.Execute("play")
	is.NoErr(err)
	is.Equal(sc.game.State(), game.StateTerminal)

	resp, err = sc.Execute("ledger")
	is.NoErr(err)
	is.Equal(resp.Message()+"\n", sc.game.Ledger().Transcript())

	// the finished deal can be dealt again from the store
	id := sc.game.Deck().IDString()
	resp, err = sc.Execute("deals")
	is.NoErr(err)
	is.True(strings.Contains(resp.Message(), id))
	_, err = sc.Execute("deal " + id)
	is.NoErr(err)
	is.Equal(sc.game.MoveCount(), 0)
	is.Equal(sc.seed, seed)
}

func TestSaveAndLoad(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	dir := t.TempDir()

	_, err := sc.Execute("new")
	is.NoErr(err)
	deck := sc.game.Deck()
	path := filepath.Join(dir, "deal.txt")
	_, err = sc.Execute("save " + path)
	is.NoErr(err)

	_, err = sc.Execute("load " + path)
	is.NoErr(err)
	is.Equal(sc.game.Deck().String(), deck.String())

	yamlPath := filepath.Join(dir, "ledger.yaml")
	_, err = sc.Execute("play")
	is.NoErr(err)
	_, err = sc.Execute("ledger -file " + yamlPath)
	is.NoErr(err)
	_, err = os.Stat(yamlPath)
	is.NoErr(err)

	_, err = cards.LoadDeck(path)
	is.NoErr(err)
}

func TestSet(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	_, err := sc.Execute("set draw-count 1")
	is.NoErr(err)
	_, err = sc.Execute("new")
	is.NoErr(err)
	is.Equal(sc.game.Options().DrawCount, 1)

	_, err = sc.Execute("set draw-count 0")
	is.True(err != nil)
	is.Equal(sc.config.GetInt(config.ConfigDrawCount), 1)
}

func TestUnknownCommandAndHelp(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	_, err := sc.Execute("frobnicate")
	is.True(err != nil)

	resp, err := sc.Execute("help")
	is.NoErr(err)
	is.True(strings.Contains(resp.Message(), "round [n]"))

	_, err = sc.Execute("exit")
	is.Equal(err, errQuit)
}

func TestCompleter(t *testing.T) {
	is := is.New(t)
	c := &ShellCompleter{}
	line := []rune("ro")
	got, n := c.Do(line, len(line))
	is.Equal(n, 2)
	is.Equal(len(got), 1)
	is.Equal(string(got[0]), "und")

	line = []rune("set dr")
	got, _ = c.Do(line, len(line))
	is.Equal(len(got), 1)
	is.Equal(string(got[0]), "aw-count")
}
