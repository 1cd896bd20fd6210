package move

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/klondike/cards"
)

// Ledger is the append-only log of every move in a game. Turns are
// consecutive, starting at 1.
type Ledger struct {
	moves []Move
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Append records m. Its turn must directly follow the last recorded turn;
// anything else is a bookkeeping bug and panics.
func (l *Ledger) Append(m Move) {
	if m.Turn != len(l.moves)+1 {
		panic(fmt.Sprintf("ledger: turn %d recorded after turn %d", m.Turn, len(l.moves)))
	}
	if len(m.Cards) == 0 {
		panic(fmt.Sprintf("ledger: turn %d moved no cards", m.Turn))
	}
	cs := make([]cards.Card, len(m.Cards))
	copy(cs, m.Cards)
	m.Cards = cs
	l.moves = append(l.moves, m)
}

func (l *Ledger) Len() int {
	return len(l.moves)
}

// Moves returns a copy of the recorded moves.
func (l *Ledger) Moves() []Move {
	out := make([]Move, len(l.moves))
	copy(out, l.moves)
	return out
}

// Last returns the most recent move.
func (l *Ledger) Last() (Move, bool) {
	if len(l.moves) == 0 {
		return Move{}, false
	}
	return l.moves[len(l.moves)-1], true
}

// CardsMovedTo counts cards moved onto piles of the given kind.
func (l *Ledger) CardsMovedTo(kind PileKind) int {
	return lo.SumBy(l.moves, func(m Move) int {
		if m.To.Kind != kind {
			return 0
		}
		return len(m.Cards)
	})
}

// Transcript is one ShortDescription per line. It holds no timestamps, so
// two identical games give identical transcripts.
func (l *Ledger) Transcript() string {
	var sb strings.Builder
	for _, m := range l.moves {
		sb.WriteString(m.ShortDescription())
		sb.WriteString("\n")
	}
	return sb.String()
}

type yamlMove struct {
	Turn  int       `yaml:"turn"`
	Cards []string  `yaml:"cards,flow"`
	From  string    `yaml:"from"`
	To    string    `yaml:"to"`
	TS    time.Time `yaml:"ts"`
}

// WriteYAML writes the ledger as a YAML list.
func (l *Ledger) WriteYAML(w io.Writer) error {
	out := lo.Map(l.moves, func(m Move, _ int) yamlMove {
		return yamlMove{
			Turn:  m.Turn,
			Cards: lo.Map(m.Cards, func(c cards.Card, _ int) string { return c.String() }),
			From:  m.From.String(),
			To:    m.To.String(),
			TS:    m.Timestamp,
		}
	})
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}
