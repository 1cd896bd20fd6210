package cards

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	ErrBadRank = errors.New("unrecognized rank")
	ErrBadSuit = errors.New("unrecognized suit")
)

// ParseError reports the deck file line that could not be read.
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var suitGlyphs = map[string]Suit{
	"♥": Hearts,
	"♠": Spades,
	"♦": Diamonds,
	"♣": Clubs,
	// outlined glyphs some editors substitute
	"♡": Hearts,
	"♤": Spades,
	"♢": Diamonds,
	"♧": Clubs,
}

var rankSymbols = map[string]Rank{
	"A": Ace, "2": Two, "3": Three, "4": Four, "5": Five, "6": Six,
	"7": Seven, "8": Eight, "9": Nine, "10": Ten, "J": Jack, "Q": Queen,
	"K": King,
}

// normalizeToken strips emoji/text presentation selectors, which turn ♠ into
// ♠️ in many editors, and puts the token in NFC form.
func normalizeToken(tok string) string {
	tok = strings.TrimSpace(tok)
	tok = strings.NewReplacer("\uFE0F", "", "\uFE0E", "").Replace(tok)
	return norm.NFC.String(tok)
}

// ParseCard reads a single token such as 10♠ or Q♥. The card is returned
// face down.
func ParseCard(token string) (Card, error) {
	tok := normalizeToken(token)
	for glyph, suit := range suitGlyphs {
		if !strings.HasSuffix(tok, glyph) {
			continue
		}
		rank, ok := rankSymbols[strings.ToUpper(strings.TrimSuffix(tok, glyph))]
		if !ok {
			return NullCard, ErrBadRank
		}
		return New(rank, suit), nil
	}
	return NullCard, ErrBadSuit
}

// ParseDeck reads one card token per line, in deal order. Blank lines and
// lines starting with # are skipped. The result is a validated deck.
func ParseDeck(r io.Reader) (Deck, error) {
	deck := make(Deck, 0, DeckSize)
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c, err := ParseCard(line)
		if err != nil {
			return nil, &ParseError{Line: lineNum, Token: line, Err: err}
		}
		deck = append(deck, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading deck: %w", err)
	}
	if err := deck.Validate(); err != nil {
		return nil, err
	}
	return deck, nil
}

// LoadDeck parses the deck file at path.
func LoadDeck(path string) (Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open deck file: %w", err)
	}
	defer f.Close()
	d, err := ParseDeck(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// WriteDeck writes d in the format ParseDeck reads.
func WriteDeck(w io.Writer, d Deck) error {
	bw := bufio.NewWriter(w)
	for _, c := range d {
		if _, err := bw.WriteString(c.String() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
