package cards

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	cases := []struct {
		token string
		want  Card
	}{
		{"10♠", New(Ten, Spades)},
		{"A♥", New(Ace, Hearts)},
		{" q♦ ", New(Queen, Diamonds)},
		{"K♣", New(King, Clubs)},
		{"7♠\uFE0F", New(Seven, Spades)},
		{"2♡", New(Two, Hearts)},
	}
	for _, tc := range cases {
		c, err := ParseCard(tc.token)
		require.NoError(t, err, tc.token)
		assert.Equal(t, tc.want, c, tc.token)
	}
}

func TestParseCardErrors(t *testing.T) {
	_, err := ParseCard("AH")
	assert.ErrorIs(t, err, ErrBadSuit)
	_, err = ParseCard("1♠")
	assert.ErrorIs(t, err, ErrBadRank)
	_, err = ParseCard("")
	assert.ErrorIs(t, err, ErrBadSuit)
}

func TestParseDeckRoundTrip(t *testing.T) {
	var seed [32]byte
	seed[3] = 9
	d := NewDeck().Shuffled(seed)

	var buf bytes.Buffer
	require.NoError(t, WriteDeck(&buf, d))

	parsed, err := ParseDeck(strings.NewReader("# a saved deal\n\n" + buf.String()))
	require.NoError(t, err)
	assert.Equal(t, d.String(), parsed.String())
	assert.Equal(t, d.ID(), parsed.ID())
}

func TestParseDeckReportsLine(t *testing.T) {
	lines := []string{}
	for _, c := range NewDeck() {
		lines = append(lines, c.String())
	}
	lines[6] = "XX"
	_, err := ParseDeck(strings.NewReader(strings.Join(lines, "\n")))
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 7, perr.Line)
	assert.Equal(t, "XX", perr.Token)
	assert.ErrorIs(t, err, ErrBadSuit)
}

func TestParseDeckRejectsShortDeck(t *testing.T) {
	_, err := ParseDeck(strings.NewReader("A♥\n2♥\n"))
	assert.ErrorIs(t, err, ErrInvalidDeck)
}
