package game

import (
	"fmt"
	"strings"

	"github.com/domino14/klondike/cards"
)

// addText appends text to the right of the given board line, growing the
// slice if the board is shorter than the side panel.
func addText(lines []string, row int, hpad int, text string) []string {
	for len(lines) <= row {
		lines = append(lines, "")
	}
	lines[row] = lines[row] + strings.Repeat(" ", hpad) + text
	return lines
}

const recentMoves = 5

// ToDisplayText renders the board with a side panel holding the round,
// move count, foundation progress and the last few moves.
func (g *Game) ToDisplayText(showAll bool) string {
	bts := strings.Split(g.board.ToDisplayText(showAll), "\n")
	width := 0
	for _, l := range bts {
		width = max(width, len([]rune(l)))
	}
	pad := func(row int) int {
		if row >= len(bts) {
			return width + 3
		}
		return width - len([]rune(bts[row])) + 3
	}

	bts = addText(bts, 0, pad(0), fmt.Sprintf("Round %d  Moves %d", g.round, g.moveNum))
	bts = addText(bts, 1, pad(1), fmt.Sprintf("Foundation %d/%d", g.TotalFoundationCount(), cards.DeckSize))
	moves := g.ledger.Moves()
	first := max(0, len(moves)-recentMoves)
	for i, m := range moves[first:] {
		bts = addText(bts, 3+i, pad(3+i), m.ShortDescription())
	}
	if g.state == StateTerminal {
		row := 4 + recentMoves
		bts = addText(bts, row, pad(row), fmt.Sprintf("Game over: %s (%s)", g.Outcome(), g.stopReason))
	}
	return strings.Join(bts, "\n")
}
