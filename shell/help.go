package shell

import (
	"sort"
	"strings"
)

var helpTopics = map[string]string{
	"new":      "new [-seed <seed>]\n    Shuffle and deal a new game. The same seed always deals the same cards.",
	"load":     "load <deckfile>\n    Deal the deck in the file, one card per line (e.g. 10♠), top of the deal first.",
	"deal":     "deal <id>\n    Deal a game again from the deal store.",
	"deals":    "deals\n    List the IDs in the deal store.",
	"round":    "round [n]\n    Play n rounds (default 1): every column, then one draw from the stock.",
	"play":     "play\n    Play rounds until no more progress is made.",
	"show":     "show [all]\n    Show the board. With all, face-down cards are shown too.",
	"ledger":   "ledger [-file <out.yaml>]\n    Print the moves made so far, or write them as YAML.",
	"save":     "save <deckfile>\n    Write the current deal to a deck file.",
	"set":      "set [<key> <value>]\n    Show or change settings such as draw-count and stall-rounds.",
	"autoplay": "autoplay [-n <games>] [-threads <t>] [-file <out.csv>]\n    Play many random deals and summarize them.",
	"exit":     "exit\n    Leave the shell.",
}

func usage() string {
	names := make([]string, 0, len(helpTopics))
	for k := range helpTopics {
		names = append(names, k)
	}
	sort.Strings(names)
	var sb strings.Builder
	sb.WriteString("Commands:\n")
	for _, n := range names {
		sb.WriteString("  " + strings.SplitN(helpTopics[n], "\n", 2)[0] + "\n")
	}
	sb.WriteString("Type `help <command>` for details.")
	return sb.String()
}

func usageTopic(topic string) string {
	if h, ok := helpTopics[topic]; ok {
		return h
	}
	return "There is no help text for the topic " + topic
}
