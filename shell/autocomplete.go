package shell

import (
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"
)

// ShellCompleter completes command names and setting keys.
type ShellCompleter struct{}

var settingKeys = []string{"draw-count", "stall-rounds", "max-rounds", "paranoid", "show-all-cards"}

// Do implements the readline.AutoCompleter interface.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])
	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string
	switch {
	case len(fields) == 0 || (len(fields) == 1 && !endsWithSpace):
		if len(fields) == 1 {
			prefix = fields[0]
		}
		for name := range helpTopics {
			completions = append(completions, name)
		}
		sort.Strings(completions)
	case fields[0] == "set" || fields[0] == "help":
		if len(fields) > 2 || (len(fields) == 2 && endsWithSpace) {
			return nil, 0
		}
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		completions = settingKeys
		if fields[0] == "help" {
			completions = nil
			for name := range helpTopics {
				completions = append(completions, name)
			}
			sort.Strings(completions)
		}
	default:
		return nil, 0
	}

	var out [][]rune
	for _, cand := range completions {
		if strings.HasPrefix(cand, prefix) {
			out = append(out, []rune(cand[len(prefix):]))
		}
	}
	return out, len([]rune(prefix))
}
