package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string
	Args    []string
}

var commandMetadata = map[string]CommandMetadata{
	"solve":  {Options: []string{"-timeout"}},
	"batch":  {Options: []string{"-timeout"}},
	"random": {Options: []string{"-dist", "-seed", "-solve", "-timeout"}},
	"set":    {Args: settable},
	"help":   {Args: []string{"solve", "random", "set", "lengths", "history"}},
}

var commandNames = []string{
	"help", "solve", "batch", "random", "check", "lengths", "set",
	"history", "exit",
}

var boolValues = []string{"true", "false"}
var distValues = []string{"scrabble", "frequency", "uniform"}

// Do implements the readline.AutoComplete interface.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		// an unterminated quote; fall back to simple space splitting
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}

		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}

		switch {
		case lastCompleteField == "-dist":
			completions = distValues
		case lastCompleteField == "-solve":
			completions = boolValues
		case cmdName == "set" && len(fields) >= 2 && (len(fields) > 2 || endsWithSpace):
			switch fields[1] {
			case "two-letter-whitelist", "debug":
				completions = boolValues
			case "default-letter-distribution":
				completions = distValues
			default:
				completions = []string{}
			}
		}

		if completions == nil {
			if metadata, exists := commandMetadata[cmdName]; exists {
				if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
					completions = metadata.Options
				} else {
					completions = metadata.Args
				}
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}
