package input

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// command is a typed word and the action it stands for
type command struct {
	word   string
	action Action
}

var commands = []command{
	{"up", ActionSelectUp},
	{"north", ActionSelectUp},
	{"down", ActionSelectDown},
	{"south", ActionSelectDown},
	{"left", ActionSelectLeft},
	{"west", ActionSelectLeft},
	{"right", ActionSelectRight},
	{"east", ActionSelectRight},
	{"go", ActionConfirm},
	{"confirm", ActionConfirm},
	{"pick", ActionConfirm},
	{"next", ActionNext},
	{"prev", ActionPrev},
	{"previous", ActionPrev},
	{"redraw", ActionRedraw},
	{"reroll", ActionRedraw},
	{"quit", ActionQuit},
	{"exit", ActionQuit},
	{"dump", ActionDumpMap},
	{"map", ActionDumpMap},
	{"help", ActionHelp},
}

type match struct {
	command
	dist  int
	order int
}

// ResolveCommand maps a typed word onto an action. Exact bindings win, then
// exact command words, then unambiguous prefixes, then the closest word
// within a small edit distance. It returns ActionNone if nothing is close.
func ResolveCommand(in string) Action {
	word := strings.ToLower(strings.TrimSpace(in))
	if word == "" {
		return ActionNone
	}
	if act, ok := bindings[word]; ok {
		return act
	}

	for _, c := range commands {
		if c.word == word {
			return c.action
		}
	}

	if len(word) < 2 {
		return ActionNone
	}

	var prefixed []command
	for _, c := range commands {
		if strings.HasPrefix(c.word, word) {
			prefixed = append(prefixed, c)
		}
	}
	if len(prefixed) > 0 && sameAction(prefixed) {
		return prefixed[0].action
	}

	var matches []match
	for i, c := range commands {
		dist := levenshtein.ComputeDistance(word, c.word)
		if dist > editLimit(len(c.word)) {
			continue
		}
		matches = append(matches, match{command: c, dist: dist, order: i})
	}
	if len(matches) == 0 {
		return ActionNone
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].dist == matches[j].dist {
			return matches[i].order < matches[j].order
		}
		return matches[i].dist < matches[j].dist
	})
	return matches[0].action
}

func sameAction(cs []command) bool {
	for _, c := range cs[1:] {
		if c.action != cs[0].action {
			return false
		}
	}
	return true
}

func editLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
