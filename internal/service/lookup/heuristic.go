package lookup

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/dictionary-bot/internal/domain"
)

// minHeuristicLen is the rune count a line must exceed to count as a definition.
const minHeuristicLen = 20

// HeuristicDefinitions picks candidate definitions out of plain page text:
// trimmed lines longer than 20 characters that do not start with "Example".
// At most domain.MaxDefinitions lines are returned.
func HeuristicDefinitions(text string) []string {
	var defs []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if utf8.RuneCountInString(line) <= minHeuristicLen {
			continue
		}
		if strings.HasPrefix(line, "Example") {
			continue
		}
		defs = append(defs, line)
		if len(defs) == domain.MaxDefinitions {
			break
		}
	}
	return defs
}
