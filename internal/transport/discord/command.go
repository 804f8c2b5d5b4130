package discord

import (
	"fmt"
	"strings"
	"unicode"
)

// Command names.
const (
	CommandDefine = "define"
	CommandHelp   = "dict_help"
)

// User-facing replies.
const (
	genericFailureMessage = "An error occurred while processing your request. Please try again later."
	notFoundTemplate      = "❌ Sorry, I couldn't find the definition for '%s'. Please check the spelling and try again."
	missingWordTemplate   = "Please provide a word to define. Usage: %sdefine <word>"
	cooldownTemplate      = "⏳ Slow down! You can look up another word in %s."
)

// HelpMessage returns the help text for prefix.
func HelpMessage(prefix string) string {
	return fmt.Sprintf(`📚 Dictionary Bot Commands:
%[1]sdefine <word> - Get the definition, examples, and etymology of a word
%[1]sdict_help - Show this help message

Example: %[1]sdefine example`, prefix)
}

// NotFoundMessage returns the reply for a word with no definition.
func NotFoundMessage(word string) string {
	return fmt.Sprintf(notFoundTemplate, word)
}

// MissingWordMessage returns the reply for a define command without a word.
func MissingWordMessage(prefix string) string {
	return fmt.Sprintf(missingWordTemplate, prefix)
}

// parseCommand splits a prefixed message into a command name and its
// arguments. ok is false when content does not start with prefix or names
// no command.
func parseCommand(prefix, content string) (name string, args []string, ok bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}
	rest := strings.TrimPrefix(content, prefix)
	if rest == "" || unicode.IsSpace(rune(rest[0])) {
		return "", nil, false
	}

	fields := splitArgs(rest)
	if len(fields) == 0 {
		return "", nil, false
	}
	return fields[0], fields[1:], true
}

// splitArgs splits s on whitespace. A double-quoted run is one argument
// with the quotes removed; an unterminated quote runs to the end of s.
func splitArgs(s string) []string {
	var (
		args    []string
		cur     strings.Builder
		inQuote bool
		started bool
	)
	flush := func() {
		if started {
			args = append(args, cur.String())
		}
		cur.Reset()
		started = false
	}

	for _, r := range s {
		switch {
		case r == '"':
			if inQuote {
				inQuote = false
				flush()
				continue
			}
			flush()
			inQuote = true
			started = true
		case unicode.IsSpace(r) && !inQuote:
			flush()
		default:
			cur.WriteRune(r)
			started = true
		}
	}
	flush()
	return args
}
