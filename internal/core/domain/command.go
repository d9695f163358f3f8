package domain

import (
	"strings"
)

// ParseCommand returns the lower-cased command word of a message, without any @botname suffix.
func ParseCommand(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}

	command, _, _ := strings.Cut(fields[0], "@")

	return strings.ToLower(command)
}

// ParseCommandArgs returns everything after the command word, with whitespace runs collapsed to single spaces.
func ParseCommandArgs(text string) string {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return ""
	}

	return strings.Join(fields[1:], " ")
}

// ParseCommandMention returns the bot username a command is addressed to, as in /weather@SomeBot, or "" if the
// command is not addressed to a specific bot.
func ParseCommandMention(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}

	_, mention, _ := strings.Cut(fields[0], "@")

	return mention
}
