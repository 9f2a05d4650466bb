package models

import "strings"

// CommandType enumerates the studio chat commands.
type CommandType string

const (
	CommandReport  CommandType = "report"
	CommandWeek    CommandType = "week"
	CommandMissing CommandType = "missing"
	CommandInvoice CommandType = "invoice"
	CommandHelp    CommandType = "help"
	CommandUnknown CommandType = "unknown"
)

var commandAliases = map[string]CommandType{
	"rapor":   CommandReport,
	"report":  CommandReport,
	"hafta":   CommandWeek,
	"week":    CommandWeek,
	"eksik":   CommandMissing,
	"missing": CommandMissing,
	"fatura":  CommandInvoice,
	"invoice": CommandInvoice,
	"yardim":  CommandHelp,
	"yardım":  CommandHelp,
	"help":    CommandHelp,
}

// Command represents a parsed instruction extracted from a chat message.
type Command struct {
	Type CommandType
	Raw  string
	Args []string
}

// ParseCommand derives a Command from free-form text. A leading slash is ignored.
func ParseCommand(message string) Command {
	cmd := Command{Type: CommandUnknown, Raw: message}

	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(message)))
	if len(tokens) == 0 {
		return cmd
	}

	if t, ok := commandAliases[strings.TrimPrefix(tokens[0], "/")]; ok {
		cmd.Type = t
	}
	if len(tokens) > 1 {
		cmd.Args = tokens[1:]
	}
	return cmd
}
