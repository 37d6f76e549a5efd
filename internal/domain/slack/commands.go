package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdToggle CommandType = "toggle"
	CmdStatus CommandType = "status"
	CmdHelp   CommandType = "help"
)

type Command struct {
	Type CommandType
	Raw  string
}

// ParseCommand interprets the text after /punch. No text means toggle, which
// is the common case.
func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdToggle, Raw: text}, nil
	}

	cmd := &Command{Raw: text}

	switch parts[0] {
	case "status":
		cmd.Type = CmdStatus
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Punchcard Bot:*

• ` + "`/punch`" + ` - Punch in or out of a work session
• ` + "`/punch status`" + ` - Show your current session and hours this week
• ` + "`/punch help`" + ` - Show this message
• ` + "`/lfg`" + ` - Ping the community that you are looking for group (one ping per hour, server-wide)

Totals reset with the weekly report.`
}
