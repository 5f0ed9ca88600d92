package utils

import (
	"fmt"
	"time"
)

// MessageType selects the color of a console message.
type MessageType int

// The message types used accross the CLI application.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// Colors used accross the CLI application.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

var palette = map[MessageType]string{
	DefaultMessage: DefaultColor,
	SuccessMessage: SuccessColor,
	ErrorMessage:   ErrorColor,
	StatusMessage:  StatusColor,
}

// NoColor disables the ANSI escape sequences, used when the output is not a terminal.
var NoColor = false

// DecorateText wraps the message into the color of its type.
// Unknown message types are returned unchanged.
func DecorateText(s string, msgType MessageType) string {
	color, ok := palette[msgType]
	if NoColor || !ok {
		return s
	}
	return color + s + DefaultColor
}

// FormatTime formats a duration as 250ms, 1.50s, 2m 5.00s or 1h 1m 1.00s.
func FormatTime(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	var (
		hours   = int64(d / time.Hour)
		minutes = int64(d % time.Hour / time.Minute)
		seconds = (d % time.Minute).Seconds()
	)
	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %.2fs", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %.2fs", minutes, seconds)
	}
	return fmt.Sprintf("%.2fs", seconds)
}
