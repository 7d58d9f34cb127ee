// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Playback operations
	OpPlay     Op = "play video"
	OpStop     Op = "stop video"
	OpPause    Op = "pause video"
	OpContinue Op = "continue video"

	// Playlist operations
	OpPlaylistCreate Op = "create playlist"
	OpPlaylistAdd    Op = "add video to"
	OpPlaylistRemove Op = "remove video from"
	OpPlaylistClear  Op = "clear playlist"
	OpPlaylistDelete Op = "delete playlist"
	OpPlaylistShow   Op = "show playlist"

	// Moderation
	OpFlag  Op = "flag video"
	OpAllow Op = "remove flag from video"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Cannot %s: %s", op, Reason(err))
}

// FormatWith creates an error message naming the object the operation targeted.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Cannot %s %s: %s", op, context, Reason(err))
}

// Reason returns the error text with its first letter upper-cased.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}
