// Package eol detects and applies line-ending conventions.
package eol

import "bytes"

// Style is a line terminator.
type Style string

const (
	LF   Style = "\n"
	CRLF Style = "\r\n"
)

// Detect returns CRLF if data contains any carriage-return line feed, LF
// otherwise.
func Detect(data []byte) Style {
	if bytes.Contains(data, []byte(CRLF)) {
		return CRLF
	}
	return LF
}

// Apply rewrites LF-terminated text to style and appends one trailing line
// break. text must not already contain CR characters.
func Apply(text []byte, style Style) []byte {
	text = bytes.TrimRight(text, "\n")
	if style == CRLF {
		text = bytes.ReplaceAll(text, []byte(LF), []byte(CRLF))
	}
	out := make([]byte, 0, len(text)+len(style))
	out = append(out, text...)
	return append(out, style...)
}
