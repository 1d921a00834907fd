// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package verilog

import "strings"

// scanState is the normalizer's position in the source: plain code, one of
// the two comment forms, or a string literal (where comment markers are
// ordinary text).
type scanState int

const (
	stateCode scanState = iota
	stateLineComment
	stateBlockComment
	stateString
)

// Normalize strips // and /* */ comments from Verilog source, replacing each
// comment with a single space so token separation survives, and joins
// backslash-continued lines. Newlines inside block comments are preserved so
// line numbers reported for later statements stay aligned with the input.
// An unterminated block comment runs to end of file.
func Normalize(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	state := stateCode

	for i := 0; i < len(src); i++ {
		c := src[i]
		switch state {
		case stateCode:
			switch {
			case c == '/' && i+1 < len(src) && src[i+1] == '/':
				b.WriteByte(' ')
				state = stateLineComment
				i++
			case c == '/' && i+1 < len(src) && src[i+1] == '*':
				b.WriteByte(' ')
				state = stateBlockComment
				i++
			case c == '"':
				b.WriteByte(c)
				state = stateString
			case c == '\\' && i+1 < len(src) && src[i+1] == '\n':
				// Line continuation: the two physical lines read as one
				// whitespace-joined statement.
				b.WriteByte(' ')
				i++
			default:
				b.WriteByte(c)
			}
		case stateLineComment:
			if c == '\n' {
				b.WriteByte(c)
				state = stateCode
			}
		case stateBlockComment:
			switch {
			case c == '*' && i+1 < len(src) && src[i+1] == '/':
				state = stateCode
				i++
			case c == '\n':
				b.WriteByte(c)
			}
		case stateString:
			switch {
			case c == '\\' && i+1 < len(src):
				b.WriteByte(c)
				b.WriteByte(src[i+1])
				i++
			case c == '"':
				b.WriteByte(c)
				state = stateCode
			case c == '\n':
				// Verilog strings do not span lines; bail out of string
				// state so an unterminated quote cannot swallow the file.
				b.WriteByte(c)
				state = stateCode
			default:
				b.WriteByte(c)
			}
		}
	}
	return b.String()
}
