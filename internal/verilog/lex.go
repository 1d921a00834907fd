// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package verilog

import (
	"errors"
	"strings"
)

// errUnbalanced is an internal marker; callers wrap it into the ParseError
// kind appropriate to the region being tokenized.
var errUnbalanced = errors.New("unbalanced delimiters")

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || c == '$' || (c >= '0' && c <= '9')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

// leadingWord returns the first identifier-like token of s and the text
// after it. An empty word means s does not start with an identifier.
func leadingWord(s string) (word, rest string) {
	i := skipSpace(s, 0)
	if i >= len(s) || !isIdentStart(s[i]) {
		return "", s
	}
	j := i + 1
	for j < len(s) && isIdentChar(s[j]) {
		j++
	}
	return s[i:j], s[j:]
}

// findKeyword returns the index of the first occurrence of word as a
// standalone token at or after from, or -1 if there is none.
func findKeyword(s string, from int, word string) int {
	for {
		i := strings.Index(s[from:], word)
		if i < 0 {
			return -1
		}
		i += from
		before := i == 0 || !isIdentChar(s[i-1])
		afterIdx := i + len(word)
		after := afterIdx >= len(s) || !isIdentChar(s[afterIdx])
		if before && after {
			return i
		}
		from = i + 1
	}
}

// matchDelim returns the index of the delimiter closing s[open], counting
// nesting of the same pair only.
func matchDelim(s string, open int, oc, cc byte) (int, bool) {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case oc:
			depth++
		case cc:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// splitTopLevel splits s on commas that are not nested inside parentheses,
// brackets, or braces, so a multi-dimensional range or a concatenation in a
// default value is never mistaken for an entry separator.
func splitTopLevel(s string) ([]string, error) {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth < 0 {
				return nil, errUnbalanced
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, errUnbalanced
	}
	parts = append(parts, s[start:])
	return parts, nil
}

// topLevelIndex returns the index of the first c in s outside any nesting,
// or -1.
func topLevelIndex(s string, c byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case c:
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// stripBracketGroups removes balanced [...] groups from s, returning the
// remaining text.
func stripBracketGroups(s string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			end, ok := matchDelim(s, i, '[', ']')
			if !ok {
				return "", errUnbalanced
			}
			b.WriteByte(' ')
			i = end
		case ']':
			return "", errUnbalanced
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String(), nil
}

// condense collapses whitespace runs to single spaces and trims the ends.
// Used for error snippets and dimension text.
func condense(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// lineOf returns the 1-based line number of byte offset in src.
func lineOf(src string, offset int) int {
	if offset > len(src) {
		offset = len(src)
	}
	return 1 + strings.Count(src[:offset], "\n")
}
