// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package verilog

// declKeywords are tokens that qualify a port entry rather than name it.
// A trailing token in this set means the entry carries no identifier.
var declKeywords = map[string]bool{
	"input":    true,
	"output":   true,
	"inout":    true,
	"wire":     true,
	"reg":      true,
	"logic":    true,
	"signed":   true,
	"unsigned": true,
}

// buildPortSet parses the header port list into the ordered port names and
// their membership set. ANSI entries (`input wire [7:0] addr`) and classic
// bare names (`a, b, c`) reduce to the same rule: after ranges are removed,
// the trailing identifier of each top-level comma entry is the port name.
// The header list is authoritative; a body declaration that re-declares one
// of these names in wire/reg form stays classified as a port.
func buildPortSet(portList, moduleName string, line int) ([]string, map[string]bool, error) {
	fail := func() *ParseError {
		return &ParseError{Kind: ErrMalformedPortList, Module: moduleName, Line: line,
			Snippet: condense(portList)}
	}

	entries, err := splitTopLevel(portList)
	if err != nil {
		return nil, nil, fail()
	}

	set := make(map[string]bool)
	var ordered []string
	for _, entry := range entries {
		stripped, err := stripBracketGroups(entry)
		if err != nil {
			return nil, nil, fail()
		}
		name := trailingIdent(stripped)
		if name == "" || declKeywords[name] {
			// An empty entry (as in `module m()`) or a dangling qualifier
			// contributes no port.
			continue
		}
		if !set[name] {
			set[name] = true
			ordered = append(ordered, name)
		}
	}
	return ordered, set, nil
}

// trailingIdent returns the last identifier token of s, or "" when s does
// not end with one.
func trailingIdent(s string) string {
	end := len(s)
	for end > 0 && isSpace(s[end-1]) {
		end--
	}
	if end == 0 || !isIdentChar(s[end-1]) {
		return ""
	}
	start := end - 1
	for start > 0 && isIdentChar(s[start-1]) {
		start--
	}
	if !isIdentStart(s[start]) {
		return ""
	}
	return s[start:end]
}
