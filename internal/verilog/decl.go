// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package verilog

import (
	"strings"

	"github.com/pdiddy/sigex/pkg/types"
)

// statement is one ';'-terminated statement at module scope.
type statement struct {
	text string
	line int
}

// blockOpeners and blockClosers guard procedural and generate regions.
// Declarations inside them are block-local, not module internal signals.
var blockOpeners = map[string]bool{
	"begin":    true,
	"fork":     true,
	"case":     true,
	"casex":    true,
	"casez":    true,
	"function": true,
	"task":     true,
	"generate": true,
}

var blockClosers = map[string]bool{
	"end":         true,
	"join":        true,
	"endcase":     true,
	"endfunction": true,
	"endtask":     true,
	"endgenerate": true,
}

// splitStatements breaks the module body into module-scope statements.
// Text inside begin/end (and function/task/generate) regions is dropped.
// baseLine is the source line the body starts on.
func splitStatements(body string, baseLine int) []statement {
	var stmts []statement
	var cur strings.Builder
	depth := 0
	line := baseLine
	stmtLine := 0

	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\n' {
			line++
		}

		// String literals pass through whole so quoted "begin" or ";"
		// cannot derail depth tracking or statement splitting.
		if c == '"' {
			j := i + 1
			for j < len(body) {
				if body[j] == '\\' && j+1 < len(body) {
					j += 2
					continue
				}
				if body[j] == '"' || body[j] == '\n' {
					break
				}
				j++
			}
			if depth == 0 {
				if cur.Len() == 0 {
					stmtLine = line
				}
				end := j
				if end < len(body) {
					end++
				}
				cur.WriteString(body[i:end])
			}
			line += strings.Count(body[i:min(j+1, len(body))], "\n")
			i = j
			continue
		}

		if isIdentStart(c) && (i == 0 || !isIdentChar(body[i-1])) {
			j := i + 1
			for j < len(body) && isIdentChar(body[j]) {
				j++
			}
			word := body[i:j]
			switch {
			case blockOpeners[word]:
				// A pending procedural header (`always @(posedge clk)`)
				// belongs to the block, not to the next statement.
				if depth == 0 {
					cur.Reset()
				}
				depth++
			case blockClosers[word]:
				if depth > 0 {
					depth--
				}
				if depth == 0 {
					cur.Reset()
				}
			default:
				if depth == 0 {
					if cur.Len() == 0 {
						stmtLine = line
					}
					cur.WriteString(word)
				}
			}
			i = j - 1
			continue
		}

		if depth > 0 {
			continue
		}
		if c == ';' {
			if text := strings.TrimSpace(cur.String()); text != "" {
				stmts = append(stmts, statement{text: text, line: stmtLine})
			}
			cur.Reset()
			continue
		}
		if cur.Len() == 0 && isSpace(c) {
			continue
		}
		if cur.Len() == 0 {
			stmtLine = line
		}
		cur.WriteByte(c)
	}
	return stmts
}

// scanDeclarations walks the module-scope statements and collects the
// signals declared by wire/reg statements, excluding port names. Names keep
// their first-seen position; later duplicates are dropped. Everything else
// (parameter, assign, always, instantiations, ...) is ignored.
func scanDeclarations(body string, baseLine int, ports map[string]bool, strict bool, moduleName string) ([]types.Signal, error) {
	seen := make(map[string]bool)
	var signals []types.Signal

	for _, st := range splitStatements(body, baseLine) {
		kw, rest := leadingWord(st.text)
		var kind types.SignalKind
		switch kw {
		case "wire":
			kind = types.KindWire
		case "reg":
			kind = types.KindReg
		case "logic":
			if strict {
				return nil, &ParseError{Kind: ErrUnsupportedConstruct, Module: moduleName,
					Line: st.line, Snippet: condense(st.text)}
			}
			continue
		default:
			continue
		}

		sigs, err := parseDeclaration(kind, rest, st, moduleName)
		if err != nil {
			return nil, err
		}
		for _, sig := range sigs {
			if ports[sig.Name] || seen[sig.Name] {
				continue
			}
			seen[sig.Name] = true
			signals = append(signals, sig)
		}
	}
	return signals, nil
}

// parseDeclaration tokenizes the text after a wire/reg keyword: optional
// sign qualifier, packed ranges, then a comma-separated name list where each
// name may carry its own unpacked dimension and net initializer.
func parseDeclaration(kind types.SignalKind, rest string, st statement, moduleName string) ([]types.Signal, error) {
	fail := func() *ParseError {
		return &ParseError{Kind: ErrMalformedDeclaration, Module: moduleName, Line: st.line,
			Snippet: condense(st.text)}
	}

	rest = strings.TrimSpace(rest)
	for {
		w, tail := leadingWord(rest)
		if w != "signed" && w != "unsigned" {
			break
		}
		rest = strings.TrimSpace(tail)
	}

	// Packed ranges before the name list, e.g. [7:0] or [3:0][1:0].
	var packed strings.Builder
	for strings.HasPrefix(rest, "[") {
		end, ok := matchDelim(rest, 0, '[', ']')
		if !ok {
			return nil, fail()
		}
		packed.WriteString(condense(rest[:end+1]))
		rest = strings.TrimSpace(rest[end+1:])
	}

	segments, err := splitTopLevel(rest)
	if err != nil {
		return nil, fail()
	}

	var out []types.Signal
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		// Net initializer: `wire a = b & c;` declares a.
		if eq := topLevelIndex(seg, '='); eq >= 0 {
			seg = strings.TrimSpace(seg[:eq])
		}
		if seg == "" || !isIdentStart(seg[0]) {
			return nil, fail()
		}
		j := 1
		for j < len(seg) && isIdentChar(seg[j]) {
			j++
		}
		name := seg[:j]

		// Per-signal unpacked dimension: `reg mem [0:15]` declares mem.
		dim := packed.String()
		tail := strings.TrimSpace(seg[j:])
		for strings.HasPrefix(tail, "[") {
			end, ok := matchDelim(tail, 0, '[', ']')
			if !ok {
				return nil, fail()
			}
			if dim != "" {
				dim += " "
			}
			dim += condense(tail[:end+1])
			tail = strings.TrimSpace(tail[end+1:])
		}
		if tail != "" {
			return nil, fail()
		}

		out = append(out, types.Signal{Name: name, Kind: kind, Dimension: dim})
	}
	return out, nil
}
