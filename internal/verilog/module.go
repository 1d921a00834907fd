// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package verilog

// moduleParts holds the regions of the first module found in normalized
// source. Only the first module in a file is processed.
type moduleParts struct {
	name       string
	portList   string // text inside the header parentheses; empty for `module m;`
	portOffset int    // byte offset of the port list in the source
	body       string // text between the header ';' and endmodule
	bodyOffset int    // byte offset of the body in the source
}

// splitModule locates `module <name> [#(params)] (ports) ;` and the matching
// endmodule, returning the header and body regions for the later stages.
func splitModule(src string) (*moduleParts, error) {
	mi := findKeyword(src, 0, "module")
	if mi < 0 {
		return nil, &ParseError{Kind: ErrMalformedModule, Snippet: "no module keyword found"}
	}

	i := skipSpace(src, mi+len("module"))
	if i >= len(src) || !isIdentStart(src[i]) {
		return nil, &ParseError{Kind: ErrMalformedModule, Line: lineOf(src, mi),
			Snippet: "module keyword not followed by a name"}
	}
	j := i + 1
	for j < len(src) && isIdentChar(src[j]) {
		j++
	}
	name := src[i:j]

	i = skipSpace(src, j)

	// Parameterized headers carry a #( ... ) list before the port list.
	if i < len(src) && src[i] == '#' {
		i = skipSpace(src, i+1)
		if i >= len(src) || src[i] != '(' {
			return nil, &ParseError{Kind: ErrMalformedModule, Module: name, Line: lineOf(src, i),
				Snippet: "expected ( after # in module header"}
		}
		end, ok := matchDelim(src, i, '(', ')')
		if !ok {
			return nil, &ParseError{Kind: ErrMalformedModule, Module: name, Line: lineOf(src, i),
				Snippet: "unbalanced parentheses in parameter list"}
		}
		i = skipSpace(src, end+1)
	}

	portList := ""
	portOffset := i
	if i < len(src) && src[i] == '(' {
		end, ok := matchDelim(src, i, '(', ')')
		if !ok {
			return nil, &ParseError{Kind: ErrMalformedModule, Module: name, Line: lineOf(src, i),
				Snippet: "unbalanced parentheses in module header"}
		}
		portList = src[i+1 : end]
		portOffset = i + 1
		i = skipSpace(src, end+1)
	}

	if i >= len(src) || src[i] != ';' {
		return nil, &ParseError{Kind: ErrMalformedModule, Module: name, Line: lineOf(src, i),
			Snippet: "module header not terminated by ';'"}
	}
	bodyStart := i + 1

	ei := findKeyword(src, bodyStart, "endmodule")
	if ei < 0 {
		return nil, &ParseError{Kind: ErrMalformedModule, Module: name,
			Snippet: "no matching endmodule"}
	}

	return &moduleParts{
		name:       name,
		portList:   portList,
		portOffset: portOffset,
		body:       src[bodyStart:ei],
		bodyOffset: bodyStart,
	}, nil
}
