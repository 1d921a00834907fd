// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package verilog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedModule reports a missing module/endmodule pair or an
	// unbalanced module header.
	ErrMalformedModule = errors.New("malformed module")

	// ErrMalformedPortList reports unbalanced brackets or parentheses
	// inside the header port list.
	ErrMalformedPortList = errors.New("malformed port list")

	// ErrMalformedDeclaration reports a wire/reg statement whose
	// identifier list cannot be tokenized.
	ErrMalformedDeclaration = errors.New("malformed declaration")

	// ErrUnsupportedConstruct reports syntax outside the supported
	// plain-Verilog subset when strict mode is enabled.
	ErrUnsupportedConstruct = errors.New("unsupported construct")
)

// ParseError locates a parse failure within the source. Any parse failure
// aborts the whole extraction; there is no partial output.
type ParseError struct {
	Kind    error  // one of the sentinel errors above
	Module  string // module name, when known by the time of the failure
	Line    int    // 1-based source line, 0 when unknown
	Snippet string // offending statement or region, whitespace-condensed
}

func (e *ParseError) Error() string {
	msg := e.Kind.Error()
	var loc []string
	if e.Module != "" {
		loc = append(loc, "module "+e.Module)
	}
	if e.Line > 0 {
		loc = append(loc, fmt.Sprintf("line %d", e.Line))
	}
	if len(loc) > 0 {
		msg += ": " + strings.Join(loc, ", ")
	}
	if e.Snippet != "" {
		msg += fmt.Sprintf(": %q", e.Snippet)
	}
	return msg
}

// Unwrap lets callers match the failure kind with errors.Is.
func (e *ParseError) Unwrap() error { return e.Kind }
