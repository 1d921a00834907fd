// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package verilog implements the internal-signal extractor: a scanner that
// reads one Verilog module source and reports the wires and regs declared in
// the module body that are not part of the port list.
//
// The pipeline is four sequential passes: comment normalization, module
// boundary location, port-set construction, declaration scanning. Each pass
// is a pure function over the text; nothing is shared across calls, so
// callers may extract different files concurrently.
package verilog

import "github.com/pdiddy/sigex/pkg/types"

// Options control extraction behavior.
type Options struct {
	// Strict reports recognized-but-unsupported constructs (SystemVerilog
	// "logic" declarations) as ErrUnsupportedConstruct instead of skipping
	// them.
	Strict bool
}

// Extract scans one Verilog module source and returns the module name, its
// port names in header order, and its internal signals in first-declaration
// order. Only the first module in the source is processed. Any parse failure
// returns a *ParseError and no result.
func Extract(source string, opts Options) (*types.ExtractionResult, error) {
	normalized := Normalize(source)

	parts, err := splitModule(normalized)
	if err != nil {
		return nil, err
	}

	ports, portSet, err := buildPortSet(parts.portList, parts.name, lineOf(normalized, parts.portOffset))
	if err != nil {
		return nil, err
	}

	signals, err := scanDeclarations(parts.body, lineOf(normalized, parts.bodyOffset), portSet, opts.Strict, parts.name)
	if err != nil {
		return nil, err
	}

	return &types.ExtractionResult{
		Module:  parts.name,
		Ports:   ports,
		Signals: signals,
	}, nil
}
