// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SignalKind categorizes an internal signal declaration.
type SignalKind string

const (
	KindWire SignalKind = "wire"
	KindReg  SignalKind = "reg"
)

// Signal is one internal signal extracted from a module body.
type Signal struct {
	// Name is the bare identifier, with any range or array specifier stripped.
	Name string `json:"name" yaml:"name"`

	// Kind is the declaration keyword: wire or reg.
	Kind SignalKind `json:"kind" yaml:"kind"`

	// Dimension is the bracketed range text as written in the source,
	// e.g. "[7:0]" for a packed bus or "[0:15]" for an unpacked array.
	// Empty for scalar signals.
	Dimension string `json:"dimension,omitempty" yaml:"dimension,omitempty"`
}

// ExtractionResult is the outcome of scanning one module source file.
// Signals are in first-declaration order with duplicates suppressed, and
// never include a port name.
type ExtractionResult struct {
	// Module is the name from the module header. It also names the
	// output files: <module>_internal_signals.{txt,csv,yaml}.
	Module string `json:"module" yaml:"module"`

	// SourceFile is the path the module was read from, when known.
	SourceFile string `json:"source_file,omitempty" yaml:"source_file,omitempty"`

	// Ports lists the port names from the module header, in header order.
	Ports []string `json:"ports" yaml:"ports"`

	// Signals lists the internal wire and reg declarations.
	Signals []Signal `json:"signals" yaml:"signals"`
}

// Names returns the signal names in declaration order.
func (r *ExtractionResult) Names() []string {
	names := make([]string, len(r.Signals))
	for i, s := range r.Signals {
		names[i] = s.Name
	}
	return names
}

// CountKind returns how many signals of the given kind were extracted.
func (r *ExtractionResult) CountKind(kind SignalKind) int {
	n := 0
	for _, s := range r.Signals {
		if s.Kind == kind {
			n++
		}
	}
	return n
}
