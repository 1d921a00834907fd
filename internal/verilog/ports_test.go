// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package verilog

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuildPortSet(t *testing.T) {
	tests := []struct {
		name     string
		portList string
		want     []string
	}{
		{
			name:     "classic bare names",
			portList: "a, b, c",
			want:     []string{"a", "b", "c"},
		},
		{
			name:     "ansi with direction and type",
			portList: "input wire [7:0] addr, output reg valid",
			want:     []string{"addr", "valid"},
		},
		{
			name:     "ansi direction carries over to bare entries",
			portList: "input clk, rst_n, output done",
			want:     []string{"clk", "rst_n", "done"},
		},
		{
			name:     "multi-dimensional range with inner comma stays one entry",
			portList: "input [pick(3,0):0] a, output b",
			want:     []string{"a", "b"},
		},
		{
			name:     "packed and unpacked dimensions",
			portList: "input [3:0][1:0] bus, output q [0:7]",
			want:     []string{"bus", "q"},
		},
		{
			name:     "empty list",
			portList: "",
			want:     nil,
		},
		{
			name:     "trailing comma tolerated",
			portList: "a, b,",
			want:     []string{"a", "b"},
		},
		{
			name:     "duplicate names collapse",
			portList: "a, a, b",
			want:     []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ordered, set, err := buildPortSet(tt.portList, "m", 1)
			if err != nil {
				t.Fatalf("buildPortSet: %v", err)
			}
			if !reflect.DeepEqual(ordered, tt.want) {
				t.Errorf("ordered = %v, want %v", ordered, tt.want)
			}
			if len(set) != len(tt.want) {
				t.Errorf("set has %d entries, want %d", len(set), len(tt.want))
			}
			for _, name := range tt.want {
				if !set[name] {
					t.Errorf("set missing %q", name)
				}
			}
		})
	}
}

func TestBuildPortSetErrors(t *testing.T) {
	tests := []struct {
		name     string
		portList string
	}{
		{name: "unbalanced bracket", portList: "input [7:0 addr, output valid"},
		{name: "stray closing bracket", portList: "input addr], output valid"},
		{name: "unbalanced paren", portList: "input f(a, output b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := buildPortSet(tt.portList, "m", 1)
			if !errors.Is(err, ErrMalformedPortList) {
				t.Errorf("error = %v, want ErrMalformedPortList", err)
			}
		})
	}
}

func TestTrailingIdent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"input wire  addr ", "addr"},
		{"a", "a"},
		{"", ""},
		{"input ", "input"},
		{"count2", "count2"},
		{"42", ""},
		{"data_i$", "data_i$"},
	}

	for _, tt := range tests {
		if got := trailingIdent(tt.in); got != tt.want {
			t.Errorf("trailingIdent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
