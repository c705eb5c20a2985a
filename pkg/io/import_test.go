package io

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/consolidated/pkg/consolidated"
	"github.com/matzehuels/consolidated/pkg/errors"
)

var chain = []consolidated.Edge[uint32]{{Parent: 1, Child: 2}, {Parent: 2, Child: 3}}

func TestReadFormats(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
		pos    []int
	}{
		{
			name:   "json",
			format: FormatJSON,
			input: `{
  "nodes": [{"id": 1, "label": "root"}],
  "edges": [{"parent": 1, "child": 2}, {"parent": 2, "child": 3}]
}`,
			pos: []int{1, 2},
		},
		{
			name:   "toml",
			format: FormatTOML,
			input: `
[[nodes]]
id = 1
label = "root"

[[edges]]
parent = 1
child = 2

[[edges]]
parent = 2
child = 3
`,
			pos: []int{1, 2},
		},
		{
			name:   "text",
			format: FormatText,
			input:  "# chain\n1 2\n\n2 -> 3\n",
			pos:    []int{2, 4},
		},
		{
			name:   "text comma",
			format: FormatText,
			input:  "1,2\n2, 3",
			pos:    []int{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Read(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("Read error: %v", err)
			}
			if !slices.Equal(f.Edges, chain) {
				t.Errorf("Edges = %v, want %v", f.Edges, chain)
			}
			if !slices.Equal(f.Positions, tt.pos) {
				t.Errorf("Positions = %v, want %v", f.Positions, tt.pos)
			}
		})
	}
}

func TestReadLabels(t *testing.T) {
	f, err := Read(strings.NewReader(`{"nodes":[{"id":1,"label":"root"}],"edges":[]}`), FormatJSON)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if got := f.Label(1); got != "root" {
		t.Errorf("Label(1) = %q, want %q", got, "root")
	}
	if got := f.Label(7); got != "7" {
		t.Errorf("Label(7) = %q, want %q", got, "7")
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
		code   errors.Code
	}{
		{name: "bad json", format: FormatJSON, input: `{"edges": [`, code: errors.ErrCodeInvalidFormat},
		{name: "negative json id", format: FormatJSON, input: `{"edges": [{"parent": -1, "child": 2}]}`, code: errors.ErrCodeInvalidFormat},
		{name: "bad toml", format: FormatTOML, input: `[[edges]`, code: errors.ErrCodeInvalidFormat},
		{name: "text arity", format: FormatText, input: "1 2 3\n", code: errors.ErrCodeInvalidFormat},
		{name: "text id", format: FormatText, input: "1 x\n", code: errors.ErrCodeInvalidNode},
		{name: "bad label", format: FormatJSON, input: `{"nodes":[{"id":1,"label":"a\nb"}],"edges":[]}`, code: errors.ErrCodeInvalidInput},
		{name: "unknown format", format: Format("yaml"), input: "", code: errors.ErrCodeUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), tt.format)
			if err == nil {
				t.Fatal("Read succeeded, want error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"edges.json":  FormatJSON,
		"EDGES.JSON":  FormatJSON,
		"org.toml":    FormatTOML,
		"edges.txt":   FormatText,
		"edges":       FormatText,
		"dir/a.edges": FormatText,
	}
	for path, want := range tests {
		if got := DetectFormat(path); got != want {
			t.Errorf("DetectFormat(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("TOML"); err != nil || f != FormatTOML {
		t.Errorf("ParseFormat(TOML) = %v, %v", f, err)
	}
	if _, err := ParseFormat("yaml"); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ParseFormat(yaml) error = %v, want UNSUPPORTED", err)
	}
}

func TestImport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edges.txt")
	if err := os.WriteFile(path, []byte("1 2\n2 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Import(path)
	if err != nil {
		t.Fatalf("Import error: %v", err)
	}
	if !slices.Equal(f.Edges, chain) {
		t.Errorf("Edges = %v, want %v", f.Edges, chain)
	}

	_, err = Import(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Import(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}
