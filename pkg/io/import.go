package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/consolidated/pkg/consolidated"
	"github.com/matzehuels/consolidated/pkg/errors"
)

// Format names an edge-list encoding.
type Format string

// Supported input formats.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatText Format = "text"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatTOML, FormatText}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeUnsupported, "unsupported format %q (want json, toml or text)", s)
}

// DetectFormat picks a format from the file extension. Unknown extensions
// are read as text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatText
	}
}

// Forest is a decoded edge list.
type Forest struct {
	Edges []consolidated.Edge[uint32]
	// Positions holds, for every edge, its 1-based position in the input:
	// the line number for text input and the ordinal of the edge otherwise.
	Positions []int
	Labels    map[uint32]string
}

// Label returns the label of id, or its decimal form when it has none.
func (f *Forest) Label(id uint32) string {
	if l, ok := f.Labels[id]; ok && l != "" {
		return l
	}
	return fmt.Sprint(id)
}

func (f *Forest) add(parent, child uint32, pos int) {
	f.Edges = append(f.Edges, consolidated.Edge[uint32]{Parent: parent, Child: child})
	f.Positions = append(f.Positions, pos)
}

// document is shared by the JSON and TOML encodings.
type document struct {
	Nodes []node `json:"nodes,omitempty" toml:"nodes"`
	Edges []edge `json:"edges" toml:"edges"`
}

type node struct {
	ID    uint32 `json:"id" toml:"id"`
	Label string `json:"label,omitempty" toml:"label"`
}

type edge struct {
	Parent uint32 `json:"parent" toml:"parent"`
	Child  uint32 `json:"child" toml:"child"`
}

// Read decodes an edge list from r in the given format.
// Read does not close r.
func Read(r io.Reader, format Format) (*Forest, error) {
	switch format {
	case FormatJSON:
		var doc document
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
		}
		return fromDocument(doc)
	case FormatTOML:
		var doc document
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
		}
		return fromDocument(doc)
	case FormatText:
		return readText(r)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format %q", format)
	}
}

// Import reads the edge file at path, detecting its format from the extension.
func Import(path string) (*Forest, error) {
	return ImportFormat(path, DetectFormat(path))
}

// ImportFormat reads the edge file at path in the given format.
func ImportFormat(path string, format Format) (*Forest, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, format)
}

func fromDocument(doc document) (*Forest, error) {
	f := &Forest{Labels: make(map[uint32]string, len(doc.Nodes))}
	for _, n := range doc.Nodes {
		if err := errors.ValidateNodeLabel(n.Label); err != nil {
			return nil, fmt.Errorf("node %d: %w", n.ID, err)
		}
		f.Labels[n.ID] = n.Label
	}
	for i, e := range doc.Edges {
		f.add(e.Parent, e.Child, i+1)
	}
	return f, nil
}

func readText(r io.Reader) (*Forest, error) {
	f := &Forest{Labels: map[uint32]string{}}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		text = strings.NewReplacer("->", " ", ",", " ").Replace(text)
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "line %d: want \"parent child\", got %q", line, sc.Text())
		}
		parent, err := errors.ParseNodeID(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		child, err := errors.ParseNodeID(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		f.add(parent, child, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read text")
	}
	return f, nil
}
