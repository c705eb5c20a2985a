package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/consolidated/pkg/consolidated"
)

type report struct {
	Keys []reportEntry `json:"keys"`
}

type reportEntry struct {
	ID       uint32   `json:"id"`
	Label    string   `json:"label,omitempty"`
	Children []uint32 `json:"children"`
}

// WriteJSON writes the descendant set of every key in m that has at least
// one descendant, in key order. labels may be nil.
func WriteJSON(m *consolidated.Map[uint32], labels map[uint32]string, w io.Writer) error {
	out := report{Keys: []reportEntry{}}
	for k := range m.Len() {
		id := uint32(k)
		c := m.Children(id)
		if c.Len() == 0 {
			continue
		}
		out.Keys = append(out.Keys, reportEntry{ID: id, Label: labels[id], Children: c.Slice()})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the report produced by [WriteJSON] to a file at path.
func ExportJSON(m *consolidated.Map[uint32], labels map[uint32]string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(m, labels, f)
}
