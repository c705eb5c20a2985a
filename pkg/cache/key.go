package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// ArtifactKeyOpts are the render options that change a diagram's bytes.
type ArtifactKeyOpts struct {
	Format         string  `json:"format"`
	Highlight      string  `json:"highlight,omitempty"`
	HighlightColor string  `json:"color,omitempty"`
	RankDir        string  `json:"rankdir,omitempty"`
	Scale          float64 `json:"scale,omitempty"`
	InputFormat    string  `json:"input_format,omitempty"`
}

// ArtifactKey returns the cache key of a diagram rendered from the edge
// file contents input with opts.
func ArtifactKey(input []byte, opts ArtifactKeyOpts) string {
	return hashKey("artifact", Hash(input), opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
