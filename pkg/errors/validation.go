package errors

import (
	"strconv"
	"strings"
	"unicode"
)

// maxLabelLength bounds node labels read from edge files.
const maxLabelLength = 256

// ValidateNodeLabel validates a human-readable node label.
// Labels are rendered into DOT files and terminal output, so control
// characters and overly long names are rejected. An empty label is allowed
// and means "use the numeric id".
func ValidateNodeLabel(label string) error {
	if len(label) > maxLabelLength {
		return New(ErrCodeInvalidInput, "node label too long (max %d characters)", maxLabelLength)
	}
	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "node label contains invalid control characters")
		}
	}
	return nil
}

// ParseNodeID parses a decimal node identifier.
// Identifiers are dense unsigned integers that fit in 32 bits.
func ParseNodeID(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, New(ErrCodeInvalidNode, "node id cannot be empty")
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, Wrap(ErrCodeInvalidNode, err, "invalid node id %q", s)
	}
	return uint32(v), nil
}
