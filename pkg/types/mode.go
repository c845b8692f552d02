package types

import (
	"strings"

	"github.com/arthur-debert/plugchain/pkg/errors"
)

// Mode is the resolution context of a pipeline. Read and write orders are
// computed from independent constraint lists and never share a graph.
type Mode string

const (
	// ModeRead transforms data loaded from storage into its user-facing form
	ModeRead Mode = "read"

	// ModeWrite transforms user data into its storage form
	ModeWrite Mode = "write"
)

// AllModes lists both modes, write first as the storage layer persists before it loads.
var AllModes = []Mode{ModeWrite, ModeRead}

// String returns the mode name
func (m Mode) String() string {
	return string(m)
}

// ParseMode parses a case-insensitive mode name
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeRead:
		return ModeRead, nil
	case ModeWrite:
		return ModeWrite, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown mode: %q", s).WithDetail("mode", s)
	}
}
