package types

import (
	"strings"

	"github.com/arthur-debert/plugchain/pkg/errors"
)

// Kind identifies the storage entity a plugin unit operates on
type Kind string

const (
	// KindDataset covers array data plus its attributes and metadata
	KindDataset Kind = "dataset"

	// KindAttribute covers attribute documents attached to any object
	KindAttribute Kind = "attribute"

	// KindFile covers the root object of a storage tree
	KindFile Kind = "file"

	// KindGroup covers directories holding other objects
	KindGroup Kind = "group"

	// KindRaw covers opaque folders with arbitrary content
	KindRaw Kind = "raw"
)

// AllKinds lists every kind in the order pipelines are resolved and displayed.
var AllKinds = []Kind{KindDataset, KindAttribute, KindFile, KindGroup, KindRaw}

// String returns the kind name
func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k is one of AllKinds
func (k Kind) Valid() bool {
	for _, known := range AllKinds {
		if k == known {
			return true
		}
	}
	return false
}

// ParseKind parses a case-insensitive kind name
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", errors.Newf(errors.ErrInvalidInput, "unknown kind: %q", s).WithDetail("kind", s)
	}
	return k, nil
}
