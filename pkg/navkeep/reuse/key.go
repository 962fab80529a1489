package reuse

import (
	"strings"

	"github.com/navkeep/navkeep/pkg/navkeep/constants"
	"github.com/navkeep/navkeep/pkg/navkeep/route"
)

// DeriveKey builds the identity a snapshot is stored under: its path segments
// joined by "/" in order. Parameter values are part of the segments, so
// /blog/1 and /blog/2 get separate entries. A nil snapshot or one without
// segments yields the empty (root) identity.
func DeriveKey(s *route.Snapshot) string {
	if s == nil {
		return ""
	}
	return strings.Join(s.Segments, constants.KeyDelimiter)
}
