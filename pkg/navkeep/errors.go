package navkeep

import (
	"github.com/navkeep/navkeep/pkg/navkeep/route"
	"github.com/navkeep/navkeep/pkg/navkeep/router"
)

// Sentinel errors re-exported for callers that only import this package.
var (
	// ErrNoMatch indicates that no route matches a URL.
	ErrNoMatch = route.ErrNoMatch

	// ErrUnsupportedFormat indicates a route table file with an unknown extension.
	ErrUnsupportedFormat = route.ErrUnsupportedFormat

	// ErrViewNotRegistered indicates a URL resolved to a route with no view.
	ErrViewNotRegistered = router.ErrViewNotRegistered
)

// IsTableError checks if an error came from building, loading or querying a route table.
func IsTableError(err error) bool {
	return route.IsTableError(err)
}

// IsNoMatch checks if an error indicates that a URL matched no route.
func IsNoMatch(err error) bool {
	return route.IsNoMatch(err)
}
