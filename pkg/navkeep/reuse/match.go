package reuse

import "github.com/navkeep/navkeep/pkg/navkeep/route"

// ShouldReuseRoute reports whether the host can keep the current view and
// update it in place instead of detaching it. That holds when both snapshots
// resolved from the same route definition and carry the same parameters.
func ShouldReuseRoute(future, current *route.Snapshot) bool {
	if future == nil || current == nil {
		return false
	}
	if future.Config == nil || future.Config != current.Config {
		return false
	}
	return future.Params.Equal(current.Params)
}
