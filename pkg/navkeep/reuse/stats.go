package reuse

import "fmt"

// Stats summarises what a Policy has done since it was created.
type Stats struct {
	Stored   int64 // Handles written by Store
	Skipped  int64 // Store calls ignored because the route was not eligible
	Hits     int64 // Retrieve calls that found a handle
	Misses   int64 // Retrieve calls that found nothing
	Retained int   // Distinct identities currently in the store
}

func (s Stats) String() string {
	return fmt.Sprintf("stored=%d skipped=%d hits=%d misses=%d retained=%d",
		s.Stored, s.Skipped, s.Hits, s.Misses, s.Retained)
}
