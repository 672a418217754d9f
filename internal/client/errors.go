package client

import (
	"fmt"

	"github.com/deadoralive/checker/internal/domain"
)

// ListingError means the client service refused to hand over the list
// of resources to check. Fatal for the whole cycle.
type ListingError struct {
	Status int
	Reason string
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("couldn't get resource IDs to check: %d %s", e.Status, e.Reason)
}

// ResolutionError means the client service refused to resolve one
// resource ID to a URL. Recoverable: the caller skips the resource.
type ResolutionError struct {
	ResourceID domain.ResourceID
	Status     int
	Reason     string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("couldn't get URL for resource %s: %d %s", e.ResourceID, e.Status, e.Reason)
}
