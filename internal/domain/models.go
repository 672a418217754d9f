package domain

// ResourceID identifies a checkable item in the client service's
// catalog. It is opaque to the checker; equality is by value.
type ResourceID string

// Resource pairs an ID with the single URL to be checked. The checker
// itself only ever sees the two halves separately (IDs from listing,
// URLs from resolution); the full pair lives on the client-service
// side.
type Resource struct {
	ID  ResourceID `json:"id"`
	URL string     `json:"url"`
}
