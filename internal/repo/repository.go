package repo

import (
	"context"
	"errors"
	"time"

	"github.com/deadoralive/checker/internal/domain"
)

// ErrNotFound is returned when a resource ID is unknown to the store.
var ErrNotFound = errors.New("resource not found")

// ReportedResult is one upserted check outcome, keyed by resource.
type ReportedResult struct {
	ResourceID domain.ResourceID  `json:"resource_id"`
	Result     domain.ProbeResult `json:"result"`
	ReportedAt time.Time          `json:"reported_at"`
}

// Ports (interfaces) — swap in any DB adapter later.
type ResourceStore interface {
	Add(ctx context.Context, r *domain.Resource) error
	IDsToCheck(ctx context.Context) ([]domain.ResourceID, error)
	URLFor(ctx context.Context, id domain.ResourceID) (string, error)
	UpsertResult(ctx context.Context, id domain.ResourceID, result domain.ProbeResult) error
	Results(ctx context.Context) ([]ReportedResult, error)
}
