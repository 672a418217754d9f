package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/deadoralive/checker/internal/domain"
	"github.com/deadoralive/checker/internal/repo"
)

// Store keeps resources and upserted results in memory. Listing order
// is insertion order, and upserting twice for the same resource keeps
// only the newest result.
type Store struct {
	mu        sync.RWMutex
	order     []domain.ResourceID
	resources map[domain.ResourceID]*domain.Resource
	results   map[domain.ResourceID]repo.ReportedResult
}

func New() *Store {
	return &Store{
		resources: make(map[domain.ResourceID]*domain.Resource),
		results:   make(map[domain.ResourceID]repo.ReportedResult),
	}
}

func (m *Store) Add(ctx context.Context, r *domain.Resource) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.ID == "" {
		r.ID = domain.ResourceID(uuid.NewString())
	}
	if _, exists := m.resources[r.ID]; !exists {
		m.order = append(m.order, r.ID)
	}
	m.resources[r.ID] = r
	return nil
}

func (m *Store) IDsToCheck(ctx context.Context) ([]domain.ResourceID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.ResourceID, len(m.order))
	copy(out, m.order)
	return out, nil
}

func (m *Store) URLFor(ctx context.Context, id domain.ResourceID) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.resources[id]
	if !ok {
		return "", repo.ErrNotFound
	}
	return r.URL, nil
}

func (m *Store) UpsertResult(ctx context.Context, id domain.ResourceID, result domain.ProbeResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.resources[id]; !ok {
		return repo.ErrNotFound
	}
	m.results[id] = repo.ReportedResult{
		ResourceID: id,
		Result:     result,
		ReportedAt: time.Now().UTC(),
	}
	return nil
}

func (m *Store) Results(ctx context.Context) ([]repo.ReportedResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]repo.ReportedResult, 0, len(m.results))
	for _, id := range m.order {
		if r, ok := m.results[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}
