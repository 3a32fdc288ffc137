package business

import (
	"context"
	"sync"
)

// MemoryRepository is an in-memory Repository for tests and composition
// roots that have no document store. It is safe for concurrent use and
// makes defensive copies so callers cannot mutate stored records.
type MemoryRepository struct {
	mu         sync.RWMutex
	businesses map[string]Business // keyed by business ID
	order      []string            // insertion order for ListOwned
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository(businesses ...Business) *MemoryRepository {
	repo := &MemoryRepository{
		businesses: make(map[string]Business, len(businesses)),
	}
	for _, b := range businesses {
		repo.Put(b)
	}
	return repo
}

// Put inserts or replaces a business record.
func (r *MemoryRepository) Put(b Business) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.businesses[b.ID]; !exists {
		r.order = append(r.order, b.ID)
	}
	r.businesses[b.ID] = cloneBusiness(b)
}

// Delete removes a business record if present.
func (r *MemoryRepository) Delete(businessID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.businesses[businessID]; !exists {
		return
	}
	delete(r.businesses, businessID)
	for i, id := range r.order {
		if id == businessID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// ListOwned returns all businesses owned by ownerID in insertion order.
func (r *MemoryRepository) ListOwned(ctx context.Context, ownerID string) ([]Business, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Business, 0)
	for _, id := range r.order {
		b := r.businesses[id]
		if b.OwnerID == ownerID {
			result = append(result, cloneBusiness(b))
		}
	}
	return result, nil
}

// Get fetches one business scoped to its owner.
func (r *MemoryRepository) Get(ctx context.Context, ownerID, businessID string) (*Business, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	b, exists := r.businesses[businessID]
	if !exists || b.OwnerID != ownerID {
		return nil, ErrBusinessNotFound
	}

	clone := cloneBusiness(b)
	return &clone, nil
}

func cloneBusiness(b Business) Business {
	clone := b
	if b.Attrs != nil {
		clone.Attrs = make(map[string]any, len(b.Attrs))
		for k, v := range b.Attrs {
			clone.Attrs[k] = v
		}
	}
	return clone
}
