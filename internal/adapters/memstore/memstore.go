// internal/adapters/memstore/memstore.go
package memstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/avelara/pos-be/internal/core/domain"
	"github.com/avelara/pos-be/internal/core/ports"
)

// Store is an insertion-ordered, in-memory catalog repository. The
// model is owned by a single view loop and every operation runs to
// completion before the next event, so the store takes no locks and is
// not safe for concurrent use.
type Store struct {
	items map[uuid.UUID]*domain.Product
	order []uuid.UUID
}

// Statically assert that *Store implements the CatalogRepository port.
var _ ports.CatalogRepository = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{items: make(map[uuid.UUID]*domain.Product)}
}

// Save inserts a new product. A duplicate id is an error; product ids
// are generated fresh on create, so hitting one means the generator
// broke.
func (s *Store) Save(_ context.Context, p *domain.Product) error {
	if _, ok := s.items[p.ID]; ok {
		return fmt.Errorf("duplicate product id %s", p.ID)
	}
	cp := *p
	s.items[p.ID] = &cp
	s.order = append(s.order, p.ID)
	return nil
}

// Update replaces the stored product with the same id.
func (s *Store) Update(_ context.Context, p *domain.Product) error {
	if _, ok := s.items[p.ID]; !ok {
		return &domain.NotFoundError{ID: p.ID}
	}
	cp := *p
	s.items[p.ID] = &cp
	return nil
}

// FindByID returns a copy of the product, or nil when absent.
func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	p, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// FindAll returns all products in insertion order.
func (s *Store) FindAll(_ context.Context) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(s.order))
	for _, id := range s.order {
		products = append(products, *s.items[id])
	}
	return products, nil
}

// Delete removes the product by id.
func (s *Store) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.items[id]; !ok {
		return &domain.NotFoundError{ID: id}
	}
	delete(s.items, id)
	s.removeFromOrder(map[uuid.UUID]struct{}{id: {}})
	return nil
}

// DeleteBatch removes every product whose id is in ids and returns the
// number actually found and removed. The candidate set is resolved
// before anything is touched, so a half-removed state is never
// observable.
func (s *Store) DeleteBatch(_ context.Context, ids []uuid.UUID) (int, error) {
	found := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := s.items[id]; ok {
			found[id] = struct{}{}
		}
	}
	if len(found) == 0 {
		return 0, nil
	}
	for id := range found {
		delete(s.items, id)
	}
	s.removeFromOrder(found)
	return len(found), nil
}

// Exists reports whether a product with the id is stored.
func (s *Store) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := s.items[id]
	return ok, nil
}

// Count returns the number of stored products.
func (s *Store) Count(_ context.Context) (int64, error) {
	return int64(len(s.items)), nil
}

func (s *Store) removeFromOrder(ids map[uuid.UUID]struct{}) {
	order := s.order[:0]
	for _, id := range s.order {
		if _, ok := ids[id]; !ok {
			order = append(order, id)
		}
	}
	s.order = order
}
