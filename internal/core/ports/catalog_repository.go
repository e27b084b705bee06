// internal/core/ports/catalog_repository.go
package ports

import (
	"context"

	"github.com/avelara/pos-be/internal/core/domain"
	"github.com/google/uuid"
)

// CatalogRepository defines the storage port for the product catalog.
// Implementations must keep FindAll in insertion order, since the
// catalog has no sort key and display order falls back to it.
type CatalogRepository interface {
	Save(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteBatch(ctx context.Context, ids []uuid.UUID) (int, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Count(ctx context.Context) (int64, error)
}
