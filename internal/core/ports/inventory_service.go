// internal/core/ports/inventory_service.go
package ports

import (
	"context"

	"github.com/avelara/pos-be/internal/core/domain"
	"github.com/google/uuid"
)

// InventoryService defines the application port the product manager
// screen drives. This interface is implemented by the application
// service.
type InventoryService interface {
	CreateProduct(ctx context.Context, draft domain.ProductDraft) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, patch domain.ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	BulkDelete(ctx context.Context, ids []uuid.UUID) (int, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ListCatalog(ctx context.Context) ([]domain.Product, error)
	Filter(ctx context.Context, filter domain.FilterState) ([]domain.Product, error)

	ToggleSelection(ctx context.Context, id uuid.UUID) error
	SelectAll(ctx context.Context) error
	ClearSelection()
	Selected(ctx context.Context) ([]uuid.UUID, error)
	SelectionCount() int
}
