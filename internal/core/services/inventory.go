// internal/core/services/inventory.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/avelara/pos-be/internal/core/domain"
	"github.com/avelara/pos-be/internal/core/ports"
)

// InventoryService handles catalog business logic for the product
// manager screen, including the transient bulk-selection set.
type InventoryService struct {
	repo      ports.CatalogRepository
	selection map[uuid.UUID]struct{}
	logger    *slog.Logger
}

// Statically assert that *InventoryService implements the InventoryService port.
var _ ports.InventoryService = (*InventoryService)(nil)

// NewInventoryService creates a new inventory service.
func NewInventoryService(repo ports.CatalogRepository, logger *slog.Logger) *InventoryService {
	return &InventoryService{
		repo:      repo,
		selection: make(map[uuid.UUID]struct{}),
		logger:    logger.With(slog.String("service", "inventory")),
	}
}

// CreateProduct validates the draft, assigns a fresh id and inserts the
// product into the catalog. On validation failure nothing is inserted
// and the returned error names the offending fields.
func (s *InventoryService) CreateProduct(ctx context.Context, draft domain.ProductDraft) (*domain.Product, error) {
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	product := draft.ToProduct(uuid.New(), time.Now())
	if err := s.repo.Save(ctx, &product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	s.logger.InfoContext(ctx, "created product",
		slog.String("id", product.ID.String()),
		slog.String("name", product.Name))

	return &product, nil
}

// UpdateProduct merges the patch into the product matching id and
// re-validates the patched fields. The id itself is never replaced.
func (s *InventoryService) UpdateProduct(ctx context.Context, id uuid.UUID, patch domain.ProductPatch) (*domain.Product, error) {
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	if product == nil {
		return nil, &domain.NotFoundError{ID: id}
	}

	product.Apply(patch, time.Now())
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.InfoContext(ctx, "updated product",
		slog.String("id", id.String()))

	return product, nil
}

// DeleteProduct removes the product by id and drops the id from the
// selection set. A missing id is a NotFoundError; only BulkDelete
// tolerates ids that are already gone.
func (s *InventoryService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	delete(s.selection, id)

	s.logger.InfoContext(ctx, "deleted product",
		slog.String("id", id.String()))

	return nil
}

// BulkDelete removes every listed product that exists and clears the
// selection set. It returns the number actually removed; ids that were
// already gone are not an error.
func (s *InventoryService) BulkDelete(ctx context.Context, ids []uuid.UUID) (int, error) {
	removed, err := s.repo.DeleteBatch(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk delete: %w", err)
	}
	s.ClearSelection()

	s.logger.InfoContext(ctx, "bulk deleted products",
		slog.Int("requested", len(ids)),
		slog.Int("removed", removed))

	return removed, nil
}

// GetProduct retrieves a product by id.
func (s *InventoryService) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, &domain.NotFoundError{ID: id}
	}
	return product, nil
}

// ListCatalog returns the full catalog in insertion order.
func (s *InventoryService) ListCatalog(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}
	return products, nil
}

// Filter returns the catalog entries matching the search query and
// active category, in catalog order.
func (s *InventoryService) Filter(ctx context.Context, filter domain.FilterState) ([]domain.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to filter catalog: %w", err)
	}
	return domain.FilterCatalog(products, filter), nil
}

// ToggleSelection adds the id to the selection set, or removes it when
// already selected. The id must reference a product currently in the
// catalog.
func (s *InventoryService) ToggleSelection(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check product existence: %w", err)
	}
	if !exists {
		return &domain.NotFoundError{ID: id}
	}

	if _, ok := s.selection[id]; ok {
		delete(s.selection, id)
	} else {
		s.selection[id] = struct{}{}
	}
	return nil
}

// SelectAll selects every product currently in the catalog.
func (s *InventoryService) SelectAll(ctx context.Context) error {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to select all: %w", err)
	}
	for i := range products {
		s.selection[products[i].ID] = struct{}{}
	}
	return nil
}

// ClearSelection empties the selection set, as happens when selection
// mode exits or a bulk action commits.
func (s *InventoryService) ClearSelection() {
	s.selection = make(map[uuid.UUID]struct{})
}

// Selected returns the selected ids in catalog order.
func (s *InventoryService) Selected(ctx context.Context) ([]uuid.UUID, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list selection: %w", err)
	}
	ids := make([]uuid.UUID, 0, len(s.selection))
	for i := range products {
		if _, ok := s.selection[products[i].ID]; ok {
			ids = append(ids, products[i].ID)
		}
	}
	return ids, nil
}

// SelectionCount returns the number of selected products.
func (s *InventoryService) SelectionCount() int {
	return len(s.selection)
}
