// test/helpers/helpers.go
package helpers

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/avelara/pos-be/internal/core/domain"
)

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// CreateTestProduct creates a valid product for testing, with optional
// mutations applied on top of the defaults.
func CreateTestProduct(opts ...func(*domain.Product)) *domain.Product {
	now := time.Now()
	cost := decimal.NewFromFloat(8.00)

	product := &domain.Product{
		ID:        uuid.New(),
		Name:      "Panadol Extra",
		Category:  domain.CategoryMedicine,
		Brand:     "Panadol",
		SKU:       "SKU-880",
		Price:     decimal.NewFromFloat(10.00),
		Cost:      &cost,
		Stock:     25,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, opt := range opts {
		opt(product)
	}

	return product
}

// CreateTestProducts creates n valid products with distinct ids, names
// and SKUs.
func CreateTestProducts(n int) []domain.Product {
	products := make([]domain.Product, 0, n)
	for i := 0; i < n; i++ {
		i := i
		p := CreateTestProduct(func(p *domain.Product) {
			p.Name = p.Name + " " + string(rune('A'+i%26))
			p.SKU = p.SKU + "-" + string(rune('A'+i%26))
			p.Category = domain.Categories[i%len(domain.Categories)]
		})
		products = append(products, *p)
	}
	return products
}

// CreateTestDraft creates a valid product draft for testing, with
// optional mutations applied on top of the defaults.
func CreateTestDraft(opts ...func(*domain.ProductDraft)) domain.ProductDraft {
	draft := domain.ProductDraft{
		Name:     "Panadol Extra",
		Category: domain.CategoryMedicine,
		Brand:    "Panadol",
		SKU:      "SKU-880",
		Price:    "10.00",
		Cost:     "8.00",
		Stock:    "25",
	}

	for _, opt := range opts {
		opt(&draft)
	}

	return draft
}
