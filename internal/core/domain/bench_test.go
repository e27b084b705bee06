package domain_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/avelara/pos-be/internal/core/domain"
)

func benchmarkCatalog(n int) []domain.Product {
	products := make([]domain.Product, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, domain.Product{
			ID:       uuid.New(),
			Name:     fmt.Sprintf("Item %d", i),
			SKU:      fmt.Sprintf("SKU-88%d", i),
			Category: domain.Categories[i%len(domain.Categories)],
			Price:    decimal.NewFromInt(int64(i%50 + 1)),
		})
	}
	return products
}

func BenchmarkFilterCatalog(b *testing.B) {
	catalog := benchmarkCatalog(1000)

	b.Run("Search", func(b *testing.B) {
		filter := domain.FilterState{SearchQuery: "item 42"}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = domain.FilterCatalog(catalog, filter)
		}
	})

	b.Run("Category", func(b *testing.B) {
		filter := domain.FilterState{ActiveCategory: "Medicine"}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = domain.FilterCatalog(catalog, filter)
		}
	})
}

func BenchmarkCart_ComputeTotals(b *testing.B) {
	cart := domain.Cart{}
	for _, p := range benchmarkCatalog(50) {
		cart = cart.AddItem(p, 2)
	}
	taxRate := decimal.RequireFromString("0.05")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cart.ComputeTotals(taxRate, 2)
	}
}
