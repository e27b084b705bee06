// internal/seed/seed.go

// Package seed generates the demo catalog used when the app runs
// without real data. Output is deterministic for a given count so
// screenshots and tests stay stable.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/avelara/pos-be/internal/core/domain"
)

const randSeed = 8834

// Products returns n demo catalog entries. Categories and brands cycle
// round-robin; SKUs follow the SKU-88x scheme of the demo data.
func Products(n int) []domain.Product {
	rng := rand.New(rand.NewSource(randSeed))
	now := time.Now()

	products := make([]domain.Product, 0, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("Item %d", i+1)
		if i%2 == 0 {
			name = fmt.Sprintf("Product %d (Box)", i+1)
		}

		category := domain.Categories[i%len(domain.Categories)]
		price := decimal.NewFromFloat(rng.Float64()*50 + 10).Round(2)
		cost := price.Mul(decimal.NewFromFloat(0.8)).Round(2)

		products = append(products, domain.Product{
			ID:        uuid.New(),
			Name:      name,
			Category:  category,
			Brand:     domain.Brands[i%len(domain.Brands)],
			SKU:       fmt.Sprintf("SKU-88%d", i),
			Price:     price,
			Cost:      &cost,
			Stock:     rng.Intn(100),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return products
}

// PosItems returns n quick-sale products for the checkout grid, priced
// in the 5 to 25 band like the demo data.
func PosItems(n int) []domain.Product {
	rng := rand.New(rand.NewSource(randSeed + 1))
	now := time.Now()

	products := make([]domain.Product, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, domain.Product{
			ID:        uuid.New(),
			Name:      fmt.Sprintf("Item %d", i+1),
			Category:  domain.CategoryOther,
			Brand:     "Generic",
			SKU:       fmt.Sprintf("POS-%03d", i+1),
			Price:     decimal.NewFromFloat(rng.Float64()*20 + 5).Round(2),
			Stock:     rng.Intn(100),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return products
}
