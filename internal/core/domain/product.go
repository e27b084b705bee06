// internal/core/domain/product.go
package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductCategory represents product categories
type ProductCategory string

// Category constants
const (
	CategoryMedicine     ProductCategory = "Medicine"
	CategorySnacks       ProductCategory = "Snacks"
	CategoryBeverages    ProductCategory = "Beverages"
	CategoryPersonalCare ProductCategory = "Personal Care"
	CategoryHousehold    ProductCategory = "Household"
	CategoryOther        ProductCategory = "Other"
)

// CategoryAll is the filter wildcard. It is never stored on a product.
const CategoryAll = "All"

// Categories lists the selectable product categories in display order.
var Categories = []ProductCategory{
	CategoryMedicine,
	CategorySnacks,
	CategoryBeverages,
	CategoryPersonalCare,
	CategoryHousehold,
}

// SubCategories maps each category to its selectable sub-categories.
var SubCategories = map[ProductCategory][]string{
	CategoryMedicine:     {"Painkillers", "Antibiotics", "Supplements"},
	CategorySnacks:       {"Chips", "Biscuits", "Chocolates"},
	CategoryBeverages:    {"Juice", "Soda", "Water"},
	CategoryPersonalCare: {"Soaps", "Shampoos", "Lotions"},
	CategoryHousehold:    {"Cleaners", "Tools"},
}

// Brands lists the known brands in display order.
var Brands = []string{
	"Panadol",
	"Coca Cola",
	"Munchee",
	"Unilever",
	"Nestle",
	"Generic",
}

// LowStockThreshold is the stock level below which a product is
// flagged as running low.
const LowStockThreshold = 10

// Product represents a single sellable catalog entry.
// ID is assigned on creation and immutable thereafter.
type Product struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Category    ProductCategory  `json:"category"`
	SubCategory string           `json:"sub_category,omitempty"`
	Brand       string           `json:"brand"`
	SKU         string           `json:"sku"`
	Price       decimal.Decimal  `json:"price"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
	Stock       int              `json:"stock"`
	Description string           `json:"description,omitempty"`
	ImageRef    string           `json:"image_ref,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// LowStock reports whether the product stock is below the low-stock threshold.
func (p *Product) LowStock() bool {
	return p.Stock < LowStockThreshold
}

// ProductDraft carries raw form input for creating a product. Numeric
// fields arrive as strings exactly as typed; Validate parses them.
type ProductDraft struct {
	Name        string
	Category    ProductCategory
	SubCategory string
	Brand       string
	SKU         string
	Price       string
	Cost        string
	Stock       string
	Description string
	ImageRef    string
}

// Validate checks the draft and reports every offending field at once.
func (d *ProductDraft) Validate() error {
	var fields []string

	if strings.TrimSpace(d.Name) == "" {
		fields = append(fields, "name")
	}
	if _, err := parseAmount(d.Price); err != nil {
		fields = append(fields, "price")
	}
	if d.Cost != "" {
		if _, err := parseAmount(d.Cost); err != nil {
			fields = append(fields, "cost")
		}
	}
	if d.Stock != "" {
		if _, err := parseStock(d.Stock); err != nil {
			fields = append(fields, "stock")
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ToProduct builds a Product from a validated draft. The draft must have
// passed Validate; malformed numeric input panics here.
//
// Defaulting rules: an empty category becomes CategoryOther, an empty
// stock becomes 0, and an omitted cost defaults to 80% of price (the
// edit form's prefill rule).
func (d *ProductDraft) ToProduct(id uuid.UUID, now time.Time) Product {
	price, err := parseAmount(d.Price)
	if err != nil {
		panic("domain: ToProduct called with unvalidated draft: " + err.Error())
	}

	var cost *decimal.Decimal
	if d.Cost != "" {
		c, err := parseAmount(d.Cost)
		if err != nil {
			panic("domain: ToProduct called with unvalidated draft: " + err.Error())
		}
		cost = &c
	} else {
		c := price.Mul(decimal.NewFromFloat(0.8)).Round(2)
		cost = &c
	}

	stock := 0
	if d.Stock != "" {
		stock, err = parseStock(d.Stock)
		if err != nil {
			panic("domain: ToProduct called with unvalidated draft: " + err.Error())
		}
	}

	category := d.Category
	if category == "" {
		category = CategoryOther
	}

	return Product{
		ID:          id,
		Name:        strings.TrimSpace(d.Name),
		Category:    category,
		SubCategory: d.SubCategory,
		Brand:       d.Brand,
		SKU:         d.SKU,
		Price:       price,
		Cost:        cost,
		Stock:       stock,
		Description: d.Description,
		ImageRef:    d.ImageRef,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ProductPatch carries a partial update for an existing product.
// Nil fields are left untouched; ID is never patchable.
type ProductPatch struct {
	Name        *string
	Category    *ProductCategory
	SubCategory *string
	Brand       *string
	SKU         *string
	Price       *decimal.Decimal
	Cost        *decimal.Decimal
	Stock       *int
	Description *string
	ImageRef    *string
}

// Validate checks the patch fields that carry domain invariants.
func (p *ProductPatch) Validate() error {
	var fields []string

	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		fields = append(fields, "name")
	}
	if p.Price != nil && p.Price.IsNegative() {
		fields = append(fields, "price")
	}
	if p.Cost != nil && p.Cost.IsNegative() {
		fields = append(fields, "cost")
	}
	if p.Stock != nil && *p.Stock < 0 {
		fields = append(fields, "stock")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Apply merges the patch into the product and bumps UpdatedAt.
func (prod *Product) Apply(patch ProductPatch, now time.Time) {
	if patch.Name != nil {
		prod.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Category != nil {
		prod.Category = *patch.Category
	}
	if patch.SubCategory != nil {
		prod.SubCategory = *patch.SubCategory
	}
	if patch.Brand != nil {
		prod.Brand = *patch.Brand
	}
	if patch.SKU != nil {
		prod.SKU = *patch.SKU
	}
	if patch.Price != nil {
		prod.Price = *patch.Price
	}
	if patch.Cost != nil {
		c := *patch.Cost
		prod.Cost = &c
	}
	if patch.Stock != nil {
		prod.Stock = *patch.Stock
	}
	if patch.Description != nil {
		prod.Description = *patch.Description
	}
	if patch.ImageRef != nil {
		prod.ImageRef = *patch.ImageRef
	}
	prod.UpdatedAt = now
}

// FilterState holds the transient search and category filter of the
// product list. The zero value matches everything.
type FilterState struct {
	SearchQuery    string
	ActiveCategory string
}

// Matches reports whether the product passes the filter.
func (f FilterState) Matches(p *Product) bool {
	if f.ActiveCategory != "" && f.ActiveCategory != CategoryAll &&
		string(p.Category) != f.ActiveCategory {
		return false
	}
	if f.SearchQuery == "" {
		return true
	}
	q := strings.ToLower(f.SearchQuery)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.SKU), q)
}

// FilterCatalog returns the products matching the filter, preserving
// the input order. Filtering an already-filtered result with the same
// state returns the same sequence.
func FilterCatalog(products []Product, filter FilterState) []Product {
	matched := make([]Product, 0, len(products))
	for i := range products {
		if filter.Matches(&products[i]) {
			matched = append(matched, products[i])
		}
	}
	return matched
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.IsNegative() {
		return decimal.Decimal{}, &ValidationError{Fields: []string{"amount"}}
	}
	return d, nil
}

func parseStock(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, &ValidationError{Fields: []string{"stock"}}
	}
	return n, nil
}
