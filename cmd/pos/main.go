// cmd/pos/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/avelara/pos-be/internal/adapters/memstore"
	"github.com/avelara/pos-be/internal/core/domain"
	"github.com/avelara/pos-be/internal/core/services"
	"github.com/avelara/pos-be/internal/export"
	"github.com/avelara/pos-be/internal/pkg/config"
	"github.com/avelara/pos-be/internal/pkg/logger"
	"github.com/avelara/pos-be/internal/seed"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	exportPath := flag.String("export", "", "write the seeded catalog as XLSX to this path and exit")
	flag.Parse()

	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting pos core demo",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("tax_rate", cfg.POS.TaxRate.String()),
	)

	if err := run(cfg, slogger, *exportPath); err != nil {
		slogger.Error("demo failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run seeds the in-memory catalog and walks through the model
// operations the two screens would drive.
func run(cfg *config.Config, slogger *slog.Logger, exportPath string) error {
	ctx := context.Background()

	store := memstore.New()
	inventory := services.NewInventoryService(store, slogger)
	cart := services.NewCartService(cfg.POS.TaxRate, cfg.POS.CurrencyPrecision, slogger)

	for _, p := range seed.Products(cfg.Seed.CatalogCount) {
		if err := store.Save(ctx, &p); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	if exportPath != "" {
		return exportCatalog(ctx, cfg, slogger, inventory, exportPath)
	}

	// Product manager: create, filter, bulk ops.
	created, err := inventory.CreateProduct(ctx, domain.ProductDraft{
		Name:     "Panadol Extra",
		Category: domain.CategoryMedicine,
		Brand:    "Panadol",
		SKU:      "SKU-9000",
		Price:    "4.50",
		Stock:    "24",
	})
	if err != nil {
		return err
	}

	matches, err := inventory.Filter(ctx, domain.FilterState{
		SearchQuery:    "panadol",
		ActiveCategory: domain.CategoryAll,
	})
	if err != nil {
		return err
	}
	slogger.Info("filter results",
		slog.String("query", "panadol"),
		slog.Int("matches", len(matches)))

	// Checkout: add twice, step quantity, read totals.
	cart.AddItem(*created, 1)
	cart.AddItem(*created, 2)
	cart.UpdateQuantity(created.ID, -1)

	totals := cart.Totals()
	slogger.Info("cart totals",
		slog.Int("item_count", totals.ItemCount),
		slog.String("subtotal", cfg.POS.CurrencySymbol+totals.Subtotal.StringFixed(cfg.POS.CurrencyPrecision)),
		slog.String("tax", cfg.POS.CurrencySymbol+totals.Tax.StringFixed(cfg.POS.CurrencyPrecision)),
		slog.String("grand_total", cfg.POS.CurrencySymbol+totals.GrandTotal.StringFixed(cfg.POS.CurrencyPrecision)),
	)

	return nil
}

func exportCatalog(ctx context.Context, cfg *config.Config, slogger *slog.Logger, inventory *services.InventoryService, path string) error {
	products, err := inventory.ListCatalog(ctx)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	exporter := export.NewXLSXExporter(cfg.Export.SheetName, cfg.Export.MaxRows, slogger)
	if err := exporter.WriteCatalog(f, products); err != nil {
		return err
	}

	slogger.Info("catalog exported", slog.String("path", path))
	return nil
}
