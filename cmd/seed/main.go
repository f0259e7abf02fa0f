package main

import (
	"context"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/agrocoop/distribution/cmd/config"
	"github.com/agrocoop/distribution/model"
	catalogRepo "github.com/agrocoop/distribution/repository/catalog"
	"github.com/agrocoop/distribution/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

// Seeds a development database with a small but usable catalog.
// Safe to run repeatedly only against a fresh schema, there is no
// duplicate detection.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	ctx := context.Background()
	repo := catalogRepo.NewCatalogRepository(db)

	farmers := []model.Farmer{
		{Name: "Vega Family Farm", Email: strPtr("vega@coop.example"), Phone: strPtr("081200000001"), Address: strPtr("Km 4 Rural Rd North")},
		{Name: "Solano Orchards", Email: strPtr("solano@coop.example"), Phone: strPtr("081200000002"), Address: strPtr("Valley Road 17")},
		{Name: "El Roble Dairy", Phone: strPtr("081200000003"), Address: strPtr("Hillside Plot 9")},
	}
	farmerIDs := make([]uint64, 0, len(farmers))
	for i := range farmers {
		id, err := repo.CreateFarmer(ctx, &farmers[i])
		if err != nil {
			logger.Fatal("err seed farmer", zap.String("name", farmers[i].Name), zap.Error(err))
		}
		farmerIDs = append(farmerIDs, id)
	}

	products := []model.Product{
		{FarmerID: farmerIDs[0], Name: "Tomatoes", Category: "vegetables", Quantity: decimal.NewFromInt(120), Unit: "kg", PricePerUnit: decimal.NewFromFloat(1.80), ExpiryDate: strPtr("2026-09-10")},
		{FarmerID: farmerIDs[0], Name: "Green Peppers", Category: "vegetables", Quantity: decimal.NewFromInt(60), Unit: "kg", PricePerUnit: decimal.NewFromFloat(2.20), ExpiryDate: strPtr("2026-09-08")},
		{FarmerID: farmerIDs[1], Name: "Apples", Category: "fruit", Quantity: decimal.NewFromInt(200), Unit: "kg", PricePerUnit: decimal.NewFromFloat(1.50), ExpiryDate: strPtr("2026-10-01")},
		{FarmerID: farmerIDs[1], Name: "Pears", Category: "fruit", Quantity: decimal.NewFromInt(80), Unit: "kg", PricePerUnit: decimal.NewFromFloat(1.90)},
		{FarmerID: farmerIDs[2], Name: "Fresh Milk", Category: "dairy", Quantity: decimal.NewFromInt(300), Unit: "l", PricePerUnit: decimal.NewFromFloat(0.95), ExpiryDate: strPtr("2026-09-04")},
		{FarmerID: farmerIDs[2], Name: "Farm Cheese", Category: "dairy", Quantity: decimal.NewFromFloat(25.5), Unit: "kg", PricePerUnit: decimal.NewFromFloat(7.40), ExpiryDate: strPtr("2026-09-20")},
	}
	for i := range products {
		if _, err := repo.CreateProduct(ctx, &products[i]); err != nil {
			logger.Fatal("err seed product", zap.String("name", products[i].Name), zap.Error(err))
		}
	}

	salesPoints := []model.SalesPoint{
		{Name: "Central Market Hall", Type: "market", ContactPerson: strPtr("M. Duarte"), Phone: strPtr("081300000001"), Address: "14 Market Rd"},
		{Name: "Riverside Grocery", Type: "shop", ContactPerson: strPtr("P. Lindo"), Phone: strPtr("081300000002"), Address: "2 River St"},
		{Name: "Coop Outlet East", Type: "outlet", Address: "88 East Ave"},
	}
	for i := range salesPoints {
		if _, err := repo.CreateSalesPoint(ctx, &salesPoints[i]); err != nil {
			logger.Fatal("err seed sales point", zap.String("name", salesPoints[i].Name), zap.Error(err))
		}
	}

	drivers := []model.Driver{
		{Name: "R. Vega", Phone: strPtr("081400000001"), LicenseNumber: strPtr("B-2204-71"), VehicleInfo: strPtr("Refrigerated van, 1.5t")},
		{Name: "T. Okafor", Phone: strPtr("081400000002"), LicenseNumber: strPtr("B-1881-09"), VehicleInfo: strPtr("Flatbed truck, 3t")},
	}
	for i := range drivers {
		if _, err := repo.CreateDriver(ctx, &drivers[i]); err != nil {
			logger.Fatal("err seed driver", zap.String("name", drivers[i].Name), zap.Error(err))
		}
	}

	logger.Info("seed complete",
		zap.Int("farmers", len(farmers)),
		zap.Int("products", len(products)),
		zap.Int("sales_points", len(salesPoints)),
		zap.Int("drivers", len(drivers)),
	)
}
