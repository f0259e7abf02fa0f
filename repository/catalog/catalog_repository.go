package catalog

import (
	"context"
	"database/sql"
	"strings"

	"github.com/agrocoop/distribution/model"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type SQL struct {
	conn *sqlx.DB
}

// CatalogRepository is the sole source of truth for products, farmers,
// sales points and drivers. Product quantity is only written through
// UpdateProductStockTx inside a reservation transaction.
type CatalogRepository interface {
	GetProductsForUpdateTx(ctx context.Context, tx *sqlx.Tx, productIDs []uint64) ([]model.Product, error)
	UpdateProductStockTx(ctx context.Context, tx *sqlx.Tx, productID uint64, quantity decimal.Decimal, available bool) error
	GetSalesPoint(ctx context.Context, id uint64) (*model.SalesPoint, error)
	GetDriver(ctx context.Context, id uint64) (*model.Driver, error)
	ListProducts(ctx context.Context, filter *model.ProductFilter) ([]model.ProductListItem, error)
	GetCatalogStats(ctx context.Context) (*model.CatalogStats, error)
	CreateFarmer(ctx context.Context, farmer *model.Farmer) (uint64, error)
	CreateProduct(ctx context.Context, product *model.Product) (uint64, error)
	CreateSalesPoint(ctx context.Context, salesPoint *model.SalesPoint) (uint64, error)
	CreateDriver(ctx context.Context, driver *model.Driver) (uint64, error)
}

func NewCatalogRepository(conn *sqlx.DB) CatalogRepository {
	return &SQL{conn: conn}
}

const (
	listProductsBase = `SELECT p.id, p.name, p.category, p.quantity, p.unit, p.price_per_unit, p.available, p.expiry_date, p.farmer_id, f.name as farmer_name
FROM product p
JOIN farmer f ON p.farmer_id = f.id
WHERE true`

	catalogStatsQuery = `SELECT
(SELECT COUNT(*) FROM farmer WHERE active = true) as total_farmers,
(SELECT COUNT(*) FROM product WHERE available = true) as total_products,
(SELECT COUNT(*) FROM sales_point WHERE active = true) as total_sales_points,
(SELECT COUNT(*) FROM product WHERE available = true AND expiry_date IS NOT NULL AND expiry_date <= DATE_ADD(CURDATE(), INTERVAL 7 DAY)) as expiring_soon`
)

// GetProductsForUpdateTx locks and returns the product rows for the
// given ids. Rows are locked in ascending id order so concurrent
// reservations over overlapping product sets cannot deadlock.
func (s *SQL) GetProductsForUpdateTx(ctx context.Context, tx *sqlx.Tx, productIDs []uint64) ([]model.Product, error) {
	if len(productIDs) == 0 {
		return []model.Product{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(productIDs)), ",")
	query := "SELECT id, farmer_id, name, category, quantity, unit, price_per_unit, available, expiry_date, created_date FROM product WHERE id IN (" + placeholders + ") ORDER BY id FOR UPDATE"

	args := make([]any, 0, len(productIDs))
	for _, id := range productIDs {
		args = append(args, id)
	}

	rows, err := tx.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]model.Product, 0, len(productIDs))
	for rows.Next() {
		var p model.Product
		if err := rows.StructScan(&p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *SQL) UpdateProductStockTx(ctx context.Context, tx *sqlx.Tx, productID uint64, quantity decimal.Decimal, available bool) error {
	_, err := tx.ExecContext(ctx, "UPDATE product SET quantity = ?, available = ? WHERE id = ?", quantity, available, productID)
	return err
}

func (s *SQL) GetSalesPoint(ctx context.Context, id uint64) (*model.SalesPoint, error) {
	var sp model.SalesPoint
	row := s.conn.QueryRowxContext(ctx, "SELECT id, name, type, contact_person, email, phone, address, active, registration_date FROM sales_point WHERE id = ?", id)
	if err := row.StructScan(&sp); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &sp, nil
}

func (s *SQL) GetDriver(ctx context.Context, id uint64) (*model.Driver, error) {
	var d model.Driver
	row := s.conn.QueryRowxContext(ctx, "SELECT id, name, phone, license_number, vehicle_info, active, registration_date FROM driver WHERE id = ?", id)
	if err := row.StructScan(&d); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// ListProducts returns products with farmer names, soonest expiry
// first, matching the ordering the legacy coordination screens used.
func (s *SQL) ListProducts(ctx context.Context, filter *model.ProductFilter) ([]model.ProductListItem, error) {
	query := listProductsBase
	args := make([]any, 0, 2)

	if filter != nil {
		if filter.AvailableOnly {
			query += " AND p.available = true"
		}
		if filter.FarmerID != 0 {
			query += " AND p.farmer_id = ?"
			args = append(args, filter.FarmerID)
		}
		if filter.Category != "" {
			query += " AND p.category = ?"
			args = append(args, filter.Category)
		}
	}
	query += " ORDER BY COALESCE(p.expiry_date, '9999-12-31'), p.created_date"

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ProductListItem, 0)
	for rows.Next() {
		var it model.ProductListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) GetCatalogStats(ctx context.Context) (*model.CatalogStats, error) {
	var stats model.CatalogStats
	if err := s.conn.QueryRowxContext(ctx, catalogStatsQuery).StructScan(&stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *SQL) CreateFarmer(ctx context.Context, farmer *model.Farmer) (uint64, error) {
	res, err := s.conn.ExecContext(ctx, "INSERT INTO farmer (name, email, phone, address, active, registration_date) VALUES (?, ?, ?, ?, true, NOW())",
		farmer.Name, farmer.Email, farmer.Phone, farmer.Address)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) CreateProduct(ctx context.Context, product *model.Product) (uint64, error) {
	available := product.Quantity.IsPositive()
	res, err := s.conn.ExecContext(ctx, "INSERT INTO product (farmer_id, name, category, quantity, unit, price_per_unit, available, expiry_date, created_date) VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())",
		product.FarmerID, product.Name, product.Category, product.Quantity, product.Unit, product.PricePerUnit, available, product.ExpiryDate)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) CreateSalesPoint(ctx context.Context, salesPoint *model.SalesPoint) (uint64, error) {
	res, err := s.conn.ExecContext(ctx, "INSERT INTO sales_point (name, type, contact_person, email, phone, address, active, registration_date) VALUES (?, ?, ?, ?, ?, ?, true, NOW())",
		salesPoint.Name, salesPoint.Type, salesPoint.ContactPerson, salesPoint.Email, salesPoint.Phone, salesPoint.Address)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) CreateDriver(ctx context.Context, driver *model.Driver) (uint64, error) {
	res, err := s.conn.ExecContext(ctx, "INSERT INTO driver (name, phone, license_number, vehicle_info, active, registration_date) VALUES (?, ?, ?, ?, true, NOW())",
		driver.Name, driver.Phone, driver.LicenseNumber, driver.VehicleInfo)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
