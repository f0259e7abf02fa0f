package model

// CatalogStats are the catalog-side dashboard counters
type CatalogStats struct {
	TotalFarmers     int64 `db:"total_farmers" json:"total_farmers"`
	TotalProducts    int64 `db:"total_products" json:"total_products"`
	TotalSalesPoints int64 `db:"total_sales_points" json:"total_sales_points"`
	ExpiringSoon     int64 `db:"expiring_soon" json:"expiring_soon"`
}

// DashboardStats is the aggregate view served to the dashboard
type DashboardStats struct {
	CatalogStats
	OpenRequests int64 `json:"open_requests"`
}
