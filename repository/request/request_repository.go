package request

import (
	"context"
	"database/sql"

	"github.com/agrocoop/distribution/constant"
	"github.com/agrocoop/distribution/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type RequestRepository interface {
	InsertRequestTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertRequestTxItem) (uint64, error)
	InsertAssignmentsTx(ctx context.Context, tx *sqlx.Tx, requestID uint64, items []model.InsertAssignmentTxItem) error
	GetRequestTx(ctx context.Context, tx *sqlx.Tx, requestID uint64) (*model.DistributionRequest, error)
	GetRequest(ctx context.Context, requestID uint64) (*model.DistributionRequest, error)
	GetAssignmentsByRequestTx(ctx context.Context, tx *sqlx.Tx, requestID uint64) ([]model.Assignment, error)
	UpdateRequestStatusTx(ctx context.Context, tx *sqlx.Tx, requestID uint64, status constant.RequestStatus) error
	MarkRequestCancelledTx(ctx context.Context, tx *sqlx.Tx, requestID uint64) error
	CancelAssignmentsByRequestTx(ctx context.Context, tx *sqlx.Tx, requestID uint64) error
	UpdateAssignmentStatusByRequestTx(ctx context.Context, tx *sqlx.Tx, requestID uint64, from, to constant.AssignmentStatus) error
	UpdateRequestDetailsTx(ctx context.Context, tx *sqlx.Tx, requestID uint64, priority constant.RequestPriority, requiredDate, notes *string) error
	ListRequestsWithDetails(ctx context.Context, status *constant.RequestStatus) ([]model.RequestWithDetails, error)
	ListAssignmentsWithDetails(ctx context.Context, status *constant.AssignmentStatus) ([]model.AssignmentWithDetails, error)
	CountOpenRequests(ctx context.Context) (int64, error)
}

func NewRequestRepository(conn *sqlx.DB) RequestRepository {
	return &SQL{conn: conn}
}

const (
	requestColumns = "id, sales_point_id, status, priority, total_amount, required_date, notes, created_date, status_updated_date, cancelled_date"

	listRequestsBase = `SELECT r.id, r.sales_point_id, r.status, r.priority, r.total_amount, r.required_date, r.notes, r.created_date, r.status_updated_date, r.cancelled_date, sp.name as sales_point_name
FROM distribution_request r
JOIN sales_point sp ON r.sales_point_id = sp.id`

	listLineDetailsQuery = `SELECT a.id as assignment_id, a.product_id, p.name as product_name, p.unit, a.farmer_id, f.name as farmer_name, a.quantity_assigned, a.unit_price, a.total_price, a.status
FROM distribution_assignment a
JOIN product p ON a.product_id = p.id
JOIN farmer f ON a.farmer_id = f.id
WHERE a.request_id = ?
ORDER BY a.id`

	listAssignmentsBase = `SELECT a.id, a.request_id, a.product_id, a.farmer_id, a.quantity_assigned, a.unit_price, a.total_price, a.status, a.created_date, p.name as product_name, p.unit, f.name as farmer_name, sp.name as sales_point_name
FROM distribution_assignment a
JOIN product p ON a.product_id = p.id
JOIN farmer f ON a.farmer_id = f.id
JOIN distribution_request r ON a.request_id = r.id
JOIN sales_point sp ON r.sales_point_id = sp.id`
)

func (s *SQL) InsertRequestTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertRequestTxItem) (uint64, error) {
	res, err := tx.ExecContext(ctx, "INSERT INTO distribution_request (sales_point_id, status, priority, total_amount, required_date, notes, created_date, status_updated_date) VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())",
		req.SalesPointID, req.Status, req.Priority, req.TotalAmount, req.RequiredDate, req.Notes)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) InsertAssignmentsTx(ctx context.Context, tx *sqlx.Tx, requestID uint64, items []model.InsertAssignmentTxItem) error {
	q := "INSERT INTO distribution_assignment (request_id, product_id, farmer_id, quantity_assigned, unit_price, total_price, status, created_date) VALUES (?, ?, ?, ?, ?, ?, ?, NOW())"
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, q, requestID, it.ProductID, it.FarmerID, it.QuantityAssigned, it.UnitPrice, it.TotalPrice, it.Status); err != nil {
			return err
		}
	}
	return nil
}

// GetRequestTx locks the request row for the rest of the transaction so
// cancellation, edits and delivery scheduling on the same request are
// mutually exclusive.
func (s *SQL) GetRequestTx(ctx context.Context, tx *sqlx.Tx, requestID uint64) (*model.DistributionRequest, error) {
	var req model.DistributionRequest
	row := tx.QueryRowxContext(ctx, "SELECT "+requestColumns+" FROM distribution_request WHERE id = ? FOR UPDATE", requestID)
	if err := row.StructScan(&req); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (s *SQL) GetRequest(ctx context.Context, requestID uint64) (*model.DistributionRequest, error) {
	var req model.DistributionRequest
	row := s.conn.QueryRowxContext(ctx, "SELECT "+requestColumns+" FROM distribution_request WHERE id = ?", requestID)
	if err := row.StructScan(&req); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (s *SQL) GetAssignmentsByRequestTx(ctx context.Context, tx *sqlx.Tx, requestID uint64) ([]model.Assignment, error) {
	rows, err := tx.QueryxContext(ctx, "SELECT id, request_id, product_id, farmer_id, quantity_assigned, unit_price, total_price, status, created_date FROM distribution_assignment WHERE request_id = ? ORDER BY id FOR UPDATE", requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]model.Assignment, 0)
	for rows.Next() {
		var a model.Assignment
		if err := rows.StructScan(&a); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (s *SQL) UpdateRequestStatusTx(ctx context.Context, tx *sqlx.Tx, requestID uint64, status constant.RequestStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE distribution_request SET status = ?, status_updated_date = NOW() WHERE id = ?", status, requestID)
	return err
}

func (s *SQL) MarkRequestCancelledTx(ctx context.Context, tx *sqlx.Tx, requestID uint64) error {
	_, err := tx.ExecContext(ctx, "UPDATE distribution_request SET status = ?, status_updated_date = NOW(), cancelled_date = NOW() WHERE id = ?", constant.RequestStatusCancelled, requestID)
	return err
}

// CancelAssignmentsByRequestTx flips every assignment of the request
// that is not already cancelled. Already-cancelled rows stay untouched
// so inventory is never restored twice.
func (s *SQL) CancelAssignmentsByRequestTx(ctx context.Context, tx *sqlx.Tx, requestID uint64) error {
	_, err := tx.ExecContext(ctx, "UPDATE distribution_assignment SET status = ? WHERE request_id = ? AND status <> ?",
		constant.AssignmentStatusCancelled, requestID, constant.AssignmentStatusCancelled)
	return err
}

func (s *SQL) UpdateAssignmentStatusByRequestTx(ctx context.Context, tx *sqlx.Tx, requestID uint64, from, to constant.AssignmentStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE distribution_assignment SET status = ? WHERE request_id = ? AND status = ?", to, requestID, from)
	return err
}

func (s *SQL) UpdateRequestDetailsTx(ctx context.Context, tx *sqlx.Tx, requestID uint64, priority constant.RequestPriority, requiredDate, notes *string) error {
	_, err := tx.ExecContext(ctx, "UPDATE distribution_request SET priority = ?, required_date = ?, notes = ? WHERE id = ?",
		priority, requiredDate, notes, requestID)
	return err
}

func (s *SQL) ListRequestsWithDetails(ctx context.Context, status *constant.RequestStatus) ([]model.RequestWithDetails, error) {
	query := listRequestsBase
	args := make([]any, 0, 1)
	if status != nil {
		query += " WHERE r.status = ?"
		args = append(args, *status)
	}
	query += " ORDER BY r.created_date DESC"

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]model.RequestWithDetails, 0)
	for rows.Next() {
		var r model.RequestWithDetails
		if err := rows.StructScan(&r); err != nil {
			return nil, err
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range requests {
		items, err := s.listLineDetails(ctx, requests[i].ID)
		if err != nil {
			return nil, err
		}
		requests[i].Items = items
	}
	return requests, nil
}

func (s *SQL) listLineDetails(ctx context.Context, requestID uint64) ([]model.RequestLineDetail, error) {
	rows, err := s.conn.QueryxContext(ctx, listLineDetailsQuery, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.RequestLineDetail, 0)
	for rows.Next() {
		var it model.RequestLineDetail
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) ListAssignmentsWithDetails(ctx context.Context, status *constant.AssignmentStatus) ([]model.AssignmentWithDetails, error) {
	query := listAssignmentsBase
	args := make([]any, 0, 1)
	if status != nil {
		query += " WHERE a.status = ?"
		args = append(args, *status)
	}
	query += " ORDER BY a.created_date DESC"

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]model.AssignmentWithDetails, 0)
	for rows.Next() {
		var a model.AssignmentWithDetails
		if err := rows.StructScan(&a); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (s *SQL) CountOpenRequests(ctx context.Context) (int64, error) {
	var count int64
	err := s.conn.GetContext(ctx, &count, "SELECT COUNT(*) FROM distribution_request WHERE status IN (?, ?)",
		constant.RequestStatusPending, constant.RequestStatusConfirmed)
	return count, err
}
