package delivery

import (
	"context"
	"database/sql"
	"time"

	"github.com/agrocoop/distribution/constant"
	"github.com/agrocoop/distribution/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type DeliveryRepository interface {
	InsertDeliveryTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertDeliveryTxItem) (uint64, error)
	GetDelivery(ctx context.Context, deliveryID uint64) (*model.Delivery, error)
	GetDeliveryTx(ctx context.Context, tx *sqlx.Tx, deliveryID uint64) (*model.Delivery, error)
	GetActiveDeliveryByRequestTx(ctx context.Context, tx *sqlx.Tx, requestID uint64) (*model.Delivery, error)
	UpdateDeliveryStatusTx(ctx context.Context, tx *sqlx.Tx, deliveryID uint64, status constant.DeliveryStatus, deliveredDate *time.Time, notes *string) error
	ListDeliveriesWithDetails(ctx context.Context, status *constant.DeliveryStatus) ([]model.DeliveryWithDetails, error)
}

func NewDeliveryRepository(conn *sqlx.DB) DeliveryRepository {
	return &SQL{conn: conn}
}

const (
	deliveryColumns = "id, request_id, driver_id, scheduled_date, delivery_address, estimated_time, special_instructions, status, delivered_date, notes, created_date, status_updated_date"

	listDeliveriesBase = `SELECT d.id, d.request_id, d.driver_id, d.scheduled_date, d.delivery_address, d.estimated_time, d.special_instructions, d.status, d.delivered_date, d.notes, d.created_date, d.status_updated_date, dr.name as driver_name, sp.name as sales_point_name, sp.address as sales_point_address, r.status as request_status
FROM delivery d
JOIN driver dr ON d.driver_id = dr.id
JOIN distribution_request r ON d.request_id = r.id
JOIN sales_point sp ON r.sales_point_id = sp.id`
)

func (s *SQL) InsertDeliveryTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertDeliveryTxItem) (uint64, error) {
	res, err := tx.ExecContext(ctx, "INSERT INTO delivery (request_id, driver_id, scheduled_date, delivery_address, estimated_time, special_instructions, status, created_date, status_updated_date) VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())",
		req.RequestID, req.DriverID, req.ScheduledDate, req.DeliveryAddress, req.EstimatedTime, req.SpecialInstructions, req.Status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) GetDelivery(ctx context.Context, deliveryID uint64) (*model.Delivery, error) {
	var d model.Delivery
	row := s.conn.QueryRowxContext(ctx, "SELECT "+deliveryColumns+" FROM delivery WHERE id = ?", deliveryID)
	if err := row.StructScan(&d); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (s *SQL) GetDeliveryTx(ctx context.Context, tx *sqlx.Tx, deliveryID uint64) (*model.Delivery, error) {
	var d model.Delivery
	row := tx.QueryRowxContext(ctx, "SELECT "+deliveryColumns+" FROM delivery WHERE id = ? FOR UPDATE", deliveryID)
	if err := row.StructScan(&d); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// GetActiveDeliveryByRequestTx returns the request's non-cancelled
// delivery, if any, locking it for the rest of the transaction.
func (s *SQL) GetActiveDeliveryByRequestTx(ctx context.Context, tx *sqlx.Tx, requestID uint64) (*model.Delivery, error) {
	var d model.Delivery
	row := tx.QueryRowxContext(ctx, "SELECT "+deliveryColumns+" FROM delivery WHERE request_id = ? AND status <> ? LIMIT 1 FOR UPDATE",
		requestID, constant.DeliveryStatusCancelled)
	if err := row.StructScan(&d); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (s *SQL) UpdateDeliveryStatusTx(ctx context.Context, tx *sqlx.Tx, deliveryID uint64, status constant.DeliveryStatus, deliveredDate *time.Time, notes *string) error {
	if notes != nil {
		_, err := tx.ExecContext(ctx, "UPDATE delivery SET status = ?, delivered_date = ?, notes = ?, status_updated_date = NOW() WHERE id = ?",
			status, deliveredDate, notes, deliveryID)
		return err
	}
	_, err := tx.ExecContext(ctx, "UPDATE delivery SET status = ?, delivered_date = ?, status_updated_date = NOW() WHERE id = ?",
		status, deliveredDate, deliveryID)
	return err
}

func (s *SQL) ListDeliveriesWithDetails(ctx context.Context, status *constant.DeliveryStatus) ([]model.DeliveryWithDetails, error) {
	query := listDeliveriesBase
	args := make([]any, 0, 1)
	if status != nil {
		query += " WHERE d.status = ?"
		args = append(args, *status)
	}
	query += " ORDER BY d.scheduled_date, d.created_date"

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]model.DeliveryWithDetails, 0)
	for rows.Next() {
		var d model.DeliveryWithDetails
		if err := rows.StructScan(&d); err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, rows.Err()
}
