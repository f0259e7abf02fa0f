package coordinator

import (
	"context"
	"database/sql"

	"github.com/agrocoop/distribution/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type CoordinatorRepository interface {
	Create(ctx context.Context, req *model.CoordinatorEntity) (*model.CoordinatorEntity, error)
	Get(ctx context.Context, filter *model.CoordinatorFilter) (*model.CoordinatorEntity, error)
}

func NewCoordinatorRepository(conn *sqlx.DB) CoordinatorRepository {
	return &SQL{conn: conn}
}

const (
	insertCoordinatorQuery = `INSERT INTO coordinator (name, email, phone, password_hash, created_at) VALUES (?, ?, ?, ?, NOW())`
	getCoordinatorBase     = `SELECT id, name, email, phone, password_hash, created_at, updated_at FROM coordinator WHERE true`
)

func (s *SQL) Create(ctx context.Context, data *model.CoordinatorEntity) (*model.CoordinatorEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertCoordinatorQuery, data.Name, data.Email, data.Phone, data.PasswordHash)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.CoordinatorFilter) (*model.CoordinatorEntity, error) {
	query := getCoordinatorBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.Phone != "" {
		query += " AND phone = ?"
		args = append(args, filter.Phone)
	}

	var entity model.CoordinatorEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
