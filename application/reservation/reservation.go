package reservation

import (
	"context"
	"sort"
	"time"

	"github.com/agrocoop/distribution/constant"
	"github.com/agrocoop/distribution/model"
	catalogrepo "github.com/agrocoop/distribution/repository/catalog"
	requestrepo "github.com/agrocoop/distribution/repository/request"
	txrepo "github.com/agrocoop/distribution/repository/tx"
	"github.com/agrocoop/distribution/thirdparty/rabbitmq"
	"github.com/agrocoop/distribution/utils/errors"
	"github.com/agrocoop/distribution/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ReservationApp is the distribution-request lifecycle engine. Creating
// a request reserves farmer inventory; cancelling it restores exactly
// what was reserved. Both run inside a single database transaction with
// the touched product rows locked, so concurrent calls over overlapping
// products serialize.
type ReservationApp interface {
	CreateRequest(ctx context.Context, req *model.CreateRequestInput) (*model.CreateRequestResponse, error)
	CancelRequest(ctx context.Context, requestID uint64) error
	UpdateRequest(ctx context.Context, requestID uint64, patch *model.UpdateRequestInput) error
}

type reservationAppImpl struct {
	txRepo      txrepo.TxRepository
	catalogRepo catalogrepo.CatalogRepository
	requestRepo requestrepo.RequestRepository
	publisher   *rabbitmq.Publisher
}

func NewReservationApp(txRepo txrepo.TxRepository, catalogRepo catalogrepo.CatalogRepository, requestRepo requestrepo.RequestRepository, publisher *rabbitmq.Publisher) ReservationApp {
	return &reservationAppImpl{txRepo: txRepo, catalogRepo: catalogRepo, requestRepo: requestRepo, publisher: publisher}
}

func (s *reservationAppImpl) CreateRequest(ctx context.Context, req *model.CreateRequestInput) (*model.CreateRequestResponse, error) {
	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrEmptyLineItems)
	}
	for _, item := range req.Items {
		if !item.Quantity.IsPositive() {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
	}
	priority := req.Priority
	if priority == "" {
		priority = constant.PriorityMedium
	}
	if !priority.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	// validate sales point before touching anything
	salesPoint, err := s.catalogRepo.GetSalesPoint(ctx, req.SalesPointID)
	if err != nil {
		logger.Error("[CreateRequest] get sales point", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if salesPoint == nil || !salesPoint.Active {
		return nil, errors.SetCustomError(constant.ErrInvalidSalesPoint)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateRequest] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrPersistence)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// lock every touched product row, ascending id order
	productIDs := uniqueSortedProductIDs(req.Items)
	products, err := s.catalogRepo.GetProductsForUpdateTx(ctx, tx, productIDs)
	if err != nil {
		logger.Error("[CreateRequest] lock products", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrPersistence)
	}

	productByID := make(map[uint64]model.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	// total needed per product; duplicate lines on one product share its stock
	needed := make(map[uint64]decimal.Decimal, len(productIDs))
	for _, item := range req.Items {
		needed[item.ProductID] = needed[item.ProductID].Add(item.Quantity)
	}

	// all-or-nothing: every line is checked before any decrement
	for _, id := range productIDs {
		product, ok := productByID[id]
		if !ok {
			logger.Info("[CreateRequest] product not found", zap.Uint64("product_id", id))
			return nil, errors.SetCustomError(constant.ErrProductNotFound)
		}
		if product.Quantity.LessThan(needed[id]) {
			logger.Info("[CreateRequest] insufficient stock",
				zap.Uint64("product_id", id),
				zap.String("need", needed[id].String()),
				zap.String("available", product.Quantity.String()))
			return nil, errors.SetCustomError(constant.ErrInsufficientStock)
		}
	}

	for _, id := range productIDs {
		product := productByID[id]
		remaining := product.Quantity.Sub(needed[id])
		if err := s.catalogRepo.UpdateProductStockTx(ctx, tx, id, remaining, remaining.IsPositive()); err != nil {
			logger.Error("[CreateRequest] update stock", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrPersistence)
		}
	}

	// assignments carry the price snapshot; total_amount is their sum
	assignments := make([]model.InsertAssignmentTxItem, 0, len(req.Items))
	total := decimal.Zero
	for _, item := range req.Items {
		product := productByID[item.ProductID]
		lineTotal := product.PricePerUnit.Mul(item.Quantity)
		assignments = append(assignments, model.InsertAssignmentTxItem{
			ProductID:        product.ID,
			FarmerID:         product.FarmerID,
			QuantityAssigned: item.Quantity,
			UnitPrice:        product.PricePerUnit,
			TotalPrice:       lineTotal,
			Status:           constant.AssignmentStatusAssigned,
		})
		total = total.Add(lineTotal)
	}

	requestID, err := s.requestRepo.InsertRequestTx(ctx, tx, &model.InsertRequestTxItem{
		SalesPointID: req.SalesPointID,
		Status:       constant.RequestStatusConfirmed,
		Priority:     priority,
		TotalAmount:  total,
		RequiredDate: req.RequiredDate,
		Notes:        req.Notes,
	})
	if err != nil {
		logger.Error("[CreateRequest] insert request", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrPersistence)
	}

	if err := s.requestRepo.InsertAssignmentsTx(ctx, tx, requestID, assignments); err != nil {
		logger.Error("[CreateRequest] insert assignments", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrPersistence)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateRequest] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrPersistence)
	}
	committed = true

	// unfulfilled requests expire at the end of their required date
	if s.publisher != nil && req.RequiredDate != nil {
		if expiresAt, perr := time.Parse(constant.DateLayout, *req.RequiredDate); perr == nil {
			msg := rabbitmq.RequestExpirationMessage{
				RequestID:    requestID,
				SalesPointID: req.SalesPointID,
				ExpiresAt:    expiresAt.Add(24 * time.Hour),
			}
			if err := s.publisher.PublishRequestExpiration(msg); err != nil {
				logger.Error("[CreateRequest] publish request expiration", zap.String("error", err.Error()))
			}
		}
	}

	return &model.CreateRequestResponse{
		RequestID:   requestID,
		Status:      constant.RequestStatusConfirmed,
		TotalAmount: total,
	}, nil
}

func (s *reservationAppImpl) CancelRequest(ctx context.Context, requestID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CancelRequest] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrPersistence)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	request, err := s.requestRepo.GetRequestTx(ctx, tx, requestID)
	if err != nil {
		logger.Error("[CancelRequest] get request", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrPersistence)
	}
	if request == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if request.Status == constant.RequestStatusCancelled {
		return errors.SetCustomError(constant.ErrAlreadyCancelled)
	}
	if request.Status != constant.RequestStatusPending && request.Status != constant.RequestStatusConfirmed {
		return errors.SetCustomError(constant.ErrInvalidStateTransition)
	}

	assignments, err := s.requestRepo.GetAssignmentsByRequestTx(ctx, tx, requestID)
	if err != nil {
		logger.Error("[CancelRequest] get assignments", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrPersistence)
	}

	// restore stock held by still-active assignments only
	restore := make(map[uint64]decimal.Decimal)
	for _, a := range assignments {
		if a.Status == constant.AssignmentStatusCancelled {
			continue
		}
		restore[a.ProductID] = restore[a.ProductID].Add(a.QuantityAssigned)
	}

	if len(restore) > 0 {
		productIDs := make([]uint64, 0, len(restore))
		for id := range restore {
			productIDs = append(productIDs, id)
		}
		sort.Slice(productIDs, func(i, j int) bool { return productIDs[i] < productIDs[j] })

		products, err := s.catalogRepo.GetProductsForUpdateTx(ctx, tx, productIDs)
		if err != nil {
			logger.Error("[CancelRequest] lock products", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrPersistence)
		}
		for _, product := range products {
			// availability is a cached "has any stock" flag, set
			// unconditionally on restore
			restored := product.Quantity.Add(restore[product.ID])
			if err := s.catalogRepo.UpdateProductStockTx(ctx, tx, product.ID, restored, true); err != nil {
				logger.Error("[CancelRequest] restore stock", zap.String("error", err.Error()))
				return errors.SetCustomError(constant.ErrPersistence)
			}
		}
	}

	if err := s.requestRepo.CancelAssignmentsByRequestTx(ctx, tx, requestID); err != nil {
		logger.Error("[CancelRequest] cancel assignments", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrPersistence)
	}

	if err := s.requestRepo.MarkRequestCancelledTx(ctx, tx, requestID); err != nil {
		logger.Error("[CancelRequest] mark cancelled", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrPersistence)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CancelRequest] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrPersistence)
	}
	committed = true
	return nil
}

func (s *reservationAppImpl) UpdateRequest(ctx context.Context, requestID uint64, patch *model.UpdateRequestInput) error {
	if patch.Priority != nil && !patch.Priority.Valid() {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateRequest] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrPersistence)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	request, err := s.requestRepo.GetRequestTx(ctx, tx, requestID)
	if err != nil {
		logger.Error("[UpdateRequest] get request", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrPersistence)
	}
	if request == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if request.Status != constant.RequestStatusPending {
		return errors.SetCustomError(constant.ErrInvalidStateTransition)
	}

	priority := request.Priority
	if patch.Priority != nil {
		priority = *patch.Priority
	}
	requiredDate := request.RequiredDate
	if patch.RequiredDate != nil {
		requiredDate = patch.RequiredDate
	}
	notes := request.Notes
	if patch.Notes != nil {
		notes = patch.Notes
	}

	if err := s.requestRepo.UpdateRequestDetailsTx(ctx, tx, requestID, priority, requiredDate, notes); err != nil {
		logger.Error("[UpdateRequest] update details", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrPersistence)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateRequest] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrPersistence)
	}
	committed = true
	return nil
}

func uniqueSortedProductIDs(items []model.RequestLineItem) []uint64 {
	seen := make(map[uint64]struct{}, len(items))
	ids := make([]uint64, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
