package fulfillment

import (
	"context"
	"time"

	"github.com/agrocoop/distribution/constant"
	"github.com/agrocoop/distribution/model"
	catalogrepo "github.com/agrocoop/distribution/repository/catalog"
	deliveryrepo "github.com/agrocoop/distribution/repository/delivery"
	requestrepo "github.com/agrocoop/distribution/repository/request"
	txrepo "github.com/agrocoop/distribution/repository/tx"
	"github.com/agrocoop/distribution/utils/errors"
	"github.com/agrocoop/distribution/utils/logger"
	"go.uber.org/zap"
)

// FulfillmentApp moves confirmed requests through delivery. Scheduling
// binds a driver and advances the request to in_transit; status updates
// cascade terminal outcomes back onto the request and its assignments.
type FulfillmentApp interface {
	ScheduleDelivery(ctx context.Context, req *model.ScheduleDeliveryInput) (*model.ScheduleDeliveryResponse, error)
	UpdateDeliveryStatus(ctx context.Context, deliveryID uint64, req *model.UpdateDeliveryStatusInput) error
}

type fulfillmentAppImpl struct {
	txRepo       txrepo.TxRepository
	catalogRepo  catalogrepo.CatalogRepository
	requestRepo  requestrepo.RequestRepository
	deliveryRepo deliveryrepo.DeliveryRepository
}

func NewFulfillmentApp(txRepo txrepo.TxRepository, catalogRepo catalogrepo.CatalogRepository, requestRepo requestrepo.RequestRepository, deliveryRepo deliveryrepo.DeliveryRepository) FulfillmentApp {
	return &fulfillmentAppImpl{txRepo: txRepo, catalogRepo: catalogRepo, requestRepo: requestRepo, deliveryRepo: deliveryRepo}
}

func (s *fulfillmentAppImpl) ScheduleDelivery(ctx context.Context, req *model.ScheduleDeliveryInput) (*model.ScheduleDeliveryResponse, error) {
	driver, err := s.catalogRepo.GetDriver(ctx, req.DriverID)
	if err != nil {
		logger.Error("[ScheduleDelivery] get driver", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if driver == nil || !driver.Active {
		return nil, errors.SetCustomError(constant.ErrDriverNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ScheduleDelivery] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrPersistence)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	request, err := s.requestRepo.GetRequestTx(ctx, tx, req.RequestID)
	if err != nil {
		logger.Error("[ScheduleDelivery] get request", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrPersistence)
	}
	if request == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if request.Status != constant.RequestStatusConfirmed {
		return nil, errors.SetCustomError(constant.ErrRequestNotConfirmed)
	}

	existing, err := s.deliveryRepo.GetActiveDeliveryByRequestTx(ctx, tx, req.RequestID)
	if err != nil {
		logger.Error("[ScheduleDelivery] get active delivery", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrPersistence)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrDeliveryAlreadyExists)
	}

	address := req.DeliveryAddress
	if address == "" {
		// default to the sales point address, as the desktop tool did
		salesPoint, err := s.catalogRepo.GetSalesPoint(ctx, request.SalesPointID)
		if err != nil {
			logger.Error("[ScheduleDelivery] get sales point", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrPersistence)
		}
		if salesPoint != nil {
			address = salesPoint.Address
		}
	}

	deliveryID, err := s.deliveryRepo.InsertDeliveryTx(ctx, tx, &model.InsertDeliveryTxItem{
		RequestID:           req.RequestID,
		DriverID:            req.DriverID,
		ScheduledDate:       req.ScheduledDate,
		DeliveryAddress:     address,
		EstimatedTime:       req.EstimatedTime,
		SpecialInstructions: req.SpecialInstructions,
		Status:              constant.DeliveryStatusScheduled,
	})
	if err != nil {
		logger.Error("[ScheduleDelivery] insert delivery", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrPersistence)
	}

	if err := s.requestRepo.UpdateRequestStatusTx(ctx, tx, req.RequestID, constant.RequestStatusInTransit); err != nil {
		logger.Error("[ScheduleDelivery] update request status", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrPersistence)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ScheduleDelivery] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrPersistence)
	}
	committed = true

	return &model.ScheduleDeliveryResponse{
		DeliveryID: deliveryID,
		Status:     constant.DeliveryStatusScheduled,
	}, nil
}

func (s *fulfillmentAppImpl) UpdateDeliveryStatus(ctx context.Context, deliveryID uint64, req *model.UpdateDeliveryStatusInput) error {
	if !req.Status.Valid() {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	// peek at the delivery without locking to learn its request id, so
	// the request row can be locked first (same order as scheduling)
	peek, err := s.deliveryRepo.GetDelivery(ctx, deliveryID)
	if err != nil {
		logger.Error("[UpdateDeliveryStatus] get delivery", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if peek == nil {
		return errors.SetCustomError(constant.ErrDeliveryNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateDeliveryStatus] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrPersistence)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	request, err := s.requestRepo.GetRequestTx(ctx, tx, peek.RequestID)
	if err != nil {
		logger.Error("[UpdateDeliveryStatus] get request", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrPersistence)
	}

	delivery, err := s.deliveryRepo.GetDeliveryTx(ctx, tx, deliveryID)
	if err != nil {
		logger.Error("[UpdateDeliveryStatus] lock delivery", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrPersistence)
	}
	if delivery == nil {
		return errors.SetCustomError(constant.ErrDeliveryNotFound)
	}

	if !delivery.Status.CanTransitionTo(req.Status) {
		return errors.SetCustomError(constant.ErrInvalidStateTransition)
	}

	var deliveredDate *time.Time
	if req.Status == constant.DeliveryStatusDelivered {
		now := time.Now()
		deliveredDate = &now
	}

	if err := s.deliveryRepo.UpdateDeliveryStatusTx(ctx, tx, deliveryID, req.Status, deliveredDate, req.Notes); err != nil {
		logger.Error("[UpdateDeliveryStatus] update delivery", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrPersistence)
	}

	// terminal delivery outcomes cascade onto the owning request
	switch req.Status {
	case constant.DeliveryStatusDelivered:
		if request != nil && request.Status != constant.RequestStatusDelivered {
			if err := s.requestRepo.UpdateRequestStatusTx(ctx, tx, delivery.RequestID, constant.RequestStatusDelivered); err != nil {
				logger.Error("[UpdateDeliveryStatus] cascade delivered", zap.String("error", err.Error()))
				return errors.SetCustomError(constant.ErrPersistence)
			}
			if err := s.requestRepo.UpdateAssignmentStatusByRequestTx(ctx, tx, delivery.RequestID, constant.AssignmentStatusAssigned, constant.AssignmentStatusDelivered); err != nil {
				logger.Error("[UpdateDeliveryStatus] cascade assignments", zap.String("error", err.Error()))
				return errors.SetCustomError(constant.ErrPersistence)
			}
		}
	case constant.DeliveryStatusCancelled:
		// delivery-stage cancellation is a business decision taken after
		// goods left the farm: the request closes as cancelled but the
		// inventory is NOT restored. Assignments keep holding their
		// stock on the books.
		if request != nil && request.Status != constant.RequestStatusCancelled {
			if err := s.requestRepo.MarkRequestCancelledTx(ctx, tx, delivery.RequestID); err != nil {
				logger.Error("[UpdateDeliveryStatus] cascade cancelled", zap.String("error", err.Error()))
				return errors.SetCustomError(constant.ErrPersistence)
			}
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateDeliveryStatus] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrPersistence)
	}
	committed = true
	return nil
}
