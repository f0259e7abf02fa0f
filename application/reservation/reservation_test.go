package reservation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	appreservation "github.com/agrocoop/distribution/application/reservation"
	"github.com/agrocoop/distribution/constant"
	catalogmocks "github.com/agrocoop/distribution/mocks/repository/catalog"
	requestmocks "github.com/agrocoop/distribution/mocks/repository/request"
	txmocks "github.com/agrocoop/distribution/mocks/repository/tx"
	"github.com/agrocoop/distribution/model"
	cerr "github.com/agrocoop/distribution/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// Note: reservation.go checks if publisher is nil before publishing the
// expiration message, so tests run with a nil publisher.

func activeSalesPoint(id uint64) *model.SalesPoint {
	return &model.SalesPoint{ID: id, Name: "Market Hall", Address: "1 Main St", Active: true}
}

func qty(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestReservationApp_CreateRequest(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		catalogRepo *catalogmocks.CatalogRepository
		requestRepo *requestmocks.RequestRepository
	}
	type args struct {
		ctx context.Context
		req *model.CreateRequestInput
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.CreateRequestResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: reserve two products",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateRequestInput{
					SalesPointID: 7,
					Items: []model.RequestLineItem{
						{ProductID: 1, Quantity: qty("10")},
						{ProductID: 2, Quantity: qty("3.5")},
					},
				},
			},
			mockCall: func(f fields) {
				f.catalogRepo.On("GetSalesPoint", mock.Anything, uint64(7)).Return(activeSalesPoint(7), nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.catalogRepo.On("GetProductsForUpdateTx", mock.Anything, tx, []uint64{1, 2}).Return([]model.Product{
					{ID: 1, FarmerID: 11, Quantity: qty("50"), PricePerUnit: qty("2.00"), Available: true},
					{ID: 2, FarmerID: 12, Quantity: qty("3.5"), PricePerUnit: qty("4.00"), Available: true},
				}, nil).Once()

				f.catalogRepo.On("UpdateProductStockTx", mock.Anything, tx, uint64(1), mock.MatchedBy(func(q decimal.Decimal) bool {
					return q.Equal(qty("40"))
				}), true).Return(nil).Once()
				// product 2 is drained to zero and flagged unavailable
				f.catalogRepo.On("UpdateProductStockTx", mock.Anything, tx, uint64(2), mock.MatchedBy(func(q decimal.Decimal) bool {
					return q.IsZero()
				}), false).Return(nil).Once()

				f.requestRepo.On("InsertRequestTx", mock.Anything, tx, mock.MatchedBy(func(req *model.InsertRequestTxItem) bool {
					return req.SalesPointID == 7 &&
						req.Status == constant.RequestStatusConfirmed &&
						req.Priority == constant.PriorityMedium &&
						req.TotalAmount.Equal(qty("34"))
				})).Return(uint64(100), nil).Once()

				f.requestRepo.On("InsertAssignmentsTx", mock.Anything, tx, uint64(100), mock.MatchedBy(func(items []model.InsertAssignmentTxItem) bool {
					if len(items) != 2 {
						return false
					}
					return items[0].FarmerID == 11 && items[0].TotalPrice.Equal(qty("20")) &&
						items[1].FarmerID == 12 && items[1].TotalPrice.Equal(qty("14"))
				})).Return(nil).Once()
			},
			want: &model.CreateRequestResponse{
				RequestID:   100,
				Status:      constant.RequestStatusConfirmed,
				TotalAmount: qty("34"),
			},
			wantErr: false,
		},
		{
			name: "success: duplicate lines on one product share its stock",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateRequestInput{
					SalesPointID: 7,
					Items: []model.RequestLineItem{
						{ProductID: 1, Quantity: qty("6")},
						{ProductID: 1, Quantity: qty("4")},
					},
				},
			},
			mockCall: func(f fields) {
				f.catalogRepo.On("GetSalesPoint", mock.Anything, uint64(7)).Return(activeSalesPoint(7), nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.catalogRepo.On("GetProductsForUpdateTx", mock.Anything, tx, []uint64{1}).Return([]model.Product{
					{ID: 1, FarmerID: 11, Quantity: qty("10"), PricePerUnit: qty("1.50"), Available: true},
				}, nil).Once()

				// 10 - (6+4) leaves nothing
				f.catalogRepo.On("UpdateProductStockTx", mock.Anything, tx, uint64(1), mock.MatchedBy(func(q decimal.Decimal) bool {
					return q.IsZero()
				}), false).Return(nil).Once()

				f.requestRepo.On("InsertRequestTx", mock.Anything, tx, mock.MatchedBy(func(req *model.InsertRequestTxItem) bool {
					return req.TotalAmount.Equal(qty("15"))
				})).Return(uint64(101), nil).Once()

				f.requestRepo.On("InsertAssignmentsTx", mock.Anything, tx, uint64(101), mock.MatchedBy(func(items []model.InsertAssignmentTxItem) bool {
					return len(items) == 2
				})).Return(nil).Once()
			},
			want: &model.CreateRequestResponse{
				RequestID:   101,
				Status:      constant.RequestStatusConfirmed,
				TotalAmount: qty("15"),
			},
			wantErr: false,
		},
		{
			name: "error: empty line items",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateRequestInput{
					SalesPointID: 7,
					Items:        []model.RequestLineItem{},
				},
			},
			mockCall: nil,
			want:     nil,
			wantErr:  true,
			errCode:  constant.ErrEmptyLineItems,
		},
		{
			name: "error: non-positive quantity",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateRequestInput{
					SalesPointID: 7,
					Items: []model.RequestLineItem{
						{ProductID: 1, Quantity: qty("0")},
					},
				},
			},
			mockCall: nil,
			want:     nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: inactive sales point",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateRequestInput{
					SalesPointID: 9,
					Items: []model.RequestLineItem{
						{ProductID: 1, Quantity: qty("1")},
					},
				},
			},
			mockCall: func(f fields) {
				f.catalogRepo.On("GetSalesPoint", mock.Anything, uint64(9)).Return(&model.SalesPoint{ID: 9, Active: false}, nil).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInvalidSalesPoint,
		},
		{
			name: "error: unknown sales point",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateRequestInput{
					SalesPointID: 99,
					Items: []model.RequestLineItem{
						{ProductID: 1, Quantity: qty("1")},
					},
				},
			},
			mockCall: func(f fields) {
				f.catalogRepo.On("GetSalesPoint", mock.Anything, uint64(99)).Return(nil, nil).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInvalidSalesPoint,
		},
		{
			name: "error: product not found rolls back without decrement",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateRequestInput{
					SalesPointID: 7,
					Items: []model.RequestLineItem{
						{ProductID: 1, Quantity: qty("1")},
						{ProductID: 2, Quantity: qty("1")},
					},
				},
			},
			mockCall: func(f fields) {
				f.catalogRepo.On("GetSalesPoint", mock.Anything, uint64(7)).Return(activeSalesPoint(7), nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				// product 2 is missing from the locked set
				f.catalogRepo.On("GetProductsForUpdateTx", mock.Anything, tx, []uint64{1, 2}).Return([]model.Product{
					{ID: 1, FarmerID: 11, Quantity: qty("5"), PricePerUnit: qty("1.00"), Available: true},
				}, nil).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrProductNotFound,
		},
		{
			name: "error: one short line fails the whole request",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateRequestInput{
					SalesPointID: 7,
					Items: []model.RequestLineItem{
						{ProductID: 1, Quantity: qty("5")},
						{ProductID: 2, Quantity: qty("20")},
					},
				},
			},
			mockCall: func(f fields) {
				f.catalogRepo.On("GetSalesPoint", mock.Anything, uint64(7)).Return(activeSalesPoint(7), nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				// both lines are checked before any decrement, so no
				// UpdateProductStockTx expectation here
				f.catalogRepo.On("GetProductsForUpdateTx", mock.Anything, tx, []uint64{1, 2}).Return([]model.Product{
					{ID: 1, FarmerID: 11, Quantity: qty("50"), PricePerUnit: qty("1.00"), Available: true},
					{ID: 2, FarmerID: 12, Quantity: qty("10"), PricePerUnit: qty("1.00"), Available: true},
				}, nil).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: BeginTx returns error",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CreateRequestInput{
					SalesPointID: 7,
					Items: []model.RequestLineItem{
						{ProductID: 1, Quantity: qty("1")},
					},
				},
			},
			mockCall: func(f fields) {
				f.catalogRepo.On("GetSalesPoint", mock.Anything, uint64(7)).Return(activeSalesPoint(7), nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrPersistence,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appreservation.NewReservationApp(tt.fields.txRepo, tt.fields.catalogRepo, tt.fields.requestRepo, nil)

			got, err := app.CreateRequest(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateRequest() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.RequestID != tt.want.RequestID {
				t.Fatalf("CreateRequest() RequestID = %v, want %v", got.RequestID, tt.want.RequestID)
			}
			if got.Status != tt.want.Status {
				t.Fatalf("CreateRequest() Status = %v, want %v", got.Status, tt.want.Status)
			}
			if !got.TotalAmount.Equal(tt.want.TotalAmount) {
				t.Fatalf("CreateRequest() TotalAmount = %v, want %v", got.TotalAmount, tt.want.TotalAmount)
			}
		})
	}
}

func TestReservationApp_CancelRequest(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		catalogRepo *catalogmocks.CatalogRepository
		requestRepo *requestmocks.RequestRepository
	}
	type args struct {
		ctx       context.Context
		requestID uint64
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: cancel confirmed request restores stock",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				requestID: 100,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.requestRepo.On("GetRequestTx", mock.Anything, tx, uint64(100)).Return(&model.DistributionRequest{
					ID:     100,
					Status: constant.RequestStatusConfirmed,
				}, nil).Once()

				f.requestRepo.On("GetAssignmentsByRequestTx", mock.Anything, tx, uint64(100)).Return([]model.Assignment{
					{ID: 1, RequestID: 100, ProductID: 1, QuantityAssigned: qty("10"), Status: constant.AssignmentStatusAssigned},
					{ID: 2, RequestID: 100, ProductID: 2, QuantityAssigned: qty("3.5"), Status: constant.AssignmentStatusAssigned},
				}, nil).Once()

				f.catalogRepo.On("GetProductsForUpdateTx", mock.Anything, tx, []uint64{1, 2}).Return([]model.Product{
					{ID: 1, Quantity: qty("40"), Available: true},
					{ID: 2, Quantity: qty("0"), Available: false},
				}, nil).Once()

				f.catalogRepo.On("UpdateProductStockTx", mock.Anything, tx, uint64(1), mock.MatchedBy(func(q decimal.Decimal) bool {
					return q.Equal(qty("50"))
				}), true).Return(nil).Once()
				f.catalogRepo.On("UpdateProductStockTx", mock.Anything, tx, uint64(2), mock.MatchedBy(func(q decimal.Decimal) bool {
					return q.Equal(qty("3.5"))
				}), true).Return(nil).Once()

				f.requestRepo.On("CancelAssignmentsByRequestTx", mock.Anything, tx, uint64(100)).Return(nil).Once()
				f.requestRepo.On("MarkRequestCancelledTx", mock.Anything, tx, uint64(100)).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "success: already cancelled assignments are not restored twice",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				requestID: 100,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.requestRepo.On("GetRequestTx", mock.Anything, tx, uint64(100)).Return(&model.DistributionRequest{
					ID:     100,
					Status: constant.RequestStatusConfirmed,
				}, nil).Once()

				f.requestRepo.On("GetAssignmentsByRequestTx", mock.Anything, tx, uint64(100)).Return([]model.Assignment{
					{ID: 1, RequestID: 100, ProductID: 1, QuantityAssigned: qty("10"), Status: constant.AssignmentStatusCancelled},
					{ID: 2, RequestID: 100, ProductID: 2, QuantityAssigned: qty("5"), Status: constant.AssignmentStatusAssigned},
				}, nil).Once()

				// only product 2 still holds stock
				f.catalogRepo.On("GetProductsForUpdateTx", mock.Anything, tx, []uint64{2}).Return([]model.Product{
					{ID: 2, Quantity: qty("1"), Available: true},
				}, nil).Once()

				f.catalogRepo.On("UpdateProductStockTx", mock.Anything, tx, uint64(2), mock.MatchedBy(func(q decimal.Decimal) bool {
					return q.Equal(qty("6"))
				}), true).Return(nil).Once()

				f.requestRepo.On("CancelAssignmentsByRequestTx", mock.Anything, tx, uint64(100)).Return(nil).Once()
				f.requestRepo.On("MarkRequestCancelledTx", mock.Anything, tx, uint64(100)).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: request not found",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				requestID: 404,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.requestRepo.On("GetRequestTx", mock.Anything, tx, uint64(404)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: cancelling twice",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				requestID: 100,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.requestRepo.On("GetRequestTx", mock.Anything, tx, uint64(100)).Return(&model.DistributionRequest{
					ID:     100,
					Status: constant.RequestStatusCancelled,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrAlreadyCancelled,
		},
		{
			name: "error: request already in transit",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				requestID: 100,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.requestRepo.On("GetRequestTx", mock.Anything, tx, uint64(100)).Return(&model.DistributionRequest{
					ID:     100,
					Status: constant.RequestStatusInTransit,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidStateTransition,
		},
		{
			name: "error: delivered request cannot be cancelled",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				requestID: 100,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.requestRepo.On("GetRequestTx", mock.Anything, tx, uint64(100)).Return(&model.DistributionRequest{
					ID:     100,
					Status: constant.RequestStatusDelivered,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidStateTransition,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appreservation.NewReservationApp(tt.fields.txRepo, tt.fields.catalogRepo, tt.fields.requestRepo, nil)

			err := app.CancelRequest(tt.args.ctx, tt.args.requestID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CancelRequest() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestReservationApp_UpdateRequest(t *testing.T) {
	highPriority := constant.PriorityHigh
	badPriority := constant.RequestPriority("urgent-ish")
	newNotes := "leave at the back gate"

	type fields struct {
		txRepo      *txmocks.TxRepository
		catalogRepo *catalogmocks.CatalogRepository
		requestRepo *requestmocks.RequestRepository
	}
	type args struct {
		ctx       context.Context
		requestID uint64
		patch     *model.UpdateRequestInput
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: patch priority and notes on pending request",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				requestID: 100,
				patch: &model.UpdateRequestInput{
					Priority: &highPriority,
					Notes:    &newNotes,
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.requestRepo.On("GetRequestTx", mock.Anything, tx, uint64(100)).Return(&model.DistributionRequest{
					ID:       100,
					Status:   constant.RequestStatusPending,
					Priority: constant.PriorityMedium,
				}, nil).Once()

				f.requestRepo.On("UpdateRequestDetailsTx", mock.Anything, tx, uint64(100), constant.PriorityHigh, (*string)(nil), &newNotes).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: unknown priority value",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				requestID: 100,
				patch: &model.UpdateRequestInput{
					Priority: &badPriority,
				},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: confirmed request is no longer editable",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				requestID: 100,
				patch: &model.UpdateRequestInput{
					Notes: &newNotes,
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.requestRepo.On("GetRequestTx", mock.Anything, tx, uint64(100)).Return(&model.DistributionRequest{
					ID:     100,
					Status: constant.RequestStatusConfirmed,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidStateTransition,
		},
		{
			name: "error: request not found",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
				requestRepo: requestmocks.NewRequestRepository(t),
			},
			args: args{
				ctx:       context.Background(),
				requestID: 404,
				patch:     &model.UpdateRequestInput{},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.requestRepo.On("GetRequestTx", mock.Anything, tx, uint64(404)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appreservation.NewReservationApp(tt.fields.txRepo, tt.fields.catalogRepo, tt.fields.requestRepo, nil)

			err := app.UpdateRequest(tt.args.ctx, tt.args.requestID, tt.args.patch)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateRequest() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}
