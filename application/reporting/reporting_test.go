package reporting_test

import (
	"context"
	"errors"
	"testing"

	appreporting "github.com/agrocoop/distribution/application/reporting"
	"github.com/agrocoop/distribution/constant"
	catalogmocks "github.com/agrocoop/distribution/mocks/repository/catalog"
	deliverymocks "github.com/agrocoop/distribution/mocks/repository/delivery"
	redismocks "github.com/agrocoop/distribution/mocks/repository/redis"
	requestmocks "github.com/agrocoop/distribution/mocks/repository/request"
	"github.com/agrocoop/distribution/model"
	cerr "github.com/agrocoop/distribution/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestReportingApp_GetDashboardStats(t *testing.T) {
	type fields struct {
		catalogRepo  *catalogmocks.CatalogRepository
		requestRepo  *requestmocks.RequestRepository
		deliveryRepo *deliverymocks.DeliveryRepository
		redisRepo    *redismocks.Repository
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		want     *model.DashboardStats
		wantErr  bool
	}{
		{
			name: "success: cache hit skips the database",
			fields: fields{
				catalogRepo:  catalogmocks.NewCatalogRepository(t),
				requestRepo:  requestmocks.NewRequestRepository(t),
				deliveryRepo: deliverymocks.NewDeliveryRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, "dashboard:stats").Return(
					`{"total_farmers":4,"total_products":12,"total_sales_points":3,"expiring_soon":1,"open_requests":5}`, nil).Once()
			},
			want: &model.DashboardStats{
				CatalogStats: model.CatalogStats{
					TotalFarmers:     4,
					TotalProducts:    12,
					TotalSalesPoints: 3,
					ExpiringSoon:     1,
				},
				OpenRequests: 5,
			},
			wantErr: false,
		},
		{
			name: "success: cache miss aggregates and refills the cache",
			fields: fields{
				catalogRepo:  catalogmocks.NewCatalogRepository(t),
				requestRepo:  requestmocks.NewRequestRepository(t),
				deliveryRepo: deliverymocks.NewDeliveryRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, "dashboard:stats").Return("", errors.New("redis: nil")).Once()

				f.catalogRepo.On("GetCatalogStats", mock.Anything).Return(&model.CatalogStats{
					TotalFarmers:     2,
					TotalProducts:    8,
					TotalSalesPoints: 1,
					ExpiringSoon:     0,
				}, nil).Once()
				f.requestRepo.On("CountOpenRequests", mock.Anything).Return(int64(3), nil).Once()

				f.redisRepo.On("SetWithTTL", mock.Anything, "dashboard:stats", mock.Anything, mock.Anything).Return(nil).Once()
			},
			want: &model.DashboardStats{
				CatalogStats: model.CatalogStats{
					TotalFarmers:     2,
					TotalProducts:    8,
					TotalSalesPoints: 1,
					ExpiringSoon:     0,
				},
				OpenRequests: 3,
			},
			wantErr: false,
		},
		{
			name: "success: cache set failure is not fatal",
			fields: fields{
				catalogRepo:  catalogmocks.NewCatalogRepository(t),
				requestRepo:  requestmocks.NewRequestRepository(t),
				deliveryRepo: deliverymocks.NewDeliveryRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, "dashboard:stats").Return("", errors.New("redis: nil")).Once()

				f.catalogRepo.On("GetCatalogStats", mock.Anything).Return(&model.CatalogStats{TotalFarmers: 1}, nil).Once()
				f.requestRepo.On("CountOpenRequests", mock.Anything).Return(int64(0), nil).Once()

				f.redisRepo.On("SetWithTTL", mock.Anything, "dashboard:stats", mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()
			},
			want: &model.DashboardStats{
				CatalogStats: model.CatalogStats{TotalFarmers: 1},
				OpenRequests: 0,
			},
			wantErr: false,
		},
		{
			name: "error: database failure on cache miss",
			fields: fields{
				catalogRepo:  catalogmocks.NewCatalogRepository(t),
				requestRepo:  requestmocks.NewRequestRepository(t),
				deliveryRepo: deliverymocks.NewDeliveryRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			mockCall: func(f fields) {
				f.redisRepo.On("Get", mock.Anything, "dashboard:stats").Return("", errors.New("redis: nil")).Once()
				f.catalogRepo.On("GetCatalogStats", mock.Anything).Return(nil, errors.New("db error")).Once()
			},
			want:    nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appreporting.NewReportingApp(tt.fields.catalogRepo, tt.fields.requestRepo, tt.fields.deliveryRepo, tt.fields.redisRepo)

			got, err := app.GetDashboardStats(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetDashboardStats() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if got.TotalFarmers != tt.want.TotalFarmers ||
				got.TotalProducts != tt.want.TotalProducts ||
				got.TotalSalesPoints != tt.want.TotalSalesPoints ||
				got.ExpiringSoon != tt.want.ExpiringSoon ||
				got.OpenRequests != tt.want.OpenRequests {
				t.Fatalf("GetDashboardStats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReportingApp_GetRequestsWithDetails(t *testing.T) {
	t.Run("error: unknown status filter", func(t *testing.T) {
		app := appreporting.NewReportingApp(
			catalogmocks.NewCatalogRepository(t),
			requestmocks.NewRequestRepository(t),
			deliverymocks.NewDeliveryRepository(t),
			redismocks.NewRepository(t),
		)

		bad := constant.RequestStatus("archived")
		_, err := app.GetRequestsWithDetails(context.Background(), &bad)
		if err == nil {
			t.Fatal("expected error for unknown status")
		}
		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInvalidRequest] {
			t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrInvalidRequest])
		}
	})

	t.Run("success: status filter is passed through", func(t *testing.T) {
		requestRepo := requestmocks.NewRequestRepository(t)
		app := appreporting.NewReportingApp(
			catalogmocks.NewCatalogRepository(t),
			requestRepo,
			deliverymocks.NewDeliveryRepository(t),
			redismocks.NewRepository(t),
		)

		confirmed := constant.RequestStatusConfirmed
		requestRepo.On("ListRequestsWithDetails", mock.Anything, &confirmed).Return([]model.RequestWithDetails{
			{DistributionRequest: model.DistributionRequest{ID: 100, Status: confirmed}, SalesPointName: "Market Hall"},
		}, nil).Once()

		got, err := app.GetRequestsWithDetails(context.Background(), &confirmed)
		if err != nil {
			t.Fatalf("GetRequestsWithDetails() error = %v", err)
		}
		if len(got) != 1 || got[0].ID != 100 || got[0].SalesPointName != "Market Hall" {
			t.Fatalf("GetRequestsWithDetails() = %+v", got)
		}
	})
}
