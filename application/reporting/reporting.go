package reporting

import (
	"context"
	"encoding/json"
	"time"

	"github.com/agrocoop/distribution/constant"
	"github.com/agrocoop/distribution/model"
	catalogrepo "github.com/agrocoop/distribution/repository/catalog"
	deliveryrepo "github.com/agrocoop/distribution/repository/delivery"
	redisrepo "github.com/agrocoop/distribution/repository/redis"
	requestrepo "github.com/agrocoop/distribution/repository/request"
	"github.com/agrocoop/distribution/utils/errors"
	"github.com/agrocoop/distribution/utils/logger"
	"go.uber.org/zap"
)

const (
	dashboardCacheKey = "dashboard:stats"
	dashboardCacheTTL = time.Minute
)

// ReportingApp serves the read-side views: listings joined with display
// names and the dashboard counters. No consistency guarantees beyond
// the latest committed state.
type ReportingApp interface {
	GetRequestsWithDetails(ctx context.Context, status *constant.RequestStatus) ([]model.RequestWithDetails, error)
	GetAssignmentsWithDetails(ctx context.Context, status *constant.AssignmentStatus) ([]model.AssignmentWithDetails, error)
	GetDeliveriesWithDetails(ctx context.Context, status *constant.DeliveryStatus) ([]model.DeliveryWithDetails, error)
	ListProducts(ctx context.Context, filter *model.ProductFilter) ([]model.ProductListItem, error)
	GetDashboardStats(ctx context.Context) (*model.DashboardStats, error)
}

type reportingAppImpl struct {
	catalogRepo  catalogrepo.CatalogRepository
	requestRepo  requestrepo.RequestRepository
	deliveryRepo deliveryrepo.DeliveryRepository
	redisRepo    redisrepo.Repository
}

func NewReportingApp(catalogRepo catalogrepo.CatalogRepository, requestRepo requestrepo.RequestRepository, deliveryRepo deliveryrepo.DeliveryRepository, redisRepo redisrepo.Repository) ReportingApp {
	return &reportingAppImpl{catalogRepo: catalogRepo, requestRepo: requestRepo, deliveryRepo: deliveryRepo, redisRepo: redisRepo}
}

func (s *reportingAppImpl) GetRequestsWithDetails(ctx context.Context, status *constant.RequestStatus) ([]model.RequestWithDetails, error) {
	if status != nil && !status.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	requests, err := s.requestRepo.ListRequestsWithDetails(ctx, status)
	if err != nil {
		logger.Error("[GetRequestsWithDetails] list requests", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return requests, nil
}

func (s *reportingAppImpl) GetAssignmentsWithDetails(ctx context.Context, status *constant.AssignmentStatus) ([]model.AssignmentWithDetails, error) {
	assignments, err := s.requestRepo.ListAssignmentsWithDetails(ctx, status)
	if err != nil {
		logger.Error("[GetAssignmentsWithDetails] list assignments", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return assignments, nil
}

func (s *reportingAppImpl) GetDeliveriesWithDetails(ctx context.Context, status *constant.DeliveryStatus) ([]model.DeliveryWithDetails, error) {
	if status != nil && !status.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	deliveries, err := s.deliveryRepo.ListDeliveriesWithDetails(ctx, status)
	if err != nil {
		logger.Error("[GetDeliveriesWithDetails] list deliveries", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return deliveries, nil
}

func (s *reportingAppImpl) ListProducts(ctx context.Context, filter *model.ProductFilter) ([]model.ProductListItem, error) {
	items, err := s.catalogRepo.ListProducts(ctx, filter)
	if err != nil {
		logger.Error("[ListProducts] list products", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

// GetDashboardStats aggregates the dashboard counters, cached for a
// short TTL. Any cache failure falls through to the database.
func (s *reportingAppImpl) GetDashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	if cached, err := s.redisRepo.Get(ctx, dashboardCacheKey); err == nil && cached != "" {
		var stats model.DashboardStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	catalogStats, err := s.catalogRepo.GetCatalogStats(ctx)
	if err != nil {
		logger.Error("[GetDashboardStats] catalog stats", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	openRequests, err := s.requestRepo.CountOpenRequests(ctx)
	if err != nil {
		logger.Error("[GetDashboardStats] count open requests", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	stats := &model.DashboardStats{
		CatalogStats: *catalogStats,
		OpenRequests: openRequests,
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, dashboardCacheKey, string(payload), dashboardCacheTTL); err != nil {
			logger.Warn("[GetDashboardStats] cache set", zap.String("error", err.Error()))
		}
	}

	return stats, nil
}
