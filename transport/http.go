package transport

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	coordinatorapp "github.com/agrocoop/distribution/application/coordinator"
	fulfillmentapp "github.com/agrocoop/distribution/application/fulfillment"
	reportingapp "github.com/agrocoop/distribution/application/reporting"
	reservationapp "github.com/agrocoop/distribution/application/reservation"
	"github.com/agrocoop/distribution/constant"
	"github.com/agrocoop/distribution/model"
	utilsContext "github.com/agrocoop/distribution/utils/context"
	"github.com/agrocoop/distribution/utils/errors"
	"github.com/agrocoop/distribution/utils/logger"
	validatorx "github.com/agrocoop/distribution/utils/validator"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type RestHandler struct {
	CoordinatorApp coordinatorapp.CoordinatorApp
	ReservationApp reservationapp.ReservationApp
	FulfillmentApp fulfillmentapp.FulfillmentApp
	ReportingApp   reportingapp.ReportingApp
}

func NewTransport(coordinatorApp coordinatorapp.CoordinatorApp, reservationApp reservationapp.ReservationApp, fulfillmentApp fulfillmentapp.FulfillmentApp, reportingApp reportingapp.ReportingApp, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		CoordinatorApp: coordinatorApp,
		ReservationApp: reservationApp,
		FulfillmentApp: fulfillmentApp,
		ReportingApp:   reportingApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// Protected routes
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/v1/products", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/v1/requests", rh.CreateRequest).Methods(http.MethodPost)
	mux.HandleFunc("/v1/requests", rh.ListRequests).Methods(http.MethodGet)
	mux.HandleFunc("/v1/requests/{id}", rh.UpdateRequest).Methods(http.MethodPatch)
	mux.HandleFunc("/v1/requests/{id}/cancel", rh.CancelRequest).Methods(http.MethodPost)
	mux.HandleFunc("/v1/assignments", rh.ListAssignments).Methods(http.MethodGet)
	mux.HandleFunc("/v1/deliveries", rh.ScheduleDelivery).Methods(http.MethodPost)
	mux.HandleFunc("/v1/deliveries", rh.ListDeliveries).Methods(http.MethodGet)
	mux.HandleFunc("/v1/deliveries/{id}/status", rh.UpdateDeliveryStatus).Methods(http.MethodPost)
	mux.HandleFunc("/v1/dashboard", rh.Dashboard).Methods(http.MethodGet)

	// Internal routes (API key, used by the expiration consumer)
	internal := mux.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/v1/request/{id}/cancel", rh.CancelRequest).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(coordinatorApp))

	return mux
}

// Register handler
// @Summary Register coordinator
// @Description Register a new coordinator account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} errors.CustomError
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CoordinatorApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login coordinator
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CoordinatorApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout coordinator
// @Description Invalidate the current session
// @Tags Auth
// @Produce json
// @Success 200 {object} nil
// @Security BearerAuth
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth := r.Header.Get("Authorization")
	token := strings.TrimPrefix(auth, "Bearer ")
	if token == "" || token == auth {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.CoordinatorApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ListProducts handler
// @Summary List products
// @Description List catalog products with farmer names
// @Tags Catalog
// @Produce json
// @Param available query bool false "Available products only"
// @Param farmer_id query int false "Filter by farmer"
// @Param category query string false "Filter by category"
// @Success 200 {array} model.ProductListItem
// @Security BearerAuth
// @Router /v1/products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := &model.ProductFilter{
		AvailableOnly: r.URL.Query().Get("available") == "true",
		Category:      r.URL.Query().Get("category"),
	}
	if v := r.URL.Query().Get("farmer_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		filter.FarmerID = id
	}

	res, err := s.ReportingApp.ListProducts(ctx, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateRequest handler
// @Summary Create distribution request
// @Description Create a request reserving inventory for every line item
// @Tags Distribution
// @Accept json
// @Produce json
// @Param request body model.CreateRequestInput true "Create Request"
// @Success 200 {object} model.CreateRequestResponse
// @Failure 400 {object} errors.CustomError
// @Failure 409 {object} errors.CustomError
// @Security BearerAuth
// @Router /v1/requests [post]
func (s *RestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateRequestInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ReservationApp.CreateRequest(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CancelRequest handler
// @Summary Cancel distribution request
// @Description Cancel a pending or confirmed request, restoring reserved inventory
// @Tags Distribution
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} nil
// @Failure 409 {object} errors.CustomError
// @Security BearerAuth
// @Router /v1/requests/{id}/cancel [post]
func (s *RestHandler) CancelRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requestID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	// cancellations are audit-worthy; internal calls carry no session
	coordinatorID, _ := utilsContext.GetUserID(ctx)
	logger.Info("cancel requested",
		zap.Uint64("request_id", requestID),
		zap.Uint64("coordinator_id", coordinatorID),
	)

	if err := s.ReservationApp.CancelRequest(ctx, requestID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// UpdateRequest handler
// @Summary Update distribution request
// @Description Update priority, required date or notes of a pending request
// @Tags Distribution
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body model.UpdateRequestInput true "Patch"
// @Success 200 {object} nil
// @Failure 409 {object} errors.CustomError
// @Security BearerAuth
// @Router /v1/requests/{id} [patch]
func (s *RestHandler) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requestID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateRequestInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ReservationApp.UpdateRequest(ctx, requestID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ListRequests handler
// @Summary List distribution requests
// @Description List requests with sales point and line item details
// @Tags Distribution
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {array} model.RequestWithDetails
// @Security BearerAuth
// @Router /v1/requests [get]
func (s *RestHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var status *constant.RequestStatus
	if v := r.URL.Query().Get("status"); v != "" {
		st := constant.RequestStatus(v)
		status = &st
	}

	res, err := s.ReportingApp.GetRequestsWithDetails(ctx, status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListAssignments handler
// @Summary List assignments
// @Description List assignments with product, farmer and sales point names
// @Tags Distribution
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {array} model.AssignmentWithDetails
// @Security BearerAuth
// @Router /v1/assignments [get]
func (s *RestHandler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var status *constant.AssignmentStatus
	if v := r.URL.Query().Get("status"); v != "" {
		st := constant.AssignmentStatus(v)
		status = &st
	}

	res, err := s.ReportingApp.GetAssignmentsWithDetails(ctx, status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ScheduleDelivery handler
// @Summary Schedule delivery
// @Description Schedule a delivery for a confirmed request
// @Tags Fulfillment
// @Accept json
// @Produce json
// @Param request body model.ScheduleDeliveryInput true "Schedule Delivery"
// @Success 200 {object} model.ScheduleDeliveryResponse
// @Failure 409 {object} errors.CustomError
// @Security BearerAuth
// @Router /v1/deliveries [post]
func (s *RestHandler) ScheduleDelivery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ScheduleDeliveryInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.FulfillmentApp.ScheduleDelivery(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListDeliveries handler
// @Summary List deliveries
// @Description List deliveries with driver and sales point details
// @Tags Fulfillment
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {array} model.DeliveryWithDetails
// @Security BearerAuth
// @Router /v1/deliveries [get]
func (s *RestHandler) ListDeliveries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var status *constant.DeliveryStatus
	if v := r.URL.Query().Get("status"); v != "" {
		st := constant.DeliveryStatus(v)
		status = &st
	}

	res, err := s.ReportingApp.GetDeliveriesWithDetails(ctx, status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateDeliveryStatus handler
// @Summary Update delivery status
// @Description Advance a delivery through its lifecycle
// @Tags Fulfillment
// @Accept json
// @Produce json
// @Param id path int true "Delivery ID"
// @Param request body model.UpdateDeliveryStatusInput true "Status Update"
// @Success 200 {object} nil
// @Failure 409 {object} errors.CustomError
// @Security BearerAuth
// @Router /v1/deliveries/{id}/status [post]
func (s *RestHandler) UpdateDeliveryStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deliveryID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateDeliveryStatusInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.FulfillmentApp.UpdateDeliveryStatus(ctx, deliveryID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// Dashboard handler
// @Summary Dashboard statistics
// @Description Aggregate counters for the coordination dashboard
// @Tags Reporting
// @Produce json
// @Success 200 {object} model.DashboardStats
// @Security BearerAuth
// @Router /v1/dashboard [get]
func (s *RestHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	res, err := s.ReportingApp.GetDashboardStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func pathID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
}
