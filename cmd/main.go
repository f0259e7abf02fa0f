package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	coordinatorapp "github.com/agrocoop/distribution/application/coordinator"
	fulfillmentapp "github.com/agrocoop/distribution/application/fulfillment"
	reportingapp "github.com/agrocoop/distribution/application/reporting"
	reservationapp "github.com/agrocoop/distribution/application/reservation"
	"github.com/agrocoop/distribution/cmd/config"
	redisclient "github.com/agrocoop/distribution/cmd/redis"
	_ "github.com/agrocoop/distribution/docs"
	catalogRepo "github.com/agrocoop/distribution/repository/catalog"
	coordinatorRepo "github.com/agrocoop/distribution/repository/coordinator"
	deliveryRepo "github.com/agrocoop/distribution/repository/delivery"
	redisRepo "github.com/agrocoop/distribution/repository/redis"
	requestRepo "github.com/agrocoop/distribution/repository/request"
	txRepo "github.com/agrocoop/distribution/repository/tx"
	"github.com/agrocoop/distribution/thirdparty/rabbitmq"
	"github.com/agrocoop/distribution/transport"
	"github.com/agrocoop/distribution/utils/logger"
	"go.uber.org/zap"
)

// @title AGROCOOP DISTRIBUTION API
// @version 1.0
// @description Agricultural cooperative distribution API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	CatalogRepo := catalogRepo.NewCatalogRepository(db)
	RequestRepo := requestRepo.NewRequestRepository(db)
	DeliveryRepo := deliveryRepo.NewDeliveryRepository(db)
	CoordinatorRepo := coordinatorRepo.NewCoordinatorRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Request expiration messaging is optional, the reservation engine
	// works without it.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Enabled {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
		}
		defer publisher.Close()

		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.APIURL, cfg.RabbitMQ.APIKey)
		if err != nil {
			logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
		}
		defer consumer.Close()

		go func() {
			if err := consumer.Start(context.Background()); err != nil {
				logger.Error("expiration consumer stopped", zap.Error(err))
			}
		}()
	}

	// Initialize application layers
	CoordinatorApp := coordinatorapp.NewCoordinatorApp(cfg, CoordinatorRepo, RedisRepo)
	ReservationApp := reservationapp.NewReservationApp(TxRepo, CatalogRepo, RequestRepo, publisher)
	FulfillmentApp := fulfillmentapp.NewFulfillmentApp(TxRepo, CatalogRepo, RequestRepo, DeliveryRepo)
	ReportingApp := reportingapp.NewReportingApp(CatalogRepo, RequestRepo, DeliveryRepo, RedisRepo)

	httpTransport := transport.NewTransport(CoordinatorApp, ReservationApp, FulfillmentApp, ReportingApp, cfg.RabbitMQ.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
