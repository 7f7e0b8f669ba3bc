package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/th-alves/nails-booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/th-alves/nails-booking-service/internal/api/handlers/create_booking"
	dashboardStatsHandler "github.com/th-alves/nails-booking-service/internal/api/handlers/dashboard_stats"
	getAvailableSlotsHandler "github.com/th-alves/nails-booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/th-alves/nails-booking-service/internal/api/handlers/get_booking"
	healthHandler "github.com/th-alves/nails-booking-service/internal/api/handlers/health"
	listBookingsHandler "github.com/th-alves/nails-booking-service/internal/api/handlers/list_bookings"
	"github.com/th-alves/nails-booking-service/internal/api/middleware"
	"github.com/th-alves/nails-booking-service/internal/config"
	"github.com/th-alves/nails-booking-service/internal/infra/cache/availability"
	bookingRepo "github.com/th-alves/nails-booking-service/internal/infra/storage/booking"
	whatsappNotifier "github.com/th-alves/nails-booking-service/internal/integrations/whatsapp"
	bookingsService "github.com/th-alves/nails-booking-service/internal/service/bookings"
	createBookingUC "github.com/th-alves/nails-booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/th-alves/nails-booking-service/internal/usecase/get_available_slots"
	"github.com/th-alves/nails-booking-service/pkg/dbmetrics"
	"github.com/th-alves/nails-booking-service/pkg/logger"
	"github.com/th-alves/nails-booking-service/pkg/metrics"
	"github.com/th-alves/nails-booking-service/pkg/txmanager"
)

func main() {
	// .env is optional; deployments usually inject the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting nails-booking-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Optional Redis-backed availability cache. A nil cache is a valid
	// configuration; the use cases skip caching when it is absent.
	var slotCache *availability.Cache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			cancel()
			log.Fatal("Failed to ping redis: %v", err)
		}
		cancel()

		slotCache = availability.NewCache(redisClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
		log.Info("Availability cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
	}

	notifier := whatsappNotifier.NewNotifier(cfg.Studio.WhatsAppPhone, cfg.Studio.NotifyOwner, log)
	if cfg.Studio.NotifyOwner {
		log.Info("Owner WhatsApp notifications enabled (phone=%s)", cfg.Studio.WhatsAppPhone)
	}

	var (
		bookingRepository *bookingRepo.Repository
		txMgr             *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(txmanager.NewSQLBeginner(db))
	}

	// The cache is handed to each consumer through its own interface; the
	// indirection keeps a typed nil pointer from masquerading as a live cache.
	var (
		slotsCache  getAvailableSlotsUC.SlotCache
		createCache createBookingUC.SlotCache
		cancelCache bookingsService.SlotCache
	)
	if slotCache != nil {
		slotsCache = slotCache
		createCache = slotCache
		cancelCache = slotCache
	}

	bookingSvc := bookingsService.NewService(bookingRepository, cancelCache, notifier, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		createCache,
		notifier,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, slotsCache, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	dashboardStats := dashboardStatsHandler.NewHandler(bookingSvc, log)
	health := healthHandler.NewHandler(cfg.Metrics.ServiceName)

	r := mux.NewRouter()

	// The widget is served from static hosting, so every API route is CORS-open.
	r.Use(middleware.CORS)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet, http.MethodOptions)

	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet, http.MethodOptions)

	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch, http.MethodOptions)

	api.HandleFunc("/dashboard/stats", dashboardStats.Handle).Methods(http.MethodGet, http.MethodOptions)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
