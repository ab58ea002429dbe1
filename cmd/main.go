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

	checkAvailabilityHandler "github.com/sanbongvn/SBV-CatalogService/internal/api/handlers/check_availability"
	createFieldHandler "github.com/sanbongvn/SBV-CatalogService/internal/api/handlers/create_field"
	getFieldHandler "github.com/sanbongvn/SBV-CatalogService/internal/api/handlers/get_field"
	getFieldBookingsHandler "github.com/sanbongvn/SBV-CatalogService/internal/api/handlers/get_field_bookings"
	getShopFieldsHandler "github.com/sanbongvn/SBV-CatalogService/internal/api/handlers/get_shop_fields"
	searchFieldsHandler "github.com/sanbongvn/SBV-CatalogService/internal/api/handlers/search_fields"
	setFieldStatusHandler "github.com/sanbongvn/SBV-CatalogService/internal/api/handlers/set_field_status"
	updateFieldHandler "github.com/sanbongvn/SBV-CatalogService/internal/api/handlers/update_field"
	"github.com/sanbongvn/SBV-CatalogService/internal/api/middleware"
	"github.com/sanbongvn/SBV-CatalogService/internal/config"
	catalogRepo "github.com/sanbongvn/SBV-CatalogService/internal/infra/storage/catalog"
	datasetRepo "github.com/sanbongvn/SBV-CatalogService/internal/infra/storage/dataset"
	ledgerRepo "github.com/sanbongvn/SBV-CatalogService/internal/infra/storage/ledger"
	availabilityService "github.com/sanbongvn/SBV-CatalogService/internal/service/availability"
	bookingsService "github.com/sanbongvn/SBV-CatalogService/internal/service/bookings"
	fieldsService "github.com/sanbongvn/SBV-CatalogService/internal/service/fields"
	searchFieldsUC "github.com/sanbongvn/SBV-CatalogService/internal/usecase/search_fields"
	"github.com/sanbongvn/SBV-CatalogService/pkg/logger"
	"github.com/sanbongvn/SBV-CatalogService/pkg/metrics"
)

func main() {
	// Переменные окружения из .env (если файл есть)
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SBV-CatalogService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных и загружаем датасет каталога.
	// Каталог обслуживается из памяти, соединение нужно только на старте.
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	dataset, err := datasetRepo.NewRepository(db).Load(loadCtx)
	cancelLoad()
	if err != nil {
		log.Fatal("Failed to load catalog dataset: %v", err)
	}
	if err := db.Close(); err != nil {
		log.Warn("Failed to close database connection: %v", err)
	}
	log.Info("Catalog dataset loaded: shops=%d, fields=%d, images=%d, reviews=%d, bookings=%d",
		len(dataset.Shops), len(dataset.Fields), len(dataset.Images), len(dataset.Reviews), len(dataset.Bookings))

	// Инициализируем репозитории
	catalogRepository, err := catalogRepo.NewRepository(dataset)
	if err != nil {
		log.Fatal("Failed to build catalog: %v", err)
	}
	ledgerRepository := ledgerRepo.NewRepository(dataset.Bookings)

	if cfg.Metrics.Enabled {
		metricsCollector.CatalogFields.Set(float64(catalogRepository.Count()))
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(ledgerRepository, log)
	bookingsSvc := bookingsService.NewService(ledgerRepository, log)
	fieldsSvc := fieldsService.NewService(catalogRepository, log)

	// Инициализируем use cases
	searchFieldsUseCase := searchFieldsUC.NewUseCase(catalogRepository, availabilitySvc, log)

	// Инициализируем handlers
	searchFields := searchFieldsHandler.NewHandler(searchFieldsUseCase, log)
	getField := getFieldHandler.NewHandler(fieldsSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(availabilitySvc, log)
	getFieldBookings := getFieldBookingsHandler.NewHandler(bookingsSvc, log)
	getShopFields := getShopFieldsHandler.NewHandler(fieldsSvc, log)
	createField := createFieldHandler.NewHandler(fieldsSvc, log)
	updateField := updateFieldHandler.NewHandler(fieldsSvc, log)
	setFieldStatus := setFieldStatusHandler.NewHandler(fieldsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Поиск полей по каталогу
	api.HandleFunc("/fields", searchFields.Handle).Methods(http.MethodGet)

	// Карточка поля
	api.HandleFunc("/fields/{fieldId}", getField.Handle).Methods(http.MethodGet)

	// Проверка доступности интервала
	api.HandleFunc("/fields/{fieldId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Бронирования поля
	api.HandleFunc("/fields/{fieldId}/bookings", getFieldBookings.Handle).Methods(http.MethodGet)

	// Поля магазина
	api.HandleFunc("/shops/{shopId}/fields", getShopFields.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание поля в магазине
	protected.HandleFunc("/shops/{shopId}/fields", createField.Handle).Methods(http.MethodPost)

	// Частичное обновление поля
	protected.HandleFunc("/fields/{fieldId}", updateField.Handle).Methods(http.MethodPatch)

	// Смена статуса поля
	protected.HandleFunc("/fields/{fieldId}/status", setFieldStatus.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
