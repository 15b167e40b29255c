package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	blockScheduleHandler "github.com/m04kA/SMC-CustomerPortal/internal/api/handlers/block_schedule"
	cancelBookingHandler "github.com/m04kA/SMC-CustomerPortal/internal/api/handlers/cancel_booking"
	closeWizardHandler "github.com/m04kA/SMC-CustomerPortal/internal/api/handlers/close_wizard"
	confirmBookingHandler "github.com/m04kA/SMC-CustomerPortal/internal/api/handlers/confirm_booking"
	getCalendarHandler "github.com/m04kA/SMC-CustomerPortal/internal/api/handlers/get_calendar"
	getUserBookingsHandler "github.com/m04kA/SMC-CustomerPortal/internal/api/handlers/get_user_bookings"
	getWizardStateHandler "github.com/m04kA/SMC-CustomerPortal/internal/api/handlers/get_wizard_state"
	listReferenceDataHandler "github.com/m04kA/SMC-CustomerPortal/internal/api/handlers/list_reference_data"
	navigateWizardHandler "github.com/m04kA/SMC-CustomerPortal/internal/api/handlers/navigate_wizard"
	rescheduleBookingHandler "github.com/m04kA/SMC-CustomerPortal/internal/api/handlers/reschedule_booking"
	startWizardHandler "github.com/m04kA/SMC-CustomerPortal/internal/api/handlers/start_wizard"
	updateSelectionHandler "github.com/m04kA/SMC-CustomerPortal/internal/api/handlers/update_selection"
	"github.com/m04kA/SMC-CustomerPortal/internal/api/middleware"
	"github.com/m04kA/SMC-CustomerPortal/internal/config"
	"github.com/m04kA/SMC-CustomerPortal/internal/infra/refcache"
	"github.com/m04kA/SMC-CustomerPortal/internal/infra/sessions"
	"github.com/m04kA/SMC-CustomerPortal/internal/integrations/bookingapi"
	availabilityService "github.com/m04kA/SMC-CustomerPortal/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-CustomerPortal/internal/service/bookings"
	holdsService "github.com/m04kA/SMC-CustomerPortal/internal/service/holds"
	refdataService "github.com/m04kA/SMC-CustomerPortal/internal/service/refdata"
	wizardService "github.com/m04kA/SMC-CustomerPortal/internal/service/wizard"
	blockScheduleUC "github.com/m04kA/SMC-CustomerPortal/internal/usecase/block_schedule"
	confirmBookingUC "github.com/m04kA/SMC-CustomerPortal/internal/usecase/confirm_booking"
	startWizardUC "github.com/m04kA/SMC-CustomerPortal/internal/usecase/start_wizard"
	"github.com/m04kA/SMC-CustomerPortal/pkg/logger"
	"github.com/m04kA/SMC-CustomerPortal/pkg/metrics"
)

func main() {
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

	log.Info("Starting SMC-CustomerPortal...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к redis для кэша справочников (если включен)
	var refCache refdataService.Cache
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			// Кэш опционален - портал работает и без него, все запросы идут на бэкенд
			log.Warn("Redis unavailable, reference data cache disabled: %v", err)
		} else {
			refCache = refcache.New(redisClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second, log)
			log.Info("Reference data cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
		}
		defer redisClient.Close()
	}

	// Инициализируем клиент booking engine
	apiClient := bookingapi.NewClient(
		cfg.BookingAPI.URL,
		time.Duration(cfg.BookingAPI.Timeout)*time.Second,
		log,
	)
	log.Info("Booking engine client initialized (url=%s, timeout=%ds)", cfg.BookingAPI.URL, cfg.BookingAPI.Timeout)

	// Реестр сессий мастера
	sessionStore := sessions.NewStore()

	// Менеджер блокировок расписания
	holdOpts := []holdsService.Option{
		holdsService.WithTTL(time.Duration(cfg.Holds.TTLSeconds) * time.Second),
		holdsService.WithTick(time.Duration(cfg.Holds.TickSeconds) * time.Second),
	}
	if cfg.Metrics.Enabled {
		holdOpts = append(holdOpts, holdsService.WithMetrics(metricsCollector))
	}
	holdManager := holdsService.NewManager(apiClient, log, holdOpts...)
	log.Info("Hold manager initialized (ttl=%ds, tick=%ds)", cfg.Holds.TTLSeconds, cfg.Holds.TickSeconds)

	// Инициализируем сервисы
	refdataSvc := refdataService.NewService(apiClient, refCache, metricsCollector, log)
	availabilitySvc := availabilityService.NewService(apiClient, log)
	bookingsSvc := bookingsService.NewService(apiClient, nil, log)
	wizardSvc := wizardService.NewService(sessionStore, apiClient, availabilitySvc, refdataSvc, holdManager, log)

	// Инициализируем use cases
	startWizardUseCase := startWizardUC.NewUseCase(wizardSvc, log)
	blockScheduleUseCase := blockScheduleUC.NewUseCase(sessionStore, holdManager, refdataSvc, log)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(sessionStore, holdManager, apiClient, log)

	// Инициализируем handlers
	startWizard := startWizardHandler.NewHandler(startWizardUseCase, log)
	getWizardState := getWizardStateHandler.NewHandler(wizardSvc, log)
	updateSelection := updateSelectionHandler.NewHandler(wizardSvc, log)
	navigateWizard := navigateWizardHandler.NewHandler(wizardSvc, log)
	closeWizard := closeWizardHandler.NewHandler(wizardSvc, log)
	getCalendar := getCalendarHandler.NewHandler(availabilitySvc, log)
	blockSchedule := blockScheduleHandler.NewHandler(blockScheduleUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	listReferenceData := listReferenceDataHandler.NewHandler(refdataSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(bookingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Все маршруты требуют Bearer JWT - портал обслуживает только
	// аутентифицированных пользователей
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret))

	// --- Мастер бронирования ---
	protected.HandleFunc("/wizard", startWizard.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{sessionId}", getWizardState.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/wizard/{sessionId}", closeWizard.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/wizard/{sessionId}/selection", updateSelection.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/wizard/{sessionId}/next", navigateWizard.HandleNext).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{sessionId}/back", navigateWizard.HandleBack).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{sessionId}/block", blockSchedule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{sessionId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// --- Доступность ---
	protected.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodPost)

	// --- Справочники ---
	protected.HandleFunc("/reference/areas", listReferenceData.HandleAreas).Methods(http.MethodGet)
	protected.HandleFunc("/reference/areas/{areaId}/districts", listReferenceData.HandleDistricts).Methods(http.MethodGet)
	protected.HandleFunc("/reference/districts/{districtId}/properties", listReferenceData.HandleProperties).Methods(http.MethodGet)
	protected.HandleFunc("/reference/residence-types", listReferenceData.HandleResidenceTypes).Methods(http.MethodGet)
	protected.HandleFunc("/reference/services", listReferenceData.HandleServices).Methods(http.MethodGet)
	protected.HandleFunc("/reference/frequencies", listReferenceData.HandleFrequencies).Methods(http.MethodGet)
	protected.HandleFunc("/reference/pricing", listReferenceData.HandlePricing).Methods(http.MethodGet)

	// --- Личный кабинет ---
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/all", getUserBookings.HandleAll).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/reschedule-timeslots", rescheduleBooking.HandleTimeslots).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.HandleReschedule).Methods(http.MethodPost)
	protected.HandleFunc("/tickets", getUserBookings.HandleTickets).Methods(http.MethodGet)

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

	// Снимаем все активные блокировки - слоты не должны остаться
	// занятыми после остановки портала
	holdManager.Shutdown(shutdownCtx)

	log.Info("Server stopped gracefully, %d wizard sessions dropped", sessionStore.Len())
}
