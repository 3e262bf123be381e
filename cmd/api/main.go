package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"
	"github.com/pulseward/icu-backend-go/internal/config"
	appHTTP "github.com/pulseward/icu-backend-go/internal/handler/http"
	"github.com/pulseward/icu-backend-go/internal/pkg/cache"
	"github.com/pulseward/icu-backend-go/internal/pkg/cron"
	"github.com/pulseward/icu-backend-go/internal/pkg/database"
	"github.com/pulseward/icu-backend-go/internal/pkg/keymutex"
	"github.com/pulseward/icu-backend-go/internal/pkg/sse"
	"github.com/pulseward/icu-backend-go/internal/repository/postgresql"
	"github.com/pulseward/icu-backend-go/internal/repository/redisstore"
	bedService "github.com/pulseward/icu-backend-go/internal/service/bed"
	dashboardService "github.com/pulseward/icu-backend-go/internal/service/dashboard"
	dutyService "github.com/pulseward/icu-backend-go/internal/service/duty"
	equipmentService "github.com/pulseward/icu-backend-go/internal/service/equipment"
	leaveService "github.com/pulseward/icu-backend-go/internal/service/leave"
	patientService "github.com/pulseward/icu-backend-go/internal/service/patient"
	scheduleService "github.com/pulseward/icu-backend-go/internal/service/schedule"
	staffService "github.com/pulseward/icu-backend-go/internal/service/staff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel(cfg.App.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "pulseward-icu"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), int32(cfg.Database.MaxConns), int32(cfg.Database.MinConns))
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	redisClient, err := cache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Error("failed to connect to redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer redisClient.Close()

	staffRepo := postgresql.NewStaffRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	timeOffRepo := postgresql.NewTimeOffRepository(db)
	patientRepo := postgresql.NewPatientRepository(db)
	bedRepo := postgresql.NewBedRepository(db)
	equipmentRepo := postgresql.NewEquipmentRepository(db)

	overrideStore := redisstore.NewOverrideStore(redisClient)
	snapshotCache := redisstore.NewSnapshotCache(redisClient, 2*cfg.Dashboard.SnapshotInterval)

	hub := sse.NewHub()
	staffLocks := keymutex.New()

	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, overrideStore, staffRepo, staffLocks, hub, logger)
	dutySvc := dutyService.NewDutyService(staffRepo, scheduleSvc, overrideStore, scheduleRepo, staffLocks, hub, logger)
	leaveSvc := leaveService.NewLeaveService(timeOffRepo, staffRepo, scheduleRepo, overrideStore, hub, logger)
	staffSvc := staffService.NewStaffService(staffRepo, dutySvc, logger)
	patientSvc := patientService.NewPatientService(db, patientRepo, bedRepo, hub, logger)
	bedSvc := bedService.NewBedService(bedRepo)
	equipmentSvc := equipmentService.NewEquipmentService(equipmentRepo)
	dashboardSvc := dashboardService.NewDashboardService(staffRepo, patientRepo, bedRepo, equipmentRepo, snapshotCache, hub, logger)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("dashboard-snapshot", cfg.Dashboard.SnapshotInterval, func(ctx context.Context) error {
		_, err := dashboardSvc.Refresh(ctx)
		return err
	})
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		Logger:           logger,
		FrontendURL:      cfg.App.FrontendURL,
		StaffHandler:     appHTTP.NewStaffHandler(staffSvc, dutySvc),
		ScheduleHandler:  appHTTP.NewScheduleHandler(scheduleSvc, leaveSvc),
		PatientHandler:   appHTTP.NewPatientHandler(patientSvc),
		BedHandler:       appHTTP.NewBedHandler(bedSvc),
		EquipmentHandler: appHTTP.NewEquipmentHandler(equipmentSvc),
		DashboardHandler: appHTTP.NewDashboardHandler(dashboardSvc, hub),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server started", slog.Int("port", cfg.App.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			stop()
		}
	}()

	<-shutdownCtx.Done()
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
