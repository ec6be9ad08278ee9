package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"biomed-maintenance-tracker/internal/config"
	"biomed-maintenance-tracker/internal/database"
	"biomed-maintenance-tracker/internal/engine"
	"biomed-maintenance-tracker/internal/llm"
	"biomed-maintenance-tracker/internal/metrics"
	"biomed-maintenance-tracker/internal/models"
	"biomed-maintenance-tracker/internal/repository"
	"biomed-maintenance-tracker/internal/router"
	"biomed-maintenance-tracker/internal/seed"
	"biomed-maintenance-tracker/internal/service"
	"biomed-maintenance-tracker/internal/store"
	"biomed-maintenance-tracker/pkg/logger"
	"biomed-maintenance-tracker/pkg/utils"
	"biomed-maintenance-tracker/pkg/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// storage is what the services are built on for the selected driver
type storage struct {
	equipment     []models.Equipment
	users         []models.User
	refreshTokens []models.RefreshToken
	equipmentRepo service.EquipmentWriter
	staffRepo     service.StaffWriter
	tokenRepo     service.TokenWriter
	audit         service.AuditLogger
}

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	log.Info("configuration loaded", zap.String("storage", cfg.Storage.Driver))

	// 3. Initialize JWT token manager with config
	tokens := utils.NewTokenManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 4. Load equipment register and accounts
	now := engine.SystemClock()
	st, err := openStorage(cfg, log, now)
	if err != nil {
		log.Fatal("failed to open storage", zap.Error(err))
	}

	// 5. Initialize services
	equipmentStore := store.NewEquipmentStore(st.equipment)
	userDirectory := store.NewUserDirectory(st.users)
	userDirectory.LoadRefreshTokens(st.refreshTokens)

	model, err := llm.NewModel(cfg.AI)
	if err != nil {
		log.Warn("note generator disabled", zap.Error(err))
		model = nil
	}

	equipmentService := service.NewEquipmentService(equipmentStore, st.equipmentRepo, validation.New(), st.audit, log, engine.SystemClock)
	notificationService := service.NewNotificationService(equipmentService, st.audit, log)
	authService := service.NewAuthService(userDirectory, tokens, st.tokenRepo, st.audit, log, engine.SystemClock)
	staffService := service.NewStaffService(userDirectory, st.staffRepo, utils.HashPassword, st.audit, log, engine.SystemClock)
	collector := metrics.NewCollector()
	workerService := service.NewWorkerService(equipmentService, notificationService, collector, cfg.Notifications.RefreshInterval, log)

	// 6. Start background worker in goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go workerService.Start(ctx)

	// 7. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 8. Setup router
	r := router.New(router.Deps{
		Tokens:         tokens,
		Auth:           authService,
		Equipment:      equipmentService,
		Notifications:  notificationService,
		Staff:          staffService,
		Theme:          service.NewThemeService(),
		Notes:          service.NewNoteService(model, log),
		Export:         service.NewExportService(),
		Metrics:        collector.Handler(),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		SecureCookies:  cfg.Server.GinMode == gin.ReleaseMode,
		Log:            log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 9. Setup graceful shutdown
	go func() {
		log.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	// Cancel background worker context
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	log.Info("server exited")
}

// openStorage returns the initial register and accounts. With the memory
// driver they come from the seed; with mysql the database is migrated, seeded
// when empty and then loaded, and writes go through the repositories.
func openStorage(cfg *config.Config, log *zap.Logger, now time.Time) (*storage, error) {
	equipment, err := initialEquipment(cfg.Storage.SeedFile, now)
	if err != nil {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(cfg.Auth.DemoPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}
	users := seed.Users(passwordHash, now)

	if cfg.Storage.Driver != config.StorageMySQL {
		log.Info("using in-memory storage", zap.Int("equipment", len(equipment)))
		return &storage{
			equipment: equipment,
			users:     users,
			audit:     service.NewLogAuditor(log),
		}, nil
	}

	db, err := database.Connect(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	equipmentRepo := repository.NewEquipmentRepo(db)
	userRepo := repository.NewUserRepo(db)

	count, err := equipmentRepo.CountEquipment()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		for i := range equipment {
			if err := equipmentRepo.CreateEquipment(&equipment[i]); err != nil {
				return nil, fmt.Errorf("failed to seed equipment %s: %w", equipment[i].ID, err)
			}
		}
		log.Info("seeded equipment register", zap.Int("equipment", len(equipment)))
	}

	stored, err := userRepo.ListUsers()
	if err != nil {
		return nil, err
	}
	if len(stored) == 0 {
		for i := range users {
			if err := userRepo.CreateUser(&users[i]); err != nil {
				return nil, fmt.Errorf("failed to seed user %s: %w", users[i].Email, err)
			}
		}
		stored = users
	}

	loaded, err := equipmentRepo.ListEquipment()
	if err != nil {
		return nil, err
	}

	refreshTokens, err := userRepo.ListActiveRefreshTokens(now)
	if err != nil {
		return nil, err
	}
	log.Info("loaded equipment register",
		zap.Int("equipment", len(loaded)),
		zap.Int("users", len(stored)),
		zap.Int("sessions", len(refreshTokens)),
	)

	return &storage{
		equipment:     loaded,
		users:         stored,
		refreshTokens: refreshTokens,
		equipmentRepo: equipmentRepo,
		staffRepo:     userRepo,
		tokenRepo:     userRepo,
		audit:         repository.NewAuditRepo(db),
	}, nil
}

// initialEquipment reads SEED_FILE when set, the built-in register otherwise
func initialEquipment(seedFile string, now time.Time) ([]models.Equipment, error) {
	equipment := seed.Equipment(now)
	if seedFile != "" {
		loaded, err := seed.LoadFile(seedFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load seed file: %w", err)
		}
		equipment = loaded
	}
	seed.StampCreated(equipment, now)
	return equipment, nil
}
