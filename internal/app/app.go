package app

import (
	"fmt"

	"github.com/alfieapp/quarterly/internal/config"
	"github.com/alfieapp/quarterly/internal/db"
	"github.com/alfieapp/quarterly/internal/repository"
	"github.com/alfieapp/quarterly/internal/service"
	"github.com/alfieapp/quarterly/internal/store"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg *config.Config
	DB  *sqlx.DB

	AuthService    *service.AuthService
	UserService    *service.UserService
	EmailService   *service.EmailService
	QuarterService *service.QuarterService
	GoalsService   *service.GoalsService
	MeetingService *service.MeetingService
	DealService    *service.DealService

	Sessions *store.Manager
}

func New(cfg *config.Config) (*App, error) {
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	quarterRepository := repository.NewQuarterRepository(database)
	goalsRepository := repository.NewGoalsRepository(database)
	meetingRepository := repository.NewMeetingRepository(database)
	dealRepository := repository.NewDealRepository(database)

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(
		userRepository,
		emailService,
		cfg.JWTSecret,
		cfg.IsProduction(),
		cfg.JWTExpiry,
	)
	userService := service.NewUserService(userRepository)
	quarterService := service.NewQuarterService(quarterRepository)
	goalsService := service.NewGoalsService(goalsRepository)
	meetingService := service.NewMeetingService(meetingRepository)
	dealService := service.NewDealService(dealRepository)

	// Per-user session caches
	sessions := store.NewManager(goalsService, meetingService, dealService, cfg.DeleteConfirmWindow)

	return &App{
		Cfg:            cfg,
		DB:             database,
		AuthService:    authService,
		UserService:    userService,
		EmailService:   emailService,
		QuarterService: quarterService,
		GoalsService:   goalsService,
		MeetingService: meetingService,
		DealService:    dealService,
		Sessions:       sessions,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
