package app

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fittrackapp/fittrack/internal/config"
	"github.com/fittrackapp/fittrack/internal/db"
	"github.com/fittrackapp/fittrack/internal/repository"
	"github.com/fittrackapp/fittrack/internal/service"
)

type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	AuthService      *service.AuthService
	UserService      *service.UserService
	GoalService      *service.GoalService
	ProgressService  *service.ProgressService
	CommunityService *service.CommunityService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	progressRepository := repository.NewProgressRepository(database)
	postRepository := repository.NewPostRepository(database)

	// Services
	authService := service.NewAuthService(
		userRepository,
		cfg.JWTSecret,
		cfg.IsProduction(),
		cfg.JWTExpiry,
	)
	userService := service.NewUserService(userRepository, authService)
	goalService := service.NewGoalService(goalRepository, progressRepository, time.Now)
	progressService := service.NewProgressService(progressRepository, goalRepository, time.Now)
	communityService := service.NewCommunityService(postRepository)

	return &App{
		Cfg:              cfg,
		DB:               database,
		AuthService:      authService,
		UserService:      userService,
		GoalService:      goalService,
		ProgressService:  progressService,
		CommunityService: communityService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
