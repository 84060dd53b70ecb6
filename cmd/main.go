package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/tinysteps/config"
	"github.com/lshigami/tinysteps/database"
	_ "github.com/lshigami/tinysteps/docs"
	"github.com/lshigami/tinysteps/internal/audio"
	adminctrl "github.com/lshigami/tinysteps/internal/controller/admin"
	userctrl "github.com/lshigami/tinysteps/internal/controller/user"
	"github.com/lshigami/tinysteps/internal/logger"
	"github.com/lshigami/tinysteps/internal/repository"
	"github.com/lshigami/tinysteps/internal/router"
	"github.com/lshigami/tinysteps/internal/seed"
	"github.com/lshigami/tinysteps/internal/service"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Tiny Steps Learning API
// @version 1.0
// @description Admin authoring of quiz questions and learner play sessions for the Tiny Steps early-learning app.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			audio.NewLibrary,
		),

		fx.Provide(
			repository.NewQuestionRepository,
		),

		fx.Provide(
			service.NewQuestionGateway,
			service.NewLessonService,
			service.NewPlayService,
			service.NewAuthoringService,
		),

		fx.Provide(
			adminctrl.NewQuestionController,
			adminctrl.NewAuthoringController,
			userctrl.NewLessonController,
			userctrl.NewPlayController,
		),

		fx.Invoke(logger.Configure),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedLessons),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	return router.NewEngine(cfg.Server.GinMode)
}

// RegisterRoutesAndStartServer mounts the API routes and manages the server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	engine *gin.Engine,
	cfg *config.Config,
	questionCtrl *adminctrl.QuestionController,
	authoringCtrl *adminctrl.AuthoringController,
	lessonCtrl *userctrl.LessonController,
	playCtrl *userctrl.PlayController,
) {
	router.Register(engine, router.Controllers{
		Questions: questionCtrl,
		Authoring: authoringCtrl,
		Lessons:   lessonCtrl,
		Play:      playCtrl,
	})

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Tiny Steps API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Backend.AutoMigrate {
		log.Info().Msg("Auto-migration disabled, skipping")
		return nil
	}
	log.Info().Msg("Running database migrations...")
	if err := database.Migrate(db); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

// SeedLessons stores the starter lessons into an empty store when seeding is enabled.
func SeedLessons(gateway service.QuestionGateway, cfg *config.Config) error {
	if !cfg.Seed.Enabled {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, err := seed.Run(ctx, gateway); err != nil {
		log.Error().Err(err).Msg("Seeding starter lessons failed")
		return err
	}
	return nil
}
