package database

import (
	"fmt"
	"net/url"

	"github.com/lshigami/tinysteps/config"
	"github.com/lshigami/tinysteps/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDatabase opens the hosted store described by the backend config.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn, err := DSN(cfg.Backend)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         NewGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to backend store")
		return nil, fmt.Errorf("connect backend: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("backend pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Backend.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Backend.MaxOpenConns)

	log.Info().Str("host", hostOf(dsn)).Msg("Connected to backend store")
	return db, nil
}

// DSN builds the postgres connection URL; the API key is the password when
// the URL does not carry one.
func DSN(b config.Backend) (string, error) {
	u, err := url.Parse(b.URL)
	if err != nil {
		return "", fmt.Errorf("parse BACKEND_URL: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("BACKEND_URL must use postgres:// or postgresql://, got %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("BACKEND_URL has no host")
	}

	user := "postgres"
	if u.User != nil && u.User.Username() != "" {
		user = u.User.Username()
	}
	if _, hasPassword := u.User.Password(); !hasPassword {
		u.User = url.UserPassword(user, b.APIKey)
	}
	return u.String(), nil
}

// Migrate creates or updates the question and answer tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Question{}, &model.Answer{})
}

func hostOf(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return ""
	}
	return u.Host
}
