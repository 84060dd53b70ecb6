package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// ErrMissingBackendConfig is returned when the hosted store cannot be addressed.
var ErrMissingBackendConfig = errors.New("missing required backend configuration")

type Config struct {
	Server    Server
	Backend   Backend
	Log       Log
	Authoring Authoring
	Seed      Seed
}

type Server struct {
	Port    string
	GinMode string
}

// Backend points at the hosted relational store.
type Backend struct {
	URL          string
	APIKey       string
	MaxOpenConns int
	AutoMigrate  bool
}

type Log struct {
	Level  string
	Pretty bool
}

// Authoring bounds the server-held workspaces (batches, forms, play sessions).
type Authoring struct {
	WorkspaceTTL          time.Duration
	MaxWorkspaces         int
	SuccessBannerDuration time.Duration
}

type Seed struct {
	Enabled bool
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
	v.SetDefault("BACKEND_MAX_OPEN_CONNS", 10)
	v.SetDefault("BACKEND_AUTO_MIGRATE", true)
	v.SetDefault("WORKSPACE_TTL", "2h")
	v.SetDefault("WORKSPACE_MAX", 1024)
	v.SetDefault("SUCCESS_BANNER_DURATION", "3s")
	v.SetDefault("SEED_ENABLED", false)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.GinMode = v.GetString("GIN_MODE")
	config.Backend.URL = strings.TrimSpace(v.GetString("BACKEND_URL"))
	config.Backend.APIKey = strings.TrimSpace(v.GetString("BACKEND_API_KEY"))
	config.Backend.MaxOpenConns = v.GetInt("BACKEND_MAX_OPEN_CONNS")
	config.Backend.AutoMigrate = v.GetBool("BACKEND_AUTO_MIGRATE")
	config.Log.Level = v.GetString("LOG_LEVEL")
	config.Log.Pretty = v.GetBool("LOG_PRETTY")
	config.Authoring.WorkspaceTTL = v.GetDuration("WORKSPACE_TTL")
	config.Authoring.MaxWorkspaces = v.GetInt("WORKSPACE_MAX")
	config.Authoring.SuccessBannerDuration = v.GetDuration("SUCCESS_BANNER_DURATION")
	config.Seed.Enabled = v.GetBool("SEED_ENABLED")

	var missing []string
	if config.Backend.URL == "" {
		missing = append(missing, "BACKEND_URL")
	}
	if config.Backend.APIKey == "" {
		missing = append(missing, "BACKEND_API_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingBackendConfig, strings.Join(missing, ", "))
	}

	if config.Authoring.WorkspaceTTL <= 0 {
		config.Authoring.WorkspaceTTL = 2 * time.Hour
	}
	if config.Authoring.MaxWorkspaces <= 0 {
		config.Authoring.MaxWorkspaces = 1024
	}

	log.Info().
		Str("port", config.Server.Port).
		Bool("auto_migrate", config.Backend.AutoMigrate).
		Dur("workspace_ttl", config.Authoring.WorkspaceTTL).
		Bool("seed", config.Seed.Enabled).
		Msg("Config loaded")
	return &config, nil
}
