package config

import (
	"time"

	"github.com/rpupo63/content-site-backend/errs"
)

const (
	DBTypePostgres = "postgres"
	DBTypeSQLite   = "sqlite"
)

// Settings is the typed view of the environment used by the content service
type Settings struct {
	DBType               string
	DatabaseURL          string
	ReplicaURLs          []string
	SQLitePath           string
	MaxOpenConns         int
	MaxIdleConns         int
	AutoMigrate          bool
	SeedFile             string
	GenerateModels       bool
	GenerateColumnReport bool

	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	AcceptedOrigins      []string
	ErrorNotificationURL string
	LogLevel             string
}

// Load builds Settings from an environment map and validates the database selection
func Load(c map[string]string) (Settings, error) {
	s := Settings{
		DBType:               GetString(c, "DB_TYPE", DBTypePostgres),
		DatabaseURL:          GetString(c, "DATABASE_URL", ""),
		ReplicaURLs:          GetStrings(c, "DB_REPLICA_URLS"),
		SQLitePath:           GetString(c, "SQLITE_PATH", "data/content.db"),
		MaxOpenConns:         GetInt(c, "DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:         GetInt(c, "DB_MAX_IDLE_CONNS", 5),
		AutoMigrate:          GetBool(c, "AUTO_MIGRATE", false),
		SeedFile:             GetString(c, "SEED_FILE", ""),
		GenerateModels:       GetBool(c, "GENERATE_MODELS", false),
		GenerateColumnReport: GetBool(c, "GENERATE_COLUMN_REPORT", false),

		Port:         GetString(c, "PORT", "8080"),
		ReadTimeout:  time.Duration(GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second,
		WriteTimeout: time.Duration(GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second,
		IdleTimeout:  time.Duration(GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second,

		AcceptedOrigins:      GetStrings(c, "ACCEPTED_ORIGINS"),
		ErrorNotificationURL: GetString(c, "ERROR_NOTIFICATION_URL", ""),
		LogLevel:             GetString(c, "LOG_LEVEL", "info"),
	}

	switch s.DBType {
	case DBTypePostgres:
		if s.DatabaseURL == "" {
			return s, errs.NewEnvironmentVariableError("DATABASE_URL")
		}
	case DBTypeSQLite:
		if s.SQLitePath == "" {
			return s, errs.NewEnvironmentVariableError("SQLITE_PATH")
		}
	default:
		return s, errs.NewEnvironmentVariableError("DB_TYPE")
	}

	return s, nil
}
