package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const EnvProduction = "production"

// App is the typed view of the settings the service reads at startup
type App struct {
	Env      string
	LogLevel zerolog.Level

	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	AcceptedOrigins []string
	JWTSecret       string

	DatabaseDSN       string
	ReplicaDSN        string
	DBSlowQuery       time.Duration
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	GenerateModels    bool
	ColumnReportOnly  bool
	AutoMigrate       bool

	GeminiAPIKey string
	GeminiModel  string
}

func (a App) IsProduction() bool {
	return a.Env == EnvProduction
}

// NewApp builds App from an env map
func NewApp(c map[string]string) App {
	level, err := zerolog.ParseLevel(strings.ToLower(GetString(c, "LOG_LEVEL", "info")))
	if err != nil {
		level = zerolog.InfoLevel
	}

	return App{
		Env:      GetString(c, "APP_ENV", "development"),
		LogLevel: level,

		Port:         GetString(c, "PORT", "8080"),
		ReadTimeout:  GetSeconds(c, "READ_TIMEOUT_SECONDS", 180),
		WriteTimeout: GetSeconds(c, "WRITE_TIMEOUT_SECONDS", 180),
		IdleTimeout:  GetSeconds(c, "IDLE_TIMEOUT_SECONDS", 180),

		AcceptedOrigins: GetList(c, "ACCEPTED_ORIGINS"),
		JWTSecret:       GetString(c, "JWT_SECRET", ""),

		DatabaseDSN:       databaseDSN(c),
		ReplicaDSN:        GetString(c, "DB_REPLICA_DSN", ""),
		DBSlowQuery:       GetSeconds(c, "DB_SLOW_QUERY_SECONDS", 10),
		DBMaxOpenConns:    GetInt(c, "DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns:    GetInt(c, "DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLifetime: GetSeconds(c, "DB_CONN_MAX_LIFETIME_SECONDS", 1800),
		GenerateModels:    GetBool(c, "GENERATE_MODELS", false),
		ColumnReportOnly:  GetBool(c, "GENERATE_COLUMN_REPORT", false),
		AutoMigrate:       GetBool(c, "AUTO_MIGRATE", false),

		GeminiAPIKey: GetString(c, "GEMINI_API_KEY", ""),
		GeminiModel:  GetString(c, "GEMINI_MODEL", "gemini-1.5-flash"),
	}
}

// Validate reports settings the server cannot start without
func (a App) Validate() error {
	if a.DatabaseDSN == "" {
		return fmt.Errorf("database is not configured: set DATABASE_URL or SUPABASE_DB_HOST")
	}
	if a.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

// databaseDSN prefers DATABASE_URL and otherwise assembles a DSN from the
// SUPABASE_DB_* parts.
func databaseDSN(c map[string]string) string {
	if url := GetString(c, "DATABASE_URL", ""); url != "" {
		return url
	}

	host := GetString(c, "SUPABASE_DB_HOST", "")
	if host == "" {
		return ""
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host,
		GetString(c, "SUPABASE_DB_USER", "postgres"),
		GetString(c, "SUPABASE_DB_PASSWORD", ""),
		GetString(c, "SUPABASE_DB_NAME", "postgres"),
		GetString(c, "SUPABASE_DB_PORT", "5432"),
		GetString(c, "SUPABASE_DB_SSLMODE", "require"),
	)
}
