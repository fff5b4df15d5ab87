package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (timezone, report limits, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	Report ReportConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host         string        `envconfig:"DB_HOST" default:"localhost"`
	Port         string        `envconfig:"DB_PORT" default:"5432"`
	User         string        `envconfig:"DB_USER" required:"true"`
	Password     string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName       string        `envconfig:"DB_NAME" required:"true"`
	SSLMode      string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone     string        `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns     int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns     int32         `envconfig:"DB_MIN_CONNS" default:"2"`
	ConnLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"1h"`
	MigrationDir string        `envconfig:"DB_MIGRATION_DIR" default:"file://migrations"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// ReportConfig controls how reporting resolves "today" and clamps top-N lists.
type ReportConfig struct {
	TimeZone        string `envconfig:"REPORT_TIMEZONE" default:"UTC"`
	DefaultTopCount int    `envconfig:"REPORT_DEFAULT_TOP_COUNT" default:"5"`
	MaxTopCount     int    `envconfig:"REPORT_MAX_TOP_COUNT" default:"50"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location falls back to UTC for unknown zone names.
func (c ReportConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:         "localhost",
			Port:         "15433", // Test DB port
			User:         "test",
			Password:     "test",
			DBName:       "test_db",
			SSLMode:      "disable",
			TimeZone:     "UTC",
			MaxConns:     10,
			MinConns:     1,
			ConnLifetime: time.Hour,
			MigrationDir: "file://migrations",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Report: ReportConfig{
			TimeZone:        "UTC",
			DefaultTopCount: 5,
			MaxTopCount:     50,
		},
	}
}
