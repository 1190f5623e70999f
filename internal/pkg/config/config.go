package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	Store        StoreConfig
	CORS         CORSConfig
	Log          LogConfig
	JWT          JWTConfig
	Cookie       CookieConfig
	Admin        AdminConfig
	Events       EventsConfig
	Notification NotificationConfig
	SMTP         SMTPConfig
	Telegram     TelegramConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

// Driver "postgres" requires the DB_* settings; "memory" keeps records in process (local development).
type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"postgres"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

// PasswordHash is a bcrypt hash; plain passwords are never read from the environment.
type AdminConfig struct {
	Username     string `envconfig:"ADMIN_USERNAME" default:"admin"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
}

type EventsConfig struct {
	File string `envconfig:"EVENTS_FILE" default:""`
	// Remaining seats reported when the occupancy read fails.
	FallbackRemaining int `envconfig:"CAPACITY_FALLBACK_REMAINING" default:"1"`
}

type NotificationConfig struct {
	Workers     int           `envconfig:"NOTIFY_WORKERS" default:"2"`
	QueueSize   int           `envconfig:"NOTIFY_QUEUE_SIZE" default:"256"`
	MaxAttempts int           `envconfig:"NOTIFY_MAX_ATTEMPTS" default:"5"`
	BaseBackoff time.Duration `envconfig:"NOTIFY_BASE_BACKOFF" default:"2s"`
	Timeout     time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"30s"`
}

// Empty Host disables email delivery (messages are logged instead).
type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST" default:""`
	Port     string `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USERNAME" default:""`
	Password string `envconfig:"SMTP_PASSWORD" default:""`
	From     string `envconfig:"SMTP_FROM" default:"no-reply@example.com"`
}

// Empty Token disables chat alerts.
type TelegramConfig struct {
	Token  string `envconfig:"TELEGRAM_BOT_TOKEN" default:""`
	ChatID int64  `envconfig:"TELEGRAM_CHAT_ID" default:"0"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// LoadDBConfig reads only the DB_* settings, for tools that do not start the server.
func LoadDBConfig() (DBConfig, error) {
	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DBConfig{}, fmt.Errorf("failed to process db env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
			MaxConns: 20,
		},
		Store: StoreConfig{
			Driver: "memory",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Admin: AdminConfig{
			Username: "admin",
		},
		Events: EventsConfig{
			FallbackRemaining: 1,
		},
		Notification: NotificationConfig{
			Workers:     1,
			QueueSize:   16,
			MaxAttempts: 2,
			BaseBackoff: 10 * time.Millisecond,
			Timeout:     time.Second,
		},
	}
}
