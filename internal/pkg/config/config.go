package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeouts, cadences)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Admin     AdminConfig
	Cookie    CookieConfig
	Calendar  CalendarConfig
	Webhook   WebhookConfig
	AMQP      AMQPConfig
	Tracing   TracingConfig
	Scheduler SchedulerConfig
	RateLimit RateLimitConfig
	Business  BusinessConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host          string `envconfig:"DB_HOST" default:"localhost"`
	Port          string `envconfig:"DB_PORT" default:"5432"`
	User          string `envconfig:"DB_USER" required:"true"`
	Password      string `envconfig:"DB_PASSWORD" required:"true"`
	DBName        string `envconfig:"DB_NAME" required:"true"`
	SSLMode       string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone      string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns      int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	MigrateOnBoot bool   `envconfig:"DB_MIGRATE_ON_BOOT" default:"false"`
	MigrationsDir string `envconfig:"DB_MIGRATIONS_DIR" default:"file://migrations"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"12h"`
}

// AdminConfig holds the single dashboard account; the password is stored as a bcrypt hash.
type AdminConfig struct {
	Username     string `envconfig:"ADMIN_USERNAME" default:"admin"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type CalendarConfig struct {
	BaseURL     string        `envconfig:"CALENDAR_BASE_URL" default:"https://www.googleapis.com/calendar/v3"`
	AccessToken string        `envconfig:"CALENDAR_ACCESS_TOKEN" default:""`
	Timeout     time.Duration `envconfig:"CALENDAR_TIMEOUT" default:"10s"`
	MaxRetries  uint64        `envconfig:"CALENDAR_MAX_RETRIES" default:"3"`
}

type WebhookConfig struct {
	Address      string        `envconfig:"WEBHOOK_ADDRESS" default:""`
	ChannelToken string        `envconfig:"WEBHOOK_CHANNEL_TOKEN" default:""`
	ChannelTTL   time.Duration `envconfig:"WEBHOOK_CHANNEL_TTL" default:"168h"`
}

type AMQPConfig struct {
	URL      string `envconfig:"AMQP_URL" default:""`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"booking.notifications"`
}

type TracingConfig struct {
	Enabled     bool   `envconfig:"TRACING_ENABLED" default:"false"`
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"otel-collector:4317"`
	ServiceName string `envconfig:"TRACING_SERVICE_NAME" default:"booking-calendar-sync"`
	Environment string `envconfig:"ENV" default:"dev"`
}

type SchedulerConfig struct {
	Enabled          bool          `envconfig:"SCHEDULER_ENABLED" default:"true"`
	SyncInterval     time.Duration `envconfig:"SCHEDULER_SYNC_INTERVAL" default:"15m"`
	ReminderInterval time.Duration `envconfig:"SCHEDULER_REMINDER_INTERVAL" default:"1h"`
	RenewalInterval  time.Duration `envconfig:"SCHEDULER_RENEWAL_INTERVAL" default:"6h"`
	JobTimeout       time.Duration `envconfig:"SCHEDULER_JOB_TIMEOUT" default:"5m"`
}

type RateLimitConfig struct {
	Requests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"10"`
	Window   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
}

// BusinessConfig seeds the settings document the first time the service starts.
type BusinessConfig struct {
	TimeZone         string        `envconfig:"BUSINESS_TIMEZONE" default:"UTC"`
	OpenAt           string        `envconfig:"BUSINESS_OPEN_AT" default:"09:00"`
	CloseAt          string        `envconfig:"BUSINESS_CLOSE_AT" default:"18:00"`
	WorkingDays      []int         `envconfig:"BUSINESS_WORKING_DAYS" default:"1,2,3,4,5"`
	AnchorTimes      []string      `envconfig:"BUSINESS_ANCHOR_TIMES" default:"09:00,14:00"`
	HolidayKeywords  string        `envconfig:"BUSINESS_HOLIDAY_KEYWORDS" default:"holiday,vacation"`
	AllDayIsHoliday  bool          `envconfig:"BUSINESS_ALL_DAY_IS_HOLIDAY" default:"true"`
	DailyCap         int           `envconfig:"BUSINESS_DAILY_CAP" default:"0"`
	WriteCalendarID  string        `envconfig:"BUSINESS_WRITE_CALENDAR_ID" default:""`
	ReadCalendarIDs  []string      `envconfig:"BUSINESS_READ_CALENDAR_IDS" default:""`
	ReminderLeadTime time.Duration `envconfig:"BUSINESS_REMINDER_LEAD_TIME" default:"24h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	// a missing .env is normal outside local development
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

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
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		RateLimit: RateLimitConfig{
			Requests: 1000,
			Window:   time.Second,
		},
		Calendar: CalendarConfig{
			Timeout:    time.Second,
			MaxRetries: 1,
		},
		Business: BusinessConfig{
			TimeZone:         "UTC",
			OpenAt:           "09:00",
			CloseAt:          "18:00",
			WorkingDays:      []int{1, 2, 3, 4, 5},
			AnchorTimes:      []string{"09:00", "14:00"},
			HolidayKeywords:  "holiday",
			AllDayIsHoliday:  true,
			ReminderLeadTime: 24 * time.Hour,
		},
	}
}
