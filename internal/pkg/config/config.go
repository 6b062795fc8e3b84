package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, business hours, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Picker    PickerConfig
	Location  LocationConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8081"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

// Tokens are issued by the account service; this service only verifies them.
type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Issuer   string        `envconfig:"JWT_ISSUER" default:"stay-account"`
	Audience string        `envconfig:"JWT_AUDIENCE" default:"stay-picker"`
	Leeway   time.Duration `envconfig:"JWT_LEEWAY" default:"30s"`
}

type PickerConfig struct {
	TimeZone             string `envconfig:"PICKER_TIMEZONE" default:"Asia/Tokyo"`
	MinimumDurationHours int    `envconfig:"PICKER_MIN_DURATION_HOURS" default:"2"`
	CheckInFloorHour     int    `envconfig:"PICKER_CHECKIN_FLOOR_HOUR" default:"6"`
	CheckInCeilingHour   int    `envconfig:"PICKER_CHECKIN_CEILING_HOUR" default:"18"`
	CheckOutCutoffHour   int    `envconfig:"PICKER_CHECKOUT_CUTOFF_HOUR" default:"21"`
	CheckOutOffsetsHours []int  `envconfig:"PICKER_CHECKOUT_OFFSETS_HOURS" default:"3,6,9"`
}

type LocationConfig struct {
	DistanceThresholdMeters float64       `envconfig:"LOCATION_DISTANCE_THRESHOLD_METERS" default:"500"`
	MaxAge                  time.Duration `envconfig:"LOCATION_MAX_AGE" default:"15m"`
}

type RateLimitConfig struct {
	RequestsPerMinute int           `envconfig:"RATE_LIMIT_PER_MINUTE" default:"120"`
	Burst             int           `envconfig:"RATE_LIMIT_BURST" default:"20"`
	IdleTTL           time.Duration `envconfig:"RATE_LIMIT_IDLE_TTL" default:"10m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c PickerConfig) LoadLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid PICKER_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
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
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
		},
		Redis: RedisConfig{
			Addr: "localhost:16379",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Issuer:   "stay-account",
			Audience: "stay-picker",
		},
		Picker: PickerConfig{
			TimeZone:             "Asia/Tokyo",
			MinimumDurationHours: 2,
			CheckInFloorHour:     6,
			CheckInCeilingHour:   18,
			CheckOutCutoffHour:   21,
			CheckOutOffsetsHours: []int{3, 6, 9},
		},
		Location: LocationConfig{
			DistanceThresholdMeters: 500,
			MaxAge:                  15 * time.Minute,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 6000,
			Burst:             1000,
			IdleTTL:           10 * time.Minute,
		},
	}
}
