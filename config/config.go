package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Booking BookingConfig
}

type AppConfig struct {
	Port        string
	Env         string
	CORSOrigins []string
}

type DBConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	MigrationsDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	PoolSize int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// BookingConfig drives the slot display window and booking flow tunables.
type BookingConfig struct {
	DisplayStartHour int
	DisplayEndHour   int
	PageSize         int
	HoldTTL          time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	holdTTL, err := time.ParseDuration(viper.GetString("BOOKING_HOLD_TTL"))
	if err != nil {
		holdTTL = 10 * time.Minute
	}

	displayStart := viper.GetInt("BOOKING_DISPLAY_START_HOUR")
	if displayStart == 0 {
		displayStart = 6
	}
	displayEnd := viper.GetInt("BOOKING_DISPLAY_END_HOUR")
	if displayEnd == 0 {
		displayEnd = 26
	}
	pageSize := viper.GetInt("BOOKING_PAGE_SIZE")
	if pageSize == 0 {
		pageSize = 10
	}

	redisPoolSize := viper.GetInt("REDIS_POOL_SIZE")
	if redisPoolSize == 0 {
		redisPoolSize = 10
	}

	corsOrigins := []string{"*"}
	if raw := viper.GetString("CORS_ALLOWED_ORIGINS"); raw != "" {
		corsOrigins = corsOrigins[:0]
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				corsOrigins = append(corsOrigins, origin)
			}
		}
	}

	migrationsDir := viper.GetString("DB_MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "db/migrations"
	}

	config := &Config{
		App: AppConfig{
			Port:        viper.GetString("APP_PORT"),
			Env:         viper.GetString("APP_ENV"),
			CORSOrigins: corsOrigins,
		},
		DB: DBConfig{
			Host:          viper.GetString("DB_HOST"),
			Port:          viper.GetString("DB_PORT"),
			User:          viper.GetString("DB_USER"),
			Password:      viper.GetString("DB_PASSWORD"),
			Name:          viper.GetString("DB_NAME"),
			MigrationsDir: migrationsDir,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
			PoolSize: redisPoolSize,
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Booking: BookingConfig{
			DisplayStartHour: displayStart,
			DisplayEndHour:   displayEnd,
			PageSize:         pageSize,
			HoldTTL:          holdTTL,
		},
	}

	return config, nil
}
