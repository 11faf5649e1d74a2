package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	CORS     CORSConfig
	Log      LogConfig
	Mail     MailConfig
	Storage  StorageConfig
	Prayer   PrayerConfig
	Quran    QuranConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// MailConfig configures the outbound mail transport.
type MailConfig struct {
	APIKey      string
	FromAddress string
	FromName    string
	Timeout     time.Duration
	Concurrency int
}

// StorageConfig configures the object store used for uploaded media.
type StorageConfig struct {
	Bucket        string
	Region        string
	KeyPrefix     string
	PublicBaseURL string
	MaxBookImages int
}

// PrayerConfig configures the upstream prayer-time API and its cache.
type PrayerConfig struct {
	BaseURL       string
	DefaultMethod int
	Timeout       time.Duration
	CacheTTL      time.Duration
}

// QuranConfig configures the upstream Quran-text API and its cache.
type QuranConfig struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{
		Secret:     v.GetString("JWT_SECRET"),
		Expiration: parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
		Issuer:     v.GetString("JWT_ISSUER"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Mail = MailConfig{
		APIKey:      v.GetString("MAIL_API_KEY"),
		FromAddress: v.GetString("MAIL_FROM_ADDRESS"),
		FromName:    v.GetString("MAIL_FROM_NAME"),
		Timeout:     parseDuration(v.GetString("MAIL_TIMEOUT"), 15*time.Second),
		Concurrency: v.GetInt("MAIL_CONCURRENCY"),
	}

	maxImages := v.GetInt("STORAGE_MAX_BOOK_IMAGES")
	if maxImages <= 0 {
		maxImages = 15
	}
	cfg.Storage = StorageConfig{
		Bucket:        v.GetString("STORAGE_BUCKET"),
		Region:        v.GetString("STORAGE_REGION"),
		KeyPrefix:     v.GetString("STORAGE_KEY_PREFIX"),
		PublicBaseURL: v.GetString("STORAGE_PUBLIC_BASE_URL"),
		MaxBookImages: maxImages,
	}

	cfg.Prayer = PrayerConfig{
		BaseURL:       v.GetString("PRAYER_API_BASE_URL"),
		DefaultMethod: v.GetInt("PRAYER_API_METHOD"),
		Timeout:       parseDuration(v.GetString("PRAYER_API_TIMEOUT"), 10*time.Second),
		CacheTTL:      parseDuration(v.GetString("PRAYER_CACHE_TTL"), 30*time.Minute),
	}

	cfg.Quran = QuranConfig{
		BaseURL:  v.GetString("QURAN_API_BASE_URL"),
		Timeout:  parseDuration(v.GetString("QURAN_API_TIMEOUT"), 10*time.Second),
		CacheTTL: parseDuration(v.GetString("QURAN_CACHE_TTL"), 24*time.Hour),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "masjid")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")
	v.SetDefault("JWT_ISSUER", "masjid-api")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("MAIL_API_KEY", "")
	v.SetDefault("MAIL_FROM_ADDRESS", "noreply@masjid-bouraoui.org")
	v.SetDefault("MAIL_FROM_NAME", "Masjid Imam Malik")
	v.SetDefault("MAIL_TIMEOUT", "15s")
	v.SetDefault("MAIL_CONCURRENCY", 8)

	v.SetDefault("STORAGE_BUCKET", "")
	v.SetDefault("STORAGE_REGION", "eu-west-1")
	v.SetDefault("STORAGE_KEY_PREFIX", "uploads")
	v.SetDefault("STORAGE_PUBLIC_BASE_URL", "")
	v.SetDefault("STORAGE_MAX_BOOK_IMAGES", 15)

	v.SetDefault("PRAYER_API_BASE_URL", "https://api.aladhan.com/v1")
	v.SetDefault("PRAYER_API_METHOD", 3)
	v.SetDefault("PRAYER_API_TIMEOUT", "10s")
	v.SetDefault("PRAYER_CACHE_TTL", "30m")

	v.SetDefault("QURAN_API_BASE_URL", "https://api.alquran.cloud/v1")
	v.SetDefault("QURAN_API_TIMEOUT", "10s")
	v.SetDefault("QURAN_CACHE_TTL", "24h")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
