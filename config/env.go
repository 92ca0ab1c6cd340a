package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string
	Port        string
	ServiceName string
	Vercel      bool

	DatabaseURL   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	StoreDriver   string
	MigrationsDir string

	JWTSecret string
	JWTExpiry time.Duration

	UploadDir     string
	MaxUploadSize int64
	PublicBaseURL string
	PhotoStore    string

	CloudinaryURL       string
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
	MinioPublicURL string

	S3Bucket     string
	S3Region     string
	S3PublicBase string

	RedisURL      string
	RedisAddr     string
	RedisPassword string
	AlertChannel  string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPass     string
	SMTPFrom     string
	AlertEmailTo string

	LogLevel  string
	LogFormat string

	OriginURL      string
	RateLimitLogin string

	// EnvFileLoaded is false when no .env file was found.
	EnvFileLoaded bool
}

var AppConfig *Config

func LoadConfig() *Config {
	loaded := true
	if os.Getenv("VERCEL") == "" {
		if err := godotenv.Load(); err != nil {
			loaded = false
		}
	}

	AppConfig = FromEnv()
	AppConfig.EnvFileLoaded = loaded
	return AppConfig
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() *Config {
	maxUploadSize, _ := strconv.ParseInt(os.Getenv("MAX_UPLOAD_SIZE"), 10, 64)
	if maxUploadSize == 0 {
		maxUploadSize = 5242880
	}

	jwtExpiry, err := time.ParseDuration(getEnv("JWT_EXPIRY", "24h"))
	if err != nil {
		jwtExpiry = 24 * time.Hour
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		smtpPort = 587
	}

	minioSSL, _ := strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	return &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        getEnv("APP_PORT", getEnv("PORT", "8082")),
		ServiceName: getEnv("SERVICE_NAME", "tourist-safety"),
		Vercel:      os.Getenv("VERCEL") != "",

		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "tourist_safety"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		StoreDriver:   getEnv("STORE_DRIVER", "postgres"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "database/migration"),

		JWTSecret: getEnv("JWT_SECRET", "secret"),
		JWTExpiry: jwtExpiry,

		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadSize: maxUploadSize,
		PublicBaseURL: os.Getenv("PUBLIC_BASE_URL"),
		PhotoStore:    getEnv("PHOTO_STORE", "local"),

		CloudinaryURL:       os.Getenv("CLOUDINARY_URL"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),

		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    getEnv("MINIO_BUCKET", "tourist-photos"),
		MinioUseSSL:    minioSSL,
		MinioPublicURL: os.Getenv("MINIO_PUBLIC_URL"),

		S3Bucket:     os.Getenv("S3_BUCKET"),
		S3Region:     getEnv("S3_REGION", "us-east-1"),
		S3PublicBase: os.Getenv("S3_PUBLIC_BASE"),

		RedisURL:      os.Getenv("REDIS_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		AlertChannel:  getEnv("ALERT_CHANNEL", "sos-alerts"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     smtpPort,
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPass:     os.Getenv("SMTP_PASS"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),
		AlertEmailTo: os.Getenv("ALERT_EMAIL_TO"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		OriginURL:      getEnv("ORIGIN_URL", "http://localhost:5173"),
		RateLimitLogin: getEnv("RATE_LIMIT_LOGIN", "10-M"),
	}
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
