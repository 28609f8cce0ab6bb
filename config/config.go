package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/marcelonyc/nutrition-chat/logger"
	"github.com/marcelonyc/nutrition-chat/models"
)

var DB *gorm.DB

// Config carries everything read from the environment at startup. It is
// built once in main and handed to each component; nothing re-reads env vars
// at request time.
type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret    string
	JWTAlgorithm string
	TokenExpiry  time.Duration

	OllamaModel    string
	OllamaAPIBase  string
	OllamaAPIToken string
	SystemPrompt   string

	SESEmail  string
	AWSRegion string

	AdminUser     string
	AdminEmail    string
	AdminPassword string
}

// Load reads .env (when present) and the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment variables")
	}

	expireMinutes := 1440
	if v := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			expireMinutes = n
		}
	}

	return Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTAlgorithm: getEnv("JWT_ALGORITHM", "HS256"),
		TokenExpiry:  time.Duration(expireMinutes) * time.Minute,

		OllamaModel:    getEnv("OLLAMA_MODEL", "llama3.2:1b"),
		OllamaAPIBase:  getEnv("OLLAMA_API_BASE", "http://localhost:11434"),
		OllamaAPIToken: os.Getenv("OLLAMA_API_TOKEN"),
		SystemPrompt:   getEnv("SYSTEM_PROMPT", "You are a helpful assistant."),

		SESEmail:  os.Getenv("SES_EMAIL"),
		AWSRegion: os.Getenv("AWS_REGION"),

		AdminUser:     os.Getenv("ADMIN_USER"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB connects to postgres and migrates the schema.
func InitDB(cfg Config) {
	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL not set")
	}

	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	sqlDB, err := DB.DB()
	if err != nil {
		logger.Fatal("failed to access database pool", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	err = DB.AutoMigrate(
		&models.User{},
		&models.ChatSession{},
		&models.Message{},
		&models.Ingredient{},
		&models.UserSettings{},
	)
	if err != nil {
		logger.Fatal("AutoMigrate failed", zap.Error(err))
	}

	logger.Info("database ready")
}
