package config

import (
	"log"
	"os"
	"strconv"

	"github.com/oumarknt31/Restaurant-ai-system/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret []byte

// VIP promotion and discount knobs, loaded in Load()
var (
	VIPSpendThreshold  float64
	VIPOrderThreshold  int
	VIPDiscountPercent int64
)

// Assistant (Ollama) settings
var (
	OllamaURL   string
	OllamaModel string
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("[config] %s=%q is not an integer, using %d", key, v, fallback)
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("[config] %s=%q is not a number, using %v", key, v, fallback)
	}
	return fallback
}

// Load reads .env (if present) and populates the config globals
func Load() {
	_ = godotenv.Load()

	JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_super_secret_2024"))
	VIPSpendThreshold = getEnvFloat("VIP_SPEND_THRESHOLD", 200)
	VIPOrderThreshold = getEnvInt("VIP_ORDER_THRESHOLD", 5)
	VIPDiscountPercent = int64(getEnvInt("VIP_DISCOUNT_PERCENT", 5))
	OllamaURL = getEnv("OLLAMA_URL", "http://localhost:11434")
	OllamaModel = getEnv("OLLAMA_MODEL", "phi3")
}

func InitDB() {
	var err error
	dbPath := getEnv("DB_PATH", "restaurant.db")
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Dish{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated successfully")
}
