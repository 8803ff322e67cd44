package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration read from the environment.
type Config struct {
	MongoURI        string
	MongoDatabase   string
	Port            string
	JWTSecret       string
	TokenTTL        time.Duration
	BcryptCost      int
	CORSAllowOrigin []string
}

// Load reads configuration from environment variables with sensible defaults.
// Callers load .env files beforehand (godotenv in main).
func Load() Config {
	ttlHours := getInt("TOKEN_TTL_HOURS", 24)
	return Config{
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:   getEnv("MONGO_DATABASE", "jobseeker"),
		Port:            getEnv("API_PORT", "8080"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		TokenTTL:        time.Duration(ttlHours) * time.Hour,
		BcryptCost:      getInt("BCRYPT_COST", 0),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173")),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getInt(key string, def int) int {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return n
}

func splitAndTrim(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
