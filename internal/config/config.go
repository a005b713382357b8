package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds application level configuration loaded from environment variables
type Config struct {
	ServerPort         string
	GinMode            string
	DB                 *DBConfig
	JWTSecret          string
	JWTExpirationHours int64
	CORSAllowedOrigins []string
	InitialAdmin       *AdminSeed
}

// AdminSeed describes the admin account created at startup when configured
type AdminSeed struct {
	Name        string
	Email       string
	PhoneNumber string
	Password    string
}

// Load builds Config from the environment. A missing JWT_SECRET_KEY or database
// setting is an error; everything else has a default.
func Load() (*Config, error) {
	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET_KEY not set in environment")
	}

	dbCfg, err := LoadDBConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		GinMode:            os.Getenv("GIN_MODE"),
		DB:                 dbCfg,
		JWTSecret:          jwtSecret,
		JWTExpirationHours: int64(getEnvInt("JWT_EXPIRATION_HOURS", 24)),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	if email := os.Getenv("INITIAL_ADMIN_EMAIL"); email != "" {
		cfg.InitialAdmin = &AdminSeed{
			Name:        getEnv("INITIAL_ADMIN_NAME", "Administrator"),
			Email:       email,
			PhoneNumber: os.Getenv("INITIAL_ADMIN_PHONE"),
			Password:    os.Getenv("INITIAL_ADMIN_PASSWORD"),
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
