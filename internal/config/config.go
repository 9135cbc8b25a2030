package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"taskboard/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	// PostgreSQL connection parameters
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string

	// JWT settings
	SecretKey      string
	Algorithm      string
	AccessTokenTTL time.Duration
}

// Загрузка конфига из env
func Load() *Config {
	_ = godotenv.Load()

	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		logger.Fatal("DB_HOST is not set")
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		logger.Fatal("DB_NAME is not set")
	}

	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		logger.Fatal("DB_USER is not set")
	}

	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		logger.Fatal("DB_PASSWORD is not set")
	}

	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		logger.Fatal("SECRET_KEY is not set")
	}

	// Only the symmetric HS256 scheme is supported; refuse anything else at
	// startup rather than signing tokens with an unexpected algorithm.
	algorithm := os.Getenv("ALGORITHM")
	if algorithm == "" {
		algorithm = "HS256"
	}
	if algorithm != "HS256" {
		logger.Fatal("unsupported token algorithm", "algorithm", algorithm)
	}

	expireMinutes := 30
	if v := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			expireMinutes = n
		}
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		AppPort:        port,
		DBHost:         dbHost,
		DBPort:         dbPort,
		DBName:         dbName,
		DBUser:         dbUser,
		DBPassword:     dbPassword,
		SecretKey:      secret,
		Algorithm:      algorithm,
		AccessTokenTTL: time.Duration(expireMinutes) * time.Minute,
	}
}

// DatabaseDSN assembles the pgx connection string from the discrete DB_* vars.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		url.QueryEscape(c.DBUser),
		url.QueryEscape(c.DBPassword),
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
