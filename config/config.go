package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Config holds all environment-sourced settings for the server.
type Config struct {
	MongoURI    string
	MongoDBName string

	JWTSecret      string
	JWTAlgorithm   string
	JWTExpiryHours int

	Port string

	StorageType      string // "gridfs", "s3" or "local"
	StorageLocalPath string
	S3Bucket         string
	S3Region         string
	AWSAccessKey     string
	AWSSecretKey     string
}

// Load reads configuration from the environment and applies defaults.
// MONGODB_URI and JWT_SECRET are required.
func Load() (*Config, error) {
	cfg := &Config{
		MongoURI:         os.Getenv("MONGODB_URI"),
		MongoDBName:      getEnv("MONGODB_DB_NAME", "jobtracker"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTAlgorithm:     getEnv("JWT_ALGORITHM", "HS256"),
		JWTExpiryHours:   2,
		Port:             getEnv("PORT", "8080"),
		StorageType:      getEnv("STORAGE_TYPE", "gridfs"),
		StorageLocalPath: getEnv("STORAGE_LOCAL_PATH", "./storage/files"),
		S3Bucket:         os.Getenv("AWS_S3_BUCKET"),
		S3Region:         getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKey:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey:     os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}

	if raw := os.Getenv("JWT_EXPIRY_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			return nil, fmt.Errorf("invalid JWT_EXPIRY_HOURS: %q", raw)
		}
		cfg.JWTExpiryHours = hours
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGODB_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.StorageType == "s3" && cfg.S3Bucket == "" {
		return nil, errors.New("AWS_S3_BUCKET is required for S3 storage")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
