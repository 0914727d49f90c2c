package config

import (
	"errors"
	"os"
	"strings"
)

type Config struct {
	HTTPAddr           string
	DBDSN              string
	JWTSecret          string
	DriveCredentials   string // inline service-account JSON or a path to it
	DriveFolderID      string
	AllowedOrigins     []string
	UsersPath          string
	SuperAdminName     string
	SuperAdminPassword string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:           getenv("HOSTELCORE_HTTP_ADDR", ":8000"),
		DBDSN:              os.Getenv("HOSTELCORE_DB_DSN"),
		JWTSecret:          os.Getenv("HOSTELCORE_JWT_SECRET"),
		DriveCredentials:   os.Getenv("HOSTELCORE_DRIVE_CREDENTIALS"),
		DriveFolderID:      os.Getenv("HOSTELCORE_DRIVE_FOLDER_ID"),
		UsersPath:          getenv("HOSTELCORE_USERS_PATH", "config/users.yaml"),
		SuperAdminName:     getenv("HOSTELCORE_SUPER_ADMIN_NAME", "Paul"),
		SuperAdminPassword: getenv("HOSTELCORE_SUPER_ADMIN_PASSWORD", "1234"),
	}
	if cfg.DBDSN == "" {
		// Hosted deployments commonly inject the DSN this way.
		cfg.DBDSN = os.Getenv("DATABASE_URL")
	}
	if cfg.DBDSN == "" {
		return Config{}, errors.New("HOSTELCORE_DB_DSN (or DATABASE_URL) is not set")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("HOSTELCORE_JWT_SECRET is not set")
	}
	origins := getenv("HOSTELCORE_ALLOWED_ORIGINS", "http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}
	return cfg, nil
}
