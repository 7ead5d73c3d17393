package config

import "os"

type Config struct {
	Port                   string
	Env                    string
	SiteURL                string
	PostgresConnStr        string
	JWTSecret              string
	AdminPasswordHash      string
	CloudinaryCloudName    string
	CloudinaryUploadPreset string
}

func Load() *Config {
	return &Config{
		Port:                   getEnv("PORT", "8080"),
		Env:                    getEnv("ENV", "development"),
		SiteURL:                getEnv("SITE_URL", "http://localhost:8080"),
		PostgresConnStr:        getEnv("POSTGRES_CONN_STR", ""),
		JWTSecret:              getEnv("JWT_SECRET", "supersecretjwtkey"),
		AdminPasswordHash:      getEnv("ADMIN_PASSWORD_HASH", ""),
		CloudinaryCloudName:    getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryUploadPreset: getEnv("CLOUDINARY_UPLOAD_PRESET", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
