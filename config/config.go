package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// TeamtailorConfig holds the external ATS connection settings.
type TeamtailorConfig struct {
	APIURL      string
	APIKey      string
	JobIDFrench string
	JobIDDutch  string
}

type AdminConfig struct {
	Email        string
	PasswordHash string
}

type AppConfig struct {
	Port           string
	Database       DatabaseConfig
	Teamtailor     TeamtailorConfig
	Admin          AdminConfig
	JWTSecret      string
	AllowedOrigins []string
	Environment    string
}

func GetDatabaseConfig() DatabaseConfig {
	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	password := getEnv("DB_PASSWORD", "")

	if password == "" {
		fmt.Println("⚠️  Warning: DB_PASSWORD environment variable is not set.")
		fmt.Println("   Contact messages will not be stored until it is configured.")
	}

	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     port,
		User:     getEnv("DB_USER", "postgres"),
		Password: password,
		DBName:   getEnv("DB_NAME", "rttsite"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

func GetTeamtailorConfig() TeamtailorConfig {
	key := getEnv("TEAMTAILOR_API_KEY", "")
	if key == "" {
		fmt.Println("⚠️  Warning: TEAMTAILOR_API_KEY environment variable is not set.")
		fmt.Println("   Application submissions will be rejected by the ATS.")
	}

	return TeamtailorConfig{
		APIURL:      getEnv("TEAMTAILOR_API_URL", "https://api.teamtailor.com"),
		APIKey:      key,
		JobIDFrench: getEnv("TEAMTAILOR_JOB_ID_FRENCH", "6450861"),
		JobIDDutch:  getEnv("TEAMTAILOR_JOB_ID_DUTCH", "6863846"),
	}
}

func GetAppConfig() AppConfig {
	return AppConfig{
		Port:       getEnv("PORT", "8081"),
		Database:   GetDatabaseConfig(),
		Teamtailor: GetTeamtailorConfig(),
		Admin: AdminConfig{
			Email:        getEnv("ADMIN_EMAIL", "admin@rtt-commerce.com"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key"),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "https://rtt-commerce.com,https://www.rtt-commerce.com")),
		Environment:    getEnv("ENVIRONMENT", "development"),
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
