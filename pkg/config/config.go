package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string

	JWTSecret     string
	JWTExpiry     int64
	OfficerSecret string

	FirestoreProject string

	StorageBackend  string // "local" or "gcs"
	StorageBucket   string
	CredentialsPath string
	UploadDir       string

	AnalyzerCommand string
	AnalyzerScript  string
	AnalyzerTimeout int64 // seconds

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		JWTSecret:     getEnv("JWT_SECRET", "your-secret-key"),
		JWTExpiry:     getEnvAsInt64("JWT_EXPIRY", 7*24*60*60), // 7 days
		OfficerSecret: getEnv("OFFICER_SECRET", ""),

		FirestoreProject: getEnv("FIRESTORE_PROJECT_ID", ""),

		StorageBackend:  getEnv("STORAGE_BACKEND", "local"),
		StorageBucket:   getEnv("STORAGE_BUCKET", ""),
		CredentialsPath: getEnv("GOOGLE_CREDENTIALS_PATH", ""),
		UploadDir:       getEnv("UPLOAD_DIR", "./uploads"),

		AnalyzerCommand: getEnv("ANALYZER_COMMAND", "python3"),
		AnalyzerScript:  getEnv("ANALYZER_SCRIPT", "./ml/detect_potholes.py"),
		AnalyzerTimeout: getEnvAsInt64("ANALYZER_TIMEOUT", 60),

		SMTPHost: getEnv("SMTP_HOST", ""),
		SMTPPort: getEnvAsInt("SMTP_PORT", 587),
		SMTPUser: getEnv("SMTP_USER", ""),
		SMTPPass: getEnv("SMTP_PASS", ""),
		MailFrom: getEnv("MAIL_FROM", ""),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.Atoi(value)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
