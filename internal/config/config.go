package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini      = "gemini"
	ProviderRekognition = "rekognition"
)

type Config struct {
	ServerPort string

	// Provider chọn backend nhận dạng biển số: "gemini" hoặc "rekognition"
	Provider string

	GoogleAPIKey string
	GeminiModel  string

	AWSRegion string
}

// Load đọc cấu hình từ file .env và biến môi trường. Credential của provider
// là bắt buộc: thiếu thì trả về error để main dừng ngay khi khởi động,
// không có giá trị mặc định nhúng trong code.
func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Cảnh báo: Không thể tải file .env: %v", err)
	}

	cfg := &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		Provider:     getEnv("LPR_PROVIDER", ProviderGemini),
		GoogleAPIKey: os.Getenv("GOOGLE_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		AWSRegion:    os.Getenv("AWS_REGION"),
	}

	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GoogleAPIKey == "" {
			return nil, fmt.Errorf("biến môi trường GOOGLE_API_KEY là bắt buộc khi LPR_PROVIDER=%s", ProviderGemini)
		}
	case ProviderRekognition:
		if cfg.AWSRegion == "" {
			return nil, fmt.Errorf("biến môi trường AWS_REGION là bắt buộc khi LPR_PROVIDER=%s", ProviderRekognition)
		}
	default:
		return nil, fmt.Errorf("LPR_PROVIDER không hợp lệ: %q (hỗ trợ: %s, %s)", cfg.Provider, ProviderGemini, ProviderRekognition)
	}

	return cfg, nil
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
