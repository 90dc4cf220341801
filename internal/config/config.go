package config

import (
	"os"
	"strconv"
)

// Config holds all environment-provided settings, read once at startup.
type Config struct {
	Token            string
	DBPath           string
	DownloadDir      string
	MaxFreeDownloads int
	PaymentNumber    string
	VIPPrice         string
	Port             int
	AdminChatID      int64
}

// Load reads configuration from the environment. Token may be empty;
// the caller decides whether that is fatal.
func Load() *Config {
	return &Config{
		Token:            os.Getenv("TELEGRAM_BOT_TOKEN"),
		DBPath:           getEnv("DB_PATH", "/data/thor.db"),
		DownloadDir:      getEnv("DOWNLOAD_DIR", "downloads"),
		MaxFreeDownloads: getEnvInt("MAX_FREE_DOWNLOADS", 3),
		PaymentNumber:    getEnv("VODAFONE_CASH_NUMBER", "01012345678"),
		VIPPrice:         getEnv("VIP_PRICE", "100"),
		Port:             getEnvInt("PORT", 5000),
		AdminChatID:      getEnvInt64("ADMIN_CHAT_ID", 0),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
