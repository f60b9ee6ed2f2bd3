package common

import (
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Folders FolderConfig
	Engine  EngineConfig
	LogPath string
}

// FolderConfig holds the working directories and the ledger location.
type FolderConfig struct {
	InboxDir   string
	ArchiveDir string
	LedgerPath string
}

// EngineConfig holds extraction tunables.
type EngineConfig struct {
	SearchWindow int
	MaxPages     int
	Tolerance    string // decimal string, e.g. "0.02"
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Folders: FolderConfig{
			InboxDir:   getEnv("INVOICE_INBOX_DIR", "./new"),
			ArchiveDir: getEnv("INVOICE_ARCHIVE_DIR", "./archive"),
			LedgerPath: getEnv("INVOICE_LEDGER_PATH", "./tax_records.xlsx"),
		},
		Engine: EngineConfig{
			SearchWindow: getEnvAsInt("INVOICE_SEARCH_WINDOW", 80),
			MaxPages:     getEnvAsInt("INVOICE_MAX_PAGES", 3),
			Tolerance:    getEnv("INVOICE_AMOUNT_TOLERANCE", "0.02"),
		},
		LogPath: getEnv("INVOICE_LOG_PATH", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
