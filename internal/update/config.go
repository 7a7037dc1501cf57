package update

import (
	"os"
	"strconv"
	"strings"

	"github.com/sandeepkv93/tasklist/internal/storage"
)

type RuntimeConfig struct {
	Backend      storage.Backend
	DataPath     string
	SQLiteDriver string
	InputLimit   int
	LogFile      string
	AltScreen    bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Backend:      storage.BackendSQLite,
		SQLiteDriver: storage.DriverMattn,
		InputLimit:   256,
		AltScreen:    true,
	}
}

// ResolvedDataPath returns DataPath or the backend's default location.
func (c RuntimeConfig) ResolvedDataPath() string {
	if p := strings.TrimSpace(c.DataPath); p != "" {
		return p
	}
	if c.Backend == storage.BackendFile {
		return ".tasklist.json"
	}
	return ".tasklist.db"
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := storage.Backend(strings.ToLower(strings.TrimSpace(os.Getenv("TASKLIST_BACKEND")))); v.IsValid() {
		cfg.Backend = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKLIST_DATA")); v != "" {
		cfg.DataPath = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKLIST_SQLITE_DRIVER")); storage.IsKnownDriver(v) {
		cfg.SQLiteDriver = v
	}
	if v, ok := getEnvInt("TASKLIST_INPUT_LIMIT"); ok && v > 0 {
		cfg.InputLimit = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKLIST_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	if v, ok := getEnvBool("TASKLIST_ALT_SCREEN"); ok {
		cfg.AltScreen = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
