package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file. ENV_PATH overrides
// the default path and must then exist; a missing file at the default path is
// skipped silently.
func LoadDotEnv(defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	explicit := envPath != ""
	if !explicit {
		envPath = defaultPath
	}

	if err := godotenv.Load(envPath); err != nil {
		if explicit {
			slog.Error("Failed to load environment variables", "path", envPath, "error", err)
			return err
		}
		slog.Debug("Skipping .env ...", "path", envPath)
	}

	return nil
}
