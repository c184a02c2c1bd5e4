package config

import (
	"os"
	"path/filepath"
)

func GetRuntimePath() string {
	return resolveRuntimePath(os.Getenv("OUTFIT_RUNTIME_PATH"))
}

func GetEnvPath() string {
	return filepath.Join(GetRuntimePath(), ".env")
}

func GetDatabasePath() string {
	return filepath.Join(GetRuntimePath(), "outfit.db")
}

func resolveRuntimePath(path string) string {
	if path == "" {
		path = ".outfit"
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
