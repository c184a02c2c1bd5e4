package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// MergeFile updates the keys in an existing .env file, creating it when
// absent. Keys that are not in values are kept.
func MergeFile(path string, values map[string]string) error {
	current, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read %s: %w", path, err)
		}
		current = map[string]string{}
	}

	for k, v := range values {
		current[k] = v
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create env dir: %w", err)
	}
	if err := godotenv.Write(current, path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return os.Chmod(path, 0o600)
}

// MergeStruct merges the set fields of c into path.
func MergeStruct(path string, c any) error {
	values, err := Values(c)
	if err != nil {
		return err
	}
	return MergeFile(path, values)
}
