package env

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// Load reads KEY=VALUE pairs from path (e.g. ".env") into the process environment.
// Variables already set in the environment win. A missing file is not an error.
func Load(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("env: %s: %w", path, err)
}
