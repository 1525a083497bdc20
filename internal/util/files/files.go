package files_utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDirectories creates every directory in the list that does not exist yet.
func EnsureDirectories(directories []string) error {
	for _, directory := range directories {
		if _, err := os.Stat(directory); os.IsNotExist(err) {
			if err := os.MkdirAll(directory, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", directory, err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to check directory %s: %w", directory, err)
		}
	}

	return nil
}

// CleanFolder removes everything inside folder without removing the folder itself.
func CleanFolder(folder string) error {
	if _, err := os.Stat(folder); os.IsNotExist(err) {
		return nil
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", folder, err)
	}

	for _, entry := range entries {
		itemPath := filepath.Join(folder, entry.Name())
		if err := os.RemoveAll(itemPath); err != nil {
			return fmt.Errorf("failed to remove %s: %w", itemPath, err)
		}
	}

	return nil
}
