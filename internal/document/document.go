package document

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// Load reads the file at path as UTF-8 text.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s is not valid UTF-8", path)
	}
	return string(data), nil
}

// Store writes content back to path. The write is not atomic; a
// failure part-way through can leave the file truncated.
func Store(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Size returns the length of the document in characters, not bytes.
func Size(doc string) int {
	return utf8.RuneCountInString(doc)
}
