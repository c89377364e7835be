package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadOrGenerateKey reads a base64url secret from path, creating the file with
// size fresh random bytes when it does not exist yet. Used for the password
// pepper and the token signing secret so both survive restarts.
func LoadOrGenerateKey(path string, size int) (string, error) {
	if path == "" {
		return "", errors.New("cryptox: key path is empty")
	}
	path = filepath.Clean(path)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		key := strings.TrimSpace(string(data))
		if key == "" {
			return "", fmt.Errorf("cryptox: key file %s is empty", path)
		}
		return key, nil
	case !errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("cryptox: read key file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("cryptox: create key dir: %w", err)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	key := base64.RawURLEncoding.EncodeToString(buf)

	if err := os.WriteFile(path, []byte(key), 0o600); err != nil {
		return "", fmt.Errorf("cryptox: write key file: %w", err)
	}
	return key, nil
}
