package cryptox

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"math/big"
	"strings"
)

// TokenSize256 provides 256 bits of entropy (43 chars base64url). Used for
// refresh tokens.
const TokenSize256 = 32

// GenerateToken creates a random token of size bytes, base64url encoded
// without padding.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// GenerateNumericCode returns a uniformly random decimal code of exactly
// digits characters, leading zeros included.
func GenerateNumericCode(digits int) (string, error) {
	if digits <= 0 || digits > 18 {
		return "", fmt.Errorf("code length must be between 1 and 18, got %d", digits)
	}

	var b strings.Builder
	b.Grow(digits)
	ten := big.NewInt(10)
	for range digits {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("failed to generate code: %w", err)
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	return b.String(), nil
}

// FingerprintToken returns a deterministic SHA-256 fingerprint of a token so
// the raw value never has to be stored. Base64url, 43 chars.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// KeyedFingerprint is FingerprintToken with an HMAC-SHA256 key. Use it for
// low-entropy secrets such as numeric codes, where an unkeyed hash can be
// reversed by enumerating every value.
func KeyedFingerprint(key, token string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(token))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
