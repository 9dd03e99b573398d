package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

func GenerateUniqueHash() string {
	currentTime := time.Now().UnixNano()
	randomBytes := make([]byte, 16)
	_, err := rand.Read(randomBytes)
	if err != nil {
		panic("random number generator failed")
	}

	hashInput := append([]byte(fmt.Sprintf("%d", currentTime)), randomBytes...)
	hash := sha256.Sum256(hashInput)
	return hex.EncodeToString(hash[:])
}

// DecodeJSON is a convenience function that decodes JSON from an io.Reader into a destination object.
func DecodeJSON(r io.Reader, dest interface{}) error {
	decoder := json.NewDecoder(r)
	return decoder.Decode(dest)
}

// EnvOr returns the trimmed env value or def when empty.
func EnvOr(key, def string) string {
	v := strings.TrimSpace(strings.Trim(os.Getenv(key), `"`))
	if v == "" {
		return def
	}
	return v
}

// EnvIntOr returns the parsed int env value or def on empty/parse failure.
func EnvIntOr(key string, def int) int {
	v := EnvOr(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// EnvFloatOr returns the parsed float env value or def on empty/parse failure.
func EnvFloatOr(key string, def float64) float64 {
	v := EnvOr(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
