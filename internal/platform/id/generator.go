package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	defaultSize = 16
	maxLength   = 64
)

// Generator creates opaque IDs used to correlate requests across services.
type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct {
	size int
}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{size: defaultSize}
}

func (g *RandomGenerator) NewID() (string, error) {
	size := g.size
	if size <= 0 {
		size = defaultSize
	}
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// Valid reports whether an externally supplied ID is safe to echo back in
// headers and logs: 1 to 64 characters of [A-Za-z0-9_-].
func Valid(v string) bool {
	if v == "" || len(v) > maxLength {
		return false
	}
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
