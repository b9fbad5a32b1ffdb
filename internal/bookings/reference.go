package bookings

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
)

// Crockford base32: no I, L, O or U, so references survive being read aloud
const referenceAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const (
	defaultReferencePrefix = "ITECH"
	defaultReferenceLength = 10
)

// ReferenceGenerator produces booking references of the form PREFIX-XXXXXXXXXX.
// Each symbol carries 5 random bits. Storage still enforces uniqueness; the
// generator only makes collisions rare.
type ReferenceGenerator struct {
	prefix string
	length int
	rand   io.Reader
}

func NewReferenceGenerator(prefix string, length int) *ReferenceGenerator {
	return newReferenceGenerator(prefix, length, rand.Reader)
}

func newReferenceGenerator(prefix string, length int, r io.Reader) *ReferenceGenerator {
	prefix = strings.TrimSuffix(strings.TrimSpace(prefix), "-")
	if prefix == "" {
		prefix = defaultReferencePrefix
	}
	if length <= 0 {
		length = defaultReferenceLength
	}
	return &ReferenceGenerator{prefix: prefix, length: length, rand: r}
}

// New returns a fresh reference
func (g *ReferenceGenerator) New() (string, error) {
	buf := make([]byte, g.length)
	if _, err := io.ReadFull(g.rand, buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	var b strings.Builder
	b.Grow(len(g.prefix) + 1 + g.length)
	b.WriteString(g.prefix)
	b.WriteByte('-')
	for _, v := range buf {
		// 256 is a multiple of 32, so the low five bits are uniform
		b.WriteByte(referenceAlphabet[v&0x1f])
	}
	return b.String(), nil
}

// Prefix is the fixed part of every reference, without the separator
func (g *ReferenceGenerator) Prefix() string {
	return g.prefix
}
