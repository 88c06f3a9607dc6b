package memory

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/iho/gobank/internal/domain"
)

// NumberGenerator produces random fixed-length digit strings for new
// accounts. Uniqueness is the registry's job; the use case retries on
// collision.
type NumberGenerator struct{}

// NewNumberGenerator creates a new NumberGenerator.
func NewNumberGenerator() *NumberGenerator {
	return &NumberGenerator{}
}

// Generate returns a random string of AccountNumberLength digits.
func (g *NumberGenerator) Generate() string {
	var sb strings.Builder
	sb.Grow(domain.AccountNumberLength)
	for i := 0; i < domain.AccountNumberLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// crypto/rand only fails when the platform source is broken.
			panic(err)
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}
	return sb.String()
}
