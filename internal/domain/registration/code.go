package registration

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 6
)

// CodeGenerator does not check the store; collisions are detected on insert.
type CodeGenerator interface {
	Generate(prefix string) (string, error)
}

type RandomCodeGenerator struct{}

func NewRandomCodeGenerator() *RandomCodeGenerator {
	return &RandomCodeGenerator{}
}

func (g *RandomCodeGenerator) Generate(prefix string) (string, error) {
	var b strings.Builder
	b.Grow(len(prefix) + 1 + codeLength)
	b.WriteString(prefix)
	b.WriteByte('-')

	alphabetSize := big.NewInt(int64(len(codeAlphabet)))
	for i := 0; i < codeLength; i++ {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		b.WriteByte(codeAlphabet[n.Int64()])
	}
	return b.String(), nil
}
