package randomstringgenerator

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"newsdesk/internal/core/domain/user"
)

const tokenBytes = 8

// Generator produces validation codes and replacement passwords as lowercase
// hex strings of 16 characters.
type Generator struct {
	source io.Reader
}

func NewGenerator() *Generator {
	return &Generator{source: rand.Reader}
}

func (g *Generator) GenerateValidationCode() (user.ValidationCode, error) {
	token, err := g.token()
	if err != nil {
		return "", err
	}
	return user.ValidationCode(token), nil
}

func (g *Generator) GeneratePassword() (user.RawPassword, error) {
	token, err := g.token()
	if err != nil {
		return "", err
	}
	return user.RawPassword(token), nil
}

func (g *Generator) token() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := io.ReadFull(g.source, b); err != nil {
		return "", fmt.Errorf("could not read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
