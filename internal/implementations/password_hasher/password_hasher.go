package passwordhasher

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"

	"newsdesk/internal/core/domain/user"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt peppers every password with the application secret before hashing.
// The pepper is an HMAC-SHA256 of the password keyed by the secret, so bcrypt
// always gets 44 bytes whatever the lengths of the password and the secret.
type Bcrypt struct {
	secret string
	cost   int
}

func NewBcrypt(secret string, cost int) *Bcrypt {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{secret: secret, cost: cost}
}

func (h *Bcrypt) HashPassword(password user.RawPassword) (user.PasswordHash, error) {
	hash, err := bcrypt.GenerateFromPassword(h.peppered(password), h.cost)
	if err != nil {
		return "", err
	}
	return user.PasswordHash(hash), nil
}

func (h *Bcrypt) ValidatePassword(password user.RawPassword, hash user.PasswordHash) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), h.peppered(password)) == nil
}

func (h *Bcrypt) peppered(password user.RawPassword) []byte {
	mac := hmac.New(sha256.New, []byte(h.secret))
	mac.Write([]byte(password))
	sum := mac.Sum(nil)
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(encoded, sum)
	return encoded
}
