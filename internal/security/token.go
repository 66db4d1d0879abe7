package security

import (
	"crypto/rand"
	"math/big"
)

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// InviteTokenLength is the length of invite link tokens; 24 characters over
// a 62-symbol alphabet is ~143 bits of entropy.
const InviteTokenLength = 24

// RandomToken returns a cryptographically secure, unbiased URL-safe token
// of the requested length.
func RandomToken(length int) (string, error) {
	limit := big.NewInt(int64(len(tokenAlphabet)))
	value := make([]byte, length)
	for i := range value {
		pos, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[i] = tokenAlphabet[pos.Int64()]
	}
	return string(value), nil
}
