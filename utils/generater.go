package utils

import (
	"crypto/rand"
	"math/big"
)

const credentialChars = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789"

// GenerateCredential returns an 8-character random credential for a
// pharmacist account. The plaintext is shown once for manual distribution;
// only its bcrypt hash is persisted. Ambiguous characters (0/O, 1/l) are
// excluded from the alphabet.
func GenerateCredential() string {
	b := make([]byte, 8)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(credentialChars))))
		if err != nil {
			// crypto/rand failing means no randomness source at all
			panic(err)
		}
		b[i] = credentialChars[n.Int64()]
	}
	return string(b)
}
