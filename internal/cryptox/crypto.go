// Package cryptox implements the credential hasher: a salted argon2id digest
// of account passwords and its verification.
package cryptox

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"golang.org/x/crypto/argon2"
)

// argon2id parameters. Changing any of them invalidates every stored hash.
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	argon2KeyLen  = 32

	// SaltLen is the length of a freshly generated account salt.
	SaltLen = 16
)

// NewSalt returns a cryptographically random salt. It is generated once per
// account at sign-up and never regenerated.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltLen)
}

// HashPassword derives the stored password hash for the given salt.
// The result is a pure function of its inputs.
func HashPassword(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
}

// VerifyPassword recomputes HashPassword(password, salt) and compares it
// with expected.
func VerifyPassword(password, salt, expected []byte) bool {
	candidate := HashPassword(password, salt)
	defer common.WipeByteArray(candidate)
	return subtle.ConstantTimeCompare(candidate, expected) == 1
}
