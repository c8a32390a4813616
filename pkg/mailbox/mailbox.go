// Package mailbox generates throwaway mailbox addresses at a given domain.
// The generated local part is an opaque random token, not an allocation
// against any real mail provider.
package mailbox

import (
	"crypto/rand"
	"log"
	mrand "math/rand/v2"
)

const tokenLength = 12

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// New returns a fresh random address at the given domain, e.g. "k3j9x0q2m5p7@example.com".
// No uniqueness guarantee is made, each call just draws a new token.
func New(domain string) string {
	return Token(tokenLength) + "@" + domain
}

// Token returns a random string of n lowercase letters and digits.
// Prefers crypto/rand and falls back to math/rand on failure, it never errors out.
func Token(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		log.Printf("[WARN] crypto rand unavailable, using weak fallback: %v", err)
		for i := range buf {
			buf[i] = byte(mrand.IntN(256))
		}
	}
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(out)
}
