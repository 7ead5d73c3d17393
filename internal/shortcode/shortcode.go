// Package shortcode generates the public short codes for links.
package shortcode

import "crypto/rand"

const (
	// Length of every generated code.
	Length = 6

	alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// New returns a random 6-character lowercase base-36 code. Uniqueness is not
// checked here; the store's unique index rejects collisions and callers
// regenerate on that rejection.
func New() string {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand.Read does not fail on supported platforms.
		panic(err)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf)
}
