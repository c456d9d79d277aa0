package helpers

import (
	"crypto/rand"
)

// tokenAlphabet omits 0, O, I and l to keep tokens unambiguous when read
// aloud or typed. 58 symbols over 22 positions is ~128 bits of entropy.
const tokenAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const ShareTokenLength = 22

// NewShareToken returns a fixed-length unguessable token drawn uniformly
// from tokenAlphabet.
func NewShareToken() (string, error) {
	out := make([]byte, 0, ShareTokenLength)
	buf := make([]byte, 32)
	// Rejection sampling keeps the draw uniform: 232 is the largest
	// multiple of 58 that fits in a byte.
	for len(out) < ShareTokenLength {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if b >= 232 {
				continue
			}
			out = append(out, tokenAlphabet[int(b)%len(tokenAlphabet)])
			if len(out) == ShareTokenLength {
				break
			}
		}
	}
	return string(out), nil
}
