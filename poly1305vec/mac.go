package poly1305vec

import "crypto/subtle"

// Sum computes the Poly1305 tag of msg under key and writes it to out.
// key must be exactly KeySize bytes and must never be reused across
// two different messages.
func Sum(out *[TagSize]byte, msg []byte, key []byte) error {
	var e Engine
	if err := e.Init(key); err != nil {
		return err
	}
	if _, err := e.Write(msg); err != nil {
		return err
	}
	e.Sum(out)
	return nil
}

// Verify reports whether tag is the correct Poly1305 authenticator for
// msg under key, in constant time with respect to the comparison.
func Verify(tag *[TagSize]byte, msg []byte, key []byte) bool {
	var sum [TagSize]byte
	if err := Sum(&sum, msg, key); err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(sum[:], tag[:]) == 1
}
