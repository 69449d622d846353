package poly1305vec

import "encoding/binary"

// mask26 isolates the low 26 bits of a limb.
const mask26 = (1 << 26) - 1

// element is a 130-bit nonnegative integer in five 26-bit limbs,
//
//	v = l[0] + l[1]*2^26 + l[2]*2^52 + l[3]*2^78 + l[4]*2^104
//
// Limbs may exceed 2^26 between carry passes; carry() restores the
// bound. This mirrors the carry-chain style of
// FiloSottile's edwards25519 FieldElement, scaled from radix-2^51/5-limb
// GF(2^255-19) down to radix-2^26/5-limb F_(2^130-5).
type element [5]uint64

// carry runs the exact seven-step fixup sequence required after any
// full multiply. The pairing order is load-bearing: it is what
// guarantees every limb ends up <= 2^26-1.
func (v *element) carry() *element {
	c := v[0] >> 26
	v[0] &= mask26
	v[1] += c

	c = v[3] >> 26
	v[3] &= mask26
	v[4] += c

	c = v[1] >> 26
	v[1] &= mask26
	v[2] += c

	c = v[4] >> 26
	v[4] &= mask26
	v[0] += c * 5

	c = v[2] >> 26
	v[2] &= mask26
	v[3] += c

	c = v[0] >> 26
	v[0] &= mask26
	v[1] += c

	c = v[3] >> 26
	v[3] &= mask26
	v[4] += c

	return v
}

// split26 decomposes a little-endian 128-bit integer (lo, hi) into five
// 26-bit limbs.
func split26(lo, hi uint64) element {
	return element{
		lo & mask26,
		(lo >> 26) & mask26,
		((lo >> 52) | (hi << 12)) & mask26,
		(hi >> 14) & mask26,
		(hi >> 40) & mask26,
	}
}

// clampR applies the RFC 8439 clamping mask to the first 16 bytes of a
// Poly1305 key and returns the clamped value split into limbs.
func clampR(key *[32]byte) element {
	lo := binary.LittleEndian.Uint64(key[0:8])
	hi := binary.LittleEndian.Uint64(key[8:16])
	lo &= 0x0ffffffc0fffffff
	hi &= 0x0ffffffc0ffffffc
	return split26(lo, hi)
}

// times5 returns 5*v, limb-wise, unreduced (the caller is expected to
// treat this as a precomputed table entry, not a normalized element).
func times5(v element) element {
	return element{v[0] * 5, v[1] * 5, v[2] * 5, v[3] * 5, v[4] * 5}
}

// decodeBlock decodes a full 16-byte Poly1305 block into limbs with the
// implicit 2^128 bit set (bit 24 of limb 4).
func decodeBlock(b *[16]byte) element {
	lo := binary.LittleEndian.Uint64(b[0:8])
	hi := binary.LittleEndian.Uint64(b[8:16])
	e := split26(lo, hi)
	e[4] |= 1 << 24
	return e
}

// decodePartialBlock decodes the final 1..15 bytes of a message,
// zero-padded to 16 bytes, with the pad bit placed at bit offset
// rem*8 instead of the full-block's 2^128 position.
func decodePartialBlock(buf *[16]byte, rem int) element {
	lo := binary.LittleEndian.Uint64(buf[0:8])
	hi := binary.LittleEndian.Uint64(buf[8:16])
	e := split26(lo, hi)
	bit := rem * 8
	limbIdx := bit / 26
	bitInLimb := uint(bit % 26)
	e[limbIdx] |= 1 << bitInLimb
	return e
}

// mulReduce computes (a*r) mod p for scalar 5-limb elements, using the
// standard schoolbook cross-multiply with the high cross-terms folded
// by 5 (r5 = 5*r, precomputed by the caller).
func mulReduce(a, r, r5 element) element {
	var t [5]uint64

	t[0] = a[0]*r[0] + a[1]*r5[4] + a[2]*r5[3] + a[3]*r5[2] + a[4]*r5[1]
	t[1] = a[0]*r[1] + a[1]*r[0] + a[2]*r5[4] + a[3]*r5[3] + a[4]*r5[2]
	t[2] = a[0]*r[2] + a[1]*r[1] + a[2]*r[0] + a[3]*r5[4] + a[4]*r5[3]
	t[3] = a[0]*r[3] + a[1]*r[2] + a[2]*r[1] + a[3]*r[0] + a[4]*r5[4]
	t[4] = a[0]*r[4] + a[1]*r[3] + a[2]*r[2] + a[3]*r[1] + a[4]*r[0]

	e := element(t)
	e.carry()
	return e
}

// addAssign adds b into a, limb-wise, without carrying.
func (a *element) addAssign(b element) {
	a[0] += b[0]
	a[1] += b[1]
	a[2] += b[2]
	a[3] += b[3]
	a[4] += b[4]
}
