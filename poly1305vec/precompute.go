package poly1305vec

// precomp holds every table derived from the clamped r, laid out as a
// handful of named fieldVec slots rather than one flat allocation —
// SIMD alignment is a hardware-backend convenience, not a requirement
// here, and Go gives us no portable way to force 64-byte alignment on
// a struct field anyway.
type precomp struct {
	r, r5   element // scalar r, 5*r (phase B/C)
	rn, rn5 element // r^2, 5*r^2 (only used to fill RN/RN5)

	R, R5     fieldVec // r broadcast to all 8 lanes, and 5*r
	RN, RN5   fieldVec // r^2 broadcast, and 5*r^2 (unused past setup, kept for layout symmetry)
	R8, R85   fieldVec // (r^8, r^7, ..., r^1) across lanes 0..7, and 5* that: final-normalize table
	R8U, R8U5 fieldVec // r^8 broadcast to all 8 lanes, and 5* that: per-superblock iterate table
}

// buildPrecomp clamps r, then derives r^2..r^8 by repeated
// multiplication, collecting the scalar powers into the 8 lanes of R8
// such that lane k holds r^(8-k).
func buildPrecomp(key *[32]byte) precomp {
	var p precomp

	p.r = clampR(key)
	p.r5 = times5(p.r)

	p.rn = mulReduce(p.r, p.r, p.r5) // r^2
	p.rn5 = times5(p.rn)

	p.R = broadcast(p.r)
	p.R5 = broadcast(p.r5)
	p.RN = broadcast(p.rn)
	p.RN5 = broadcast(p.rn5)

	// Walk r^2, r^3, ..., r^8, writing each power into lane (8-power)
	// of R8 so that lane 0 ends up holding r^8 and lane 7 holds r^1.
	pow := p.r
	p.R8[0][7], p.R8[1][7], p.R8[2][7], p.R8[3][7], p.R8[4][7] = pow[0], pow[1], pow[2], pow[3], pow[4]

	for power := 2; power <= 8; power++ {
		pow = mulReduce(pow, p.r, p.r5)
		lane := 8 - power
		p.R8[0][lane], p.R8[1][lane], p.R8[2][lane], p.R8[3][lane], p.R8[4][lane] =
			pow[0], pow[1], pow[2], pow[3], pow[4]
	}

	p.R85 = times5Vec(p.R8)

	// pow now holds r^8 itself (the loop's last iteration). The bulk
	// accumulator carries 8 independent running sums forward one
	// superblock at a time, so the per-superblock iterate step needs
	// the SAME scalar r^8 broadcast into every lane, not the
	// distinct-per-lane R8 table above: R8's staggered powers are only
	// correct as the one-time final collapse, applied exactly once
	// after the last superblock. Using R8 for the iterate step instead
	// of R8U silently miscomputes every message longer than one
	// superblock.
	p.R8U = broadcast(pow)
	p.R8U5 = times5Vec(p.R8U)

	return p
}

// zero overwrites every key-derived value with zero so the compiler
// cannot optimize the write away (see zero.go).
func (p *precomp) zero() {
	zeroElement(&p.r)
	zeroElement(&p.r5)
	zeroElement(&p.rn)
	zeroElement(&p.rn5)
	zeroFieldVec(&p.R)
	zeroFieldVec(&p.R5)
	zeroFieldVec(&p.RN)
	zeroFieldVec(&p.RN5)
	zeroFieldVec(&p.R8)
	zeroFieldVec(&p.R85)
	zeroFieldVec(&p.R8U)
	zeroFieldVec(&p.R8U5)
}
