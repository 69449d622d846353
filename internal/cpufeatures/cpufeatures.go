// Package cpufeatures reports the AVX-512 feature level of the running
// CPU. poly1305vec has no assembly backend and never branches on this
// package's output; it exists so a caller (or cmd/poly1305bench) can
// report what a native 8-lane backend would have required, keeping
// "what the CPU supports" separate from "which opcodes get selected".
package cpufeatures

import "golang.org/x/sys/cpu"

// Level orders the AVX-512 feature tiers a real vectorized Poly1305
// backend would dispatch on.
type Level uint8

const (
	// LevelNone means the CPU lacks the baseline AVX-512F/BW/DQ/VL set
	// an 8-lane uint64 backend needs.
	LevelNone Level = iota
	// LevelFoundation is AVX-512F/BW/DQ/VL: enough for the 8-lane
	// 64-bit multiply-and-shift sequence poly1305vec's fieldVec
	// emulates in plain Go.
	LevelFoundation
	// LevelIFMA adds AVX-512IFMA, which would let a real backend
	// compute the 52-bit partial products of poly1305vec's schoolbook
	// multiply directly, skipping the radix-2^26 split entirely.
	LevelIFMA
)

func (l Level) String() string {
	switch l {
	case LevelFoundation:
		return "avx512-foundation"
	case LevelIFMA:
		return "avx512-ifma"
	default:
		return "none"
	}
}

// Detect inspects the running CPU and returns the AVX-512 tier it
// supports. It never influences which code path poly1305vec runs;
// the package is informational only.
func Detect() Level {
	if !(cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512DQ && cpu.X86.HasAVX512VL) {
		return LevelNone
	}
	if cpu.X86.HasAVX512IFMA {
		return LevelIFMA
	}
	return LevelFoundation
}
