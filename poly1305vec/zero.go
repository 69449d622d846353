package poly1305vec

import "runtime"

// zeroElement overwrites a scalar field element with zero. runtime.KeepAlive
// pins the write past the point where an optimizing compiler might
// otherwise conclude the value is dead and drop the store.
func zeroElement(e *element) {
	for i := range e {
		e[i] = 0
	}
	runtime.KeepAlive(e)
}

// zeroFieldVec overwrites every lane of every limb with zero.
func zeroFieldVec(v *fieldVec) {
	for i := range v {
		for k := range v[i] {
			v[i][k] = 0
		}
	}
	runtime.KeepAlive(v)
}

// zeroBytes overwrites a byte buffer with zero.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
