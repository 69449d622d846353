package poly1305vec

import "testing"

func TestBroadcastFillsAllLanes(t *testing.T) {
	e := element{1, 2, 3, 4, 5}
	v := broadcast(e)
	for i := 0; i < 5; i++ {
		for k := 0; k < lanes; k++ {
			if v[i][k] != e[i] {
				t.Fatalf("broadcast lane %d limb %d = %d, want %d", k, i, v[i][k], e[i])
			}
		}
	}
}

func TestSetLane0AndLane0RoundTrip(t *testing.T) {
	e := element{9, 8, 7, 6, 5}
	v := setLane0(e)
	if got := v.lane0(); got != e {
		t.Fatalf("lane0(setLane0(e)) = %v, want %v", got, e)
	}
	for i := 0; i < 5; i++ {
		for k := 1; k < lanes; k++ {
			if v[i][k] != 0 {
				t.Fatalf("setLane0 left lane %d limb %d = %d, want 0", k, i, v[i][k])
			}
		}
	}
}

func TestHorizontalFoldSumsAllLanes(t *testing.T) {
	var v fieldVec
	for i := 0; i < 5; i++ {
		for k := 0; k < lanes; k++ {
			v[i][k] = uint64(k + 1)
		}
	}
	v.horizontalFold()
	want := uint64(1 + 2 + 3 + 4 + 5 + 6 + 7 + 8)
	for i := 0; i < 5; i++ {
		if v[i][0] != want {
			t.Fatalf("horizontalFold limb %d lane 0 = %d, want %d", i, v[i][0], want)
		}
	}
}

func TestMulVecMatchesScalarMulReduceWhenBroadcast(t *testing.T) {
	a := element{100, 200, 300, 400, 500}
	r := element{7, 11, 13, 17, 19}
	r5 := times5(r)

	scalar := mulReduce(a, r, r5)

	av := broadcast(a)
	rv := broadcast(r)
	r5v := broadcast(r5)
	vec := mulVec(av, rv, r5v)

	for k := 0; k < lanes; k++ {
		for i := 0; i < 5; i++ {
			if vec[i][k] != scalar[i] {
				t.Fatalf("lane %d limb %d = %d, want %d", k, i, vec[i][k], scalar[i])
			}
		}
	}
}

func TestMulAddVecAddsEBeforeCarry(t *testing.T) {
	a := element{1, 0, 0, 0, 0}
	r := element{1, 0, 0, 0, 0} // r == 1
	r5 := times5(r)

	av := broadcast(a)
	rv := broadcast(r)
	r5v := broadcast(r5)
	var ev fieldVec
	ev[0][0] = 41

	got := mulAddVec(av, rv, r5v, ev)
	// a*1 + e == 1 + 41 == 42 in lane 0, limb 0.
	if got[0][0] != 42 {
		t.Fatalf("mulAddVec lane 0 limb 0 = %d, want 42", got[0][0])
	}
	// every other lane only has a*1 == 1, no e contribution.
	if got[0][1] != 1 {
		t.Fatalf("mulAddVec lane 1 limb 0 = %d, want 1", got[0][1])
	}
}
