// Command poly1305bench measures poly1305vec throughput and, with
// -check, cross-validates its tags against golang.org/x/crypto/poly1305
// before benchmarking.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/poly1305"

	"github.com/sneller-crypto/poly1305vec/internal/cpufeatures"
	"github.com/sneller-crypto/poly1305vec/poly1305vec"
)

func fatalf(f string, args ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
	os.Exit(1)
}

func check(size int) error {
	key := make([]byte, poly1305vec.KeySize)
	msg := make([]byte, size)
	if _, err := rand.Read(key); err != nil {
		return err
	}
	if _, err := rand.Read(msg); err != nil {
		return err
	}

	var got [poly1305vec.TagSize]byte
	if err := poly1305vec.Sum(&got, msg, key); err != nil {
		return err
	}

	var keyArr [32]byte
	copy(keyArr[:], key)
	want := poly1305.New(&keyArr)
	want.Write(msg)
	var wantTag [poly1305vec.TagSize]byte
	want.Sum(wantTag[:0])

	if got != wantTag {
		return fmt.Errorf("mismatch at size %d: got %x want %x", size, got, wantTag)
	}
	return nil
}

func bench(size int, dur time.Duration) float64 {
	key := make([]byte, poly1305vec.KeySize)
	msg := make([]byte, size)
	rand.Read(key)
	rand.Read(msg)

	var tag [poly1305vec.TagSize]byte
	deadline := time.Now().Add(dur)
	var min time.Duration
	for time.Now().Before(deadline) {
		start := time.Now()
		if err := poly1305vec.Sum(&tag, msg, key); err != nil {
			fatalf("Sum: %s", err)
		}
		d := time.Since(start)
		if min == 0 || d < min {
			min = d
		}
	}
	return float64(size) / min.Seconds() / 1e9
}

func main() {
	var (
		size     int
		seconds  float64
		runCheck bool
	)
	flag.IntVar(&size, "size", 1<<20, "message size in bytes")
	flag.Float64Var(&seconds, "t", 1.0, "benchmark duration in seconds")
	flag.BoolVar(&runCheck, "check", true, "cross-validate against x/crypto/poly1305 for several sizes first")
	flag.Parse()

	fmt.Printf("cpu: %s\n", cpufeatures.Detect())

	if runCheck {
		for _, n := range []int{0, 1, 15, 16, 17, 128, 129, 1024, 1<<20 + 7} {
			if err := check(n); err != nil {
				fatalf("self-check failed: %s", err)
			}
		}
		fmt.Println("self-check: ok")
	}

	gibps := bench(size, time.Duration(seconds*float64(time.Second)))
	fmt.Printf("%dB %.3g GB/s\n", size, gibps)
}
