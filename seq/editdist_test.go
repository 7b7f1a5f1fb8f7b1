package seq

import (
	"testing"

	"github.com/valyala/fastrand"
)

var distanceTests = []struct {
	a, b string
	want int
}{
	{"", "", 0},
	{"", "xyz", 3},
	{"a", "a", 0},
	{"a", "b", 1},
	{"kitten", "sitting", 3},
	{"flaw", "lawn", 2},
	{"abcdef", "abcdef", 0},
	{"abc", "xyz", 3},
	{"αβγδε", "αγε", 2},
	{"日本語", "日本", 1},
	{"gumbo", "gambol", 2},
}

func TestDistance(t *testing.T) {
	for _, test := range distanceTests {
		a, b := Decode([]byte(test.a)), Decode([]byte(test.b))
		if got := Distance(a, b); got != test.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
		if got := Distance(b, a); got != test.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", test.b, test.a, got, test.want)
		}
	}
}

// The bounded variant returns min(distance, k) for every k.
func TestDistanceK(t *testing.T) {
	for _, test := range distanceTests {
		a, b := Decode([]byte(test.a)), Decode([]byte(test.b))
		for k := 0; k <= test.want+3; k++ {
			want := min(test.want, k)
			if got := DistanceK(a, b, k); got != want {
				t.Errorf("DistanceK(%q, %q, %d) = %d, want %d", test.a, test.b, k, got, want)
			}
			if got := DistanceK(b, a, k); got != want {
				t.Errorf("DistanceK(%q, %q, %d) = %d, want %d", test.b, test.a, k, got, want)
			}
		}
	}
}

func TestDistanceProperties(t *testing.T) {
	var rng fastrand.RNG
	rng.Seed(4)
	alphabet := []CodePoint{'a', 'b', 'c', 'ξ'}
	for i := 0; i < 500; i++ {
		x := randCodePoints(&rng, alphabet, int(rng.Uint32n(16)))
		y := randCodePoints(&rng, alphabet, int(rng.Uint32n(16)))
		z := randCodePoints(&rng, alphabet, int(rng.Uint32n(16)))
		dxy := Distance(x, y)
		if got := Distance(y, x); got != dxy {
			t.Fatalf("not symmetric: %d vs %d for %v, %v", got, dxy, x, y)
		}
		lo := len(x) - len(y)
		if lo < 0 {
			lo = -lo
		}
		if dxy < lo || dxy > max(len(x), len(y)) {
			t.Fatalf("Distance(%v, %v) = %d out of bounds", x, y, dxy)
		}
		if dxz, dzy := Distance(x, z), Distance(z, y); dxy > dxz+dzy {
			t.Fatalf("triangle inequality violated: d(x,y)=%d > d(x,z)+d(z,y)=%d", dxy, dxz+dzy)
		}
		k := int(rng.Uint32n(12))
		if got, want := DistanceK(x, y, k), min(dxy, k); got != want {
			t.Fatalf("DistanceK(%v, %v, %d) = %d, want %d", x, y, k, got, want)
		}
	}
}

func BenchmarkDistance(b *testing.B) {
	x, y := benchSequences(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Distance(x, y)
	}
}

func BenchmarkDistanceK(b *testing.B) {
	x, y := benchSequences(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		DistanceK(x, y, 32)
	}
}
