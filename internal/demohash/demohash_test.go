package demohash

import "testing"

func TestFastRangeBounds(t *testing.T) {
	for _, n := range []uint32{0, 1, 2, 100, 1 << 20} {
		for _, h := range []uint64{0, 1, ^uint64(0), 0xDEADBEEF} {
			got := FastRange(h, n)
			if n == 0 {
				if got != 0 {
					t.Errorf("FastRange(%#x, 0) = %d, want 0", h, got)
				}
				continue
			}
			if got >= n {
				t.Errorf("FastRange(%#x, %d) = %d, want < %d", h, n, got, n)
			}
		}
	}
}

func TestPrioritiesDeterministic(t *testing.T) {
	a := Priorities(1000, 500, 42)
	b := Priorities(1000, 500, 42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %d != %d across identical calls", i, a[i], b[i])
		}
		if a[i] >= 500 {
			t.Fatalf("index %d: priority %d >= spread 500", i, a[i])
		}
	}
}

func TestPrioritiesDifferentSeedsDiverge(t *testing.T) {
	a := Priorities(1000, 1_000_000, 1)
	b := Priorities(1000, 1_000_000, 2)
	diff := 0
	for i := range a {
		if a[i] != b[i] {
			diff++
		}
	}
	if diff == 0 {
		t.Fatal("different seeds produced identical priority assignments")
	}
}

func TestChecksum128Deterministic(t *testing.T) {
	lo1, hi1 := Checksum128([]byte("hello world"))
	lo2, hi2 := Checksum128([]byte("hello world"))
	if lo1 != lo2 || hi1 != hi2 {
		t.Fatalf("Checksum128 not deterministic: (%d,%d) != (%d,%d)", lo1, hi1, lo2, hi2)
	}
	lo3, hi3 := Checksum128([]byte("hello worlD"))
	if lo1 == lo3 && hi1 == hi3 {
		t.Fatal("Checksum128 collided on a single-byte change (suspicious, not strictly impossible)")
	}
}
