package par

import (
	"math/rand"
	"testing"
)

func TestFilterKeepsOnlyMatchingInOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(56))
	const n = 15000
	in := make([]uint32, n)
	for i := range in {
		in[i] = uint32(i)
	}
	rng.Shuffle(n, func(i, j int) { in[i], in[j] = in[j], in[i] })

	pred := func(v uint32) bool { return v%3 == 0 }
	got := Filter(in, 4, 512, pred)

	var want []uint32
	for _, v := range in {
		if pred(v) {
			want = append(want, v)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFilterEmptyInput(t *testing.T) {
	if got := Filter(nil, 4, 512, func(uint32) bool { return true }); got != nil {
		t.Fatalf("Filter(nil, ...) = %v, want nil", got)
	}
}

func TestFilterNoneMatch(t *testing.T) {
	in := []uint32{1, 2, 3, 4, 5}
	got := Filter(in, 2, 2, func(uint32) bool { return false })
	if got != nil {
		t.Fatalf("Filter with always-false pred = %v, want nil", got)
	}
}

func TestFilterAllMatch(t *testing.T) {
	in := []uint32{1, 2, 3, 4, 5}
	got := Filter(in, 2, 2, func(uint32) bool { return true })
	if len(got) != len(in) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(in))
	}
	for i := range in {
		if got[i] != in[i] {
			t.Fatalf("got[%d] = %d, want %d", i, got[i], in[i])
		}
	}
}
