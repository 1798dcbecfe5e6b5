package growable

import "testing"

func TestAppendAndSlots(t *testing.T) {
	a := New()
	defer a.Release()

	for i := Elem(0); i < 10; i++ {
		a.Append(i)
	}
	if a.Size() != 10 {
		t.Fatalf("Size() = %d, want 10", a.Size())
	}
	for i, v := range a.Slots() {
		if v != Elem(i) {
			t.Errorf("Slots()[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestReserveThenSetAtWithinCapacity(t *testing.T) {
	a := New()
	defer a.Release()

	a.Append(1)
	a.Append(2)
	base := a.Size()
	a.Reserve(5)
	for i := 0; i < 5; i++ {
		a.SetAt(base+i, Elem(100+i))
	}
	a.SetSize(base + 5)

	want := []Elem{1, 2, 100, 101, 102, 103, 104}
	got := a.Slots()
	if len(got) != len(want) {
		t.Fatalf("len(Slots()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Slots()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestReserveGrowsPastInitialCapacity(t *testing.T) {
	a := New()
	defer a.Release()

	const n = 1000
	a.Reserve(n)
	for i := 0; i < n; i++ {
		a.SetAt(i, Elem(i))
	}
	a.SetSize(n)

	if a.Size() != n {
		t.Fatalf("Size() = %d, want %d", a.Size(), n)
	}
	for i, v := range a.Slots() {
		if v != Elem(i) {
			t.Fatalf("Slots()[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestResetKeepsCapacity(t *testing.T) {
	a := New()
	defer a.Release()

	a.Append(1)
	a.Append(2)
	capBefore := cap(a.buf)
	a.Reset()
	if a.Size() != 0 {
		t.Fatalf("Size() after Reset() = %d, want 0", a.Size())
	}
	if cap(a.buf) != capBefore {
		t.Fatalf("cap changed across Reset(): before %d, after %d", capBefore, cap(a.buf))
	}
}

func TestReleaseThenNewDoesNotAliasOldData(t *testing.T) {
	a := New()
	a.Append(42)
	a.Release()

	b := New()
	defer b.Release()
	if b.Size() != 0 {
		t.Fatalf("fresh Array after pool reuse has Size() = %d, want 0", b.Size())
	}
}
