package buffer

import "testing"

func TestNew(t *testing.T) {
	b := New(4)
	if b.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", b.Len())
	}
	if New(-1).Len() != 0 {
		t.Fatal("New(-1) should be empty")
	}
}

func TestResizeReusesCapacity(t *testing.T) {
	b := New(8)
	b.Samples()[0] = 1
	b.Resize(4)
	if b.Len() != 4 || cap(b.Samples()) != 8 {
		t.Fatalf("Len()=%d cap=%d, want 4 8", b.Len(), cap(b.Samples()))
	}
	if b.Samples()[0] != 1 {
		t.Fatal("shrinking Resize should keep the backing array")
	}

	b.Resize(16)
	if b.Len() != 16 {
		t.Fatalf("Len() = %d, want 16", b.Len())
	}

	b.Resize(-3)
	if b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", b.Len())
	}
}

func TestZero(t *testing.T) {
	b := New(3)
	copy(b.Samples(), []float64{1, 2, 3})
	b.Zero()
	for i, v := range b.Samples() {
		if v != 0 {
			t.Fatalf("Samples()[%d] = %v, want 0", i, v)
		}
	}
}
