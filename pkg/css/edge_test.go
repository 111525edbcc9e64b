package css

import "testing"

func TestNewBoxEdge_Order(t *testing.T) {
	e := NewBoxEdge(1, 2, 3, 4)
	if e.Top != 1 || e.Right != 2 || e.Bottom != 3 || e.Left != 4 {
		t.Errorf("expected 1,2,3,4, got %+v", e)
	}
	if e.Horizontal() != 6 || e.Vertical() != 4 {
		t.Errorf("expected horizontal 6 vertical 4, got %f %f", e.Horizontal(), e.Vertical())
	}
}

func TestBoxEdge_ZeroValue(t *testing.T) {
	var e BoxEdge
	if e != Uniform(0) {
		t.Errorf("expected zero edge, got %+v", e)
	}
}

func TestEdgeFromValues(t *testing.T) {
	tests := map[int]BoxEdge{
		1: {Top: 1, Right: 1, Bottom: 1, Left: 1},
		2: {Top: 1, Right: 2, Bottom: 1, Left: 2},
		3: {Top: 1, Right: 2, Bottom: 3, Left: 2},
		4: {Top: 1, Right: 2, Bottom: 3, Left: 4},
	}
	values := []float64{1, 2, 3, 4}
	for n, expected := range tests {
		got, ok := EdgeFromValues(values[:n])
		if !ok || got != expected {
			t.Errorf("%d values: expected %+v, got %+v", n, expected, got)
		}
	}
	if _, ok := EdgeFromValues(nil); ok {
		t.Error("expected empty values to be rejected")
	}
	if _, ok := EdgeFromValues([]float64{1, 2, 3, 4, 5}); ok {
		t.Error("expected five values to be rejected")
	}
}

func TestBoxEdge_Mutable(t *testing.T) {
	e := Uniform(5)
	e.Bottom = 0
	if e.Vertical() != 5 {
		t.Errorf("expected vertical 5 after setting bottom, got %f", e.Vertical())
	}
}
