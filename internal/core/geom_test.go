package core

import "testing"

func TestIntervalContains(t *testing.T) {
	iv := NewInterval(10, 20)

	tests := []struct {
		name     string
		v        float64
		expected bool
	}{
		{"inside", 15, true},
		{"lower bound", 10, true},
		{"upper bound", 20, true},
		{"below", 9.99, false},
		{"above", 20.01, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := iv.Contains(tc.v); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.v, got, tc.expected)
			}
		})
	}
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Interval
		expected bool
	}{
		{"partial overlap", NewInterval(0, 10), NewInterval(5, 15), true},
		{"touching bounds", NewInterval(0, 10), NewInterval(10, 20), true},
		{"disjoint", NewInterval(0, 10), NewInterval(11, 20), false},
		{"other contains this", NewInterval(2, 3), NewInterval(0, 5), true},
		{"this contains other", NewInterval(0, 5), NewInterval(2, 3), true},
		{"identical", NewInterval(-101, 0), NewInterval(-101, 0), true},
		{"single points equal", NewInterval(4, 4), NewInterval(4, 4), true},
		{"single points apart", NewInterval(4, 4), NewInterval(5, 5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("%v.Overlaps(%v) = %v, expected %v", tc.a, tc.b, got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("%v.Overlaps(%v) (reversed) = %v, expected %v", tc.b, tc.a, got, tc.expected)
			}
		})
	}
}

func TestIntervalReflexive(t *testing.T) {
	for _, iv := range []Interval{
		NewInterval(0, 0),
		NewInterval(-101, 0),
		NewInterval(25.25, 75.75),
		NewInterval(1e9, 1e9+1),
	} {
		if !iv.Overlaps(iv) {
			t.Errorf("%v should overlap itself", iv)
		}
	}
}

func TestNewIntervalSwapsReversedBounds(t *testing.T) {
	iv := NewInterval(20, 10)
	if iv.Start() != 10 || iv.End() != 20 {
		t.Errorf("NewInterval(20, 10) = %v, expected [10, 20]", iv)
	}
	if iv.Len() != 10 {
		t.Errorf("Len() = %v, expected 10", iv.Len())
	}
}

func TestBoxCollidesWith(t *testing.T) {
	const w, h = 101.0, 83.0

	block := func(col, row int) Box {
		x, y := float64(col)*w, float64(row)*h
		return NewBox(x, x+w, y, y+h-1)
	}

	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"same block", block(2, 3), block(2, 3), true},
		{"horizontal neighbours share an edge", block(1, 3), block(2, 3), true},
		{"vertical neighbours", block(2, 2), block(2, 3), false},
		{"two blocks apart horizontally", block(0, 3), block(2, 3), false},
		{"two blocks apart vertically", block(2, 1), block(2, 3), false},
		{"diagonal", block(1, 2), block(2, 3), false},
		{"x overlaps only", NewBox(0, 50, 0, 10), NewBox(25, 75, 20, 30), false},
		{"y overlaps only", NewBox(0, 10, 0, 50), NewBox(20, 30, 25, 75), false},
		{"contained", NewBox(0, 100, 0, 100), NewBox(40, 60, 40, 60), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.CollidesWith(tc.b); got != tc.expected {
				t.Errorf("CollidesWith() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.CollidesWith(tc.a); got != tc.expected {
				t.Errorf("CollidesWith() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxesSeparatedByMoreThanABlockNeverCollide(t *testing.T) {
	const w, h = 101.0, 83.0
	base := NewBox(0, w, 0, h-1)

	for _, dx := range []float64{-3 * w, -w - 1.5, w + 1.5, 2 * w, 4 * w} {
		for _, dy := range []float64{0, 40, -40} {
			other := NewBox(dx, dx+w, dy, dy+h-1)
			if base.CollidesWith(other) {
				t.Errorf("boxes offset by (%v, %v) should not collide", dx, dy)
			}
		}
	}
	for _, dy := range []float64{-h - 1, h + 1, 3 * h} {
		other := NewBox(0, w, dy, dy+h-1)
		if base.CollidesWith(other) {
			t.Errorf("boxes offset vertically by %v should not collide", dy)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return 5")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return 10")
	}
}
