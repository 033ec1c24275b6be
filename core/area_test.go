package core

import "testing"

// TestRectEdges verifies top-left anchoring
func TestRectEdges(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 10, Height: 4}

	if r.Right() != 12 || r.Bottom() != 7 {
		t.Errorf("Expected edges (12, 7), got (%f, %f)", r.Right(), r.Bottom())
	}
	cx, cy := r.Center()
	if cx != 7 || cy != 5 {
		t.Errorf("Expected center (7, 5), got (%f, %f)", cx, cy)
	}
	if !r.Contains(2, 3) || !r.Contains(12, 7) {
		t.Error("Expected corners to be contained")
	}
	if r.Contains(1.9, 5) {
		t.Error("Expected point left of rect to be outside")
	}
}
