package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 3, false}, // right edge is exclusive
		{2, 5, false}, // bottom edge is exclusive
		{1, 3, false},
		{2, 2, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v; want %v", tt.x, tt.y, got, tt.want)
		}
	}

	if r.Right() != 6 || r.Bottom() != 5 {
		t.Errorf("Right/Bottom = %d/%d; want 6/5", r.Right(), r.Bottom())
	}
}

func TestMinMaxClamp(t *testing.T) {
	if Min(2, 5) != 2 || Min(5, 2) != 2 {
		t.Error("Min broken")
	}
	if Max(2, 5) != 5 || Max(5, 2) != 5 {
		t.Error("Max broken")
	}
	if Clamp(7, 0, 5) != 5 || Clamp(-1, 0, 5) != 0 || Clamp(3, 0, 5) != 3 {
		t.Error("Clamp broken")
	}
}
