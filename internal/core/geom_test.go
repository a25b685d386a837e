package core

import "testing"

func TestRectIntersects(t *testing.T) {
	player := NewRect(100, 300, 50, 50)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"same box", player, true},
		{"one pixel overlap right", NewRect(149, 300, 80, 100), true},
		{"touching right edge", NewRect(150, 300, 80, 100), false},
		{"touching left edge", NewRect(20, 300, 80, 100), false},
		{"one pixel overlap left", NewRect(21, 300, 80, 100), true},
		{"wall above", NewRect(100, 0, 80, 300), false},
		{"wall reaching into player", NewRect(100, 0, 80, 301), true},
		{"ground below", NewRect(0, 350, 800, 250), false},
		{"enemy inside", NewRect(110, 310, 10, 10), true},
		{"enclosing box", NewRect(0, 0, 800, 600), true},
		{"empty wall at player", NewRect(100, 300, 80, 0), false},
		{"negative height", NewRect(100, 320, 80, -10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := player.Intersects(tt.other); got != tt.want {
				t.Errorf("player.Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(player); got != tt.want {
				t.Errorf("not symmetric for %+v", tt.other)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(750, 425, 80, 75)
	if r.Right() != 830 {
		t.Errorf("Right() = %d, want 830", r.Right())
	}
	if r.Bottom() != 500 {
		t.Errorf("Bottom() = %d, want 500", r.Bottom())
	}
}

func TestRectF(t *testing.T) {
	tests := []struct {
		x, y float64
		want Rect
	}{
		{100, 275.9, NewRect(100, 275, 50, 50)},
		{99.99, 0.4, NewRect(99, 0, 50, 50)},
		{-0.5, -3.7, NewRect(0, -3, 50, 50)},
	}
	for _, tt := range tests {
		if got := RectF(tt.x, tt.y, 50, 50); got != tt.want {
			t.Errorf("RectF(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectEmpty(t *testing.T) {
	if NewRect(0, 0, 1, 1).Empty() {
		t.Error("1x1 rect reported empty")
	}
	for _, r := range []Rect{{W: 0, H: 10}, {W: 10, H: 0}, {W: -1, H: 5}} {
		if !r.Empty() {
			t.Errorf("%+v should be empty", r)
		}
	}
}
