package core

import "testing"

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

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestSpanContains(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		length   int
		pos      float64
		expected bool
	}{
		{"leading edge", 2.0, 3, 2.0, true},
		{"inside", 2.0, 3, 3.5, true},
		{"trailing edge is clear", 2.0, 3, 5.0, false},
		{"before start", 2.0, 3, 1.99, false},
		{"fractional offset snaps down", 2.7, 2, 2.0, true},
		{"fractional offset trailing edge", 2.7, 2, 4.0, false},
		{"negative offset", -1.5, 3, 0.0, true},
		{"negative offset trailing edge", -1.5, 3, 1.0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			span := SpanAt(tc.x, tc.length)
			if got := span.Contains(tc.pos); got != tc.expected {
				t.Errorf("SpanAt(%v, %d).Contains(%v) = %v, expected %v", tc.x, tc.length, tc.pos, got, tc.expected)
			}
		})
	}
}

func TestParseAction(t *testing.T) {
	for _, name := range []string{"left", "right", "up", "down", "drop", "start", "pause", "restart"} {
		a := ParseAction(name)
		if a == ActionNone {
			t.Errorf("ParseAction(%q) returned None", name)
		}
		if a.String() == "Unknown" {
			t.Errorf("ParseAction(%q) returned an unnamed action", name)
		}
	}
	if ParseAction("jump") != ActionNone {
		t.Error("unknown names should map to ActionNone")
	}
}

func TestPhaseString(t *testing.T) {
	expected := map[Phase]string{
		PhaseIdle:     "idle",
		PhasePlaying:  "playing",
		PhasePaused:   "paused",
		PhaseGameOver: "game_over",
	}
	for p, name := range expected {
		if p.String() != name {
			t.Errorf("Phase(%d).String() = %q, expected %q", p, p.String(), name)
		}
	}
}
