package gazefocus

import (
	"math"
	"testing"
)

// almostEqual checks if two float32 values are approximately equal
func almostEqual(a, b, tolerance float32) bool {
	return float32(math.Abs(float64(a)-float64(b))) <= tolerance
}

// TestStabilizerSeedAndBlend tests that the first detection seeds the
// smoothing state directly and later detections are blended exponentially
func TestStabilizerSeedAndBlend(t *testing.T) {

	const tolerance = 1e-4

	s := NewDetectionStabilizer(0.5, 3)

	sb, ok := s.Update(NewDetection(NewBox(100, 100, 100, 100)))

	if !ok {
		t.Fatal("expected stabilized box on first detection")
	}

	if sb.Box != NewBox(100, 100, 100, 100) {
		t.Errorf("first detection should seed directly, got %+v", sb.Box)
	}

	sb, ok = s.Update(NewDetection(NewBox(110, 120, 100, 100)))

	if !ok {
		t.Fatal("expected stabilized box")
	}

	if !almostEqual(sb.Box.X, 105, tolerance) ||
		!almostEqual(sb.Box.Y, 110, tolerance) ||
		!almostEqual(sb.Box.W, 100, tolerance) ||
		!almostEqual(sb.Box.H, 100, tolerance) {
		t.Errorf("expected blended box (105, 110, 100, 100), got %+v", sb.Box)
	}

	if sb.ConfidenceAge != 0 {
		t.Errorf("fresh detection must reset confidence age, got %d", sb.ConfidenceAge)
	}
}

// TestStabilizerGraceWindow tests that missed detections inside the grace
// window return the stale box and sustained absence returns the absent
// signal
func TestStabilizerGraceWindow(t *testing.T) {

	s := NewDetectionStabilizer(0.5, 3)

	s.Update(NewDetection(NewBox(100, 100, 100, 100)))

	for i := 1; i <= 3; i++ {
		sb, ok := s.Update(NoDetection())

		if !ok {
			t.Fatalf("miss %d is inside the grace window, expected box", i)
		}

		if sb.ConfidenceAge != i {
			t.Errorf("miss %d: expected confidence age %d, got %d", i, i, sb.ConfidenceAge)
		}

		if sb.Box != NewBox(100, 100, 100, 100) {
			t.Errorf("miss %d: stale box should be retained, got %+v", i, sb.Box)
		}
	}

	if _, ok := s.Update(NoDetection()); ok {
		t.Error("expected absent signal once grace window is exhausted")
	}

	// once absent, further misses remain absent
	if _, ok := s.Update(NoDetection()); ok {
		t.Error("expected repeated absent signal")
	}
}

// TestStabilizerReseedAfterAbsence tests that a detection arriving after
// absence seeds fresh state instead of blending with the stale box
func TestStabilizerReseedAfterAbsence(t *testing.T) {

	s := NewDetectionStabilizer(0.5, 1)

	s.Update(NewDetection(NewBox(100, 100, 100, 100)))
	s.Update(NoDetection())

	if _, ok := s.Update(NoDetection()); ok {
		t.Fatal("expected absent signal")
	}

	sb, ok := s.Update(NewDetection(NewBox(300, 300, 80, 80)))

	if !ok {
		t.Fatal("expected stabilized box")
	}

	if sb.Box != NewBox(300, 300, 80, 80) {
		t.Errorf("return after absence should seed directly, got %+v", sb.Box)
	}
}

// TestStabilizerEmptyBox tests that a positive detection carrying an empty
// box counts as a missed detection
func TestStabilizerEmptyBox(t *testing.T) {

	s := NewDetectionStabilizer(0.5, 1)

	if _, ok := s.Update(NewDetection(NewBox(10, 10, 0, 50))); ok {
		t.Error("zero width box with no prior state should signal absence")
	}

	s.Update(NewDetection(NewBox(100, 100, 100, 100)))

	sb, ok := s.Update(NewDetection(NewBox(10, 10, 0, 50)))

	if !ok {
		t.Fatal("empty box within grace window should return stale box")
	}

	if sb.ConfidenceAge != 1 {
		t.Errorf("empty box must age the stale box, got age %d", sb.ConfidenceAge)
	}
}
