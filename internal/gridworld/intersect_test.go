package gridworld

import "testing"

func TestIntersectSegmentsCross(t *testing.T) {
	p, flag := intersectSegments(0, 0, 10, 10, 0, 10, 10, 0)
	if flag != FlagValid {
		t.Fatalf("flag = %v, want FlagValid", flag)
	}
	if p.X != 5 || p.Y != 5 {
		t.Fatalf("p = %s, want (5,5)", p)
	}
}

func TestIntersectSegmentsParallel(t *testing.T) {
	_, flag := intersectSegments(0, 0, 10, 0, 0, 1, 10, 1)
	if flag != FlagParallel {
		t.Fatalf("flag = %v, want FlagParallel", flag)
	}
}

func TestIntersectSegmentsCoincident(t *testing.T) {
	_, flag := intersectSegments(0, 0, 10, 0, 2, 0, 8, 0)
	if flag != FlagCoincident {
		t.Fatalf("flag = %v, want FlagCoincident", flag)
	}
}

func TestIntersectSegmentsOutOfRange(t *testing.T) {
	_, flag := intersectSegments(0, 0, 1, 1, 5, 0, 5, -1)
	if flag != FlagOutOfRange {
		t.Fatalf("flag = %v, want FlagOutOfRange", flag)
	}
}

func TestDistance(t *testing.T) {
	if got := distance(Point{X: 0, Y: 0}, Point{X: 3, Y: 4}); got != 5 {
		t.Fatalf("distance = %g, want 5", got)
	}
}
