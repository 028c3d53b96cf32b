package gridworld

import "testing"

func TestResolveScenario6_ClearRowReachesEastBoundary(t *testing.T) {
	m, err := NewCanonicalDemoMap()
	if err != nil {
		t.Fatal(err)
	}
	res := Resolve(m, Point{X: 0.5, Y: 0.5}, Displacement{DX: 20, DY: 0})
	if res.Point.Y != 0.5 {
		t.Fatalf("resolver should not drift off row 0, got y=%g", res.Point.Y)
	}
	if res.Point.X != 20 {
		t.Fatalf("resolver should reach the east boundary on an obstacle-free row, got x=%g", res.Point.X)
	}
}

func TestResolveScenario7_StopsAtObstacleWestFace(t *testing.T) {
	m, err := NewCanonicalDemoMap()
	if err != nil {
		t.Fatal(err)
	}
	res := Resolve(m, Point{X: 0.5, Y: 4.5}, Displacement{DX: 20, DY: 0})
	if res.Point.X != 10 || res.Point.Y != 4.5 {
		t.Fatalf("resolver should stop at (10, 4.5), got %s", res.Point)
	}
	if res.Terminated {
		t.Fatal("stopping at an obstacle face should not terminate the episode")
	}
}

func TestResolveNeverEntersObstacleInterior(t *testing.T) {
	m, err := NewCanonicalDemoMap()
	if err != nil {
		t.Fatal(err)
	}
	res := Resolve(m, Point{X: 9.5, Y: 5.5}, Displacement{DX: 5, DY: 0})
	if res.Point.X > 10 {
		t.Fatalf("resolver must not cross into the obstacle's interior, stopped at x=%g", res.Point.X)
	}
}

func TestResolveZeroDisplacementStaysPut(t *testing.T) {
	m, err := NewCanonicalDemoMap()
	if err != nil {
		t.Fatal(err)
	}
	origin := Point{X: 5.5, Y: 5.5}
	res := Resolve(m, origin, Displacement{})
	if res.Point != origin {
		t.Fatalf("zero displacement moved the agent to %s", res.Point)
	}
}

func TestResolveReachesEndCellAndTerminates(t *testing.T) {
	m, err := NewCanonicalDemoMap()
	if err != nil {
		t.Fatal(err)
	}
	res := Resolve(m, Point{X: 19.5, Y: 9.5}, Displacement{DX: 0.1, DY: 0.1})
	if !res.Terminated {
		t.Fatal("resolver ending inside the End cell should report Terminated")
	}
	if res.Reward != 100 {
		t.Fatalf("reward inside the open End cell interior = %g, want 100", res.Reward)
	}
}

func TestResolveDiagonalCornerTieBlockedByAnyOfFourCells(t *testing.T) {
	m, err := NewGridMap(4, 4, WithStepSize(1, 1))
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Initialize(defaultValue(KindNormal)); err != nil {
		t.Fatal(err)
	}
	if err := m.AddObstacle(CellIndex{R: 2, C: 1}); err != nil {
		t.Fatal(err)
	}
	// Moving northeast exactly through the shared corner (2,2): one of the
	// four cells touching that corner, (2,1) to the north-west, is the
	// obstacle, so motion must stop there even though the ray never enters
	// the obstacle's own quadrant.
	res := Resolve(m, Point{X: 1.5, Y: 1.5}, Displacement{DX: 2, DY: 2})
	if res.Point.X != 2 || res.Point.Y != 2 {
		t.Fatalf("expected the diagonal tie to stop at the shared corner (2,2), got %s", res.Point)
	}
}
