package gridworld

import (
	"errors"
	"strings"
	"testing"
)

func TestNewGridMapRejectsBadSize(t *testing.T) {
	if _, err := NewGridMap(0, 5); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("NewGridMap(0,5) err = %v, want ErrInvalidArgument", err)
	}
	if _, err := NewGridMap(5, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("NewGridMap(5,-1) err = %v, want ErrInvalidArgument", err)
	}
}

func TestNewGridMapRejectsBadStep(t *testing.T) {
	if _, err := NewGridMap(5, 5, WithStepSize(0, 1)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("zero step size should fail with ErrInvalidArgument, got %v", err)
	}
}

func TestInitializeOnlyOnce(t *testing.T) {
	m, err := NewGridMap(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Initialize(1); err != nil {
		t.Fatalf("first Initialize: %v", err)
	}
	if err := m.Initialize(1); !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("second Initialize err = %v, want ErrAlreadyInitialized", err)
	}
}

func TestStartEndExclusivity(t *testing.T) {
	m, err := NewGridMap(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Initialize(1); err != nil {
		t.Fatal(err)
	}
	if err := m.SetStart(CellIndex{R: 0, C: 0}); err != nil {
		t.Fatal(err)
	}
	if err := m.SetStart(CellIndex{R: 1, C: 1}); err != nil {
		t.Fatal(err)
	}
	cell, err := m.CellAt(CellIndex{R: 0, C: 0})
	if err != nil {
		t.Fatal(err)
	}
	if cell.Kind != KindNormal {
		t.Fatalf("old start cell kind = %s, want Normal after re-assignment", cell.Kind)
	}

	if err := m.SetEnd(CellIndex{R: 1, C: 1}); err != nil {
		t.Fatal(err)
	}
	if err := m.AddObstacle(CellIndex{R: 1, C: 1}); !errors.Is(err, ErrForbiddenObstacle) {
		t.Fatalf("AddObstacle on End cell err = %v, want ErrForbiddenObstacle", err)
	}

	start, _ := m.StartIndex()
	if start != (CellIndex{R: 1, C: 1}) {
		t.Fatalf("AddObstacle must not have displaced Start, got %s", start)
	}
}

func TestAddObstacleForbidsStart(t *testing.T) {
	m, _ := NewGridMap(3, 3)
	m.Initialize(1)
	m.SetStart(CellIndex{R: 0, C: 0})
	if err := m.AddObstacle(CellIndex{R: 0, C: 0}); !errors.Is(err, ErrForbiddenObstacle) {
		t.Fatalf("AddObstacle on Start err = %v, want ErrForbiddenObstacle", err)
	}
}

func TestObstaclesInsertionOrderDeduplicated(t *testing.T) {
	m, _ := NewGridMap(5, 5)
	m.Initialize(1)
	for _, idx := range []CellIndex{{R: 2, C: 2}, {R: 0, C: 4}, {R: 2, C: 2}} {
		if err := m.AddObstacle(idx); err != nil {
			t.Fatal(err)
		}
	}
	got := m.Obstacles()
	want := []CellIndex{{R: 2, C: 2}, {R: 0, C: 4}}
	if len(got) != len(want) {
		t.Fatalf("Obstacles() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Obstacles()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestClassifyRoundTrip(t *testing.T) {
	m, _ := NewGridMap(10, 20, WithStepSize(1, 1))
	m.Initialize(1)
	for r := 0; r <= 10; r++ {
		for c := 0; c <= 20; c++ {
			idx := CellIndex{R: r, C: c}
			p := m.ConvertIndexToPoint(idx)
			cls := m.Classify(p)
			if cls.NearestIndex != idx {
				t.Fatalf("round trip %s -> %s -> %s", idx, p, cls.NearestIndex)
			}
			if !cls.OnHorizontalEdge || !cls.OnVerticalEdge || !cls.IsCorner {
				t.Fatalf("convertIndexToPoint(%s) should classify as a corner", idx)
			}
		}
	}
}

func TestEvaluateScenario1_StartCornerWithThreeOOB(t *testing.T) {
	m, err := NewCanonicalDemoMap()
	if err != nil {
		t.Fatal(err)
	}
	got, err := m.Evaluate(Point{X: 0, Y: 0})
	if err != nil {
		t.Fatal(err)
	}
	if got != -200 {
		t.Fatalf("evaluate((0,0)) = %g, want -200", got)
	}
}

func TestEvaluateScenario_CornerWithOneObstacleThreeNormals(t *testing.T) {
	m, err := NewCanonicalDemoMap()
	if err != nil {
		t.Fatal(err)
	}
	// The south-west corner of the obstacle stack's bottom cell (row 3/4
	// boundary, column 10): only cell (4,10) among the four quadrants is an
	// Obstacle.
	got, err := m.Evaluate(Point{X: 10, Y: 4})
	if err != nil {
		t.Fatal(err)
	}
	if got != -99 {
		t.Fatalf("evaluate((10,4)) = %g, want -99", got)
	}
}

func TestEvaluateScenario3_HorizontalEdgeBetweenTwoObstacles(t *testing.T) {
	m, err := NewCanonicalDemoMap()
	if err != nil {
		t.Fatal(err)
	}
	got, err := m.Evaluate(Point{X: 10.5, Y: 5})
	if err != nil {
		t.Fatal(err)
	}
	if got != -200 {
		t.Fatalf("evaluate((10.5,5)) = %g, want -200", got)
	}
}

func TestEvaluateScenario4_ObstacleInterior(t *testing.T) {
	m, err := NewCanonicalDemoMap()
	if err != nil {
		t.Fatal(err)
	}
	got, err := m.Evaluate(Point{X: 10.99, Y: 5.99})
	if err != nil {
		t.Fatal(err)
	}
	if got != -100 {
		t.Fatalf("evaluate((10.99,5.99)) = %g, want -100", got)
	}
}

func TestEvaluateScenario5_StrictExteriorFails(t *testing.T) {
	m, err := NewCanonicalDemoMap()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Evaluate(Point{X: -1, Y: -1}); !errors.Is(err, ErrOutOfMap) {
		t.Fatalf("evaluate((-1,-1)) err = %v, want ErrOutOfMap", err)
	}
}

func TestEvaluateDefinedIffNotStrictlyOutOfBoundary(t *testing.T) {
	m, err := NewCanonicalDemoMap()
	if err != nil {
		t.Fatal(err)
	}
	onBoundary := Point{X: 0, Y: 0}
	if _, err := m.Evaluate(onBoundary); err != nil {
		t.Fatalf("evaluate on boundary should succeed, got %v", err)
	}
	if m.IsOutOfBoundary(onBoundary) {
		t.Fatal("boundary point should not be strictly out of boundary")
	}
	exterior := Point{X: 20.5, Y: 5}
	if !m.IsOutOfBoundary(exterior) {
		t.Fatal("point past the east edge should be strictly out of boundary")
	}
	if _, err := m.Evaluate(exterior); !errors.Is(err, ErrOutOfMap) {
		t.Fatalf("evaluate(exterior) err = %v, want ErrOutOfMap", err)
	}
}

func TestIsInsideEndCell(t *testing.T) {
	m, err := NewCanonicalDemoMap()
	if err != nil {
		t.Fatal(err)
	}
	if !m.IsInsideEndCell(Point{X: 19.5, Y: 9.5}) {
		t.Fatal("interior of End cell should report inside")
	}
	if m.IsInsideEndCell(Point{X: 19, Y: 9}) {
		t.Fatal("corner of End cell should not report inside (on edge)")
	}
}

func TestDescribeMentionsNameAndObstacles(t *testing.T) {
	m, err := NewCanonicalDemoMap()
	if err != nil {
		t.Fatal(err)
	}
	s := m.Describe()
	if len(s) == 0 {
		t.Fatal("Describe() returned empty string")
	}
	if !strings.Contains(s, `"canonical-demo"`) {
		t.Fatalf("Describe() does not mention the map name:\n%s", s)
	}
	for _, o := range m.Obstacles() {
		if !strings.Contains(s, o.String()) {
			t.Fatalf("Describe() does not list obstacle %s:\n%s", o, s)
		}
	}
}
