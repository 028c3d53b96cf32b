package gridworld

// NewCanonicalDemoMap builds the 10x20 reference map used throughout this
// package's tests and by every cmd/gridctl subcommand: a Start at the
// south-west corner, an End at the north-east corner, and a three-cell
// obstacle wall down column 10.
func NewCanonicalDemoMap() (*GridMap, error) {
	m, err := NewGridMap(10, 20,
		WithName("canonical-demo"),
		WithOrigin(0, 0),
		WithStepSize(1, 1),
		WithOutOfBoundsValue(-200),
	)
	if err != nil {
		return nil, err
	}
	if err := m.Initialize(defaultValue(KindNormal)); err != nil {
		return nil, err
	}

	if err := m.SetStart(CellIndex{R: 0, C: 0}); err != nil {
		return nil, err
	}
	if err := m.SetEnd(CellIndex{R: 9, C: 19}); err != nil {
		return nil, err
	}

	for _, idx := range []CellIndex{{R: 4, C: 10}, {R: 5, C: 10}, {R: 6, C: 10}} {
		if err := m.AddObstacle(idx); err != nil {
			return nil, err
		}
	}

	return m, nil
}
