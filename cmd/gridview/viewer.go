package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/corrinfell/gridwalk/internal/gridworld"
)

var (
	colorBG       = color.RGBA{R: 18, G: 20, B: 24, A: 255}
	colorGrid     = color.RGBA{R: 60, G: 64, B: 70, A: 255}
	colorObstacle = color.RGBA{R: 180, G: 50, B: 50, A: 255}
	colorStart    = color.RGBA{R: 60, G: 160, B: 90, A: 255}
	colorEnd      = color.RGBA{R: 210, G: 180, B: 50, A: 255}
	colorAgent    = color.RGBA{R: 90, G: 170, B: 230, A: 255}
	colorPath     = color.RGBA{R: 90, G: 170, B: 230, A: 160}
)

// Viewer implements ebiten.Game: it drives an Environment through a fixed
// scripted action each tick and draws the map, the agent, and its
// accumulated trajectory.
type Viewer struct {
	env   *gridworld.Environment
	scale float64

	maxSteps   int
	stepsTaken int
	terminated bool

	reward float64
	err    error
}

// NewViewer builds a Viewer over the canonical demo map.
func NewViewer(maxSteps int, scale float64) (*Viewer, error) {
	m, err := gridworld.NewCanonicalDemoMap()
	if err != nil {
		return nil, err
	}
	env, err := gridworld.NewEnvironment(m)
	if err != nil {
		return nil, err
	}
	if _, err := env.Reset(); err != nil {
		return nil, err
	}

	return &Viewer{
		env:      env,
		scale:    scale,
		maxSteps: maxSteps,
	}, nil
}

func (v *Viewer) windowWidth() int {
	return int(float64(v.env.Map().Cols()) * v.scale)
}

func (v *Viewer) windowHeight() int {
	return int(float64(v.env.Map().Rows())*v.scale) + 24
}

func (v *Viewer) Update() error {
	if v.terminated || v.err != nil || v.stepsTaken >= v.maxSteps {
		return nil
	}
	step := v.env.Map().StepSize()
	_, reward, terminated, err := v.env.Step(gridworld.Displacement{DX: step.X * 0.25, DY: step.Y * 0.25})
	if err != nil {
		v.err = err
		return nil
	}
	v.reward = reward
	v.terminated = terminated
	v.stepsTaken++
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	m := v.env.Map()
	v.drawGridLines(screen, m)
	v.drawObstacles(screen, m)
	v.drawMarkerCell(screen, m, mustIndex(m.StartIndex()), colorStart)
	v.drawMarkerCell(screen, m, mustIndex(m.EndIndex()), colorEnd)
	v.drawPath(screen)
	v.drawAgent(screen)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("step=%d reward=%.1f total=%.1f terminated=%t",
		v.env.NSteps(), v.reward, v.env.TotalValue(), v.terminated))
}

func (v *Viewer) Layout(_, _ int) (int, int) {
	return v.windowWidth(), v.windowHeight()
}

func mustIndex(idx gridworld.CellIndex, err error) gridworld.CellIndex {
	if err != nil {
		return gridworld.CellIndex{R: -1, C: -1}
	}
	return idx
}

func (v *Viewer) toScreen(p gridworld.Point) (float32, float32) {
	origin := v.env.Map().Origin()
	rows := v.env.Map().Rows()
	step := v.env.Map().StepSize()
	x := (p.X - origin.X) / step.X * v.scale
	// Flip Y: map-local Y increases north, screen Y increases downward.
	y := float64(rows)*v.scale - (p.Y-origin.Y)/step.Y*v.scale
	return float32(x), float32(y)
}

func (v *Viewer) drawGridLines(screen *ebiten.Image, m *gridworld.GridMap) {
	for c := 0; c <= m.Cols(); c++ {
		x, _ := v.toScreen(m.ConvertIndexToPoint(gridworld.CellIndex{R: 0, C: c}))
		vector.StrokeLine(screen, x, 0, x, float32(v.windowHeight()), 1, colorGrid, false)
	}
	for r := 0; r <= m.Rows(); r++ {
		_, y := v.toScreen(m.ConvertIndexToPoint(gridworld.CellIndex{R: r, C: 0}))
		vector.StrokeLine(screen, 0, y, float32(v.windowWidth()), y, 1, colorGrid, false)
	}
}

func (v *Viewer) drawObstacles(screen *ebiten.Image, m *gridworld.GridMap) {
	for _, idx := range m.Obstacles() {
		v.drawMarkerCell(screen, m, idx, colorObstacle)
	}
}

func (v *Viewer) drawMarkerCell(screen *ebiten.Image, m *gridworld.GridMap, idx gridworld.CellIndex, c color.Color) {
	if idx.R < 0 {
		return
	}
	step := m.StepSize()
	sw := m.ConvertIndexToPoint(idx)
	ne := sw.Add(gridworld.Displacement{DX: step.X, DY: step.Y})
	x0, y0 := v.toScreen(sw)
	x1, y1 := v.toScreen(ne)
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	vector.FillRect(screen, x0, y0, x1-x0, y1-y0, c, false)
}

func (v *Viewer) drawPath(screen *ebiten.Image) {
	width := float32(v.env.PathArrowWidth() * v.scale)
	history := v.env.LocHistory()
	for i := 1; i < len(history); i++ {
		x0, y0 := v.toScreen(history[i-1])
		x1, y1 := v.toScreen(history[i])
		vector.StrokeLine(screen, x0, y0, x1, y1, width, colorPath, false)
	}
}

func (v *Viewer) drawAgent(screen *ebiten.Image) {
	x, y := v.toScreen(v.env.Position())
	r := float32(v.env.AgentRadius() * v.scale)
	vector.FillCircle(screen, x, y, r, colorAgent, true)
}
