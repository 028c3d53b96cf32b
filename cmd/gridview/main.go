package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	steps := flag.Int("steps", 60, "number of scripted steps to play out before the viewer idles")
	scale := flag.Float64("scale", 48, "pixels per grid unit")
	flag.Parse()

	v, err := NewViewer(*steps, *scale)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("gridwalk viewer")
	ebiten.SetWindowSize(v.windowWidth(), v.windowHeight())
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
