// Command piedemo shows pie menus on a few cards in a desktop window.
//
// Usage:
//
//	go run ./cmd/piedemo --theme=cmd/piedemo/pie.yaml
//
// Press and hold (or right click) a card to open its menu, then drag to an
// action and release. T toggles tilt, B toggles the bounce and O switches
// the overlay style; these choices persist between runs.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-drift/piemenu/pkg/core"
	"github.com/go-drift/piemenu/pkg/errors"
	"github.com/go-drift/piemenu/pkg/theme"
)

var (
	themePath = flag.String("theme", "cmd/piedemo/pie.yaml", "pie theme YAML file")
	appName   = flag.String("app", "piemenu-demo", "name used to store settings")
	debug     = flag.Bool("debug", true, "enable debug checks and verbose error logs")
)

func main() {
	flag.Parse()

	core.SetDebugMode(*debug)
	errors.SetHandler(&errors.LogHandler{Verbose: *debug})

	th, err := theme.LoadPieTheme(*themePath)
	if err != nil {
		log.Fatalf("failed to load theme: %v", err)
	}

	store := openSettingsStore(*appName)
	if saved, err := store.apply(th); err != nil {
		log.Printf("[piedemo] Warning: ignoring saved settings: %v", err)
	} else {
		th = saved
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Pie Menu")
	if err := ebiten.RunGame(newDemo(th, store)); err != nil {
		log.Fatal(err)
	}
}
