package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	specName := flag.String("spec", "rig.yaml", "rig spec in prefabs/")
	watch := flag.Bool("watch", false, "hot reload prefabs/ on change")
	bodies := flag.Int("bodies", 3, "number of bodies to follow")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("camerarig")

	game, err := NewGame(*specName, *bodies, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
