package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/truckload/pkg/app"
	"github.com/decker502/truckload/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
	seedFlag    = flag.Uint64("seed", 0, "Random seed (0 = time based)")
	configFlag  = flag.String("config", "", "Game config path (default: embedded data/game_config.yaml)")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		Seed:       *seedFlag,
		ConfigPath: *configFlag,
	})
	if err != nil {
		// 非 verbose 模式下 log 输出已被丢弃
		fmt.Fprintf(os.Stderr, "truckload: %v\n", err)
		os.Exit(1)
	}

	width, height := game.ScreenSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Truckload")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
