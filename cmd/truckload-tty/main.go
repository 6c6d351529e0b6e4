// truckload-tty 在终端中运行装货游戏
//
// 用法:
//
//	go run ./cmd/truckload-tty [-config path] [-seed N] [-log file]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/decker502/truckload/pkg/clock"
	"github.com/decker502/truckload/pkg/config"
	"github.com/decker502/truckload/pkg/ecs"
	"github.com/decker502/truckload/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

var (
	configFlag = flag.String("config", "", "Game config path (default: built-in defaults)")
	seedFlag   = flag.Uint64("seed", 0, "Random seed (0 = time based)")
	logFlag    = flag.String("log", "", "Write logs to this file (terminal output is reserved for the game)")
)

// ttyGame 终端版游戏的 ECS 世界
type ttyGame struct {
	entityManager *ecs.EntityManager
	frameClock    *clock.FrameClock
	session       *systems.SpotSessionSystem
	renderer      *terminalRenderer
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "truckload-tty: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	closeLog, err := setupLog(*logFlag)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := config.DefaultGameConfig()
	if *configFlag != "" {
		if cfg, err = config.LoadGameConfig(*configFlag); err != nil {
			return err
		}
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[Main] 随机种子: %d", seed)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	g, err := newTTYGame(screen, cfg, rng)
	if err != nil {
		return err
	}

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Fini 之后 PollEvent 返回 nil
				return
			}
			events <- ev
		}
	}()

	frame := time.Duration(float64(time.Second) / cfg.Screen.TicksPerSecond)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	g.renderer.Draw()
	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if isQuitKey(e) {
					log.Printf("[Main] 退出")
					return nil
				}
				g.session.HandleKey(keyEventFromTcell(e))
			}
		case <-ticker.C:
			g.Update(frame.Seconds())
			g.renderer.Draw()
		}
	}
}

func newTTYGame(screen tcell.Screen, cfg *config.GameConfig, rng systems.RandSource) (*ttyGame, error) {
	em := ecs.NewEntityManager()
	frameClock := clock.NewFrameClock(cfg.Screen.TicksPerSecond)
	spotSystem := systems.NewTruckSpotSystem(em, frameClock, cfg)

	session, err := systems.NewSpotSessionSystem(em, spotSystem, cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to start spot session: %w", err)
	}

	renderer, err := newTerminalRenderer(screen, em, cfg)
	if err != nil {
		return nil, err
	}

	return &ttyGame{
		entityManager: em,
		frameClock:    frameClock,
		session:       session,
		renderer:      renderer,
	}, nil
}

// Update 推进一帧
func (g *ttyGame) Update(deltaTime float64) {
	g.frameClock.Advance(deltaTime)
	g.session.Update(deltaTime)
	g.entityManager.RemoveMarkedEntities()
}

// setupLog 终端被游戏画面占用，日志只能写文件或丢弃
func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	return func() { f.Close() }, nil
}
