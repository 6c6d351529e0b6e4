package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/truckload/pkg/clock"
	"github.com/decker502/truckload/pkg/config"
	"github.com/decker502/truckload/pkg/ecs"
	"github.com/decker502/truckload/pkg/game"
	"github.com/decker502/truckload/pkg/systems"
	"github.com/decker502/truckload/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameScene 装货场景
//
// 持有 ECS 世界、帧时钟和游戏会话；每帧先分发键盘输入，再推进卡车动画，
// 最后清理已销毁的实体。
type GameScene struct {
	resourceManager *game.ResourceManager
	config          *config.GameConfig

	// ECS Framework and Systems
	entityManager     *ecs.EntityManager
	frameClock        *clock.FrameClock
	truckSpotSystem   *systems.TruckSpotSystem
	spotSessionSystem *systems.SpotSessionSystem
}

// NewGameScene 创建装货场景并填满所有车位
func NewGameScene(rm *game.ResourceManager, cfg *config.GameConfig, rng systems.RandSource) (*GameScene, error) {
	em := ecs.NewEntityManager()
	frameClock := clock.NewFrameClock(cfg.Screen.TicksPerSecond)
	truckSpotSystem := systems.NewTruckSpotSystem(em, frameClock, cfg)

	spotSessionSystem, err := systems.NewSpotSessionSystem(em, truckSpotSystem, cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to start spot session: %w", err)
	}

	log.Printf("[GameScene] 场景创建完成，%d 个车位", spotSessionSystem.SlotCount())

	return &GameScene{
		resourceManager:   rm,
		config:            cfg,
		entityManager:     em,
		frameClock:        frameClock,
		truckSpotSystem:   truckSpotSystem,
		spotSessionSystem: spotSessionSystem,
	}, nil
}

// Update 更新场景
func (s *GameScene) Update(deltaTime float64) {
	s.frameClock.Advance(deltaTime)

	for _, ev := range utils.PollKeyEvents() {
		s.spotSessionSystem.HandleKey(ev)
	}

	s.spotSessionSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor)
	s.drawSpots(screen)
}
