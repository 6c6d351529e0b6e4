package systems

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/decker502/truckload/pkg/clock"
	"github.com/decker502/truckload/pkg/components"
	"github.com/decker502/truckload/pkg/config"
	"github.com/decker502/truckload/pkg/ecs"
)

// ErrInvalidTransition 状态只能按 Entering -> Ready -> Leaving 逐级前进
var ErrInvalidTransition = errors.New("invalid spot state transition")

// SpotDeparture 卡车完全驶出屏幕的事件
// 由 TruckSpotSystem.Update 返回，游戏会话据此补充对应车位
type SpotDeparture struct {
	Slot   int
	Entity ecs.EntityID
}

// TruckSpotSystem 车位卡车状态机与动画系统
//
// 每帧按实体创建顺序推进所有卡车：
//   - MotionEntering: 匀速驶向停靠点，到达后切换为 Ready
//   - MotionLeaving: 加速驶出，越过屏幕右边界后产生一次 SpotDeparture
//   - 字母标签存在时更新脉冲缩放
type TruckSpotSystem struct {
	entityManager *ecs.EntityManager
	clock         *clock.FrameClock
	config        *config.GameConfig
}

// NewTruckSpotSystem 创建车位卡车系统
func NewTruckSpotSystem(em *ecs.EntityManager, frameClock *clock.FrameClock, cfg *config.GameConfig) *TruckSpotSystem {
	return &TruckSpotSystem{
		entityManager: em,
		clock:         frameClock,
		config:        cfg,
	}
}

// CreateSpot 在指定车位创建一辆驶入中的卡车
//
// 参数:
//   - slot: 车位索引
//   - letter: 卡车携带的字母
//   - variant: 卡车外观索引
//
// 返回:
//   - ecs.EntityID: 新卡车实体
func (s *TruckSpotSystem) CreateSpot(slot int, letter rune, variant int) ecs.EntityID {
	x, y := s.config.SlotPosition(slot)

	id := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(s.entityManager, id, &components.TruckSpotComponent{
		Slot:         slot,
		Letter:       letter,
		TruckVariant: variant,
		State:        components.SpotEntering,
	})
	ecs.AddComponent(s.entityManager, id, &components.TruckMotionComponent{})

	s.enterEntering(id)
	return id
}

// SetSpotState 切换卡车状态并执行进入新状态的副作用
//
// 只允许 Entering -> Ready 和 Ready -> Leaving。
// 外部调用方只应请求 Leaving，Ready 由驶入动画到达停靠点时触发。
func (s *TruckSpotSystem) SetSpotState(id ecs.EntityID, state components.SpotState) error {
	spot, ok := ecs.GetComponent[*components.TruckSpotComponent](s.entityManager, id)
	if !ok {
		return fmt.Errorf("entity %d is not a truck spot", id)
	}

	if state != spot.State+1 {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, spot.State, state)
	}

	spot.State = state
	switch state {
	case components.SpotReady:
		s.enterReady(id, spot)
	case components.SpotLeaving:
		s.enterLeaving(id)
	}

	log.Printf("[TruckSpotSystem] 车位 %d 卡车 %d -> %s", spot.Slot, id, state)
	return nil
}

// SpotState 返回卡车当前状态
func (s *TruckSpotSystem) SpotState(id ecs.EntityID) (components.SpotState, bool) {
	spot, ok := ecs.GetComponent[*components.TruckSpotComponent](s.entityManager, id)
	if !ok {
		return 0, false
	}
	return spot.State, true
}

// Spot 返回卡车组件（只读使用）
func (s *TruckSpotSystem) Spot(id ecs.EntityID) (*components.TruckSpotComponent, bool) {
	return ecs.GetComponent[*components.TruckSpotComponent](s.entityManager, id)
}

// Update 推进所有卡车一帧
//
// 返回本帧完全驶出屏幕的卡车。每辆卡车只会返回一次：
// 产生事件的同时移动动画被注销（Kind = MotionNone）。
func (s *TruckSpotSystem) Update(deltaTime float64) []SpotDeparture {
	frames := s.clock.ToFrames(deltaTime)
	var departures []SpotDeparture

	entities := ecs.GetEntitiesWith2[*components.TruckSpotComponent, *components.TruckMotionComponent](s.entityManager)
	for _, id := range entities {
		spot, _ := ecs.GetComponent[*components.TruckSpotComponent](s.entityManager, id)
		motion, _ := ecs.GetComponent[*components.TruckMotionComponent](s.entityManager, id)

		switch motion.Kind {
		case components.MotionEntering:
			s.updateEntering(id, motion, frames)
		case components.MotionLeaving:
			if s.updateLeaving(motion, frames) {
				departures = append(departures, SpotDeparture{Slot: spot.Slot, Entity: id})
			}
		}
	}

	s.updatePulse()

	return departures
}

// updateEntering 到达停靠点的判断在推进之前，与驶出动画保持一致
func (s *TruckSpotSystem) updateEntering(id ecs.EntityID, motion *components.TruckMotionComponent, frames float64) {
	if motion.OffsetX >= s.config.Motion.RestX {
		if err := s.SetSpotState(id, components.SpotReady); err != nil {
			log.Printf("[TruckSpotSystem] 警告: %v", err)
			motion.Kind = components.MotionNone
		}
		return
	}
	motion.OffsetX += frames * s.config.Motion.EnterSpeed
}

// updateLeaving 返回 true 表示卡车本帧越过了屏幕右边界
func (s *TruckSpotSystem) updateLeaving(motion *components.TruckMotionComponent, frames float64) bool {
	if motion.OffsetX >= s.config.Screen.Width {
		motion.Kind = components.MotionNone
		return true
	}
	motion.OffsetX += frames * motion.Speed
	motion.Speed += frames * s.config.Motion.LeaveAcceleration
	return false
}

// updatePulse 字母标签缩放: 1 + A*sin(t/T)
func (s *TruckSpotSystem) updatePulse() {
	phase := s.clock.ElapsedMs() / s.config.Label.PulsePeriodMs
	scale := 1 + s.config.Label.PulseAmplitude*math.Sin(phase)

	for _, id := range ecs.GetEntitiesWith1[*components.LetterLabelComponent](s.entityManager) {
		label, _ := ecs.GetComponent[*components.LetterLabelComponent](s.entityManager, id)
		label.Scale = scale
	}
}

func (s *TruckSpotSystem) enterEntering(id ecs.EntityID) {
	motion, ok := ecs.GetComponent[*components.TruckMotionComponent](s.entityManager, id)
	if !ok {
		return
	}
	motion.Kind = components.MotionEntering
	motion.OffsetX = s.config.Motion.EnterStartX
	motion.Speed = 0
}

func (s *TruckSpotSystem) enterReady(id ecs.EntityID, spot *components.TruckSpotComponent) {
	if motion, ok := ecs.GetComponent[*components.TruckMotionComponent](s.entityManager, id); ok {
		motion.Kind = components.MotionNone
		motion.OffsetX = s.config.Motion.RestX
	}

	ecs.AddComponent(s.entityManager, id, &components.LetterLabelComponent{
		Text:    strings.ToUpper(string(spot.Letter)),
		OffsetX: s.config.Label.OffsetX,
		OffsetY: s.config.Label.OffsetY,
		Scale:   1,
	})
}

func (s *TruckSpotSystem) enterLeaving(id ecs.EntityID) {
	// 标签立即移除，脉冲动画随之停止
	ecs.RemoveComponent[*components.LetterLabelComponent](s.entityManager, id)

	if motion, ok := ecs.GetComponent[*components.TruckMotionComponent](s.entityManager, id); ok {
		motion.Kind = components.MotionLeaving
		motion.Speed = s.config.Motion.LeaveStartSpeed
	}
}
