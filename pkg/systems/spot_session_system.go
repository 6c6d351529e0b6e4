package systems

import (
	"fmt"
	"log"

	"github.com/decker502/truckload/pkg/components"
	"github.com/decker502/truckload/pkg/config"
	"github.com/decker502/truckload/pkg/ecs"
	"github.com/decker502/truckload/pkg/input"
)

// SpotSessionSystem 游戏会话
//
// 持有固定数量的车位，每个车位始终有一辆卡车：
//   - 启动时为每个车位分配卡车
//   - 键盘输入匹配到 Ready 的卡车时让它驶离
//   - 卡车驶出屏幕的同一帧内在原车位补充新卡车
type SpotSessionSystem struct {
	entityManager *ecs.EntityManager
	spotSystem    *TruckSpotSystem
	allocator     *SpotAllocator
	slots         []ecs.EntityID
}

// NewSpotSessionSystem 创建游戏会话并填满所有车位
//
// 字母池中不同字母数必须大于车位数，否则返回 config.ErrLetterPoolTooSmall。
func NewSpotSessionSystem(em *ecs.EntityManager, spotSystem *TruckSpotSystem, cfg *config.GameConfig, rng RandSource) (*SpotSessionSystem, error) {
	pool := cfg.LetterPool()
	if len(pool) <= cfg.Slots.Count {
		return nil, fmt.Errorf("%w: %d distinct letters for %d slots", config.ErrLetterPoolTooSmall, len(pool), cfg.Slots.Count)
	}

	s := &SpotSessionSystem{
		entityManager: em,
		spotSystem:    spotSystem,
		allocator:     NewSpotAllocator(rng, pool, cfg.PaletteSize(), cfg.Trucks.VariantAttempts),
		slots:         make([]ecs.EntityID, cfg.Slots.Count),
	}

	for i := range s.slots {
		s.slots[i] = s.newSpot(i)
	}

	log.Printf("[SpotSession] 初始化 %d 个车位，字母池 %q", len(s.slots), string(pool))
	return s, nil
}

// Update 推进一帧，并补充本帧驶离完成的车位
func (s *SpotSessionSystem) Update(deltaTime float64) {
	for _, d := range s.spotSystem.Update(deltaTime) {
		s.refill(d)
	}
}

// HandleKey 分发一次按键
//
// 忽略带修饰键或不可打印的按键。按车位顺序找到第一个 Ready 且字母完全匹配
// （区分大小写）的卡车，让它驶离并返回 true；没有匹配时不产生任何效果。
func (s *SpotSessionSystem) HandleKey(ev input.KeyEvent) bool {
	r, ok := ev.TypedRune()
	if !ok {
		return false
	}

	for _, id := range s.slots {
		spot, ok := s.spotSystem.Spot(id)
		if !ok || spot.State != components.SpotReady || spot.Letter != r {
			continue
		}

		if err := s.spotSystem.SetSpotState(id, components.SpotLeaving); err != nil {
			log.Printf("[SpotSession] 警告: %v", err)
			return false
		}
		return true
	}

	return false
}

// Slots 返回各车位当前的卡车实体
func (s *SpotSessionSystem) Slots() []ecs.EntityID {
	out := make([]ecs.EntityID, len(s.slots))
	copy(out, s.slots)
	return out
}

// SlotCount 返回车位数量
func (s *SpotSessionSystem) SlotCount() int {
	return len(s.slots)
}

// SpotAt 返回指定车位的卡车组件
func (s *SpotSessionSystem) SpotAt(slot int) (*components.TruckSpotComponent, bool) {
	if slot < 0 || slot >= len(s.slots) {
		return nil, false
	}
	return s.spotSystem.Spot(s.slots[slot])
}

// ActiveLetters 返回所有车位正在使用的字母（按车位顺序）
func (s *SpotSessionSystem) ActiveLetters() []rune {
	letters, _ := s.inUse(-1)
	return letters
}

// refill 销毁驶离的卡车并在同一车位分配新卡车
func (s *SpotSessionSystem) refill(d SpotDeparture) {
	if d.Slot < 0 || d.Slot >= len(s.slots) || s.slots[d.Slot] != d.Entity {
		log.Printf("[SpotSession] 警告: 忽略过期的驶离事件 slot=%d entity=%d", d.Slot, d.Entity)
		return
	}

	s.entityManager.DestroyEntity(d.Entity)
	s.slots[d.Slot] = s.newSpot(d.Slot)
}

// newSpot 为车位分配字母和外观并创建卡车
func (s *SpotSessionSystem) newSpot(slot int) ecs.EntityID {
	letters, variants := s.inUse(slot)

	letter, ok := s.allocator.PickLetter(letters)
	if !ok {
		// 构造时已校验字母池大小，不会走到这里
		panic(fmt.Sprintf("no free letter for slot %d, in use: %q", slot, string(letters)))
	}
	variant := s.allocator.PickVariant(variants)

	id := s.spotSystem.CreateSpot(slot, letter, variant)
	log.Printf("[SpotSession] 车位 %d: 字母 %q 卡车外观 %d (实体 %d)", slot, letter, variant, id)
	return id
}

// inUse 收集除 exclude 以外各车位的字母和外观
func (s *SpotSessionSystem) inUse(exclude int) ([]rune, []int) {
	letters := make([]rune, 0, len(s.slots))
	variants := make([]int, 0, len(s.slots))
	for i, id := range s.slots {
		if i == exclude {
			continue
		}
		spot, ok := s.spotSystem.Spot(id)
		if !ok {
			continue
		}
		letters = append(letters, spot.Letter)
		variants = append(variants, spot.TruckVariant)
	}
	return letters, variants
}
