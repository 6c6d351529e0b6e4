package systems

import (
	"testing"

	"github.com/decker502/truckload/pkg/clock"
	"github.com/decker502/truckload/pkg/components"
	"github.com/decker502/truckload/pkg/config"
	"github.com/decker502/truckload/pkg/ecs"
	"github.com/stretchr/testify/require"
)

const testDeltaTime = 1.0 / 60.0

// scriptedRand 按给定序列返回随机数（超出 n 时取模），序列用完后返回 0
type scriptedRand struct {
	values []int
	calls  int
}

func (r *scriptedRand) IntN(n int) int {
	defer func() { r.calls++ }()
	if r.calls >= len(r.values) {
		return 0
	}
	return r.values[r.calls] % n
}

// testWorld 不带渲染的最小游戏世界
type testWorld struct {
	em      *ecs.EntityManager
	clock   *clock.FrameClock
	cfg     *config.GameConfig
	spots   *TruckSpotSystem
	session *SpotSessionSystem
}

func newTestWorld(t *testing.T, rng RandSource) *testWorld {
	t.Helper()

	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	fc := clock.NewFrameClock(cfg.Screen.TicksPerSecond)
	spots := NewTruckSpotSystem(em, fc, cfg)

	session, err := NewSpotSessionSystem(em, spots, cfg, rng)
	require.NoError(t, err)

	return &testWorld{em: em, clock: fc, cfg: cfg, spots: spots, session: session}
}

// tick 推进一帧，顺序与游戏场景一致
func (w *testWorld) tick() {
	w.clock.Advance(testDeltaTime)
	w.session.Update(testDeltaTime)
	w.em.RemoveMarkedEntities()
}

// tickUntil 推进直到条件成立，返回所用帧数
func (w *testWorld) tickUntil(t *testing.T, maxTicks int, cond func() bool) int {
	t.Helper()
	for i := 1; i <= maxTicks; i++ {
		w.tick()
		if cond() {
			return i
		}
	}
	require.FailNowf(t, "condition not reached", "after %d ticks", maxTicks)
	return 0
}

func (w *testWorld) allReady() bool {
	for i := 0; i < w.session.SlotCount(); i++ {
		spot, ok := w.session.SpotAt(i)
		if !ok || spot.State != components.SpotReady {
			return false
		}
	}
	return true
}
