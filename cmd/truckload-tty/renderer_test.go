package main

import (
	"testing"

	"github.com/decker502/truckload/pkg/components"
	"github.com/decker502/truckload/pkg/config"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cell struct {
	ch    rune
	style tcell.Style
}

// MockScreen 记录 SetContent 写入的单元格
type MockScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]cell
	shows         int
}

func newMockScreen(w, h int) *MockScreen {
	return &MockScreen{width: w, height: h, cells: make(map[[2]int]cell)}
}

func (m *MockScreen) Size() (int, int) { return m.width, m.height }
func (m *MockScreen) Clear()           { m.cells = make(map[[2]int]cell) }
func (m *MockScreen) Show()            { m.shows++ }
func (m *MockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = cell{ch: mainc, style: style}
}

func (m *MockScreen) at(x, y int) rune {
	return m.cells[[2]int{x, y}].ch
}

// zeroRand 总是返回 0，字母依次分配为 q w e
type zeroRand struct{}

func (zeroRand) IntN(int) int { return 0 }

func newTestGame(t *testing.T, screen *MockScreen) *ttyGame {
	t.Helper()
	g, err := newTTYGame(screen, config.DefaultGameConfig(), zeroRand{})
	require.NoError(t, err)
	return g
}

func settle(g *ttyGame, ticks int) {
	for i := 0; i < ticks; i++ {
		g.Update(1.0 / 60.0)
	}
}

func TestRendererDrawsParkedTrucksAndLabels(t *testing.T) {
	screen := newMockScreen(80, 24)
	g := newTestGame(t, screen)
	settle(g, 200)

	g.renderer.Draw()

	// 800x600 映射到 80x24: 每列 10px，每行 25px
	assert.Equal(t, 'Q', screen.at(23, 5))
	assert.Equal(t, 'W', screen.at(23, 13))
	assert.Equal(t, 'E', screen.at(23, 21))

	// 第 0 车位停靠在 x=150 处，宽 16 列，高 2 行
	assert.Equal(t, truckGlyph, screen.at(15, 4))
	assert.Equal(t, truckGlyph, screen.at(30, 5))
	assert.Equal(t, rune(0), screen.at(31, 4))
	assert.Equal(t, rune(0), screen.at(14, 4))

	spot, ok := g.session.SpotAt(0)
	require.True(t, ok)
	assert.Equal(t, g.renderer.truckStyle(spot.TruckVariant), screen.cells[[2]int{15, 4}].style)

	assert.Equal(t, 1, screen.shows)
}

func TestRendererHidesLabelWhileEntering(t *testing.T) {
	screen := newMockScreen(80, 24)
	g := newTestGame(t, screen)
	settle(g, 100)

	g.renderer.Draw()

	for pos, c := range screen.cells {
		if pos[1] == 23 {
			continue
		}
		assert.Equal(t, truckGlyph, c.ch, "unexpected glyph at %v", pos)
	}
}

func TestRendererClipsOffscreenTrucks(t *testing.T) {
	screen := newMockScreen(80, 24)
	g := newTestGame(t, screen)

	// 初始位置 x = 100 - 450，卡车完全在屏幕左侧之外
	g.renderer.Draw()

	for pos := range screen.cells {
		assert.True(t, pos[0] >= 0 && pos[0] < 80 && pos[1] >= 0 && pos[1] < 24, "cell %v out of bounds", pos)
		assert.Equal(t, 23, pos[1], "only the hint line should be visible, got %v", pos)
	}
}

func TestTypedLetterDrivesTruckAway(t *testing.T) {
	screen := newMockScreen(80, 24)
	g := newTestGame(t, screen)
	settle(g, 200)

	handled := g.session.HandleKey(keyEventFromTcell(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)))
	require.True(t, handled)

	spot, ok := g.session.SpotAt(1)
	require.True(t, ok)
	assert.Equal(t, components.SpotLeaving, spot.State)

	g.renderer.Draw()
	assert.NotEqual(t, 'W', screen.at(23, 13))
}
