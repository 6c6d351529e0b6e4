package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 由 SceneManager 驱动的场景
//
// 目前只有装货场景；F5 重开时 SceneManager 通过 SceneFactory 重建它。
type Scene interface {
	// Update 推进一帧，deltaTime 单位为秒
	Update(deltaTime float64)

	// Draw 把场景绘制到逻辑屏幕
	Draw(screen *ebiten.Image)
}
