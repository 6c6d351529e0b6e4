// Package scenes 包含游戏的各个场景实现
package scenes

import "image/color"

// BackgroundColor 场景背景色
var BackgroundColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
