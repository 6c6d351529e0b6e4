// Package utils 提供 Ebitengine 相关的通用工具函数
package utils

import (
	"github.com/decker502/truckload/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// PollKeyEvents 获取当前帧输入的字符并转换为按键事件
//
// 使用 AppendInputChars，字符已经按键盘布局和 Shift 状态处理过；
// Ctrl / Meta / Alt 的按下状态附加在每个事件上，由会话决定是否忽略。
func PollKeyEvents() []input.KeyEvent {
	chars := ebiten.AppendInputChars(nil)
	if len(chars) == 0 {
		return nil
	}

	return keyEventsFromChars(chars,
		ebiten.IsKeyPressed(ebiten.KeyControl),
		ebiten.IsKeyPressed(ebiten.KeyMeta),
		ebiten.IsKeyPressed(ebiten.KeyAlt),
	)
}

// keyEventsFromChars 每个字符生成一个按键事件
func keyEventsFromChars(chars []rune, ctrl, meta, alt bool) []input.KeyEvent {
	events := make([]input.KeyEvent, 0, len(chars))
	for _, r := range chars {
		events = append(events, input.KeyEvent{
			Key:  string(r),
			Ctrl: ctrl,
			Meta: meta,
			Alt:  alt,
		})
	}
	return events
}
