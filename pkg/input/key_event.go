// Package input 定义与前端无关的键盘事件
//
// Ebitengine 前端（pkg/utils）和终端前端（cmd/truckload-tty）都把各自的
// 原始按键转换成 KeyEvent，再交给游戏会话分发。
package input

import (
	"unicode"
	"unicode/utf8"
)

// KeyEvent 一次按键
type KeyEvent struct {
	Key  string // 按键产生的字符，或特殊键名（如 "Enter"）
	Ctrl bool
	Meta bool // Command / Super
	Alt  bool
}

// HasModifier 是否按住了 Ctrl / Meta / Alt
// Shift 不算修饰键，它只影响产生的字符
func (e KeyEvent) HasModifier() bool {
	return e.Ctrl || e.Meta || e.Alt
}

// TypedRune 返回按键代表的可打印字符
// 带修饰键、特殊键名或不可打印字符返回 false
func (e KeyEvent) TypedRune() (rune, bool) {
	if e.HasModifier() {
		return 0, false
	}
	if utf8.RuneCountInString(e.Key) != 1 {
		return 0, false
	}

	r, _ := utf8.DecodeRuneInString(e.Key)
	if r == utf8.RuneError || !unicode.IsPrint(r) {
		return 0, false
	}
	return r, true
}
