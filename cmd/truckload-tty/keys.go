package main

import (
	"github.com/decker502/truckload/pkg/input"
	"github.com/gdamore/tcell/v2"
)

// isQuitKey Esc 或 Ctrl+C 退出
func isQuitKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}

// keyEventFromTcell 把终端按键转换为游戏按键事件
//
// 可打印字符保留原始大小写；其余按键使用 tcell 的按键名，
// 会话分发时会将其视为不可打印而忽略。
func keyEventFromTcell(ev *tcell.EventKey) input.KeyEvent {
	mods := ev.Modifiers()
	ke := input.KeyEvent{
		Ctrl: mods&tcell.ModCtrl != 0,
		Alt:  mods&tcell.ModAlt != 0,
		Meta: mods&tcell.ModMeta != 0,
	}

	if ev.Key() == tcell.KeyRune {
		ke.Key = string(ev.Rune())
	} else {
		ke.Key = ev.Name()
	}
	return ke
}
