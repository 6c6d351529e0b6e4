package input

import "testing"

func TestTypedRune(t *testing.T) {
	tests := []struct {
		name   string
		event  KeyEvent
		want   rune
		wantOK bool
	}{
		{"小写字母", KeyEvent{Key: "w"}, 'w', true},
		{"大写字母原样返回", KeyEvent{Key: "W"}, 'W', true},
		{"空格可打印", KeyEvent{Key: " "}, ' ', true},
		{"Ctrl", KeyEvent{Key: "w", Ctrl: true}, 0, false},
		{"Meta", KeyEvent{Key: "w", Meta: true}, 0, false},
		{"Alt", KeyEvent{Key: "w", Alt: true}, 0, false},
		{"特殊键名", KeyEvent{Key: "Enter"}, 0, false},
		{"空字符串", KeyEvent{Key: ""}, 0, false},
		{"控制字符", KeyEvent{Key: "\t"}, 0, false},
		{"多字节字符", KeyEvent{Key: "é"}, 'é', true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.event.TypedRune()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("TypedRune() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
