package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/truckload/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 嵌入的默认游戏配置
const DefaultConfigPath = "data/game_config.yaml"

// ErrLetterPoolTooSmall 字母池中不同字母的数量必须大于车位数，
// 否则无法保证每个车位分到互不相同的字母
var ErrLetterPoolTooSmall = errors.New("letter pool must contain more distinct letters than slots")

// GameConfig 游戏配置
//
// 配置文件位置: data/game_config.yaml
//
// 速度类参数的单位是"像素/帧"，以 Screen.TicksPerSecond 为基准帧率，
// 系统每帧用 deltaTime * TicksPerSecond 换算实际推进量。
type GameConfig struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Slots   SlotsConfig   `yaml:"slots"`
	Letters LettersConfig `yaml:"letters"`
	Trucks  TrucksConfig  `yaml:"trucks"`
	Motion  MotionConfig  `yaml:"motion"`
	Label   LabelConfig   `yaml:"label"`
}

// ScreenConfig 逻辑屏幕尺寸
type ScreenConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	TicksPerSecond float64 `yaml:"ticksPerSecond"`
}

// SlotsConfig 车位布局
// 第 i 个车位的原点为 (OriginX, OriginY + i*RowHeight)
type SlotsConfig struct {
	Count     int     `yaml:"count"`
	OriginX   float64 `yaml:"originX"`
	OriginY   float64 `yaml:"originY"`
	RowHeight float64 `yaml:"rowHeight"`
}

// LettersConfig 字母池
type LettersConfig struct {
	// Pool 可分配的字母（默认是键盘左手区的 12 个键）
	Pool string `yaml:"pool"`
}

// TrucksConfig 卡车外观
type TrucksConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Palette 卡车颜色，每个颜色对应一种卡车外观（#rrggbb）
	Palette []string `yaml:"palette"`
	// VariantAttempts 挑选与其他车位不同外观时的随机尝试次数
	VariantAttempts int `yaml:"variantAttempts"`
}

// MotionConfig 卡车移动参数（相对车位原点的 X 坐标）
type MotionConfig struct {
	EnterStartX       float64 `yaml:"enterStartX"`
	RestX             float64 `yaml:"restX"`
	EnterSpeed        float64 `yaml:"enterSpeed"`
	LeaveStartSpeed   float64 `yaml:"leaveStartSpeed"`
	LeaveAcceleration float64 `yaml:"leaveAcceleration"`
}

// LabelConfig 字母标签
type LabelConfig struct {
	// OffsetX/OffsetY 标签中心相对车位原点的偏移
	OffsetX float64 `yaml:"offsetX"`
	OffsetY float64 `yaml:"offsetY"`
	// BaseScale 渲染时的基础缩放，脉冲缩放叠加在其上
	BaseScale      float64 `yaml:"baseScale"`
	PulseAmplitude float64 `yaml:"pulseAmplitude"`
	PulsePeriodMs  float64 `yaml:"pulsePeriodMs"`
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Screen: ScreenConfig{
			Width:          800,
			Height:         600,
			TicksPerSecond: 60,
		},
		Slots: SlotsConfig{
			Count:     3,
			OriginX:   100,
			OriginY:   100,
			RowHeight: 200,
		},
		Letters: LettersConfig{
			Pool: "qwerasdfzxcv",
		},
		Trucks: TrucksConfig{
			Width:           160,
			Height:          66,
			Palette:         []string{"#d9533f", "#3f7fd9", "#4cae5b", "#e0b13a"},
			VariantAttempts: 5,
		},
		Motion: MotionConfig{
			EnterStartX:       -450,
			RestX:             50,
			EnterSpeed:        4,
			LeaveStartSpeed:   8,
			LeaveAcceleration: 1,
		},
		Label: LabelConfig{
			OffsetX:        130,
			OffsetY:        33,
			BaseScale:      1,
			PulseAmplitude: 0.2,
			PulsePeriodMs:  200,
		},
	}
}

// ParseGameConfig 解析 YAML 配置
// 未出现在 YAML 中的字段保留默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// LoadGameConfig 加载游戏配置
//
// 以 "data/" 开头的路径优先从嵌入资源读取，其余路径从磁盘读取（用于 -config 覆盖）。
//
// 参数:
//   - path: 配置文件路径（如 "data/game_config.yaml"）
//
// 返回:
//   - *GameConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	var (
		data []byte
		err  error
	)
	if embedded.IsInitialized() && embedded.Exists(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	return ParseGameConfig(data)
}

// Validate 验证配置有效性
func (c *GameConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %.0fx%.0f", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.TicksPerSecond <= 0 {
		return fmt.Errorf("ticksPerSecond must be positive, got %.1f", c.Screen.TicksPerSecond)
	}
	if c.Slots.Count <= 0 {
		return fmt.Errorf("slot count must be positive, got %d", c.Slots.Count)
	}

	if pool := c.LetterPool(); len(pool) <= c.Slots.Count {
		return fmt.Errorf("%w: %d distinct letters for %d slots", ErrLetterPoolTooSmall, len(pool), c.Slots.Count)
	}

	if len(c.Trucks.Palette) == 0 {
		return errors.New("truck palette must not be empty")
	}
	for i, hex := range c.Trucks.Palette {
		if _, err := ParseHexColor(hex); err != nil {
			return fmt.Errorf("truck palette[%d]: %w", i, err)
		}
	}
	if c.Trucks.VariantAttempts < 0 {
		return fmt.Errorf("variantAttempts must not be negative, got %d", c.Trucks.VariantAttempts)
	}

	// 两个动画都依赖位置单调递增才能结束
	if c.Motion.EnterSpeed <= 0 {
		return fmt.Errorf("enterSpeed must be positive, got %.2f", c.Motion.EnterSpeed)
	}
	if c.Motion.LeaveStartSpeed <= 0 {
		return fmt.Errorf("leaveStartSpeed must be positive, got %.2f", c.Motion.LeaveStartSpeed)
	}
	if c.Motion.LeaveAcceleration < 0 {
		return fmt.Errorf("leaveAcceleration must not be negative, got %.2f", c.Motion.LeaveAcceleration)
	}
	if c.Motion.EnterStartX > c.Motion.RestX {
		return fmt.Errorf("enterStartX(%.1f) must not exceed restX(%.1f)", c.Motion.EnterStartX, c.Motion.RestX)
	}

	if c.Label.PulsePeriodMs <= 0 {
		return fmt.Errorf("pulsePeriodMs must be positive, got %.1f", c.Label.PulsePeriodMs)
	}

	return nil
}

// LetterPool 返回去重后的字母池，保持配置中的顺序
func (c *GameConfig) LetterPool() []rune {
	seen := make(map[rune]bool)
	pool := make([]rune, 0, len(c.Letters.Pool))
	for _, r := range c.Letters.Pool {
		if seen[r] {
			continue
		}
		seen[r] = true
		pool = append(pool, r)
	}
	return pool
}

// PaletteSize 返回卡车外观数量
func (c *GameConfig) PaletteSize() int {
	return len(c.Trucks.Palette)
}

// SlotPosition 返回第 slot 个车位的原点
func (c *GameConfig) SlotPosition(slot int) (x, y float64) {
	return c.Slots.OriginX, c.Slots.OriginY + float64(slot)*c.Slots.RowHeight
}

// ParseHexColor 解析 "#rrggbb" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #rrggbb", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
