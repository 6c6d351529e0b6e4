// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，main.go 只负责解析命令行参数。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand/v2"
	"time"

	"github.com/decker502/truckload/pkg/config"
	"github.com/decker502/truckload/pkg/game"
	"github.com/decker502/truckload/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机种子，0 表示使用当前时间
	Seed uint64
	// ConfigPath 游戏配置路径，默认使用嵌入的 data/game_config.yaml
	ConfigPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	config       *config.GameConfig
	verbose      bool
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入配置前，必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigPath
	}
	gameConfig, err := config.LoadGameConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载游戏配置: %s", configPath)

	resourceManager, err := game.NewResourceManager(gameConfig)
	if err != nil {
		return nil, fmt.Errorf("资源加载失败: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	log.Printf("[App] 随机种子: %d", seed)

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() (game.Scene, error) {
		return scenes.NewGameScene(resourceManager, gameConfig, rng)
	})

	gameScene, err := scenes.NewGameScene(resourceManager, gameConfig, rng)
	if err != nil {
		return nil, err
	}
	sceneManager.SwitchTo(gameScene)

	return &App{
		sceneManager: sceneManager,
		config:       gameConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("[App] Escape pressed, exiting")
		return ebiten.Termination
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F5 重新开始
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		a.sceneManager.Restart()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时 letterbox 区域填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.ScreenSize()
}

// ScreenSize 返回配置中的逻辑屏幕尺寸
func (a *App) ScreenSize() (int, int) {
	return int(a.config.Screen.Width), int(a.config.Screen.Height)
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
