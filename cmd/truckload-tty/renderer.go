package main

import (
	"github.com/decker502/truckload/pkg/components"
	"github.com/decker502/truckload/pkg/config"
	"github.com/decker502/truckload/pkg/ecs"
	"github.com/gdamore/tcell/v2"
)

const (
	truckGlyph = '█'
	hintText   = "type the letter on a parked truck   Esc: quit"
)

// terminalRenderer 把逻辑屏幕坐标按比例映射到终端单元格
type terminalRenderer struct {
	screen        tcell.Screen
	entityManager *ecs.EntityManager
	config        *config.GameConfig

	truckStyles []tcell.Style
	labelStyle  tcell.Style
	hintStyle   tcell.Style
}

func newTerminalRenderer(screen tcell.Screen, em *ecs.EntityManager, cfg *config.GameConfig) (*terminalRenderer, error) {
	styles := make([]tcell.Style, 0, cfg.PaletteSize())
	for _, hex := range cfg.Trucks.Palette {
		c, err := config.ParseHexColor(hex)
		if err != nil {
			return nil, err
		}
		fg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		styles = append(styles, tcell.StyleDefault.Foreground(fg))
	}

	return &terminalRenderer{
		screen:        screen,
		entityManager: em,
		config:        cfg,
		truckStyles:   styles,
		labelStyle:    tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
		hintStyle:     tcell.StyleDefault.Foreground(tcell.ColorGray),
	}, nil
}

// Draw 重绘整个终端画面
func (r *terminalRenderer) Draw() {
	r.screen.Clear()
	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}

	scaleX := float64(cols) / r.config.Screen.Width
	scaleY := float64(rows) / r.config.Screen.Height

	entities := ecs.GetEntitiesWith3[*components.PositionComponent, *components.TruckSpotComponent, *components.TruckMotionComponent](r.entityManager)
	for _, id := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](r.entityManager, id)
		spot, _ := ecs.GetComponent[*components.TruckSpotComponent](r.entityManager, id)
		motion, _ := ecs.GetComponent[*components.TruckMotionComponent](r.entityManager, id)

		left := int((pos.X + motion.OffsetX) * scaleX)
		top := int(pos.Y * scaleY)
		width := max(1, int(r.config.Trucks.Width*scaleX))
		height := max(1, int(r.config.Trucks.Height*scaleY))
		style := r.truckStyle(spot.TruckVariant)

		for dy := 0; dy < height; dy++ {
			for dx := 0; dx < width; dx++ {
				r.setCell(left+dx, top+dy, truckGlyph, style, cols, rows)
			}
		}

		label, ok := ecs.GetComponent[*components.LetterLabelComponent](r.entityManager, id)
		if !ok {
			continue
		}
		// 终端无法缩放字符，脉冲放大时加粗显示
		labelStyle := r.labelStyle.Bold(label.Scale >= 1)
		lx := int((pos.X + label.OffsetX) * scaleX)
		ly := int((pos.Y + label.OffsetY) * scaleY)
		for i, ch := range []rune(label.Text) {
			r.setCell(lx+i, ly, ch, labelStyle, cols, rows)
		}
	}

	for i, ch := range []rune(hintText) {
		r.setCell(i, rows-1, ch, r.hintStyle, cols, rows)
	}

	r.screen.Show()
}

func (r *terminalRenderer) truckStyle(variant int) tcell.Style {
	if variant < 0 || variant >= len(r.truckStyles) {
		return tcell.StyleDefault
	}
	return r.truckStyles[variant]
}

func (r *terminalRenderer) setCell(x, y int, ch rune, style tcell.Style, cols, rows int) {
	if x < 0 || x >= cols || y < 0 || y >= rows {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}
