package scenes

import (
	"image/color"

	"github.com/decker502/truckload/pkg/components"
	"github.com/decker502/truckload/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var labelColor = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}

// drawSpots 按实体创建顺序绘制卡车和字母标签
func (s *GameScene) drawSpots(screen *ebiten.Image) {
	em := s.entityManager
	entities := ecs.GetEntitiesWith3[
		*components.TruckSpotComponent,
		*components.TruckMotionComponent,
		*components.PositionComponent,
	](em)

	for _, id := range entities {
		spot, _ := ecs.GetComponent[*components.TruckSpotComponent](em, id)
		motion, _ := ecs.GetComponent[*components.TruckMotionComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		if img := s.resourceManager.TruckImage(spot.TruckVariant); img != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(pos.X+motion.OffsetX, pos.Y)
			screen.DrawImage(img, op)
		}

		if label, ok := ecs.GetComponent[*components.LetterLabelComponent](em, id); ok {
			s.drawLabel(screen, pos, label)
		}
	}
}

// drawLabel 标签以中心为锚点缩放
func (s *GameScene) drawLabel(screen *ebiten.Image, pos *components.PositionComponent, label *components.LetterLabelComponent) {
	scale := label.Scale * s.config.Label.BaseScale

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pos.X+label.OffsetX, pos.Y+label.OffsetY)
	op.ColorScale.ScaleWithColor(labelColor)

	text.Draw(screen, label.Text, s.resourceManager.LabelFace(), op)
}
