package components

// PositionComponent 实体位置（屏幕坐标）
// 对车位实体来说是车位原点，创建后不变
type PositionComponent struct {
	X float64
	Y float64
}
