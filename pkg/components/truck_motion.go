package components

// MotionKind 卡车当前的逐帧动画类型
type MotionKind int

const (
	// MotionNone 没有运行中的移动动画（停稳或已驶出）
	MotionNone MotionKind = iota
	// MotionEntering 匀速驶向停靠点
	MotionEntering
	// MotionLeaving 加速驶出屏幕
	MotionLeaving
)

// String 返回动画类型名称（用于日志）
func (k MotionKind) String() string {
	switch k {
	case MotionNone:
		return "None"
	case MotionEntering:
		return "Entering"
	case MotionLeaving:
		return "Leaving"
	default:
		return "Unknown"
	}
}

// TruckMotionComponent 卡车移动组件
// OffsetX 是卡车相对车位原点的横向位置，Kind 为 MotionNone 时系统不再推进该实体
type TruckMotionComponent struct {
	Kind    MotionKind
	OffsetX float64 // 像素
	Speed   float64 // 像素/帧，仅驶离时使用
}
