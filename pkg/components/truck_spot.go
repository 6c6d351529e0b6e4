package components

// SpotState 车位上卡车的状态
// 状态只会向前推进：Entering -> Ready -> Leaving
type SpotState int

const (
	// SpotEntering 卡车正在驶入车位
	SpotEntering SpotState = iota
	// SpotReady 卡车停稳，显示字母，等待玩家输入
	SpotReady
	// SpotLeaving 卡车正在驶离（终态）
	SpotLeaving
)

// String 返回状态名称（用于日志）
func (s SpotState) String() string {
	switch s {
	case SpotEntering:
		return "Entering"
	case SpotReady:
		return "Ready"
	case SpotLeaving:
		return "Leaving"
	default:
		return "Unknown"
	}
}

// TruckSpotComponent 车位卡车组件
//
// 每个车位同一时刻只有一个卡车实体。Letter 和 TruckVariant 在创建时确定，
// 之后不再变化；State 只由 TruckSpotSystem 修改。
type TruckSpotComponent struct {
	Slot         int       // 所属车位索引（0 开始）
	Letter       rune      // 需要输入的字母（小写存储，显示时转大写）
	TruckVariant int       // 卡车外观索引（调色板下标）
	State        SpotState // 当前状态
}
