package components

// LetterLabelComponent 卡车上方的字母标签
//
// 只在卡车 Ready 时存在。组件存在期间 TruckSpotSystem 每帧更新 Scale（脉冲动画），
// 移除组件即停止动画。
type LetterLabelComponent struct {
	Text    string  // 显示文本（大写字母）
	OffsetX float64 // 标签中心相对车位原点的偏移
	OffsetY float64
	Scale   float64 // 脉冲缩放，1.0 为原始大小
}
