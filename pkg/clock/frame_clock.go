// Package clock 提供游戏的帧时钟
//
// 帧时钟由前端（Ebitengine 的 Update 或终端版的 ticker）每帧推进一次，
// 并在构造时显式传给需要时间信息的系统，测试中可直接手动推进。
package clock

// FrameClock 帧时钟
type FrameClock struct {
	ticksPerSecond float64
	elapsedMs      float64 // 自启动以来的总时长（毫秒）
	deltaSeconds   float64 // 最近一帧的时长（秒）
	frameCount     uint64
}

// NewFrameClock 创建帧时钟
// ticksPerSecond 为基准帧率，Frames() 以它为单位换算帧时长
func NewFrameClock(ticksPerSecond float64) *FrameClock {
	if ticksPerSecond <= 0 {
		ticksPerSecond = 60
	}
	return &FrameClock{ticksPerSecond: ticksPerSecond}
}

// Advance 推进一帧
func (c *FrameClock) Advance(deltaSeconds float64) {
	if deltaSeconds < 0 {
		deltaSeconds = 0
	}
	c.deltaSeconds = deltaSeconds
	c.elapsedMs += deltaSeconds * 1000
	c.frameCount++
}

// ElapsedMs 返回累计时长（毫秒）
func (c *FrameClock) ElapsedMs() float64 {
	return c.elapsedMs
}

// DeltaSeconds 返回最近一帧的时长（秒）
func (c *FrameClock) DeltaSeconds() float64 {
	return c.deltaSeconds
}

// FrameCount 返回已推进的帧数
func (c *FrameClock) FrameCount() uint64 {
	return c.frameCount
}

// TicksPerSecond 返回基准帧率
func (c *FrameClock) TicksPerSecond() float64 {
	return c.ticksPerSecond
}

// ToFrames 把秒换算成基准帧数（60 TPS 下 1/60 秒 = 1 帧）
func (c *FrameClock) ToFrames(deltaSeconds float64) float64 {
	return deltaSeconds * c.ticksPerSecond
}
