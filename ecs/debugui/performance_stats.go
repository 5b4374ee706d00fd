package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
)

func NewPerformanceStatsComponent(historyFrames int) PerformanceStatsComponent {
	return PerformanceStatsComponent{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

func (ps *PerformanceStatsComponent) Render(target *Target) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.Record(target.DeltaTime)

	stats := target.World.CollectStats()

	imgui.Text(fmt.Sprintf("Total Entities: %d", stats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Tables: %d", stats.TableCount))
	imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))

	avgFrameTime := ps.AverageFrameTime()
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if target.Scheduler != nil {
		schedulerStats := target.Scheduler.GetStats()
		imgui.Text(fmt.Sprintf("Ticks: %d  Skipped commands: %d", schedulerStats.Ticks, schedulerStats.SkippedCommands))

		if imgui.TreeNodeStr("System Timings") {
			const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
			if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
				imgui.TableSetupColumn("System")
				imgui.TableSetupColumn("Last")
				imgui.TableSetupColumn("Avg")
				imgui.TableSetupColumn("Max")
				imgui.TableHeadersRow()

				for _, system := range schedulerStats.Systems {
					imgui.TableNextRow()
					imgui.TableNextColumn()
					imgui.Text(system.Name)
					imgui.TableNextColumn()
					imgui.Text(system.LastDuration.String())
					imgui.TableNextColumn()
					imgui.Text(system.AvgDuration.String())
					imgui.TableNextColumn()
					imgui.Text(system.MaxDuration.String())
				}

				imgui.EndTable()
			}
			imgui.TreePop()
		}
	}

	if imgui.TreeNodeStr("Table Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("TableStatsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Component")
			imgui.TableSetupColumn("Entity Count")
			imgui.TableHeadersRow()

			for _, table := range stats.TableBreakdown {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(table.ComponentType)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", table.EntityCount))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singleton Details") {
		for _, singletonType := range stats.SingletonTypes {
			imgui.BulletText(singletonType)
		}
		imgui.TreePop()
	}

	imgui.End()
}

// Record stores a frame duration in seconds in the ring buffer.
func (ps *PerformanceStatsComponent) Record(deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

// AverageFrameTime returns the mean of the recorded frame times in milliseconds.
func (ps *PerformanceStatsComponent) AverageFrameTime() float32 {
	var total float32
	for _, ft := range ps.frameHistory {
		total += ft
	}
	return total / float32(ps.historyFrames)
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
