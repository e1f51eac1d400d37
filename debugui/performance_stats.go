package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/fptetris/ecs"
	"github.com/plus3/fptetris/scene"
)

// PerformanceStats shows the frame time graph, the scene stack counters and
// per-system timing of the tick scheduler.
type PerformanceStats struct {
	scheduler *ecs.Scheduler
	scenes    *scene.Manager
	history   *FrameHistory
	timer     *FrameTimer
}

func NewPerformanceStats(scheduler *ecs.Scheduler, scenes *scene.Manager, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		scheduler: scheduler,
		scenes:    scenes,
		history:   NewFrameHistory(historyFrames),
		timer:     NewFrameTimer(),
	}
}

func (ps *PerformanceStats) Render() {
	ps.history.Add(ps.timer.Tick())

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	scenes := ps.scenes.Stats()
	stats := ps.scheduler.GetStats()
	imgui.Text(fmt.Sprintf("Scene Depth: %d", scenes.Depth))
	imgui.Text(fmt.Sprintf("Transitions: %d", scenes.Transitions))
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))

	avg := ps.history.Average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	if samples := ps.history.Samples(); len(samples) > 0 {
		imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))
	}

	if imgui.TreeNodeStr("System Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Executions")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableSetupColumn("Last")
			imgui.TableHeadersRow()

			for _, s := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(s.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", s.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(s.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(s.MaxDuration.String())
				imgui.TableNextColumn()
				imgui.Text(s.LastDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
