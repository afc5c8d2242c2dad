package sceneedit

import (
	"log/slog"
	"time"
)

// debugStats holds per-frame timing. Only populated when Config.Debug is set.
type debugStats struct {
	frame         uint64
	inputTime     time.Duration
	integrateTime time.Duration
	injected      bool
	velocity      float64
}

// debugLog records the frame's timing at debug level.
func (e *Editor) debugLog(stats debugStats) {
	if !e.cfg.Debug {
		return
	}
	e.log.Debug("frame",
		"frame", stats.frame,
		"input", stats.inputTime,
		"integrate", stats.integrateTime,
		"total", stats.inputTime+stats.integrateTime,
		"injected", stats.injected,
		"speed", stats.velocity,
		"state", e.controls.State().String(),
	)
}

// debugMaxTreeDepth is the depth past which AddChild warns.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(log *slog.Logger, n *Node) {
	if d := n.Depth(); d > debugMaxTreeDepth {
		log.Warn("tree depth exceeds threshold", "depth", d, "threshold", debugMaxTreeDepth, "node", n.Name)
	}
}

// debugMaxChildCount is the child count past which AddChild warns.
const debugMaxChildCount = 1000

func debugCheckChildCount(log *slog.Logger, n *Node) {
	if c := len(n.children); c > debugMaxChildCount {
		log.Warn("child count exceeds threshold", "node", n.Name, "children", c, "threshold", debugMaxChildCount)
	}
}
