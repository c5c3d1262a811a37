package herofx

import "time"

// debugStats holds per-frame timing and simulation metrics.
// Only populated when App.debug is true.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	hitCells   int
	totalCells int
	progress   float64
	navLocked  bool
}

// debugLog prints the frame stats through the package logger.
func (a *App) debugLog(stats debugStats) {
	if !a.debug {
		return
	}
	logger.Printf("update: %v | draw: %v | cells: %d/%d hit | progress: %.3f | nav locked: %t",
		stats.updateTime, stats.drawTime, stats.hitCells, stats.totalCells,
		stats.progress, stats.navLocked)
}
