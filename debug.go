package sprout

import (
	"fmt"
	"os"
	"time"
)

// statsWindow is how many frames accumulate between stderr reports.
const statsWindow = 60

// frameStats accumulates per-frame timing. Only reported when
// RunConfig.Debug is true.
type frameStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	frames     int
}

// maybeLog prints averaged update/draw timing to stderr once per window
// and resets the accumulators.
func (fs *frameStats) maybeLog() {
	fs.frames++
	if fs.frames < statsWindow {
		return
	}
	n := time.Duration(fs.frames)
	_, _ = fmt.Fprintf(os.Stderr,
		"[sprout] update: %v | draw: %v | total: %v (avg over %d frames)\n",
		fs.updateTime/n, fs.drawTime/n, (fs.updateTime+fs.drawTime)/n, fs.frames)
	fs.updateTime = 0
	fs.drawTime = 0
	fs.frames = 0
}
