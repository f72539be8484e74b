// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Bar renders a single terminal progress bar for a whole transfer.
// The underlying bar is created on the first report, once the total is known.
type Bar struct {
	description string
	writer      io.Writer
	bar         *progressbar.ProgressBar
}

func (b *Bar) Report(s Snapshot) {
	if b.bar == nil {
		b.bar = b.newBar(s.Total)
	}
	_ = b.bar.Set64(s.Completed)
	b.bar.Describe(fmt.Sprintf("%s [%s, %s]", b.description, FormatSpeed(s.Speed), formatPercent(s)))
}

// Rendered reports whether the bar has been written at least once.
func (b *Bar) Rendered() bool {
	return b.bar != nil
}

// Finish renders the completed bar.  It is a no-op if nothing was reported.
func (b *Bar) Finish() error {
	if b.bar == nil {
		return nil
	}
	return b.bar.Finish()
}

func (b *Bar) newBar(total int64) *progressbar.ProgressBar {
	max := total
	if max <= 0 {
		// unknown size renders as a spinner
		max = -1
	}
	return progressbar.NewOptions64(max,
		progressbar.OptionSetDescription(b.description),
		progressbar.OptionSetWriter(b.writer),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
	)
}

// NewBar returns a bar sink writing to w, e.g., "Downloading" or "Moving".
func NewBar(description string, w io.Writer) *Bar {
	return &Bar{
		description: description,
		writer:      w,
	}
}
