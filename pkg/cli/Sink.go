// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/viper"

	"github.com/navwar/gotransfer/pkg/log"
	"github.com/navwar/gotransfer/pkg/progress"
)

// InitSink returns the progress sink and a function that completes the display once the transfer returns.
// The bar is written to w, unless progress records are sent to the logger instead.
func InitSink(v *viper.Viper, description string, w io.Writer, logger *log.SimpleLogger) (progress.Sink, func()) {
	if v.GetBool(FlagNoProgress) {
		return progress.NewLogSink(logger, v.GetDuration(FlagProgressInterval)), func() {}
	}
	bar := progress.NewBar(description, w)
	return bar, func() {
		if !bar.Rendered() {
			return
		}
		if err := bar.Finish(); err == nil {
			_, _ = fmt.Fprintln(w)
		}
	}
}
