// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package cli

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/spf13/viper"
)

// Threads returns the number of workers.  A value of -1 is replaced by the number of logical CPUs.
func Threads(v *viper.Viper) int {
	threads := v.GetInt(FlagThreads)
	if threads != -1 {
		return threads
	}
	count, err := cpu.Counts(true)
	if err != nil || count < 1 {
		return runtime.NumCPU()
	}
	return count
}
