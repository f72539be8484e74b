// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package fs_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navwar/gotransfer/pkg/fs"
	"github.com/navwar/gotransfer/pkg/progress"
)

func TestDistribute(t *testing.T) {
	for _, threads := range []int{1, 2, 8} {
		t.Run(fmt.Sprintf("threads=%d", threads), func(t *testing.T) {
			ctx := context.Background()
			fileSystem := newMemoryFileSystem()

			tasks := []fs.TransferTask{}
			total := int64(0)
			for i := 0; i < 20; i++ {
				data := strings.Repeat("x", i+1)
				source := fmt.Sprintf("/src/%02d.txt", i)
				writeFile(t, fileSystem, source, data, 0644)
				tasks = append(tasks, fs.TransferTask{
					Source:      source,
					Destination: fmt.Sprintf("/dst/%02d.txt", i),
				})
				total += int64(len(data))
			}

			last := int64(0)
			state := progress.NewState(total, progress.SinkFunc(func(s progress.Snapshot) {
				assert.GreaterOrEqual(t, s.Completed, last)
				last = s.Completed
			}))

			count, err := fs.Distribute(ctx, &fs.DistributeInput{
				ChunkSize:             3,
				Tasks:                 tasks,
				SourceFileSystem:      fileSystem,
				DestinationFileSystem: fileSystem,
				MaxThreads:            threads,
				Progress:              state,
			})
			require.NoError(t, err)
			assert.Equal(t, len(tasks), count)
			assert.Equal(t, total, state.Snapshot().Completed)
			for i, task := range tasks {
				assert.Equal(t, strings.Repeat("x", i+1), readFile(t, fileSystem, task.Destination))
			}
		})
	}
}

func TestDistributeError(t *testing.T) {
	ctx := context.Background()
	fileSystem := newMemoryFileSystem()
	writeFile(t, fileSystem, "/src/a.txt", "hello", 0644)

	_, err := fs.Distribute(ctx, &fs.DistributeInput{
		Tasks: []fs.TransferTask{
			{Source: "/src/a.txt", Destination: "/dst/a.txt"},
			{Source: "/src/missing.txt", Destination: "/dst/missing.txt"},
		},
		SourceFileSystem:      fileSystem,
		DestinationFileSystem: fileSystem,
		MaxThreads:            2,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/src/missing.txt")
}

func TestDistributeEmpty(t *testing.T) {
	count, err := fs.Distribute(context.Background(), &fs.DistributeInput{
		MaxThreads: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
