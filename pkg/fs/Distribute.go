// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package fs

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Distribute copies every task using MaxThreads workers that share one queue, and
// returns once the queue is drained and all workers have exited.
// The first error stops the remaining workers from taking new tasks.
func Distribute(ctx context.Context, input *DistributeInput) (int, error) {
	copyTask := func(ctx context.Context, task TransferTask) error {
		_, err := Copy(ctx, &CopyInput{
			ChunkSize:             input.ChunkSize,
			SourceName:            task.Source,
			SourceFileSystem:      input.SourceFileSystem,
			DestinationName:       task.Destination,
			DestinationFileSystem: input.DestinationFileSystem,
			Logger:                input.Logger,
			Mirror:                input.Mirror,
			Progress:              input.Progress,
			Verify:                input.Verify,
		})
		if err != nil {
			return fmt.Errorf("error copying %q to %q: %w", task.Source, task.Destination, err)
		}
		return nil
	}

	// a single thread copies in order without a queue
	if input.MaxThreads <= 1 {
		for i, task := range input.Tasks {
			if err := copyTask(ctx, task); err != nil {
				return i, err
			}
		}
		return len(input.Tasks), nil
	}

	queue := make(chan TransferTask, len(input.Tasks))
	for _, task := range input.Tasks {
		queue <- task
	}
	close(queue)

	count := atomic.Int64{}

	wg, groupContext := errgroup.WithContext(ctx)
	for i := 0; i < input.MaxThreads; i++ {
		wg.Go(func() error {
			for task := range queue {
				if err := groupContext.Err(); err != nil {
					return err
				}
				if err := copyTask(groupContext, task); err != nil {
					return err
				}
				count.Add(1)
			}
			return nil
		})
	}

	// wait for all workers to exit
	if err := wg.Wait(); err != nil {
		return int(count.Load()), err
	}

	return int(count.Load()), nil
}
