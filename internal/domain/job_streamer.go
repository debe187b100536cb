package domain

import (
	"context"
	"log/slog"
	"sort"

	m "loshu.dev/pkg/loshu/internal/model"
)

// JobStreamer enumerates and shards the syntheses of a batch run.
type JobStreamer interface {
	Get(ctx context.Context, orders []int, variants []m.Variant, threads int) <-chan m.Job
	ShardJobs(ctx context.Context, all <-chan m.Job, threads int, shardIndex, totalShardCount int) <-chan m.Job
}

type jobStreamer struct{}

// NewJobStreamer creates a JobStreamer.
func NewJobStreamer() JobStreamer {
	return &jobStreamer{}
}

// Get streams one job per (order, method, variant), with orders ascending and
// every construction applicable to the order's class. Invalid orders are
// skipped. The channel closes when done or when ctx is cancelled.
func (js *jobStreamer) Get(ctx context.Context, orders []int, variants []m.Variant, threads int) <-chan m.Job {
	ch := make(chan m.Job, normalizeBufferSize(threads))

	go func() {
		defer close(ch)

		index := 0

		for _, order := range uniqueSorted(orders) {
			class, err := Classify(order)
			if err != nil {
				slog.Warn("Skipping order", "order", order, "error", err)
				continue
			}

			for _, method := range MethodsFor(class) {
				for _, variant := range variants {
					job := m.Job{Index: index, Order: order, Method: method, Variant: variant}

					select {
					case <-ctx.Done():
						slog.Debug("Job streaming cancelled")
						return
					case ch <- job:
					}

					index++
				}
			}
		}

		slog.Debug("Streamed jobs", "count", index)
	}()

	return ch
}

// ShardJobs keeps the jobs whose index maps onto shardIndex using round-robin
// assignment. A non-positive totalShardCount passes every job through.
func (js *jobStreamer) ShardJobs(ctx context.Context, all <-chan m.Job, threads int, shardIndex, totalShardCount int) <-chan m.Job {
	ch := make(chan m.Job, normalizeBufferSize(threads))

	go func() {
		defer close(ch)

		for job := range all {
			if totalShardCount > 0 && job.Index%totalShardCount != shardIndex {
				continue
			}

			select {
			case <-ctx.Done():
				slog.Debug("Job sharding cancelled")
				return
			case ch <- job:
			}
		}
	}()

	return ch
}

// normalizeBufferSize ensures the buffer size is at least 1.
func normalizeBufferSize(threads int) int {
	if threads <= 0 {
		return 1
	}

	return threads
}

func uniqueSorted(values []int) []int {
	seen := make(map[int]struct{}, len(values))
	out := make([]int, 0, len(values))

	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		out = append(out, v)
	}

	sort.Ints(out)

	return out
}
