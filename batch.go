package certgen

import (
	"context"
	"sync"
)

// batchDriver executes renders in concurrency-bounded groups: the batch
// is split into consecutive groups of at most concurrency items, each
// group is launched fully and drained before the next one starts. The
// chunk-then-barrier schedule bounds peak concurrency exactly and gives
// deterministic backpressure without a work-stealing pool.
type batchDriver struct {
	concurrency int
	renderer    *renderer
	logger      Logger
}

// run processes every item and aggregates the outcome. One item's
// failure never cancels or delays its group siblings; a failed item is
// final for this invocation, no retries. The context is checked between
// groups only: a started group always drains.
func (d *batchDriver) run(ctx context.Context, items []CertificateItem) BatchResult {
	var result BatchResult
	if len(items) == 0 {
		return result
	}

	size := d.concurrency
	if size < 1 {
		size = 1
	}

	total := len(items)
	processed := 0
	var mu sync.Mutex

	for start := 0; start < total; start += size {
		if err := ctx.Err(); err != nil {
			for _, item := range items[start:] {
				result.Failed = append(result.Failed, FailedItem{Item: item, Err: wrapGeneration(item, err)})
			}
			d.logger.Warn("batch canceled", "processed", processed, "total", total)
			break
		}

		end := start + size
		if end > total {
			end = total
		}

		var wg sync.WaitGroup
		for _, item := range items[start:end] {
			wg.Add(1)
			go func(it CertificateItem) {
				defer wg.Done()

				path, err := d.renderer.render(it)

				// Outcomes are recorded by item identity in completion
				// order; launch order within a group is irrelevant.
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					result.Failed = append(result.Failed, FailedItem{Item: it, Err: err})
					return
				}
				result.Successful = append(result.Successful, path)
			}(item)
		}
		wg.Wait()

		processed += end - start
		d.logger.Info("certificates processed", "processed", processed, "total", total)
	}

	return result
}
