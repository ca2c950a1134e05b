// Package batch fans multiple independent input lines out across
// goroutines and gathers their normalization outcomes, the concrete
// exploitation of spec.md §5's concurrency allowance: matching is
// read-only over a frozen PDAG and safe to run in parallel given
// independent output records.
package batch

import (
	"context"
	"sync"

	"github.com/rsyslog/go-lognorm/internal/matcher"
	"github.com/rsyslog/go-lognorm/internal/pdag"
	"github.com/rsyslog/go-lognorm/internal/result"
)

type outcomeWrapper struct {
	index   int
	outcome result.Outcome
	err     error
}

// NormalizeAll normalizes every line in lines against ctx concurrently,
// one goroutine per line, honoring ctx's cancellation between dispatch and
// gather. This is bounded fan-out over already-available lines, not
// streaming/incremental matching (spec.md's Non-goals still exclude that).
// Grounded directly on the teacher's executeConcurrent
// (query/composite_queries.go).
func NormalizeAll(ctx context.Context, pctx *pdag.Context, lines []string) ([]result.Outcome, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	outcomes := make([]result.Outcome, len(lines))
	resCh := make(chan outcomeWrapper, len(lines))

	var wg sync.WaitGroup
	wg.Add(len(lines))

	for i, line := range lines {
		go func(i int, line string) {
			defer wg.Done()
			select {
			case <-ctx.Done():
				resCh <- outcomeWrapper{index: i, err: ctx.Err()}
				return
			default:
			}
			outcome, err := matcher.Normalize(pctx, line)
			resCh <- outcomeWrapper{index: i, outcome: outcome, err: err}
		}(i, line)
	}

	go func() {
		wg.Wait()
		close(resCh)
	}()

	for rw := range resCh {
		if rw.err != nil {
			cancel()
			return nil, rw.err
		}
		outcomes[rw.index] = rw.outcome
	}

	return outcomes, nil
}
