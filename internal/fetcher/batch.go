package fetcher

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// FetchAll processes urls in order, one at a time, pacing consecutive
// requests by at least delay. Every URL is attempted; one bad URL never
// aborts the batch. report, when non-nil, is called with each outcome as
// it happens.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string, delay time.Duration, report func(Outcome)) Summary {
	limiter := rate.NewLimiter(rate.Every(delay), 1)
	summary := Summary{Dir: f.store.Dir()}

	for i, url := range urls {
		if err := limiter.Wait(ctx); err != nil {
			// Context cancelled while pacing: account for the remaining
			// URLs so the summary still covers the whole batch.
			for _, rest := range urls[i:] {
				outcome := failed(rest, ReasonNetwork, err)
				summary.add(outcome)
				if report != nil {
					report(outcome)
				}
			}
			break
		}

		outcome := f.Fetch(ctx, url)
		summary.add(outcome)
		if report != nil {
			report(outcome)
		}
	}

	return summary
}
