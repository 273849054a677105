// Package health polls a deployed endpoint until it answers.
package health

import (
	"context"
	"net/http"
	"time"
)

// Poller checks a URL on a fixed interval with an attempt budget. It
// only gates the optional browser-open step, so it reports a boolean and
// never raises.
type Poller struct {
	client   *http.Client
	attempts int
	interval time.Duration
}

// NewPoller creates a poller with the default budget: 10 attempts one
// second apart, 5s per request.
func NewPoller() *Poller {
	return &Poller{
		client:   &http.Client{Timeout: 5 * time.Second},
		attempts: 10,
		interval: time.Second,
	}
}

// NewPollerWithBudget creates a poller with an explicit budget.
func NewPollerWithBudget(attempts int, interval time.Duration, requestTimeout time.Duration) *Poller {
	return &Poller{
		client:   &http.Client{Timeout: requestTimeout},
		attempts: attempts,
		interval: interval,
	}
}

// Poll returns true once the URL answers with a non-5xx status, false
// when the attempt budget runs out or the context ends.
func (p *Poller) Poll(ctx context.Context, url string) bool {
	for attempt := 0; attempt < p.attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return false
			case <-time.After(p.interval):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return false
		}

		resp, err := p.client.Do(req)
		if err != nil {
			continue
		}
		resp.Body.Close()

		// 2xx-4xx means the site is serving; 5xx means keep waiting.
		if resp.StatusCode >= 200 && resp.StatusCode < 500 {
			return true
		}
	}
	return false
}
