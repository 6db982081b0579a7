package whill

import (
	"context"
	"time"
)

// DefaultPollInterval is the pause between two polls.
const DefaultPollInterval = 10 * time.Millisecond

// Poller polls a Device until the context is done.
type Poller struct {
	Device   *Device
	Interval time.Duration
}

// Name implements framework.Runnable.
func (p *Poller) Name() string {
	return "poller"
}

// Run implements framework.Runnable.
func (p *Poller) Run(ctx context.Context) error {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if _, err := p.Device.Poll(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
