package kitchen

import (
	"context"
	"time"

	"showtime/pkg/logger"
)

// Poller refreshes the kitchen board on a fixed interval. It backs up
// the change feed: with the feed healthy the poll is a cheap no-op
// rebuild, and with the feed down the board still converges within one
// interval.
type Poller struct {
	service  Service
	interval time.Duration
	log      *logger.Logger
	done     chan struct{}
}

func NewPoller(service Service, interval time.Duration, log *logger.Logger) *Poller {
	return &Poller{
		service:  service,
		interval: interval,
		log:      log,
		done:     make(chan struct{}),
	}
}

func (p *Poller) Start(ctx context.Context) {
	go p.run(ctx)
	p.log.Info("kitchen board poller started", "interval", p.interval.String())
}

func (p *Poller) Stop() {
	close(p.done)
	p.log.Info("kitchen board poller stopped")
}

func (p *Poller) run(ctx context.Context) {
	// Prime the board before the first tick.
	if err := p.service.Refresh(ctx); err != nil {
		p.log.Warn("initial kitchen board refresh failed", "error", err)
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := p.service.Refresh(ctx); err != nil {
				p.log.Warn("kitchen board refresh failed", "error", err)
			}
		case <-p.done:
			return
		case <-ctx.Done():
			return
		}
	}
}
