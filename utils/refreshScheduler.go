package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Refresher is what the scheduler keeps fresh.
type Refresher interface {
	LoadCatalog(ctx context.Context) error
	PruneSessions(maxIdle time.Duration) int
}

const sessionIdleLimit = 24 * time.Hour

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[REFRESH-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// refreshCatalog refetches the catalog within timeout and drops idle sessions
func refreshCatalog(r Refresher, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := r.LoadCatalog(ctx); err != nil {
		logScheduler("Catalog refresh failed: " + err.Error())
	} else {
		logScheduler("Catalog refreshed")
	}

	if n := r.PruneSessions(sessionIdleLimit); n > 0 {
		logScheduler(fmt.Sprintf("Pruned %d idle sessions", n))
	}
}

// InitializeRefreshScheduler starts the periodic catalog refresh on the given cron schedule
func InitializeRefreshScheduler(r Refresher, schedule string, timeout time.Duration) (*cron.Cron, error) {
	c := cron.New()

	if _, err := c.AddFunc(schedule, func() {
		refreshCatalog(r, timeout)
	}); err != nil {
		return nil, err
	}

	c.Start()

	logScheduler("Catalog refresh scheduled: " + schedule)
	return c, nil
}
