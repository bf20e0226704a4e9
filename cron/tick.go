package cron

import (
	"context"
	"log"
	"sync"
	"time"

	"fisioagenda/services/scheduling"

	"github.com/robfig/cron/v3"
)

var (
	tickMu   sync.RWMutex
	lastTick time.Time
)

// LastTick returns the moment of the latest minute tick. Clients poll it to
// redraw the current-time indicator line.
func LastTick() time.Time {
	tickMu.RLock()
	defer tickMu.RUnlock()
	return lastTick
}

// StartClockTick runs the 60-second tick: it stamps the current time and
// refreshes today's entry on the occupancy board.
func StartClockTick(svc scheduling.Service) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("* * * * *", func() {
		now := time.Now()
		tickMu.Lock()
		lastTick = now
		tickMu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if _, err := svc.RefreshOccupancy(ctx, now); err != nil {
			log.Printf("[ClockTick] occupancy refresh failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("[ClockTick] failed to register tick: %v", err)
	}
	c.Start()
	return c
}
