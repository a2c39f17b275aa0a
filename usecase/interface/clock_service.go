package usecase

import (
	"time"

	"github.com/zoneboard/zoneboard/domain/entity"
)

// SnapshotListener receives the full snapshot list published by each tick
type SnapshotListener func(snapshots []entity.DisplaySnapshot)

// ClockService is the update scheduler. While running it recomputes a
// display snapshot for every visible registry entry once per tick (nominally
// 1 Hz) and publishes the list to all subscribers. A formatting failure on
// one entry yields a placeholder snapshot and never suppresses the others.
type ClockService interface {
	// Start begins ticking. No-op when already running.
	Start() error

	// Stop cancels the pending timer so no further ticks fire. Idempotent.
	Stop()

	// IsRunning reports whether the scheduler is ticking
	IsRunning() bool

	// Tick synchronously recomputes and publishes snapshots for the given
	// instant, returning the published list
	Tick(now time.Time) []entity.DisplaySnapshot

	// RefreshNow triggers an out-of-cadence tick without altering the
	// schedule
	RefreshNow()

	// Subscribe registers a listener for published snapshot lists and
	// returns a function that removes it again
	Subscribe(listener SnapshotListener) (unsubscribe func())
}
