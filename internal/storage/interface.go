package storage

import (
	"context"

	"github.com/mukundan1989/baebyzleep/internal"
)

// SleepLogRepository is an append-only, insertion-ordered sleep log.
type SleepLogRepository interface {
	AppendSleepEntry(ctx context.Context, entry *internal.SleepEntry) error
	ListSleepEntries(ctx context.Context) ([]internal.SleepEntry, error)
}

// MilestoneRepository is an append-only, insertion-ordered milestone log.
type MilestoneRepository interface {
	AppendMilestone(ctx context.Context, entry *internal.MilestoneEntry) error
	ListMilestones(ctx context.Context) ([]internal.MilestoneEntry, error)
}
