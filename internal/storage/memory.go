package storage

import (
	"context"
	"sync"

	"github.com/mukundan1989/baebyzleep/internal"
)

// MemoryStorage keeps one session's sleep log and milestone log in memory.
// Nothing is written to disk; the data lives as long as the value does.
type MemoryStorage struct {
	sleepLogs  []internal.SleepEntry
	milestones []internal.MilestoneEntry
	mu         sync.RWMutex
	logger     internal.Logger
}

func NewMemoryStorage(logger internal.Logger) *MemoryStorage {
	return &MemoryStorage{
		sleepLogs:  make([]internal.SleepEntry, 0),
		milestones: make([]internal.MilestoneEntry, 0),
		logger:     logger,
	}
}

// --- SleepLogRepository ---
func (s *MemoryStorage) AppendSleepEntry(ctx context.Context, entry *internal.SleepEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sleepLogs = append(s.sleepLogs, *entry)
	s.logger.Debugf("storage: sleep entry %s appended (%d total)", entry.ID, len(s.sleepLogs))
	return nil
}

func (s *MemoryStorage) ListSleepEntries(ctx context.Context) ([]internal.SleepEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]internal.SleepEntry, len(s.sleepLogs))
	copy(out, s.sleepLogs)
	return out, nil
}

// --- MilestoneRepository ---
func (s *MemoryStorage) AppendMilestone(ctx context.Context, entry *internal.MilestoneEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.milestones = append(s.milestones, *entry)
	s.logger.Debugf("storage: milestone %s appended (%d total)", entry.ID, len(s.milestones))
	return nil
}

func (s *MemoryStorage) ListMilestones(ctx context.Context) ([]internal.MilestoneEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]internal.MilestoneEntry, len(s.milestones))
	copy(out, s.milestones)
	return out, nil
}

// --- Compile-time assertions ---
var _ SleepLogRepository = (*MemoryStorage)(nil)
var _ MilestoneRepository = (*MemoryStorage)(nil)
