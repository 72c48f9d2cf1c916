package storage

import "github.com/mukundan1989/baebyzleep/internal"

// NewSessionRepositories returns the pair of stores owned by a single session.
func NewSessionRepositories(logger internal.Logger) (SleepLogRepository, MilestoneRepository) {
	storage := NewMemoryStorage(logger)
	return storage, storage
}
