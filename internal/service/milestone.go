package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mukundan1989/baebyzleep/internal"
	"github.com/mukundan1989/baebyzleep/internal/storage"
)

// MilestoneRequest carries a free-text milestone. Empty text is accepted.
type MilestoneRequest struct {
	Date string `form:"date" json:"date" validate:"omitempty,datetime=2006-01-02"`
	Text string `form:"text" json:"text"`
}

func ValidateMilestoneRequest(req *MilestoneRequest) error {
	return validate.Struct(req)
}

func CreateMilestone(ctx context.Context, milestoneRepo storage.MilestoneRepository, req *MilestoneRequest, now time.Time) (*internal.MilestoneEntry, error) {
	entry := &internal.MilestoneEntry{
		ID:        uuid.NewString(),
		Date:      dateOrToday(req.Date, now),
		Text:      req.Text,
		CreatedAt: now,
	}
	if err := milestoneRepo.AppendMilestone(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
