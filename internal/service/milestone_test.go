package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMilestone(t *testing.T) {
	_, milestoneRepo := newRepos(t)
	ctx := context.Background()

	before, err := milestoneRepo.ListMilestones(ctx)
	require.NoError(t, err)
	assert.Empty(t, before)

	m, err := CreateMilestone(ctx, milestoneRepo, &MilestoneRequest{Date: "2024-01-01", Text: "Started crawling"}, fixedNow)
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)

	got, err := milestoneRepo.ListMilestones(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-01-01", got[0].Date)
	assert.Equal(t, "Started crawling", got[0].Text)
}

func TestCreateMilestone_EmptyTextAndDefaultDate(t *testing.T) {
	_, milestoneRepo := newRepos(t)

	m, err := CreateMilestone(context.Background(), milestoneRepo, &MilestoneRequest{}, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-14", m.Date)
	assert.Equal(t, "", m.Text)
}

func TestValidateMilestoneRequest(t *testing.T) {
	assert.NoError(t, ValidateMilestoneRequest(&MilestoneRequest{Text: ""}))
	assert.NoError(t, ValidateMilestoneRequest(&MilestoneRequest{Date: "2024-01-01", Text: "First word"}))
	assert.Error(t, ValidateMilestoneRequest(&MilestoneRequest{Date: "yesterday"}))
}
