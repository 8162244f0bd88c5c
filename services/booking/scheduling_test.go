// File: services/booking/scheduling_test.go
package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	meetingRepo "github.com/clicksalesmedia/clicksalesmedia-sub003/database/repository/meeting"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{models.MeetingStatusPending, models.MeetingStatusConfirmed, true},
		{models.MeetingStatusPending, models.MeetingStatusCancelled, true},
		{models.MeetingStatusPending, models.MeetingStatusCompleted, false},
		{models.MeetingStatusConfirmed, models.MeetingStatusCompleted, true},
		{models.MeetingStatusConfirmed, models.MeetingStatusCancelled, true},
		{models.MeetingStatusConfirmed, models.MeetingStatusPending, false},
		{models.MeetingStatusCancelled, models.MeetingStatusPending, false},
		{models.MeetingStatusCancelled, models.MeetingStatusConfirmed, false},
		{models.MeetingStatusCompleted, models.MeetingStatusConfirmed, false},
		{models.MeetingStatusCompleted, models.MeetingStatusCancelled, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestRequestMeeting(t *testing.T) {
	repo := newFakeMeetingRepo()
	engine := newTestEngine(repo)

	meeting, err := engine.RequestMeeting(context.Background(), models.MeetingRequest{
		Name:  "Jane Client",
		Email: "jane@example.com",
		Date:  "2024-06-10",
		Time:  "11:00",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, meeting.ID)
	assert.Equal(t, models.MeetingStatusPending, meeting.Status)
	assert.Equal(t, "11:00", meeting.Time)
}

func TestRequestMeeting_Validation(t *testing.T) {
	engine := newTestEngine(newFakeMeetingRepo())
	ctx := context.Background()

	base := models.MeetingRequest{Name: "Jane", Email: "jane@example.com"}

	bad := base
	bad.Date, bad.Time = "10-06-2024", "11:00"
	_, err := engine.RequestMeeting(ctx, bad)
	assert.ErrorIs(t, err, ErrInvalidDate)

	weekend := base
	weekend.Date, weekend.Time = "2024-06-08", "11:00" // Saturday
	_, err = engine.RequestMeeting(ctx, weekend)
	assert.ErrorIs(t, err, ErrWeekendDate)

	offGrid := base
	offGrid.Date, offGrid.Time = "2024-06-10", "17:00"
	_, err = engine.RequestMeeting(ctx, offGrid)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestUpdateMeetingStatus_Lifecycle(t *testing.T) {
	repo := newFakeMeetingRepo()
	engine := newTestEngine(repo)
	ctx := context.Background()

	m := repo.add(monday(), "10:00", models.MeetingStatusPending)

	updated, err := engine.UpdateMeetingStatus(ctx, m.ID, models.MeetingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.MeetingStatusConfirmed, updated.Status)

	updated, err = engine.UpdateMeetingStatus(ctx, m.ID, models.MeetingStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.MeetingStatusCompleted, updated.Status)

	// COMPLETED is terminal.
	_, err = engine.UpdateMeetingStatus(ctx, m.ID, models.MeetingStatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateMeetingStatus_Conflict(t *testing.T) {
	repo := newFakeMeetingRepo()
	engine := newTestEngine(repo)
	ctx := context.Background()

	repo.add(monday(), "10:00", models.MeetingStatusConfirmed)
	second := repo.add(monday(), "10:00", models.MeetingStatusPending)

	_, err := engine.UpdateMeetingStatus(ctx, second.ID, models.MeetingStatusConfirmed)
	assert.ErrorIs(t, err, ErrSlotConflict)

	// The losing meeting stays PENDING.
	current, err := engine.GetMeeting(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MeetingStatusPending, current.Status)
}

func TestUpdateMeetingStatus_Errors(t *testing.T) {
	repo := newFakeMeetingRepo()
	engine := newTestEngine(repo)
	ctx := context.Background()

	_, err := engine.UpdateMeetingStatus(ctx, "missing", models.MeetingStatusConfirmed)
	assert.ErrorIs(t, err, ErrMeetingNotFound)

	m := repo.add(monday(), "10:00", models.MeetingStatusPending)
	_, err = engine.UpdateMeetingStatus(ctx, m.ID, "ARCHIVED")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	repo.updateErr = meetingRepo.ErrStatusChanged
	_, err = engine.UpdateMeetingStatus(ctx, m.ID, models.MeetingStatusConfirmed)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCompletePastMeetings(t *testing.T) {
	repo := newFakeMeetingRepo()
	engine := newTestEngine(repo)
	ctx := context.Background()

	past := repo.add(monday(), "10:00", models.MeetingStatusConfirmed)
	pendingPast := repo.add(monday(), "11:00", models.MeetingStatusPending)

	n, err := engine.CompletePastMeetings(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := engine.GetMeeting(ctx, past.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MeetingStatusCompleted, got.Status)

	// Pending meetings are left untouched by the sweep.
	got, err = engine.GetMeeting(ctx, pendingPast.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MeetingStatusPending, got.Status)
}
