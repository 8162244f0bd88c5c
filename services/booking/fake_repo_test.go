// File: services/booking/fake_repo_test.go
package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	meetingRepo "github.com/clicksalesmedia/clicksalesmedia-sub003/database/repository/meeting"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
)

// fakeMeetingRepo is an in-memory MeetingRepository used by the engine
// tests. listErr simulates a store outage for ListByRange.
type fakeMeetingRepo struct {
	meetings  map[string]*models.Meeting
	listErr   error
	updateErr error
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{meetings: make(map[string]*models.Meeting)}
}

func (f *fakeMeetingRepo) add(date time.Time, slot, status string) *models.Meeting {
	m := &models.Meeting{
		ID:     uuid.New().String(),
		Name:   "Test Requester",
		Email:  "requester@example.com",
		Date:   date,
		Time:   slot,
		Status: status,
	}
	f.meetings[m.ID] = m
	return m
}

func (f *fakeMeetingRepo) Create(_ context.Context, meeting *models.Meeting) error {
	if meeting.ID == "" {
		meeting.ID = uuid.New().String()
	}
	if meeting.Status == "" {
		meeting.Status = models.MeetingStatusPending
	}
	cp := *meeting
	f.meetings[meeting.ID] = &cp
	return nil
}

func (f *fakeMeetingRepo) GetByID(_ context.Context, id string) (*models.Meeting, error) {
	m, ok := f.meetings[id]
	if !ok {
		return nil, meetingRepo.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMeetingRepo) ListByRange(_ context.Context, from, to time.Time, status string) ([]models.Meeting, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Meeting
	for _, m := range f.meetings {
		if m.Date.Before(from) || m.Date.After(to) {
			continue
		}
		if status != "" && m.Status != status {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMeetingRepo) List(_ context.Context, status string, _, _ int) ([]models.Meeting, error) {
	var out []models.Meeting
	for _, m := range f.meetings {
		if status != "" && m.Status != status {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMeetingRepo) UpdateStatus(_ context.Context, id, fromStatus, toStatus string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	m, ok := f.meetings[id]
	if !ok {
		return meetingRepo.ErrNotFound
	}
	if m.Status != fromStatus {
		return meetingRepo.ErrStatusChanged
	}
	if toStatus == models.MeetingStatusConfirmed {
		for _, other := range f.meetings {
			if other.ID != id && other.Status == models.MeetingStatusConfirmed &&
				other.Date.Equal(m.Date) && other.Time == m.Time {
				return meetingRepo.ErrSlotTaken
			}
		}
	}
	m.Status = toStatus
	return nil
}

func (f *fakeMeetingRepo) CompletePast(_ context.Context, before time.Time) (int64, error) {
	var n int64
	for _, m := range f.meetings {
		if m.Status == models.MeetingStatusConfirmed && m.Date.Before(before) {
			m.Status = models.MeetingStatusCompleted
			n++
		}
	}
	return n, nil
}

func (f *fakeMeetingRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.meetings[id]; !ok {
		return meetingRepo.ErrNotFound
	}
	delete(f.meetings, id)
	return nil
}
