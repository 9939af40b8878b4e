package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plupool-server/models"
)

type stubBookingStore struct {
	bookings []models.Booking
	saved    []uint
}

func (s *stubBookingStore) Create(*models.Booking) error { return nil }

func (s *stubBookingStore) Save(booking *models.Booking) error {
	s.saved = append(s.saved, booking.ID)
	for i := range s.bookings {
		if s.bookings[i].ID == booking.ID {
			s.bookings[i] = *booking
		}
	}
	return nil
}

func (s *stubBookingStore) FindByID(uint) (*models.Booking, error)             { return nil, nil }
func (s *stubBookingStore) ListByUser(uint) ([]models.Booking, error)          { return nil, nil }
func (s *stubBookingStore) ListAll() ([]models.Booking, error)                 { return nil, nil }
func (s *stubBookingStore) ListByStatus(...models.BookingStatus) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubBookingStore) ListDueForReminder(from, to time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.ReminderSent || b.NextMaintenanceDate == nil {
			continue
		}
		if b.NextMaintenanceDate.Before(from) || b.NextMaintenanceDate.After(to) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type stubNotifier struct {
	reminders []uint
}

func (n *stubNotifier) Notify(userID uint, ntype models.NotificationType, title, message string, bookingID, taskID *uint) {
	if ntype == models.NotificationTypeReminder {
		n.reminders = append(n.reminders, userID)
	}
}

func date(value string) *time.Time {
	parsed, err := time.Parse(models.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return &parsed
}

func TestRunSendsRemindersInsidePackageWindow(t *testing.T) {
	store := &stubBookingStore{bookings: []models.Booking{
		// due in 2 days with a 3-day window: remind now
		{ID: 1, UserID: 10, NextMaintenanceDate: date("2025-03-12"),
			Package: &models.MaintenancePackage{ReminderDaysBefore: 3}},
		// due in 10 days with a 3-day window: too early
		{ID: 2, UserID: 11, NextMaintenanceDate: date("2025-03-20"),
			Package: &models.MaintenancePackage{ReminderDaysBefore: 3}},
		// due in 6 days with a 7-day window: remind now
		{ID: 3, UserID: 12, NextMaintenanceDate: date("2025-03-16"),
			Package: &models.MaintenancePackage{ReminderDaysBefore: 7}},
		// already reminded
		{ID: 4, UserID: 13, NextMaintenanceDate: date("2025-03-11"), ReminderSent: true,
			Package: &models.MaintenancePackage{ReminderDaysBefore: 3}},
	}}
	notifier := &stubNotifier{}

	job := NewReminderJob(store, notifier)
	job.now = func() time.Time { return *date("2025-03-10") }
	job.Run()

	assert.Equal(t, []uint{10, 12}, notifier.reminders)
	assert.Equal(t, []uint{1, 3}, store.saved)

	// the sweep is idempotent: a second run finds nothing to send
	notifier.reminders = nil
	job.Run()
	assert.Empty(t, notifier.reminders)
}

func TestRunDefaultsWindowWhenPackageMissing(t *testing.T) {
	store := &stubBookingStore{bookings: []models.Booking{
		{ID: 1, UserID: 10, NextMaintenanceDate: date("2025-03-12")},
		{ID: 2, UserID: 11, NextMaintenanceDate: date("2025-03-18")},
	}}
	notifier := &stubNotifier{}

	job := NewReminderJob(store, notifier)
	job.now = func() time.Time { return *date("2025-03-10") }
	job.Run()

	// default window is 3 days, so only the booking due in 2 days fires
	require.Len(t, notifier.reminders, 1)
	assert.Equal(t, uint(10), notifier.reminders[0])
}
