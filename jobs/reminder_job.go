package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"plupool-server/config"
	"plupool-server/models"
	"plupool-server/services"
)

// ReminderJob sends maintenance reminders ahead of each package's next
// maintenance date. It only flips reminder_sent; booking status is owned by
// the lifecycle endpoints.
type ReminderJob struct {
	bookings services.BookingStore
	notifier services.Notifier
	cron     *cron.Cron
	now      func() time.Time
}

func NewReminderJob(bookings services.BookingStore, notifier services.Notifier) *ReminderJob {
	return &ReminderJob{
		bookings: bookings,
		notifier: notifier,
		cron:     cron.New(),
		now:      time.Now,
	}
}

// Start schedules the daily sweep
func (j *ReminderJob) Start() error {
	schedule := config.AppConfig.Reminder.Schedule
	if _, err := j.cron.AddFunc(schedule, j.Run); err != nil {
		return err
	}
	j.cron.Start()
	log.Printf("⏰ Maintenance reminder job scheduled (%s)", schedule)
	return nil
}

// Stop halts the scheduler
func (j *ReminderJob) Stop() {
	j.cron.Stop()
}

// Run executes one reminder sweep
func (j *ReminderJob) Run() {
	now := j.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// Widest window any package can configure; the per-package cutoff is
	// applied below.
	horizon := today.AddDate(0, 0, 30)

	due, err := j.bookings.ListDueForReminder(today, horizon)
	if err != nil {
		log.Printf("❌ Reminder sweep failed: %v", err)
		return
	}

	sent := 0
	for i := range due {
		booking := &due[i]
		if booking.NextMaintenanceDate == nil {
			continue
		}

		daysBefore := 3
		if booking.Package != nil {
			daysBefore = booking.Package.ReminderDaysBefore
		}
		cutoff := booking.NextMaintenanceDate.AddDate(0, 0, -daysBefore)
		if today.Before(cutoff) {
			continue
		}

		j.notifier.Notify(booking.UserID, models.NotificationTypeReminder,
			"موعد الصيانة القادمة",
			"اقترب موعد صيانة حمام السباحة الخاص بك يوم "+booking.NextMaintenanceDate.Format(models.DateLayout),
			&booking.ID, nil)

		booking.ReminderSent = true
		if err := j.bookings.Save(booking); err != nil {
			log.Printf("❌ Failed to mark reminder sent for booking %d: %v", booking.ID, err)
			continue
		}
		sent++
	}

	if sent > 0 {
		log.Printf("⏰ Reminder sweep sent %d reminders", sent)
	}
}
