package services

import (
	"log"
	"time"

	"plupool-server/models"
)

// RenewalService computes renewal defaults for completed package bookings
// and schedules the next cycle.
type RenewalService struct {
	bookings BookingStore
	refs     ReferenceStore
	notifier Notifier
	now      func() time.Time
}

func NewRenewalService(bookings BookingStore, refs ReferenceStore, notifier Notifier) *RenewalService {
	return &RenewalService{
		bookings: bookings,
		refs:     refs,
		notifier: notifier,
		now:      time.Now,
	}
}

// Info returns the pre-filled renewal screen for a completed package
// booking. The suggested date is the cadence step from the original booking
// date, clamped so it never lands in the past.
func (s *RenewalService) Info(bookingID, userID uint) (*models.RenewalInfoResponse, error) {
	booking, pkg, err := s.loadRenewable(bookingID, userID)
	if err != nil {
		return nil, err
	}

	cadence := pkg.Duration.CadenceDays()
	defaultDate := booking.BookingDate.AddDate(0, 0, cadence)
	if today := s.today(); defaultDate.Before(today) {
		defaultDate = today
	}

	defaultTime := booking.BookingTime
	if defaultTime == "" {
		defaultTime = models.DefaultRenewalTime
	}

	info := models.RenewalInfoResponse{
		BookingID:      booking.ID,
		PackageID:      pkg.ID,
		PackageName:    pkg.NameAr,
		Duration:       pkg.Duration,
		CadenceDays:    cadence,
		Price:          pkg.Price,
		Progress:       packageProgress(booking, pkg),
		DefaultNewDate: defaultDate.Format(models.DateLayout),
		DefaultNewTime: defaultTime,
		PreviousDate:   booking.BookingDate.Format(models.DateLayout),
	}
	if booking.NextMaintenanceDate != nil {
		end := booking.NextMaintenanceDate.Format(models.DateLayout)
		info.PreviousEndDate = &end
	}
	return &info, nil
}

// Renew creates a fresh PENDING booking for the next package cycle. The
// completed booking is left untouched.
func (s *RenewalService) Renew(bookingID, userID uint, req *models.RenewalRequest) (*models.BookingResponse, error) {
	booking, pkg, err := s.loadRenewable(bookingID, userID)
	if err != nil {
		return nil, err
	}

	newDate, err := parseDate(req.NewDate)
	if err != nil {
		return nil, err
	}
	if newDate.Before(s.today()) {
		return nil, NewValidationError("new_date %s is in the past", req.NewDate)
	}

	newTime := booking.BookingTime
	if req.NewTime != nil {
		if !timeOfDayPattern.MatchString(*req.NewTime) {
			return nil, NewValidationError("new_time must be HH:MM, got %q", *req.NewTime)
		}
		newTime = *req.NewTime
	}
	if newTime == "" {
		newTime = models.DefaultRenewalTime
	}

	next := newDate.AddDate(0, 0, pkg.Duration.CadenceDays())
	renewed := models.Booking{
		UserID:              userID,
		BookingType:         models.BookingTypeMaintenancePackage,
		PackageID:           booking.PackageID,
		BookingDate:         newDate,
		BookingTime:         newTime,
		Status:              models.BookingStatusPending,
		Notes:               req.Notes,
		NextMaintenanceDate: &next,
	}
	if err := s.bookings.Create(&renewed); err != nil {
		return nil, err
	}

	log.Printf("🔄 Booking %d renewed as %d for user %d", booking.ID, renewed.ID, userID)
	if s.notifier != nil {
		s.notifier.Notify(userID, models.NotificationTypeBooking, "تم تجديد الباقة",
			"تم استلام طلب تجديد باقة الصيانة وسيتم تأكيده قريباً", &renewed.ID, nil)
	}

	resp := renewed.ToResponse()
	return &resp, nil
}

// loadRenewable fetches the booking and enforces the renewal preconditions:
// owned by the caller, a package booking, COMPLETED, with its package still
// active.
func (s *RenewalService) loadRenewable(bookingID, userID uint) (*models.Booking, *models.MaintenancePackage, error) {
	booking, err := s.bookings.FindByID(bookingID)
	if err != nil {
		return nil, nil, err
	}
	if booking == nil {
		return nil, nil, NewNotFoundError("booking", bookingID)
	}
	if booking.UserID != userID {
		return nil, nil, NewForbiddenError("booking %d does not belong to you", bookingID)
	}
	if booking.BookingType != models.BookingTypeMaintenancePackage || booking.PackageID == nil {
		return nil, nil, NewPreconditionError("booking %d is not a maintenance package booking", bookingID)
	}
	if booking.Status != models.BookingStatusCompleted {
		return nil, nil, NewPreconditionError("booking %d must be completed before renewal, currently %s", bookingID, booking.Status)
	}

	pkg, err := s.refs.FindPackage(*booking.PackageID)
	if err != nil {
		return nil, nil, err
	}
	if pkg == nil {
		return nil, nil, NewNotFoundError("maintenance package", *booking.PackageID)
	}
	if !pkg.IsActive {
		return nil, nil, NewPreconditionError("maintenance package %d is no longer offered", pkg.ID)
	}
	return booking, pkg, nil
}

// packageProgress estimates completed visits from the booking status. The
// per-visit schedule lives with dispatch, not here, so completed bookings
// count as the full plan and in-progress ones as half.
func packageProgress(booking *models.Booking, pkg *models.MaintenancePackage) models.PackageProgress {
	total := 0
	if pkg.VisitsCount != nil {
		total = *pkg.VisitsCount
	}
	progress := models.PackageProgress{VisitsTotal: total}
	switch booking.Status {
	case models.BookingStatusCompleted:
		progress.VisitsCompleted = total
	case models.BookingStatusInProgress:
		progress.VisitsCompleted = total / 2
	}
	return progress
}

func (s *RenewalService) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
