package services

import (
	"fmt"
	"log"
	"regexp"
	"time"

	"plupool-server/models"
)

var timeOfDayPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// BookingService owns booking creation, the status lifecycle and reminders.
type BookingService struct {
	bookings BookingStore
	refs     ReferenceStore
	notifier Notifier
	now      func() time.Time
}

// Notifier persists a notification and pushes it to the user's open sockets.
type Notifier interface {
	Notify(userID uint, ntype models.NotificationType, title, message string, bookingID, taskID *uint)
}

func NewBookingService(bookings BookingStore, refs ReferenceStore, notifier Notifier) *BookingService {
	return &BookingService{
		bookings: bookings,
		refs:     refs,
		notifier: notifier,
		now:      time.Now,
	}
}

// Create validates and stores a new booking in PENDING state.
func (s *BookingService) Create(userID uint, req *models.BookingCreate) (*models.BookingResponse, error) {
	bookingDate, err := parseDate(req.BookingDate)
	if err != nil {
		return nil, err
	}
	if !timeOfDayPattern.MatchString(req.BookingTime) {
		return nil, NewValidationError("booking_time must be HH:MM, got %q", req.BookingTime)
	}
	if bookingDate.Before(s.today()) {
		return nil, NewValidationError("booking_date %s is in the past", req.BookingDate)
	}
	if err := s.validateReferences(req); err != nil {
		return nil, err
	}

	booking := models.Booking{
		UserID:       userID,
		BookingType:  req.BookingType,
		PoolTypeID:   req.PoolTypeID,
		ServiceID:    req.ServiceID,
		PackageID:    req.PackageID,
		BookingDate:  bookingDate,
		BookingTime:  req.BookingTime,
		CustomLength: req.CustomLength,
		CustomWidth:  req.CustomWidth,
		CustomDepth:  req.CustomDepth,
		Status:       models.BookingStatusPending,
		Notes:        req.Notes,
	}

	if req.BookingType == models.BookingTypeMaintenancePackage {
		pkg, err := s.refs.FindPackage(*req.PackageID)
		if err != nil {
			return nil, err
		}
		if pkg == nil {
			return nil, NewNotFoundError("maintenance package", *req.PackageID)
		}
		next := bookingDate.AddDate(0, 0, pkg.Duration.CadenceDays())
		booking.NextMaintenanceDate = &next
	}

	if err := s.bookings.Create(&booking); err != nil {
		return nil, err
	}

	log.Printf("📅 Booking %d created by user %d (%s)", booking.ID, userID, booking.BookingType)
	s.notify(userID, models.NotificationTypeBooking, "تم استلام طلب الحجز",
		"تم استلام طلب الحجز الخاص بك وسيتم التواصل معك قريباً لتأكيده", &booking.ID)

	resp := booking.ToResponse()
	return &resp, nil
}

// validateReferences enforces the one-to-one pairing between booking type
// and reference field, and checks the referenced record is real and active.
func (s *BookingService) validateReferences(req *models.BookingCreate) error {
	switch req.BookingType {
	case models.BookingTypeConstruction:
		if req.PoolTypeID == nil {
			return NewValidationError("construction booking requires pool_type_id")
		}
		if req.ServiceID != nil || req.PackageID != nil {
			return NewValidationError("construction booking must not carry service_id or package_id")
		}
		poolType, err := s.refs.FindPoolType(*req.PoolTypeID)
		if err != nil {
			return err
		}
		// Missing and inactive references surface the same way
		if poolType == nil || !poolType.IsActive {
			return NewNotFoundError("pool type", *req.PoolTypeID)
		}

	case models.BookingTypeMaintenanceSingle:
		if req.ServiceID == nil {
			return NewValidationError("maintenance_single booking requires service_id")
		}
		if req.PoolTypeID != nil || req.PackageID != nil {
			return NewValidationError("maintenance_single booking must not carry pool_type_id or package_id")
		}
		service, err := s.refs.FindService(*req.ServiceID)
		if err != nil {
			return err
		}
		if service == nil || service.Status != models.ServiceStatusActive {
			return NewNotFoundError("service", *req.ServiceID)
		}
		if service.ServiceType != models.ServiceTypeMaintenance {
			return NewValidationError("service %d is not a maintenance service", *req.ServiceID)
		}

	case models.BookingTypeMaintenancePackage:
		if req.PackageID == nil {
			return NewValidationError("maintenance_package booking requires package_id")
		}
		if req.PoolTypeID != nil || req.ServiceID != nil {
			return NewValidationError("maintenance_package booking must not carry pool_type_id or service_id")
		}
		pkg, err := s.refs.FindPackage(*req.PackageID)
		if err != nil {
			return err
		}
		if pkg == nil || !pkg.IsActive {
			return NewNotFoundError("maintenance package", *req.PackageID)
		}

	default:
		return NewValidationError("unknown booking type %q", req.BookingType)
	}

	if req.BookingType != models.BookingTypeConstruction {
		if req.CustomLength != nil || req.CustomWidth != nil || req.CustomDepth != nil {
			return NewValidationError("custom dimensions are only allowed on construction bookings")
		}
	}
	return nil
}

// ListForUser returns the caller's bookings, newest first.
func (s *BookingService) ListForUser(userID uint) ([]models.BookingResponse, error) {
	bookings, err := s.bookings.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	responses := make([]models.BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, bookings[i].ToResponse())
	}
	return responses, nil
}

// ListAll returns every booking; staff only.
func (s *BookingService) ListAll() ([]models.BookingResponse, error) {
	bookings, err := s.bookings.ListAll()
	if err != nil {
		return nil, err
	}
	responses := make([]models.BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, bookings[i].ToResponse())
	}
	return responses, nil
}

// Get returns one booking with resolved reference names. Pool owners can
// only read their own bookings.
func (s *BookingService) Get(id uint, actorID uint, actorRole models.UserRole) (*models.BookingDetailResponse, error) {
	booking, err := s.bookings.FindByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, NewNotFoundError("booking", id)
	}
	if actorRole == models.RolePoolOwner && booking.UserID != actorID {
		return nil, NewForbiddenError("booking %d does not belong to you", id)
	}

	detail := models.BookingDetailResponse{BookingResponse: booking.ToResponse()}
	if booking.PoolType != nil {
		detail.PoolTypeName = &booking.PoolType.NameAr
	}
	if booking.Service != nil {
		detail.ServiceName = &booking.Service.NameAr
	}
	if booking.Package != nil {
		detail.PackageName = &booking.Package.NameAr
	}
	if booking.User != nil {
		detail.UserName = &booking.User.FullName
	}
	return &detail, nil
}

// UpdateByStaff applies an admin/company update. Status changes must follow
// the lifecycle graph; a same-status update only touches the notes fields.
func (s *BookingService) UpdateByStaff(id uint, req *models.BookingUpdate) (*models.BookingResponse, error) {
	booking, err := s.bookings.FindByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, NewNotFoundError("booking", id)
	}

	if req.Status != nil && *req.Status != booking.Status {
		if !booking.Status.CanTransitionTo(*req.Status) {
			return nil, NewInvalidTransitionError(string(booking.Status), string(*req.Status))
		}
		booking.Status = *req.Status
	}
	if req.AdminNotes != nil {
		booking.AdminNotes = req.AdminNotes
	}
	if req.NextMaintenanceDate != nil {
		next, err := parseDate(*req.NextMaintenanceDate)
		if err != nil {
			return nil, err
		}
		booking.NextMaintenanceDate = &next
		booking.ReminderSent = false
	}

	if err := s.bookings.Save(booking); err != nil {
		return nil, err
	}

	if req.Status != nil {
		s.notifyStatusChange(booking)
	}
	resp := booking.ToResponse()
	return &resp, nil
}

// UpdateByTechnician applies a technician status change. Technicians only
// drive maintenance work forward: the target must be IN_PROGRESS or
// COMPLETED, the booking must not be a construction job, and the lifecycle
// graph must have the edge.
func (s *BookingService) UpdateByTechnician(id uint, req *models.TechnicianBookingStatusUpdate) (*models.BookingResponse, error) {
	if req.Status != models.BookingStatusInProgress && req.Status != models.BookingStatusCompleted {
		return nil, NewForbiddenError("technicians may only set in_progress or completed")
	}

	booking, err := s.bookings.FindByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, NewNotFoundError("booking", id)
	}
	if booking.BookingType == models.BookingTypeConstruction {
		return nil, NewInvalidTransitionError(string(booking.Status), string(req.Status))
	}
	if req.Status == booking.Status {
		if req.AdminNotes != nil {
			booking.AdminNotes = req.AdminNotes
			if err := s.bookings.Save(booking); err != nil {
				return nil, err
			}
		}
		resp := booking.ToResponse()
		return &resp, nil
	}
	if !booking.Status.CanTransitionTo(req.Status) {
		return nil, NewInvalidTransitionError(string(booking.Status), string(req.Status))
	}

	booking.Status = req.Status
	if req.AdminNotes != nil {
		booking.AdminNotes = req.AdminNotes
	}
	if err := s.bookings.Save(booking); err != nil {
		return nil, err
	}

	s.notifyStatusChange(booking)
	resp := booking.ToResponse()
	return &resp, nil
}

// ListByStatus returns every booking in the given status; staff only.
func (s *BookingService) ListByStatus(status models.BookingStatus) ([]models.BookingResponse, error) {
	bookings, err := s.bookings.ListByStatus(status)
	if err != nil {
		return nil, err
	}
	responses := make([]models.BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, bookings[i].ToResponse())
	}
	return responses, nil
}

// ListForTechnician returns the bookings a technician works on: everything
// except construction jobs, which are handled by company crews.
func (s *BookingService) ListForTechnician() ([]models.BookingResponse, error) {
	bookings, err := s.bookings.ListByStatus(
		models.BookingStatusConfirmed,
		models.BookingStatusInProgress,
		models.BookingStatusCompleted,
	)
	if err != nil {
		return nil, err
	}
	responses := make([]models.BookingResponse, 0, len(bookings))
	for i := range bookings {
		if bookings[i].BookingType == models.BookingTypeConstruction {
			continue
		}
		responses = append(responses, bookings[i].ToResponse())
	}
	return responses, nil
}

// UpcomingReminders returns the caller's package bookings whose next
// maintenance date falls within the next seven days.
func (s *BookingService) UpcomingReminders(userID uint) ([]models.BookingResponse, error) {
	bookings, err := s.bookings.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	today := s.today()
	horizon := today.AddDate(0, 0, 7)

	responses := make([]models.BookingResponse, 0)
	for i := range bookings {
		b := &bookings[i]
		if b.BookingType != models.BookingTypeMaintenancePackage || b.NextMaintenanceDate == nil {
			continue
		}
		if b.Status != models.BookingStatusConfirmed && b.Status != models.BookingStatusInProgress {
			continue
		}
		if b.NextMaintenanceDate.Before(today) || b.NextMaintenanceDate.After(horizon) {
			continue
		}
		responses = append(responses, b.ToResponse())
	}
	return responses, nil
}

func (s *BookingService) notifyStatusChange(booking *models.Booking) {
	var title, message string
	switch booking.Status {
	case models.BookingStatusConfirmed:
		title = "تم تأكيد الحجز"
		message = fmt.Sprintf("تم تأكيد حجزك ليوم %s الساعة %s", booking.BookingDate.Format(models.DateLayout), booking.BookingTime)
	case models.BookingStatusInProgress:
		title = "بدأ تنفيذ الخدمة"
		message = "الفني بدأ العمل على حجزك الآن"
	case models.BookingStatusCompleted:
		title = "اكتملت الخدمة"
		message = "تم إنهاء الخدمة بنجاح، شكراً لاختيارك بلوبول"
	case models.BookingStatusCancelled:
		title = "تم إلغاء الحجز"
		message = "تم إلغاء حجزك، يمكنك إنشاء حجز جديد في أي وقت"
	case models.BookingStatusRejected:
		title = "تم رفض الحجز"
		message = "عذراً، لم نتمكن من قبول حجزك في الموعد المطلوب"
	default:
		return
	}
	s.notify(booking.UserID, models.NotificationTypeBooking, title, message, &booking.ID)
}

func (s *BookingService) notify(userID uint, ntype models.NotificationType, title, message string, bookingID *uint) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(userID, ntype, title, message, bookingID, nil)
}

func (s *BookingService) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return time.Time{}, NewValidationError("date must be YYYY-MM-DD, got %q", value)
	}
	return parsed, nil
}
