package services

import (
	"time"

	"plupool-server/models"
)

// In-memory store fakes shared by the service tests.

type fakeBookingStore struct {
	bookings map[uint]*models.Booking
	nextID   uint
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: make(map[uint]*models.Booking), nextID: 1}
}

func (s *fakeBookingStore) Create(booking *models.Booking) error {
	booking.ID = s.nextID
	s.nextID++
	copied := *booking
	s.bookings[booking.ID] = &copied
	return nil
}

func (s *fakeBookingStore) Save(booking *models.Booking) error {
	copied := *booking
	s.bookings[booking.ID] = &copied
	return nil
}

func (s *fakeBookingStore) FindByID(id uint) (*models.Booking, error) {
	booking, ok := s.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *booking
	return &copied, nil
}

func (s *fakeBookingStore) ListByUser(userID uint) ([]models.Booking, error) {
	var out []models.Booking
	for id := uint(1); id < s.nextID; id++ {
		if b, ok := s.bookings[id]; ok && b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *fakeBookingStore) ListByStatus(statuses ...models.BookingStatus) ([]models.Booking, error) {
	var out []models.Booking
	for id := uint(1); id < s.nextID; id++ {
		b, ok := s.bookings[id]
		if !ok {
			continue
		}
		for _, status := range statuses {
			if b.Status == status {
				out = append(out, *b)
				break
			}
		}
	}
	return out, nil
}

func (s *fakeBookingStore) ListAll() ([]models.Booking, error) {
	var out []models.Booking
	for id := uint(1); id < s.nextID; id++ {
		if b, ok := s.bookings[id]; ok {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *fakeBookingStore) ListDueForReminder(from, to time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for id := uint(1); id < s.nextID; id++ {
		b, ok := s.bookings[id]
		if !ok || b.NextMaintenanceDate == nil || b.ReminderSent {
			continue
		}
		if b.NextMaintenanceDate.Before(from) || b.NextMaintenanceDate.After(to) {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

type fakeReferenceStore struct {
	poolTypes map[uint]*models.PoolType
	services  map[uint]*models.Service
	packages  map[uint]*models.MaintenancePackage
}

func newFakeReferenceStore() *fakeReferenceStore {
	return &fakeReferenceStore{
		poolTypes: make(map[uint]*models.PoolType),
		services:  make(map[uint]*models.Service),
		packages:  make(map[uint]*models.MaintenancePackage),
	}
}

func (s *fakeReferenceStore) FindPoolType(id uint) (*models.PoolType, error) {
	return s.poolTypes[id], nil
}

func (s *fakeReferenceStore) FindService(id uint) (*models.Service, error) {
	return s.services[id], nil
}

func (s *fakeReferenceStore) FindPackage(id uint) (*models.MaintenancePackage, error) {
	return s.packages[id], nil
}

type fakeTaskStore struct {
	tasks    map[uint]*models.TechnicianTask
	profiles map[uint]*models.ClientPoolProfile
	readings map[uint][]models.WaterQualityReading
	nextID   uint
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{
		tasks:    make(map[uint]*models.TechnicianTask),
		profiles: make(map[uint]*models.ClientPoolProfile),
		readings: make(map[uint][]models.WaterQualityReading),
		nextID:   1,
	}
}

func (s *fakeTaskStore) Create(task *models.TechnicianTask) error {
	task.ID = s.nextID
	s.nextID++
	copied := *task
	s.tasks[task.ID] = &copied
	return nil
}

func (s *fakeTaskStore) Save(task *models.TechnicianTask) error {
	copied := *task
	s.tasks[task.ID] = &copied
	return nil
}

func (s *fakeTaskStore) FindByID(id uint) (*models.TechnicianTask, error) {
	task, ok := s.tasks[id]
	if !ok {
		return nil, nil
	}
	copied := *task
	return &copied, nil
}

func (s *fakeTaskStore) ListByTechnician(technicianID uint) ([]models.TechnicianTask, error) {
	var out []models.TechnicianTask
	for id := uint(1); id < s.nextID; id++ {
		if t, ok := s.tasks[id]; ok && t.TechnicianID == technicianID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (s *fakeTaskStore) FindPoolProfile(taskID uint) (*models.ClientPoolProfile, error) {
	return s.profiles[taskID], nil
}

func (s *fakeTaskStore) ListReadings(taskID uint) ([]models.WaterQualityReading, error) {
	return s.readings[taskID], nil
}

func (s *fakeTaskStore) CreateReading(reading *models.WaterQualityReading) error {
	reading.ID = uint(len(s.readings[reading.TaskID]) + 1)
	s.readings[reading.TaskID] = append(s.readings[reading.TaskID], *reading)
	return nil
}

type sentNotification struct {
	UserID  uint
	Type    models.NotificationType
	Title   string
	Message string
}

type fakeNotifier struct {
	sent []sentNotification
}

func (n *fakeNotifier) Notify(userID uint, ntype models.NotificationType, title, message string, bookingID, taskID *uint) {
	n.sent = append(n.sent, sentNotification{UserID: userID, Type: ntype, Title: title, Message: message})
}

type fakeUserStore struct {
	users map[uint]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint]*models.User)}
}

func (s *fakeUserStore) Create(user *models.User) error {
	user.ID = uint(len(s.users) + 1)
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *fakeUserStore) FindByID(id uint) (*models.User, error) {
	return s.users[id], nil
}

func (s *fakeUserStore) FindByPhone(phone string) (*models.User, error) {
	for _, user := range s.users {
		if user.Phone == phone {
			return user, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) CountByRole(role models.UserRole) (int64, error) {
	var count int64
	for _, user := range s.users {
		if user.Role == role && user.IsActive {
			count++
		}
	}
	return count, nil
}

type fakeNotificationStore struct {
	notifications []models.Notification
}

func (s *fakeNotificationStore) Create(notification *models.Notification) error {
	notification.ID = uint(len(s.notifications) + 1)
	s.notifications = append(s.notifications, *notification)
	return nil
}

func (s *fakeNotificationStore) ListByUser(userID uint, limit int) ([]models.Notification, error) {
	var out []models.Notification
	for i := len(s.notifications) - 1; i >= 0 && len(out) < limit; i-- {
		if s.notifications[i].UserID == userID {
			out = append(out, s.notifications[i])
		}
	}
	return out, nil
}

func (s *fakeNotificationStore) CountUnread(userID uint) (int64, error) {
	var count int64
	for _, n := range s.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (s *fakeNotificationStore) MarkRead(id, userID uint) error {
	for i := range s.notifications {
		if s.notifications[i].ID == id && s.notifications[i].UserID == userID {
			s.notifications[i].IsRead = true
		}
	}
	return nil
}

func (s *fakeNotificationStore) MarkAllRead(userID uint) error {
	for i := range s.notifications {
		if s.notifications[i].UserID == userID {
			s.notifications[i].IsRead = true
		}
	}
	return nil
}

type fakeHomeStore struct {
	offers   []models.ServiceOffer
	products []models.Product
	comments []models.Comment
}

func (s *fakeHomeStore) ListActiveOffers(limit int) ([]models.ServiceOffer, error) {
	return s.offers, nil
}

func (s *fakeHomeStore) ListFeaturedProducts(limit int) ([]models.Product, error) {
	return s.products, nil
}

func (s *fakeHomeStore) ListApprovedComments(limit int) ([]models.Comment, error) {
	return s.comments, nil
}

func (s *fakeHomeStore) AverageCommentRating() (float64, error) {
	if len(s.comments) == 0 {
		return 0, nil
	}
	total := 0
	for _, c := range s.comments {
		total += c.Rating
	}
	return float64(total) / float64(len(s.comments)), nil
}

func mustDate(t string) time.Time {
	parsed, err := time.Parse(models.DateLayout, t)
	if err != nil {
		panic(err)
	}
	return parsed
}

func fixedNow(t string) func() time.Time {
	return func() time.Time { return mustDate(t).Add(10 * time.Hour) }
}

func ptr[T any](v T) *T {
	return &v
}
