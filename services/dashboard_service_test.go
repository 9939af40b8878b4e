package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plupool-server/models"
)

type dashboardFixture struct {
	svc           *DashboardService
	bookings      *fakeBookingStore
	tasks         *fakeTaskStore
	users         *fakeUserStore
	notifications *fakeNotificationStore
	home          *fakeHomeStore
}

// 2025-03-12 is a Wednesday, so the week runs 2025-03-10 to 2025-03-16.
func newDashboardFixture() *dashboardFixture {
	f := &dashboardFixture{
		bookings:      newFakeBookingStore(),
		tasks:         newFakeTaskStore(),
		users:         newFakeUserStore(),
		notifications: &fakeNotificationStore{},
		home:          &fakeHomeStore{},
	}
	f.svc = NewDashboardService(f.bookings, f.tasks, f.users, f.notifications, f.home)
	f.svc.now = fixedNow("2025-03-12")
	return f
}

func (f *dashboardFixture) addUser(role models.UserRole) *models.User {
	user := &models.User{FullName: "مستخدم تجريبي", Phone: "+201000000001", Role: role, IsActive: true}
	if err := f.users.Create(user); err != nil {
		panic(err)
	}
	return user
}

func (f *dashboardFixture) addBooking(b models.Booking) {
	if b.BookingTime == "" {
		b.BookingTime = "10:00"
	}
	if err := f.bookings.Create(&b); err != nil {
		panic(err)
	}
}

func TestWeeklyOverviewRunsMondayToSunday(t *testing.T) {
	f := newDashboardFixture()
	tech := f.addUser(models.RoleTechnician)

	seedTask(f.tasks, models.TechnicianTask{
		TechnicianID: tech.ID, Title: "تنظيف", ScheduledDate: mustDate("2025-03-10"),
	})
	seedTask(f.tasks, models.TechnicianTask{
		TechnicianID: tech.ID, Title: "صيانة", ScheduledDate: mustDate("2025-03-12"),
	})
	// cancelled tasks never show on the grid
	seedTask(f.tasks, models.TechnicianTask{
		TechnicianID: tech.ID, Title: "ملغاة", Status: models.TaskStatusCancelled, ScheduledDate: mustDate("2025-03-12"),
	})

	dash, err := f.svc.Technician(tech.ID)
	require.NoError(t, err)

	plan := dash.WeeklyPlan
	assert.Equal(t, "2025-03-10", plan.WeekStart)
	assert.Equal(t, "2025-03-16", plan.WeekEnd)
	require.Len(t, plan.Days, 7)

	monday := plan.Days[0]
	assert.Equal(t, "الاثنين", monday.DayName)
	assert.False(t, monday.IsToday)
	assert.Len(t, monday.Visits, 1)

	wednesday := plan.Days[2]
	assert.True(t, wednesday.IsToday)
	assert.Len(t, wednesday.Visits, 1)

	thursday := plan.Days[3]
	assert.Empty(t, thursday.Visits)

	// a week with any visit carries no empty-state message
	assert.Nil(t, plan.EmptyStateMessage)
}

func TestWeeklyOverviewEmptyWeekMessage(t *testing.T) {
	f := newDashboardFixture()
	tech := f.addUser(models.RoleTechnician)

	// a task outside the week keeps every grid day empty
	seedTask(f.tasks, models.TechnicianTask{
		TechnicianID: tech.ID, Title: "الأسبوع الجاي", ScheduledDate: mustDate("2025-03-18"),
	})

	dash, err := f.svc.Technician(tech.ID)
	require.NoError(t, err)

	plan := dash.WeeklyPlan
	for _, day := range plan.Days {
		assert.Empty(t, day.Visits)
	}
	require.NotNil(t, plan.EmptyStateMessage)
	assert.Equal(t, models.EmptyWeekMessage, *plan.EmptyStateMessage)
}

func TestTechnicianDashboardStats(t *testing.T) {
	f := newDashboardFixture()
	tech := f.addUser(models.RoleTechnician)

	seedTask(f.tasks, models.TechnicianTask{
		TechnicianID: tech.ID, Title: "اليوم", ScheduledDate: mustDate("2025-03-12"),
	})
	seedTask(f.tasks, models.TechnicianTask{
		TechnicianID: tech.ID, Title: "مكتملة", Status: models.TaskStatusCompleted, ScheduledDate: mustDate("2025-03-11"),
	})
	// outside the week
	seedTask(f.tasks, models.TechnicianTask{
		TechnicianID: tech.ID, Title: "الأسبوع القادم", ScheduledDate: mustDate("2025-03-20"),
	})

	dash, err := f.svc.Technician(tech.ID)
	require.NoError(t, err)

	require.Len(t, dash.Stats, 4)
	assert.Equal(t, "مهام اليوم", dash.Stats[0].Label)
	assert.Equal(t, 1.0, dash.Stats[0].Value)
	assert.Equal(t, 2.0, dash.Stats[1].Value)
	assert.Equal(t, 1.0, dash.Stats[2].Value)
	// no rated completions yet
	assert.Equal(t, 0.0, dash.Stats[3].Value)
}

func TestTechnicianDashboardAverageRating(t *testing.T) {
	f := newDashboardFixture()
	tech := f.addUser(models.RoleTechnician)

	seedTask(f.tasks, models.TechnicianTask{
		TechnicianID: tech.ID, Title: "أ", Status: models.TaskStatusCompleted,
		ScheduledDate: mustDate("2025-03-10"), ClientRating: ptr(5),
	})
	seedTask(f.tasks, models.TechnicianTask{
		TechnicianID: tech.ID, Title: "ب", Status: models.TaskStatusCompleted,
		ScheduledDate: mustDate("2025-02-20"), ClientRating: ptr(4),
	})
	// unrated completions do not drag the average down
	seedTask(f.tasks, models.TechnicianTask{
		TechnicianID: tech.ID, Title: "ج", Status: models.TaskStatusCompleted,
		ScheduledDate: mustDate("2025-02-21"),
	})

	dash, err := f.svc.Technician(tech.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, dash.Stats[3].Value)
}

func TestOwnerDashboardMetrics(t *testing.T) {
	f := newDashboardFixture()
	owner := f.addUser(models.RolePoolOwner)

	f.addBooking(models.Booking{
		UserID: owner.ID, BookingType: models.BookingTypeMaintenanceSingle,
		ServiceID: ptr(uint(1)), BookingDate: mustDate("2025-03-13"), Status: models.BookingStatusConfirmed,
	})
	f.addBooking(models.Booking{
		UserID: owner.ID, BookingType: models.BookingTypeMaintenanceSingle,
		ServiceID: ptr(uint(1)), BookingDate: mustDate("2025-03-14"), Status: models.BookingStatusPending,
	})
	// completed package with coverage into the future counts as active
	future := mustDate("2025-04-01")
	f.addBooking(models.Booking{
		UserID: owner.ID, BookingType: models.BookingTypeMaintenancePackage,
		PackageID: ptr(uint(5)), BookingDate: mustDate("2025-03-01"),
		Status: models.BookingStatusCompleted, NextMaintenanceDate: &future,
	})
	// expired package coverage does not
	past := mustDate("2025-03-05")
	f.addBooking(models.Booking{
		UserID: owner.ID, BookingType: models.BookingTypeMaintenancePackage,
		PackageID: ptr(uint(5)), BookingDate: mustDate("2025-02-01"),
		Status: models.BookingStatusCompleted, NextMaintenanceDate: &past,
	})
	// cancelled booking this week is counted but never upcoming
	f.addBooking(models.Booking{
		UserID: owner.ID, BookingType: models.BookingTypeMaintenanceSingle,
		ServiceID: ptr(uint(1)), BookingDate: mustDate("2025-03-15"), Status: models.BookingStatusCancelled,
	})

	dash, err := f.svc.Owner(owner.ID)
	require.NoError(t, err)

	require.Len(t, dash.Metrics, 5)
	assert.Equal(t, 5.0, dash.Metrics[0].Value, "total bookings")
	assert.Equal(t, 1.0, dash.Metrics[1].Value, "active bookings")
	assert.Equal(t, 3.0, dash.Metrics[2].Value, "this week")
	assert.Equal(t, 1.0, dash.Metrics[3].Value, "pending")
	assert.Equal(t, 1.0, dash.Metrics[4].Value, "active packages")

	// only the confirmed and pending this-week bookings are upcoming
	require.Len(t, dash.Upcoming, 2)
	for _, b := range dash.Upcoming {
		assert.False(t, b.Status.IsTerminal())
	}
}

func TestCompanyDashboardMetrics(t *testing.T) {
	f := newDashboardFixture()
	company := f.addUser(models.RoleCompany)
	f.addUser(models.RoleTechnician)
	f.addUser(models.RoleTechnician)

	f.home.comments = []models.Comment{
		{AuthorName: "عميل", Text: "ممتاز", Rating: 5, IsApproved: true},
		{AuthorName: "عميل آخر", Text: "جيد", Rating: 4, IsApproved: true},
	}

	// two bookings from the same client, one from another
	f.addBooking(models.Booking{
		UserID: 10, BookingType: models.BookingTypeConstruction,
		PoolTypeID: ptr(uint(1)), BookingDate: mustDate("2025-03-13"), Status: models.BookingStatusInProgress,
	})
	f.addBooking(models.Booking{
		UserID: 10, BookingType: models.BookingTypeMaintenanceSingle,
		ServiceID: ptr(uint(1)), BookingDate: mustDate("2025-03-14"), Status: models.BookingStatusPending,
	})
	f.addBooking(models.Booking{
		UserID: 11, BookingType: models.BookingTypeMaintenanceSingle,
		ServiceID: ptr(uint(1)), BookingDate: mustDate("2025-03-15"), Status: models.BookingStatusConfirmed,
	})

	dash, err := f.svc.Company(company.ID)
	require.NoError(t, err)

	require.Len(t, dash.Metrics, 5)
	assert.Equal(t, 2.0, dash.Metrics[0].Value, "distinct clients")
	assert.Equal(t, 2.0, dash.Metrics[1].Value, "active projects")
	assert.Equal(t, 1.0, dash.Metrics[2].Value, "pending requests")
	assert.Equal(t, 2.0, dash.Metrics[3].Value, "technicians")
	assert.Equal(t, 4.5, dash.Metrics[4].Value, "average rating")

	require.Len(t, dash.Projects, 2)
}

func TestSharedSectionsVaryByRole(t *testing.T) {
	f := newDashboardFixture()
	owner := f.addUser(models.RolePoolOwner)

	f.home.offers = []models.ServiceOffer{{TitleAr: "خصم الصيف", Status: models.OfferStatusActive}}
	f.home.products = []models.Product{{NameAr: "مضخة", Price: 2500}}

	dash, err := f.svc.Owner(owner.ID)
	require.NoError(t, err)

	require.Len(t, dash.Shared.Offers, 1)
	require.Len(t, dash.Shared.StoreItems, 1)
	assert.NotEmpty(t, dash.Shared.Contacts)

	keys := make([]string, 0)
	for _, action := range dash.Shared.QuickActions {
		keys = append(keys, action.Key)
	}
	assert.Contains(t, keys, "book_construction")
	assert.NotContains(t, keys, "tasks")
}

func TestNavBarCountsUnreadNotifications(t *testing.T) {
	f := newDashboardFixture()
	owner := f.addUser(models.RolePoolOwner)

	require.NoError(t, f.notifications.Create(&models.Notification{UserID: owner.ID, Title: "a", Type: models.NotificationTypeSystem}))
	require.NoError(t, f.notifications.Create(&models.Notification{UserID: owner.ID, Title: "b", Type: models.NotificationTypeSystem}))
	require.NoError(t, f.notifications.MarkRead(1, owner.ID))

	dash, err := f.svc.Owner(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, dash.NavBar.Notifications.UnreadCount)
	assert.Equal(t, owner.FullName, dash.NavBar.User.FullName)
}

func TestDashboardUnknownUser(t *testing.T) {
	f := newDashboardFixture()
	_, err := f.svc.Owner(42)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}
