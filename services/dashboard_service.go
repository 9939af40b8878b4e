package services

import (
	"sort"
	"time"

	"plupool-server/models"
)

const (
	homeOffersLimit       = 10
	homeProductsLimit     = 10
	homeTestimonialsLimit = 5
)

// DashboardService aggregates the role-specific home screens.
type DashboardService struct {
	bookings      BookingStore
	tasks         TaskStore
	users         UserStore
	notifications NotificationStore
	home          HomeStore
	now           func() time.Time
}

func NewDashboardService(bookings BookingStore, tasks TaskStore, users UserStore, notifications NotificationStore, home HomeStore) *DashboardService {
	return &DashboardService{
		bookings:      bookings,
		tasks:         tasks,
		users:         users,
		notifications: notifications,
		home:          home,
		now:           time.Now,
	}
}

// Owner builds the pool-owner home screen.
func (s *DashboardService) Owner(userID uint) (*models.OwnerDashboardResponse, error) {
	user, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}
	navBar, err := s.navBar(user)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	today := s.today()
	horizon := today.AddDate(0, 0, 7)

	var active, pending, thisWeek, activePackages int
	upcoming := make([]models.BookingResponse, 0)
	for i := range bookings {
		b := &bookings[i]
		switch b.Status {
		case models.BookingStatusConfirmed, models.BookingStatusInProgress:
			active++
		case models.BookingStatusPending:
			pending++
		}
		if !b.BookingDate.Before(today) && b.BookingDate.Before(horizon) {
			thisWeek++
			if !b.Status.IsTerminal() {
				upcoming = append(upcoming, b.ToResponse())
			}
		}
		if b.BookingType == models.BookingTypeMaintenancePackage && s.packageIsActive(b, today) {
			activePackages++
		}
	}

	metrics := []models.MetricItem{
		{Label: "إجمالي الحجوزات", Value: float64(len(bookings))},
		{Label: "حجوزات نشطة", Value: float64(active)},
		{Label: "هذا الأسبوع", Value: float64(thisWeek)},
		{Label: "بانتظار التأكيد", Value: float64(pending)},
		{Label: "باقات فعالة", Value: float64(activePackages)},
	}

	shared, err := s.sharedSections(models.RolePoolOwner)
	if err != nil {
		return nil, err
	}

	return &models.OwnerDashboardResponse{
		NavBar:   *navBar,
		Metrics:  metrics,
		Upcoming: upcoming,
		Shared:   *shared,
		Account:  accountSection(user),
	}, nil
}

// packageIsActive reports whether a package booking still covers the
// customer: either the work is underway or the paid cycle has not run out.
func (s *DashboardService) packageIsActive(b *models.Booking, today time.Time) bool {
	switch b.Status {
	case models.BookingStatusConfirmed, models.BookingStatusInProgress:
		return true
	case models.BookingStatusCompleted:
		return b.NextMaintenanceDate != nil && !b.NextMaintenanceDate.Before(today)
	}
	return false
}

// Company builds the company home screen.
func (s *DashboardService) Company(userID uint) (*models.CompanyDashboardResponse, error) {
	user, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}
	navBar, err := s.navBar(user)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.ListAll()
	if err != nil {
		return nil, err
	}

	clients := make(map[uint]struct{})
	var activeProjects, pending int
	projects := make([]models.ProjectCard, 0)
	for i := range bookings {
		b := &bookings[i]
		clients[b.UserID] = struct{}{}
		switch b.Status {
		case models.BookingStatusConfirmed, models.BookingStatusInProgress:
			activeProjects++
			projects = append(projects, projectCard(b))
		case models.BookingStatusPending:
			pending++
		}
	}

	technicianCount, err := s.users.CountByRole(models.RoleTechnician)
	if err != nil {
		return nil, err
	}
	avgRating, err := s.home.AverageCommentRating()
	if err != nil {
		return nil, err
	}

	metrics := []models.MetricItem{
		{Label: "العملاء", Value: float64(len(clients))},
		{Label: "مشاريع جارية", Value: float64(activeProjects)},
		{Label: "طلبات معلقة", Value: float64(pending)},
		{Label: "الفنيين", Value: float64(technicianCount)},
		{Label: "متوسط التقييم", Value: avgRating},
	}

	shared, err := s.sharedSections(models.RoleCompany)
	if err != nil {
		return nil, err
	}

	return &models.CompanyDashboardResponse{
		NavBar:   *navBar,
		Metrics:  metrics,
		Projects: projects,
		Shared:   *shared,
		Account:  accountSection(user),
	}, nil
}

func projectCard(b *models.Booking) models.ProjectCard {
	card := models.ProjectCard{
		BookingID:   b.ID,
		BookingType: b.BookingType,
		Status:      b.Status,
		BookingDate: b.BookingDate.Format(models.DateLayout),
	}
	if b.User != nil {
		card.ClientName = &b.User.FullName
	}
	return card
}

// Technician builds the technician home screen around the weekly plan.
func (s *DashboardService) Technician(userID uint) (*models.TechnicianDashboardResponse, error) {
	user, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}
	navBar, err := s.navBar(user)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByTechnician(userID)
	if err != nil {
		return nil, err
	}

	today := s.today()
	weekly := s.weeklyOverview(tasks, today)

	var todayCount, weekCount, completedWeek int
	var ratingSum, ratingCount int
	weekStart, _ := parseDate(weekly.WeekStart)
	weekEnd := weekStart.AddDate(0, 0, 7)
	for i := range tasks {
		t := &tasks[i]
		if t.Status == models.TaskStatusCompleted && t.ClientRating != nil {
			ratingSum += *t.ClientRating
			ratingCount++
		}
		inWeek := !t.ScheduledDate.Before(weekStart) && t.ScheduledDate.Before(weekEnd)
		if !inWeek {
			continue
		}
		weekCount++
		if t.ScheduledDate.Equal(today) {
			todayCount++
		}
		if t.Status == models.TaskStatusCompleted {
			completedWeek++
		}
	}

	avgRating := 0.0
	if ratingCount > 0 {
		avgRating = float64(ratingSum) / float64(ratingCount)
	}

	stats := []models.MetricItem{
		{Label: "مهام اليوم", Value: float64(todayCount)},
		{Label: "مهام الأسبوع", Value: float64(weekCount)},
		{Label: "مكتملة هذا الأسبوع", Value: float64(completedWeek)},
		{Label: "متوسط التقييم", Value: avgRating},
	}

	shared, err := s.sharedSections(models.RoleTechnician)
	if err != nil {
		return nil, err
	}

	return &models.TechnicianDashboardResponse{
		NavBar:     *navBar,
		Stats:      stats,
		WeeklyPlan: *weekly,
		Shared:     *shared,
		Account:    accountSection(user),
	}, nil
}

// weeklyOverview lays the tasks over a Monday-to-Sunday grid around today.
func (s *DashboardService) weeklyOverview(tasks []models.TechnicianTask, today time.Time) *models.WeeklyOverview {
	offset := (int(today.Weekday()) + 6) % 7
	weekStart := today.AddDate(0, 0, -offset)

	byDate := make(map[string][]models.TechnicianTaskResponse)
	for i := range tasks {
		t := &tasks[i]
		if t.Status == models.TaskStatusCancelled {
			continue
		}
		key := t.ScheduledDate.Format(models.DateLayout)
		byDate[key] = append(byDate[key], t.ToResponse())
	}

	days := make([]models.WeeklyDayPlan, 0, 7)
	totalVisits := 0
	for d := 0; d < 7; d++ {
		date := weekStart.AddDate(0, 0, d)
		key := date.Format(models.DateLayout)
		visits := byDate[key]
		if visits == nil {
			visits = []models.TechnicianTaskResponse{}
		}
		sortDayVisits(visits)
		totalVisits += len(visits)
		days = append(days, models.WeeklyDayPlan{
			Date:    key,
			DayName: models.ArabicDayNames[int(date.Weekday())],
			IsToday: date.Equal(today),
			Visits:  visits,
		})
	}

	overview := models.WeeklyOverview{
		WeekStart: weekStart.Format(models.DateLayout),
		WeekEnd:   weekStart.AddDate(0, 0, 6).Format(models.DateLayout),
		Days:      days,
	}
	if totalVisits == 0 {
		message := models.EmptyWeekMessage
		overview.EmptyStateMessage = &message
	}
	return &overview
}

// sortDayVisits orders a day's visits by time then id. Untimed visits go
// first, same as the task list.
func sortDayVisits(visits []models.TechnicianTaskResponse) {
	sort.SliceStable(visits, func(i, j int) bool {
		a, b := &visits[i], &visits[j]
		if ta, tb := a.ScheduledTime, b.ScheduledTime; ta != nil || tb != nil {
			if ta == nil {
				return true
			}
			if tb == nil {
				return false
			}
			if *ta != *tb {
				return *ta < *tb
			}
		}
		return a.ID < b.ID
	})
}

func (s *DashboardService) sharedSections(role models.UserRole) (*models.SharedHomeSections, error) {
	offers, err := s.home.ListActiveOffers(homeOffersLimit)
	if err != nil {
		return nil, err
	}
	products, err := s.home.ListFeaturedProducts(homeProductsLimit)
	if err != nil {
		return nil, err
	}
	comments, err := s.home.ListApprovedComments(homeTestimonialsLimit)
	if err != nil {
		return nil, err
	}

	storeCards := make([]models.StoreItemCard, 0, len(products))
	for i := range products {
		p := &products[i]
		storeCards = append(storeCards, models.StoreItemCard{
			ID:            p.ID,
			NameAr:        p.NameAr,
			ImageURL:      p.ImageURL,
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			Rating:        p.Rating,
		})
	}

	testimonials := make([]models.TestimonialCard, 0, len(comments))
	for i := range comments {
		c := &comments[i]
		testimonials = append(testimonials, models.TestimonialCard{
			AuthorName: c.AuthorName,
			AvatarURL:  c.AvatarURL,
			Text:       c.Text,
			Rating:     c.Rating,
		})
	}

	return &models.SharedHomeSections{
		Offers:       offerCards(offers),
		StoreItems:   storeCards,
		Testimonials: testimonials,
		Contacts:     contactChannels(),
		QuickActions: quickActions(role),
		Footer:       footerNavigation(role),
	}, nil
}

func offerCards(offers []models.ServiceOffer) []models.OfferCard {
	cards := make([]models.OfferCard, 0, len(offers))
	for i := range offers {
		o := &offers[i]
		cards = append(cards, models.OfferCard{
			ID:            o.ID,
			TitleAr:       o.TitleAr,
			DescriptionAr: o.DescriptionAr,
			ImageURL:      o.ImageURL,
			BadgeText:     o.BadgeText,
			Price:         o.Price,
			OriginalPrice: o.OriginalPrice,
			IsFeatured:    o.IsFeatured,
		})
	}
	return cards
}

func contactChannels() []models.ContactChannel {
	return []models.ContactChannel{
		{Type: "phone", Label: "اتصل بنا", Value: "+20 100 000 0000"},
		{Type: "whatsapp", Label: "واتساب", Value: "+20 100 000 0000"},
		{Type: "email", Label: "البريد الإلكتروني", Value: "support@plupool.com"},
	}
}

func quickActions(role models.UserRole) []models.QuickActionCard {
	switch role {
	case models.RoleTechnician:
		return []models.QuickActionCard{
			{Key: "tasks", TitleAr: "مهامي"},
			{Key: "schedule", TitleAr: "جدول الأسبوع"},
			{Key: "water_quality", TitleAr: "قياسات المياه"},
		}
	case models.RoleCompany:
		return []models.QuickActionCard{
			{Key: "projects", TitleAr: "المشاريع"},
			{Key: "bookings", TitleAr: "الحجوزات"},
			{Key: "technicians", TitleAr: "الفنيين"},
		}
	}
	return []models.QuickActionCard{
		{Key: "book_construction", TitleAr: "إنشاء حمام سباحة"},
		{Key: "book_maintenance", TitleAr: "طلب صيانة"},
		{Key: "packages", TitleAr: "باقات الصيانة"},
	}
}

func footerNavigation(role models.UserRole) models.FooterNavigation {
	items := []models.FooterNavigationItem{
		{Key: "home", Label: "الرئيسية", Icon: "home", IsActive: true},
	}
	switch role {
	case models.RoleTechnician:
		items = append(items,
			models.FooterNavigationItem{Key: "tasks", Label: "المهام", Icon: "clipboard"},
			models.FooterNavigationItem{Key: "schedule", Label: "الجدول", Icon: "calendar"},
		)
	case models.RoleCompany:
		items = append(items,
			models.FooterNavigationItem{Key: "projects", Label: "المشاريع", Icon: "briefcase"},
			models.FooterNavigationItem{Key: "bookings", Label: "الحجوزات", Icon: "calendar"},
		)
	default:
		items = append(items,
			models.FooterNavigationItem{Key: "bookings", Label: "حجوزاتي", Icon: "calendar"},
			models.FooterNavigationItem{Key: "store", Label: "المتجر", Icon: "shopping-bag"},
		)
	}
	items = append(items, models.FooterNavigationItem{Key: "account", Label: "حسابي", Icon: "user"})
	return models.FooterNavigation{Items: items}
}

func (s *DashboardService) navBar(user *models.User) (*models.NavBarData, error) {
	unread, err := s.notifications.CountUnread(user.ID)
	if err != nil {
		return nil, err
	}
	return &models.NavBarData{
		User: models.UserSummary{
			ID:       user.ID,
			FullName: user.FullName,
			Avatar:   user.ProfileImage,
			Role:     user.Role,
		},
		Notifications: models.NotificationSummary{UnreadCount: int(unread)},
	}, nil
}

func accountSection(user *models.User) models.AccountSection {
	return models.AccountSection{
		FullName: &user.FullName,
		Phone:    user.Phone,
		Email:    user.Email,
		Avatar:   user.ProfileImage,
		Role:     user.Role,
	}
}

func (s *DashboardService) loadUser(userID uint) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewNotFoundError("user", userID)
	}
	return user, nil
}

func (s *DashboardService) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
