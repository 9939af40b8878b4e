package models

// ArabicDayNames maps time.Weekday ordinals (Sunday = 0) to the labels the
// weekly plan renders.
var ArabicDayNames = [7]string{
	"الأحد",
	"الاثنين",
	"الثلاثاء",
	"الأربعاء",
	"الخميس",
	"الجمعة",
	"السبت",
}

// EmptyWeekMessage is shown when the weekly plan has no visits at all.
const EmptyWeekMessage = "النهاردة بريك 😎"

// MetricItem is one tile on a dashboard metrics row.
type MetricItem struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Icon  *string `json:"icon,omitempty"`
}

// UserSummary is the greeting block of the nav bar.
type UserSummary struct {
	ID       uint     `json:"id"`
	FullName string   `json:"full_name"`
	Avatar   *string  `json:"avatar"`
	Role     UserRole `json:"role"`
}

// NotificationSummary is the bell badge of the nav bar.
type NotificationSummary struct {
	UnreadCount int `json:"unread_count"`
}

// NavBarData heads every dashboard variant.
type NavBarData struct {
	User          UserSummary         `json:"user"`
	Notifications NotificationSummary `json:"notifications"`
}

// WeeklyDayPlan is one day of the Monday-to-Sunday weekly overview.
type WeeklyDayPlan struct {
	Date    string                   `json:"date"`
	DayName string                   `json:"day_name"`
	IsToday bool                     `json:"is_today"`
	Visits  []TechnicianTaskResponse `json:"visits"`
}

// WeeklyOverview is the full weekly plan section. EmptyStateMessage is set
// only when the whole week has no visits.
type WeeklyOverview struct {
	WeekStart         string          `json:"week_start"`
	WeekEnd           string          `json:"week_end"`
	Days              []WeeklyDayPlan `json:"days"`
	EmptyStateMessage *string         `json:"empty_state_message,omitempty"`
}

// ContactChannel is one entry of the contact section.
type ContactChannel struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// FooterNavigationItem is one tab of the bottom navigation.
type FooterNavigationItem struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	IsActive bool   `json:"is_active"`
}

// FooterNavigation is the bottom tab bar of a dashboard.
type FooterNavigation struct {
	Items []FooterNavigationItem `json:"items"`
}

// QuickActionCard is a shortcut tile on the home screen.
type QuickActionCard struct {
	Key      string  `json:"key"`
	TitleAr  string  `json:"title_ar"`
	Icon     *string `json:"icon,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
}

// OfferCard is a home-screen promotional card.
type OfferCard struct {
	ID            uint    `json:"id"`
	TitleAr       string  `json:"title_ar"`
	DescriptionAr *string `json:"description_ar"`
	ImageURL      *string `json:"image_url"`
	BadgeText     *string `json:"badge_text"`
	Price         *int    `json:"price"`
	OriginalPrice *int    `json:"original_price"`
	IsFeatured    bool    `json:"is_featured"`
}

// StoreItemCard is a home-screen product card.
type StoreItemCard struct {
	ID            uint     `json:"id"`
	NameAr        string   `json:"name_ar"`
	ImageURL      *string  `json:"image_url"`
	Price         int      `json:"price"`
	OriginalPrice *int     `json:"original_price"`
	Rating        *float64 `json:"rating"`
}

// TestimonialCard is a home-screen testimonial.
type TestimonialCard struct {
	AuthorName string  `json:"author_name"`
	AvatarURL  *string `json:"avatar_url"`
	Text       string  `json:"text"`
	Rating     int     `json:"rating"`
}

// ProjectCard is a company-dashboard project summary built from a booking.
type ProjectCard struct {
	BookingID   uint          `json:"booking_id"`
	ClientName  *string       `json:"client_name"`
	BookingType BookingType   `json:"booking_type"`
	Status      BookingStatus `json:"status"`
	BookingDate string        `json:"booking_date"`
}

// SharedHomeSections carries the blocks every role's home screen shares.
type SharedHomeSections struct {
	Offers       []OfferCard       `json:"offers"`
	StoreItems   []StoreItemCard   `json:"store_items"`
	Testimonials []TestimonialCard `json:"testimonials"`
	Contacts     []ContactChannel  `json:"contacts"`
	QuickActions []QuickActionCard `json:"quick_actions"`
	Footer       FooterNavigation  `json:"footer"`
}

// AccountSection is the profile block of a dashboard.
type AccountSection struct {
	FullName *string  `json:"full_name"`
	Phone    string   `json:"phone"`
	Email    *string  `json:"email"`
	Avatar   *string  `json:"avatar"`
	Role     UserRole `json:"role"`
}

// OwnerDashboardResponse is the pool-owner home screen.
type OwnerDashboardResponse struct {
	NavBar   NavBarData         `json:"nav_bar"`
	Metrics  []MetricItem       `json:"metrics"`
	Upcoming []BookingResponse  `json:"upcoming_bookings"`
	Shared   SharedHomeSections `json:"shared"`
	Account  AccountSection     `json:"account"`
}

// CompanyDashboardResponse is the company home screen.
type CompanyDashboardResponse struct {
	NavBar   NavBarData         `json:"nav_bar"`
	Metrics  []MetricItem       `json:"metrics"`
	Projects []ProjectCard      `json:"projects"`
	Shared   SharedHomeSections `json:"shared"`
	Account  AccountSection     `json:"account"`
}

// TechnicianDashboardResponse is the technician home screen.
type TechnicianDashboardResponse struct {
	NavBar     NavBarData         `json:"nav_bar"`
	Stats      []MetricItem       `json:"stats"`
	WeeklyPlan WeeklyOverview     `json:"weekly_plan"`
	Shared     SharedHomeSections `json:"shared"`
	Account    AccountSection     `json:"account"`
}

// TechnicianUpcomingVisit is one card of the upcoming-visits feed.
type TechnicianUpcomingVisit struct {
	TaskID        uint                 `json:"task_id"`
	Title         string               `json:"title"`
	CustomerName  *string              `json:"customer_name"`
	LocationName  *string              `json:"location_name"`
	MapURL        *string              `json:"map_url"`
	ScheduledDate string               `json:"scheduled_date"`
	ScheduledTime *string              `json:"scheduled_time"`
	RelativeLabel string               `json:"relative_label"`
	Priority      TaskPriority         `json:"priority"`
	Status        TechnicianTaskStatus `json:"status"`
	Tags          []string             `json:"tags"`
}

// TechnicianUpcomingFeedResponse is the upcoming-visits feed, padded with the
// running offers so the screen is never empty between visits.
type TechnicianUpcomingFeedResponse struct {
	Visits []TechnicianUpcomingVisit `json:"visits"`
	Offers []OfferCard               `json:"offers"`
}
