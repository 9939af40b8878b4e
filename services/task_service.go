package services

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"plupool-server/models"
)

// serviceTypeKeywords expands a service-type filter into the words that mark
// a task as belonging to that category. Titles come in both Arabic and
// English, so each group carries aliases for both.
var serviceTypeKeywords = map[string][]string{
	"cleaning":     {"clean", "cleaning", "تنظيف", "نظافة"},
	"maintenance":  {"maintenance", "صيانة"},
	"repair":       {"repair", "fix", "إصلاح", "تصليح"},
	"construction": {"construction", "build", "إنشاء", "بناء"},
}

// serviceTypeAliasLookup resolves any alias back to its category, so a
// filter value like "تنظيف" matches the whole cleaning group.
var serviceTypeAliasLookup = func() map[string]string {
	lookup := make(map[string]string)
	for category, keywords := range serviceTypeKeywords {
		lookup[category] = category
		for _, keyword := range keywords {
			lookup[keyword] = category
		}
	}
	return lookup
}()

const (
	defaultTaskPageSize = 10
	maxTaskPageSize     = 50
	upcomingFeedLimit   = 15
)

// TaskListQuery is the parsed filter set of the task list endpoint. Each
// slice is OR-ed within itself and AND-ed against the other groups. Date
// bounds are inclusive YYYY-MM-DD strings.
type TaskListQuery struct {
	Statuses     []models.TechnicianTaskStatus
	Priorities   []models.TaskPriority
	ServiceTypes []string
	Locations    []string
	Search       string
	Date         *string
	DateFrom     *string
	DateTo       *string
	Page         int
	PageSize     int
}

// TaskService owns the technician task list, task details and task updates.
type TaskService struct {
	tasks    TaskStore
	home     HomeStore
	notifier Notifier
	now      func() time.Time
}

func NewTaskService(tasks TaskStore, home HomeStore, notifier Notifier) *TaskService {
	return &TaskService{
		tasks:    tasks,
		home:     home,
		notifier: notifier,
		now:      time.Now,
	}
}

// Assign creates a scheduled task for a technician and pings them.
func (s *TaskService) Assign(req *models.TechnicianTaskCreate) (*models.TechnicianTaskResponse, error) {
	scheduledDate, err := parseDate(req.ScheduledDate)
	if err != nil {
		return nil, err
	}
	if req.ScheduledTime != nil && !timeOfDayPattern.MatchString(*req.ScheduledTime) {
		return nil, NewValidationError("scheduled_time must be HH:MM, got %q", *req.ScheduledTime)
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityNormal
	}

	task := models.TechnicianTask{
		TechnicianID:      req.TechnicianID,
		Title:             req.Title,
		Description:       req.Description,
		ScheduledDate:     scheduledDate,
		ScheduledTime:     req.ScheduledTime,
		Status:            models.TaskStatusScheduled,
		Priority:          priority,
		LocationName:      req.LocationName,
		LocationAddress:   req.LocationAddress,
		LocationLatitude:  req.LocationLatitude,
		LocationLongitude: req.LocationLongitude,
		CustomerName:      req.CustomerName,
		CustomerAvatar:    req.CustomerAvatar,
		CustomerPhone:     req.CustomerPhone,
		Notes:             req.Notes,
	}
	if err := s.tasks.Create(&task); err != nil {
		return nil, err
	}

	log.Printf("📋 Task %d assigned to technician %d", task.ID, task.TechnicianID)
	if s.notifier != nil {
		s.notifier.Notify(req.TechnicianID, models.NotificationTypeTask, "مهمة جديدة",
			"تم إسناد مهمة جديدة إليك: "+req.Title, nil, &task.ID)
	}

	resp := task.ToResponse()
	return &resp, nil
}

// List returns one page of the technician's tasks after filtering and
// sorting. Urgent work floats to the top regardless of date.
func (s *TaskService) List(technicianID uint, query TaskListQuery) (*models.TechnicianTaskListResponse, error) {
	tasks, err := s.tasks.ListByTechnician(technicianID)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.TechnicianTask, 0, len(tasks))
	for i := range tasks {
		if !matchesQuery(&tasks[i], query) {
			continue
		}
		filtered = append(filtered, tasks[i])
	}
	sortTasks(filtered)

	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = defaultTaskPageSize
	}
	if pageSize > maxTaskPageSize {
		pageSize = maxTaskPageSize
	}

	total := len(filtered)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	responses := make([]models.TechnicianTaskResponse, 0, end-start)
	for i := start; i < end; i++ {
		responses = append(responses, filtered[i].ToResponse())
	}
	return &models.TechnicianTaskListResponse{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  end < total,
		Tasks:    responses,
	}, nil
}

func matchesQuery(task *models.TechnicianTask, query TaskListQuery) bool {
	if len(query.Statuses) > 0 && !anyOf(query.Statuses, task.Status) {
		return false
	}
	if len(query.Priorities) > 0 && !anyOf(query.Priorities, task.Priority) {
		return false
	}
	date := task.ScheduledDate.Format(models.DateLayout)
	if query.Date != nil && date != *query.Date {
		return false
	}
	if query.DateFrom != nil && date < *query.DateFrom {
		return false
	}
	if query.DateTo != nil && date > *query.DateTo {
		return false
	}
	if len(query.ServiceTypes) > 0 {
		matched := false
		for _, serviceType := range query.ServiceTypes {
			if matchesServiceType(task, serviceType) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	if len(query.Locations) > 0 {
		matched := false
		for _, location := range query.Locations {
			if containsFold(location, task.LocationName, task.LocationAddress) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	if query.Search != "" {
		if !containsFold(query.Search, &task.Title, task.Description, task.Notes,
			task.LocationName, task.LocationAddress, task.CustomerName) {
			return false
		}
	}
	return true
}

func anyOf[T comparable](values []T, value T) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// containsFold reports whether any of the fields contains needle,
// case-insensitively. Nil fields are skipped.
func containsFold(needle string, fields ...*string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	for _, field := range fields {
		if field == nil {
			continue
		}
		if strings.Contains(strings.ToLower(*field), needle) {
			return true
		}
	}
	return false
}

// matchesServiceType checks the task text against the keyword group for the
// requested category. Aliases resolve to their full group, so filtering on
// "تنظيف" also matches "نظافة" and "clean". An unknown value degrades to a
// literal substring match so new categories keep working before the table
// catches up.
func matchesServiceType(task *models.TechnicianTask, serviceType string) bool {
	key := strings.ToLower(strings.TrimSpace(serviceType))
	keywords := []string{key}
	if category, ok := serviceTypeAliasLookup[key]; ok {
		keywords = serviceTypeKeywords[category]
	}

	haystack := strings.ToLower(task.Title)
	if task.Description != nil {
		haystack += " " + strings.ToLower(*task.Description)
	}
	if task.Notes != nil {
		haystack += " " + strings.ToLower(*task.Notes)
	}
	for _, keyword := range keywords {
		if strings.Contains(haystack, keyword) {
			return true
		}
	}
	return false
}

// sortTasks orders by priority, then status, then schedule, then id. The id
// tiebreak keeps pagination stable across requests.
func sortTasks(tasks []models.TechnicianTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := &tasks[i], &tasks[j]
		if pa, pb := a.Priority.Rank(), b.Priority.Rank(); pa != pb {
			return pa < pb
		}
		if sa, sb := a.Status.Rank(), b.Status.Rank(); sa != sb {
			return sa < sb
		}
		if !a.ScheduledDate.Equal(b.ScheduledDate) {
			return a.ScheduledDate.Before(b.ScheduledDate)
		}
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

// Details composes the full task detail screen: the task itself, the client
// block with a maps link, the pool profile and the water quality history.
func (s *TaskService) Details(taskID, technicianID uint) (*models.TechnicianTaskDetailResponse, error) {
	task, err := s.ownedTask(taskID, technicianID)
	if err != nil {
		return nil, err
	}

	profile, err := s.tasks.FindPoolProfile(taskID)
	if err != nil {
		return nil, err
	}
	readings, err := s.tasks.ListReadings(taskID)
	if err != nil {
		return nil, err
	}

	return &models.TechnicianTaskDetailResponse{
		Task:         task.ToResponse(),
		Client:       clientSection(task),
		PoolProfile:  profile,
		WaterQuality: models.NewWaterQualityHistory(readings),
	}, nil
}

func clientSection(task *models.TechnicianTask) models.ClientDetailsSection {
	return models.ClientDetailsSection{
		FullName:        task.CustomerName,
		Phone:           task.CustomerPhone,
		Avatar:          task.CustomerAvatar,
		LocationName:    task.LocationName,
		LocationAddress: task.LocationAddress,
		Latitude:        task.LocationLatitude,
		Longitude:       task.LocationLongitude,
		MapURL:          mapURL(task.LocationLatitude, task.LocationLongitude),
		ScheduledDate:   task.ScheduledDate.Format(models.DateLayout),
		ScheduledTime:   task.ScheduledTime,
		Priority:        task.Priority,
		Status:          task.Status,
	}
}

func mapURL(lat, lng *float64) *string {
	if lat == nil || lng == nil {
		return nil
	}
	url := fmt.Sprintf("https://www.google.com/maps?q=%f,%f", *lat, *lng)
	return &url
}

// AddReading records a water chemistry measurement against the task.
func (s *TaskService) AddReading(taskID, technicianID uint, req *models.WaterQualityCreate) (*models.WaterQualityReading, error) {
	if _, err := s.ownedTask(taskID, technicianID); err != nil {
		return nil, err
	}
	if req.PHLevel == nil && req.ChlorineLevel == nil && req.TemperatureC == nil {
		return nil, NewValidationError("reading must carry at least one measurement")
	}

	reading := models.WaterQualityReading{
		TaskID:        taskID,
		PHLevel:       req.PHLevel,
		ChlorineLevel: req.ChlorineLevel,
		TemperatureC:  req.TemperatureC,
		Notes:         req.Notes,
	}
	if err := s.tasks.CreateReading(&reading); err != nil {
		return nil, err
	}
	return &reading, nil
}

// UpdateStatus advances the task along its forward chain. Re-sending the
// current status is a no-op.
func (s *TaskService) UpdateStatus(taskID, technicianID uint, req *models.TaskStatusUpdate) (*models.TechnicianTaskResponse, error) {
	task, err := s.ownedTask(taskID, technicianID)
	if err != nil {
		return nil, err
	}
	if req.Status == task.Status {
		resp := task.ToResponse()
		return &resp, nil
	}
	if !task.Status.CanAdvanceTo(req.Status) {
		return nil, NewInvalidTransitionError(string(task.Status), string(req.Status))
	}

	if req.Status == models.TaskStatusCompleted {
		task.MarkCompleted(nil, nil, nil)
	} else {
		task.Status = req.Status
	}
	if err := s.tasks.Save(task); err != nil {
		return nil, err
	}

	log.Printf("🔧 Task %d moved to %s by technician %d", task.ID, task.Status, technicianID)
	resp := task.ToResponse()
	return &resp, nil
}

// Complete finishes an in-progress task and attaches the client's rating
// and feedback.
func (s *TaskService) Complete(taskID, technicianID uint, req *models.TaskCompletionUpdate) (*models.TechnicianTaskResponse, error) {
	task, err := s.ownedTask(taskID, technicianID)
	if err != nil {
		return nil, err
	}
	if task.Status != models.TaskStatusInProgress {
		return nil, NewPreconditionError("task %d must be in progress to complete, currently %s", taskID, task.Status)
	}

	task.MarkCompleted(req.ClientRating, req.ClientFeedback, nil)
	if err := s.tasks.Save(task); err != nil {
		return nil, err
	}

	log.Printf("✅ Task %d completed by technician %d", task.ID, technicianID)
	resp := task.ToResponse()
	return &resp, nil
}

// UpcomingFeed returns the technician's next visits as feed cards with a
// relative-day label and category tags.
func (s *TaskService) UpcomingFeed(technicianID uint) (*models.TechnicianUpcomingFeedResponse, error) {
	tasks, err := s.tasks.ListByTechnician(technicianID)
	if err != nil {
		return nil, err
	}

	today := s.today()
	upcoming := make([]models.TechnicianTask, 0, len(tasks))
	for i := range tasks {
		t := &tasks[i]
		if t.Status == models.TaskStatusCompleted || t.Status == models.TaskStatusCancelled {
			continue
		}
		if t.ScheduledDate.Before(today) {
			continue
		}
		upcoming = append(upcoming, tasks[i])
	}
	sortTasks(upcoming)
	if len(upcoming) > upcomingFeedLimit {
		upcoming = upcoming[:upcomingFeedLimit]
	}

	visits := make([]models.TechnicianUpcomingVisit, 0, len(upcoming))
	for i := range upcoming {
		t := &upcoming[i]
		visits = append(visits, models.TechnicianUpcomingVisit{
			TaskID:        t.ID,
			Title:         t.Title,
			CustomerName:  t.CustomerName,
			LocationName:  t.LocationName,
			MapURL:        mapURL(t.LocationLatitude, t.LocationLongitude),
			ScheduledDate: t.ScheduledDate.Format(models.DateLayout),
			ScheduledTime: t.ScheduledTime,
			RelativeLabel: relativeDayLabel(today, t.ScheduledDate),
			Priority:      t.Priority,
			Status:        t.Status,
			Tags:          taskTags(t),
		})
	}

	offers := []models.ServiceOffer{}
	if s.home != nil {
		offers, err = s.home.ListActiveOffers(homeOffersLimit)
		if err != nil {
			return nil, err
		}
	}
	return &models.TechnicianUpcomingFeedResponse{
		Visits: visits,
		Offers: offerCards(offers),
	}, nil
}

// relativeDayLabel renders the day distance the way the feed shows it.
func relativeDayLabel(today, date time.Time) string {
	days := int(date.Sub(today).Hours() / 24)
	switch {
	case days <= 0:
		return "اليوم"
	case days == 1:
		return "غداً"
	case days == 2:
		return "بعد يومين"
	default:
		return fmt.Sprintf("بعد %d أيام", days)
	}
}

// taskTags classifies the task text into the known category groups.
func taskTags(task *models.TechnicianTask) []string {
	tags := make([]string, 0, 2)
	for _, category := range []string{"cleaning", "maintenance", "repair", "construction"} {
		if matchesServiceType(task, category) {
			tags = append(tags, category)
		}
	}
	return tags
}

func (s *TaskService) ownedTask(taskID, technicianID uint) (*models.TechnicianTask, error) {
	task, err := s.tasks.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, NewNotFoundError("task", taskID)
	}
	if task.TechnicianID != technicianID {
		return nil, NewForbiddenError("task %d is not assigned to you", taskID)
	}
	return task, nil
}

func (s *TaskService) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
