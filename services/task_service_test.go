package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plupool-server/models"
)

func newTaskServiceForTest() (*TaskService, *fakeTaskStore, *fakeNotifier) {
	tasks := newFakeTaskStore()
	notifier := &fakeNotifier{}
	svc := NewTaskService(tasks, &fakeHomeStore{}, notifier)
	svc.now = fixedNow("2025-03-10")
	return svc, tasks, notifier
}

func seedTask(tasks *fakeTaskStore, task models.TechnicianTask) uint {
	if task.TechnicianID == 0 {
		task.TechnicianID = 7
	}
	if task.Status == "" {
		task.Status = models.TaskStatusScheduled
	}
	if task.Priority == "" {
		task.Priority = models.PriorityNormal
	}
	if task.ScheduledDate.IsZero() {
		task.ScheduledDate = mustDate("2025-03-11")
	}
	if err := tasks.Create(&task); err != nil {
		panic(err)
	}
	return task.ID
}

func TestAssignDefaultsAndNotifies(t *testing.T) {
	svc, _, notifier := newTaskServiceForTest()

	resp, err := svc.Assign(&models.TechnicianTaskCreate{
		TechnicianID:  7,
		Title:         "تنظيف حمام السباحة",
		ScheduledDate: "2025-03-12",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusScheduled, resp.Status)
	assert.Equal(t, models.PriorityNormal, resp.Priority)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, uint(7), notifier.sent[0].UserID)
	assert.Equal(t, models.NotificationTypeTask, notifier.sent[0].Type)
}

func TestAssignValidatesSchedule(t *testing.T) {
	svc, _, _ := newTaskServiceForTest()
	var validation *ValidationError

	_, err := svc.Assign(&models.TechnicianTaskCreate{
		TechnicianID: 7, Title: "x", ScheduledDate: "12-03-2025",
	})
	require.ErrorAs(t, err, &validation)

	_, err = svc.Assign(&models.TechnicianTaskCreate{
		TechnicianID: 7, Title: "x", ScheduledDate: "2025-03-12", ScheduledTime: ptr("noon"),
	})
	require.ErrorAs(t, err, &validation)
}

func TestListOrdersByPriorityThenStatusThenSchedule(t *testing.T) {
	svc, tasks, _ := newTaskServiceForTest()

	normalLater := seedTask(tasks, models.TechnicianTask{
		Title: "صيانة دورية", Priority: models.PriorityNormal,
		Status: models.TaskStatusScheduled, ScheduledDate: mustDate("2025-03-12"),
	})
	urgentPending := seedTask(tasks, models.TechnicianTask{
		Title: "تسريب مياه", Priority: models.PriorityUrgent,
		Status: models.TaskStatusPending, ScheduledDate: mustDate("2025-03-14"),
	})
	highInProgress := seedTask(tasks, models.TechnicianTask{
		Title: "إصلاح المضخة", Priority: models.PriorityHigh,
		Status: models.TaskStatusInProgress, ScheduledDate: mustDate("2025-03-13"),
	})
	normalEarlier := seedTask(tasks, models.TechnicianTask{
		Title: "تنظيف الفلتر", Priority: models.PriorityNormal,
		Status: models.TaskStatusScheduled, ScheduledDate: mustDate("2025-03-11"),
	})

	list, err := svc.List(7, TaskListQuery{})
	require.NoError(t, err)
	require.Len(t, list.Tasks, 4)

	got := []uint{list.Tasks[0].ID, list.Tasks[1].ID, list.Tasks[2].ID, list.Tasks[3].ID}
	// urgent first despite the latest date, then high, then normals by date
	assert.Equal(t, []uint{urgentPending, highInProgress, normalEarlier, normalLater}, got)
}

func TestListSortsNilTimeFirstAndIDAsTiebreak(t *testing.T) {
	svc, tasks, _ := newTaskServiceForTest()

	timed := seedTask(tasks, models.TechnicianTask{Title: "a", ScheduledTime: ptr("08:00")})
	untimed := seedTask(tasks, models.TechnicianTask{Title: "b"})
	timedLater := seedTask(tasks, models.TechnicianTask{Title: "c", ScheduledTime: ptr("14:00")})

	list, err := svc.List(7, TaskListQuery{})
	require.NoError(t, err)
	require.Len(t, list.Tasks, 3)
	assert.Equal(t, untimed, list.Tasks[0].ID)
	assert.Equal(t, timed, list.Tasks[1].ID)
	assert.Equal(t, timedLater, list.Tasks[2].ID)
}

func TestListFiltersByStatusDateAndServiceType(t *testing.T) {
	svc, tasks, _ := newTaskServiceForTest()

	cleaning := seedTask(tasks, models.TechnicianTask{
		Title: "تنظيف حمام السباحة", ScheduledDate: mustDate("2025-03-11"),
	})
	repair := seedTask(tasks, models.TechnicianTask{
		Title: "Pump repair", Status: models.TaskStatusInProgress, ScheduledDate: mustDate("2025-03-12"),
	})
	seedTask(tasks, models.TechnicianTask{
		Title: "زيارة تفقدية", ScheduledDate: mustDate("2025-03-12"),
	})

	list, err := svc.List(7, TaskListQuery{Statuses: []models.TechnicianTaskStatus{models.TaskStatusInProgress}})
	require.NoError(t, err)
	require.Len(t, list.Tasks, 1)
	assert.Equal(t, repair, list.Tasks[0].ID)

	list, err = svc.List(7, TaskListQuery{Date: ptr("2025-03-11")})
	require.NoError(t, err)
	require.Len(t, list.Tasks, 1)
	assert.Equal(t, cleaning, list.Tasks[0].ID)

	// Arabic title matched through the keyword group
	list, err = svc.List(7, TaskListQuery{ServiceTypes: []string{"cleaning"}})
	require.NoError(t, err)
	require.Len(t, list.Tasks, 1)
	assert.Equal(t, cleaning, list.Tasks[0].ID)

	list, err = svc.List(7, TaskListQuery{ServiceTypes: []string{"repair"}})
	require.NoError(t, err)
	require.Len(t, list.Tasks, 1)
	assert.Equal(t, repair, list.Tasks[0].ID)
}

func TestListCombinesRepeatedFilterValues(t *testing.T) {
	svc, tasks, _ := newTaskServiceForTest()

	pending := seedTask(tasks, models.TechnicianTask{Title: "a", Status: models.TaskStatusPending})
	scheduled := seedTask(tasks, models.TechnicianTask{Title: "b", Status: models.TaskStatusScheduled})
	seedTask(tasks, models.TechnicianTask{Title: "c", Status: models.TaskStatusCompleted})

	// repeated values within one group widen the match
	list, err := svc.List(7, TaskListQuery{
		Statuses: []models.TechnicianTaskStatus{models.TaskStatusPending, models.TaskStatusScheduled},
	})
	require.NoError(t, err)
	require.Len(t, list.Tasks, 2)
	got := []uint{list.Tasks[0].ID, list.Tasks[1].ID}
	assert.ElementsMatch(t, []uint{pending, scheduled}, got)

	// groups still narrow each other
	list, err = svc.List(7, TaskListQuery{
		Statuses:   []models.TechnicianTaskStatus{models.TaskStatusPending, models.TaskStatusScheduled},
		Priorities: []models.TaskPriority{models.PriorityUrgent},
	})
	require.NoError(t, err)
	assert.Empty(t, list.Tasks)
}

func TestListFiltersByPriorityDateRangeLocationAndSearch(t *testing.T) {
	svc, tasks, _ := newTaskServiceForTest()

	urgent := seedTask(tasks, models.TechnicianTask{
		Title: "تسريب", Priority: models.PriorityUrgent,
		ScheduledDate: mustDate("2025-03-11"), LocationName: ptr("التجمع الخامس"),
	})
	inRange := seedTask(tasks, models.TechnicianTask{
		Title: "زيارة", ScheduledDate: mustDate("2025-03-14"),
		CustomerName: ptr("محمد حسن"), Notes: ptr("بوابة خلفية"),
	})
	seedTask(tasks, models.TechnicianTask{
		Title: "زيارة", ScheduledDate: mustDate("2025-03-20"),
	})

	list, err := svc.List(7, TaskListQuery{Priorities: []models.TaskPriority{models.PriorityUrgent}})
	require.NoError(t, err)
	require.Len(t, list.Tasks, 1)
	assert.Equal(t, urgent, list.Tasks[0].ID)

	// bounds are inclusive
	list, err = svc.List(7, TaskListQuery{DateFrom: ptr("2025-03-12"), DateTo: ptr("2025-03-14")})
	require.NoError(t, err)
	require.Len(t, list.Tasks, 1)
	assert.Equal(t, inRange, list.Tasks[0].ID)

	list, err = svc.List(7, TaskListQuery{Locations: []string{"التجمع"}})
	require.NoError(t, err)
	require.Len(t, list.Tasks, 1)
	assert.Equal(t, urgent, list.Tasks[0].ID)

	// search spans notes and the customer snapshot
	list, err = svc.List(7, TaskListQuery{Search: "محمد"})
	require.NoError(t, err)
	require.Len(t, list.Tasks, 1)
	assert.Equal(t, inRange, list.Tasks[0].ID)

	list, err = svc.List(7, TaskListQuery{Search: "بوابة"})
	require.NoError(t, err)
	require.Len(t, list.Tasks, 1)

	list, err = svc.List(7, TaskListQuery{Search: "غير موجود"})
	require.NoError(t, err)
	assert.Empty(t, list.Tasks)
}

func TestListUnknownServiceTypeFallsBackToSubstring(t *testing.T) {
	svc, tasks, _ := newTaskServiceForTest()

	match := seedTask(tasks, models.TechnicianTask{Title: "Winterizing the pool"})
	seedTask(tasks, models.TechnicianTask{Title: "تنظيف"})

	list, err := svc.List(7, TaskListQuery{ServiceTypes: []string{"winterizing"}})
	require.NoError(t, err)
	require.Len(t, list.Tasks, 1)
	assert.Equal(t, match, list.Tasks[0].ID)
}

func TestListResolvesServiceTypeAliases(t *testing.T) {
	svc, tasks, _ := newTaskServiceForTest()

	cleaning := seedTask(tasks, models.TechnicianTask{Title: "نظافة أسبوعية"})
	noted := seedTask(tasks, models.TechnicianTask{Title: "زيارة", Notes: ptr("تصليح الفلتر بعد الزيارة")})
	seedTask(tasks, models.TechnicianTask{Title: "إنشاء حمام جديد"})

	// an Arabic alias pulls in the whole keyword group
	list, err := svc.List(7, TaskListQuery{ServiceTypes: []string{"تنظيف"}})
	require.NoError(t, err)
	require.Len(t, list.Tasks, 1)
	assert.Equal(t, cleaning, list.Tasks[0].ID)

	// notes count toward the match
	list, err = svc.List(7, TaskListQuery{ServiceTypes: []string{"repair"}})
	require.NoError(t, err)
	require.Len(t, list.Tasks, 1)
	assert.Equal(t, noted, list.Tasks[0].ID)
}

func TestListPagination(t *testing.T) {
	svc, tasks, _ := newTaskServiceForTest()
	for i := 0; i < 25; i++ {
		seedTask(tasks, models.TechnicianTask{Title: "مهمة"})
	}

	first, err := svc.List(7, TaskListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 25, first.Total)
	assert.Equal(t, 1, first.Page)
	assert.Equal(t, defaultTaskPageSize, first.PageSize)
	assert.Len(t, first.Tasks, 10)
	assert.True(t, first.HasMore)

	last, err := svc.List(7, TaskListQuery{Page: 3})
	require.NoError(t, err)
	assert.Len(t, last.Tasks, 5)
	assert.False(t, last.HasMore)

	beyond, err := svc.List(7, TaskListQuery{Page: 9})
	require.NoError(t, err)
	assert.Empty(t, beyond.Tasks)
	assert.False(t, beyond.HasMore)
	assert.Equal(t, 25, beyond.Total)

	capped, err := svc.List(7, TaskListQuery{PageSize: 500})
	require.NoError(t, err)
	assert.Equal(t, maxTaskPageSize, capped.PageSize)
	assert.Len(t, capped.Tasks, 25)
}

func TestDetailsComposesClientAndPoolData(t *testing.T) {
	svc, tasks, _ := newTaskServiceForTest()

	lat, lng := 30.0444, 31.2357
	taskID := seedTask(tasks, models.TechnicianTask{
		Title:             "تنظيف",
		CustomerName:      ptr("أحمد علي"),
		LocationLatitude:  &lat,
		LocationLongitude: &lng,
	})
	tasks.profiles[taskID] = &models.ClientPoolProfile{TaskID: taskID, FilterType: ptr("sand")}
	ph := 7.4
	tasks.readings[taskID] = []models.WaterQualityReading{{TaskID: taskID, PHLevel: &ph}}

	detail, err := svc.Details(taskID, 7)
	require.NoError(t, err)
	require.NotNil(t, detail.Client.MapURL)
	assert.Contains(t, *detail.Client.MapURL, "google.com/maps?q=")
	require.NotNil(t, detail.PoolProfile)
	assert.Equal(t, "7.2 - 7.6", detail.WaterQuality.IdealRanges.PH)
	require.NotNil(t, detail.WaterQuality.Latest)
	assert.Equal(t, ph, *detail.WaterQuality.Latest.PHLevel)
	assert.Empty(t, detail.WaterQuality.History)
}

func TestDetailsOwnership(t *testing.T) {
	svc, tasks, _ := newTaskServiceForTest()
	taskID := seedTask(tasks, models.TechnicianTask{Title: "x"})

	_, err := svc.Details(taskID, 99)
	var forbidden *ForbiddenError
	require.ErrorAs(t, err, &forbidden)

	_, err = svc.Details(404, 7)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestAddReadingRequiresAMeasurement(t *testing.T) {
	svc, tasks, _ := newTaskServiceForTest()
	taskID := seedTask(tasks, models.TechnicianTask{Title: "x"})

	_, err := svc.AddReading(taskID, 7, &models.WaterQualityCreate{Notes: ptr("لا قياسات")})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)

	chlorine := 1.8
	reading, err := svc.AddReading(taskID, 7, &models.WaterQualityCreate{ChlorineLevel: &chlorine})
	require.NoError(t, err)
	assert.Equal(t, taskID, reading.TaskID)
	require.Len(t, tasks.readings[taskID], 1)
}

func TestUpdateStatusFollowsForwardChain(t *testing.T) {
	svc, tasks, _ := newTaskServiceForTest()
	taskID := seedTask(tasks, models.TechnicianTask{Title: "x", Status: models.TaskStatusPending})

	// pending -> in_progress skips a step
	_, err := svc.UpdateStatus(taskID, 7, &models.TaskStatusUpdate{Status: models.TaskStatusInProgress})
	var transition *InvalidTransitionError
	require.ErrorAs(t, err, &transition)

	resp, err := svc.UpdateStatus(taskID, 7, &models.TaskStatusUpdate{Status: models.TaskStatusScheduled})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusScheduled, resp.Status)

	// re-sending the current status is a no-op
	resp, err = svc.UpdateStatus(taskID, 7, &models.TaskStatusUpdate{Status: models.TaskStatusScheduled})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusScheduled, resp.Status)

	_, err = svc.UpdateStatus(taskID, 7, &models.TaskStatusUpdate{Status: models.TaskStatusInProgress})
	require.NoError(t, err)

	resp, err = svc.UpdateStatus(taskID, 7, &models.TaskStatusUpdate{Status: models.TaskStatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCompleted, resp.Status)
	require.NotNil(t, resp.CompletedAt)
}

func TestCompleteRequiresInProgress(t *testing.T) {
	svc, tasks, _ := newTaskServiceForTest()

	scheduled := seedTask(tasks, models.TechnicianTask{Title: "x"})
	_, err := svc.Complete(scheduled, 7, &models.TaskCompletionUpdate{})
	var precondition *PreconditionError
	require.ErrorAs(t, err, &precondition)

	inProgress := seedTask(tasks, models.TechnicianTask{Title: "y", Status: models.TaskStatusInProgress})
	rating := 5
	resp, err := svc.Complete(inProgress, 7, &models.TaskCompletionUpdate{
		ClientRating:   &rating,
		ClientFeedback: ptr("خدمة ممتازة"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCompleted, resp.Status)
	require.NotNil(t, resp.ClientRating)
	assert.Equal(t, 5, *resp.ClientRating)
}

func TestUpcomingFeedLabelsAndTags(t *testing.T) {
	svc, tasks, _ := newTaskServiceForTest()

	seedTask(tasks, models.TechnicianTask{Title: "تنظيف اليوم", ScheduledDate: mustDate("2025-03-10")})
	seedTask(tasks, models.TechnicianTask{Title: "إصلاح المضخة", ScheduledDate: mustDate("2025-03-11")})
	seedTask(tasks, models.TechnicianTask{Title: "صيانة", ScheduledDate: mustDate("2025-03-12")})
	seedTask(tasks, models.TechnicianTask{Title: "إنشاء", ScheduledDate: mustDate("2025-03-15")})
	// excluded: completed, and in the past
	seedTask(tasks, models.TechnicianTask{Title: "منتهية", Status: models.TaskStatusCompleted, ScheduledDate: mustDate("2025-03-12")})
	seedTask(tasks, models.TechnicianTask{Title: "قديمة", ScheduledDate: mustDate("2025-03-01")})

	feed, err := svc.UpcomingFeed(7)
	require.NoError(t, err)
	require.Len(t, feed.Visits, 4)

	labels := make([]string, 0, len(feed.Visits))
	for _, v := range feed.Visits {
		labels = append(labels, v.RelativeLabel)
	}
	assert.Equal(t, []string{"اليوم", "غداً", "بعد يومين", "بعد 5 أيام"}, labels)

	assert.Equal(t, []string{"cleaning"}, feed.Visits[0].Tags)
	assert.Equal(t, []string{"repair"}, feed.Visits[1].Tags)
	assert.Equal(t, []string{"maintenance"}, feed.Visits[2].Tags)
	assert.Equal(t, []string{"construction"}, feed.Visits[3].Tags)
}

func TestUpcomingFeedCarriesActiveOffers(t *testing.T) {
	tasks := newFakeTaskStore()
	home := &fakeHomeStore{offers: []models.ServiceOffer{{ID: 1, TitleAr: "خصم الصيف"}}}
	svc := NewTaskService(tasks, home, nil)
	svc.now = fixedNow("2025-03-10")

	feed, err := svc.UpcomingFeed(7)
	require.NoError(t, err)
	assert.Empty(t, feed.Visits)
	require.Len(t, feed.Offers, 1)
	assert.Equal(t, "خصم الصيف", feed.Offers[0].TitleAr)
}

func TestUpcomingFeedIsCapped(t *testing.T) {
	svc, tasks, _ := newTaskServiceForTest()
	for i := 0; i < 20; i++ {
		seedTask(tasks, models.TechnicianTask{Title: "زيارة", ScheduledDate: mustDate("2025-03-15")})
	}

	feed, err := svc.UpcomingFeed(7)
	require.NoError(t, err)
	assert.Len(t, feed.Visits, upcomingFeedLimit)
}
