package repository

import (
	"errors"

	"gorm.io/gorm"

	"plupool-server/database"
	"plupool-server/models"
)

// TaskRepository persists technician tasks and their attachments.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{db: database.DB}
}

func (r *TaskRepository) Create(task *models.TechnicianTask) error {
	return r.db.Create(task).Error
}

func (r *TaskRepository) Save(task *models.TechnicianTask) error {
	return r.db.Save(task).Error
}

func (r *TaskRepository) FindByID(id uint) (*models.TechnicianTask, error) {
	var task models.TechnicianTask
	err := r.db.First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) ListByTechnician(technicianID uint) ([]models.TechnicianTask, error) {
	var tasks []models.TechnicianTask
	err := r.db.
		Where("technician_id = ?", technicianID).
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) FindPoolProfile(taskID uint) (*models.ClientPoolProfile, error) {
	var profile models.ClientPoolProfile
	err := r.db.Where("task_id = ?", taskID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *TaskRepository) ListReadings(taskID uint) ([]models.WaterQualityReading, error) {
	var readings []models.WaterQualityReading
	err := r.db.
		Where("task_id = ?", taskID).
		Order("recorded_at DESC").
		Find(&readings).Error
	return readings, err
}

func (r *TaskRepository) CreateReading(reading *models.WaterQualityReading) error {
	return r.db.Create(reading).Error
}
