package main

import (
	"log"

	"plupool-server/database"
	"plupool-server/models"
)

// SeedReferenceData populates the booking catalog when the tables are
// empty. Safe to run on every boot.
func SeedReferenceData() error {
	if err := seedPoolTypes(); err != nil {
		return err
	}
	if err := seedServices(); err != nil {
		return err
	}
	return seedPackages()
}

func seedPoolTypes() error {
	var count int64
	if err := database.DB.Model(&models.PoolType{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	skimmerDesc := "نظام سكيمر كلاسيكي مناسب للفلل والحدائق المنزلية"
	overflowDesc := "نظام أوفرفلو بمستوى مياه مساوٍ للأرضية، مظهر فندقي"
	length, width, depth := 8.0, 4.0, 1.5

	poolTypes := []models.PoolType{
		{
			NameAr:        "حمام سباحة سكيمر",
			DescriptionAr: &skimmerDesc,
			LengthMeters:  &length,
			WidthMeters:   &width,
			DepthMeters:   &depth,
			Features:      []string{"فلتر رملي", "إضاءة LED", "سلم ستانلس"},
			IsActive:      true,
		},
		{
			NameAr:        "حمام سباحة أوفرفلو",
			DescriptionAr: &overflowDesc,
			Features:      []string{"خزان موازنة", "إضاءة LED", "تشطيب موزاييك"},
			IsActive:      true,
		},
	}
	if err := database.DB.Create(&poolTypes).Error; err != nil {
		return err
	}

	log.Printf("🌱 Seeded %d pool types", len(poolTypes))
	return nil
}

func seedServices() error {
	var count int64
	if err := database.DB.Model(&models.Service{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	services := []models.Service{
		{NameAr: "تنظيف حمام السباحة", ServiceType: models.ServiceTypeMaintenance, Status: models.ServiceStatusActive},
		{NameAr: "معالجة المياه وضبط الكيماويات", ServiceType: models.ServiceTypeMaintenance, Status: models.ServiceStatusActive},
		{NameAr: "إصلاح نظام الفلترة", ServiceType: models.ServiceTypeMaintenance, Status: models.ServiceStatusActive},
		{NameAr: "إنشاء حمام سباحة", ServiceType: models.ServiceTypeConstruction, Status: models.ServiceStatusActive},
	}
	if err := database.DB.Create(&services).Error; err != nil {
		return err
	}

	log.Printf("🌱 Seeded %d services", len(services))
	return nil
}

func seedPackages() error {
	var count int64
	if err := database.DB.Model(&models.MaintenancePackage{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	monthlyVisits, quarterlyVisits, yearlyVisits := 4, 16, 48

	packages := []models.MaintenancePackage{
		{
			NameAr:             "باقة الصيانة الشهرية",
			Duration:           models.DurationMonthly,
			IncludedServices:   []string{"تنظيف", "معالجة المياه"},
			Price:              1500,
			VisitsCount:        &monthlyVisits,
			ReminderDaysBefore: 3,
			IsActive:           true,
		},
		{
			NameAr:             "باقة الصيانة الربع سنوية",
			Duration:           models.DurationQuarterly,
			IncludedServices:   []string{"تنظيف", "معالجة المياه", "فحص الفلتر"},
			Price:              5000,
			VisitsCount:        &quarterlyVisits,
			ReminderDaysBefore: 5,
			IsActive:           true,
		},
		{
			NameAr:             "باقة الصيانة السنوية",
			Duration:           models.DurationYearly,
			IncludedServices:   []string{"تنظيف", "معالجة المياه", "فحص الفلتر", "صيانة المضخة"},
			Price:              16000,
			VisitsCount:        &yearlyVisits,
			ReminderDaysBefore: 7,
			IsActive:           true,
		},
	}
	if err := database.DB.Create(&packages).Error; err != nil {
		return err
	}

	log.Printf("🌱 Seeded %d maintenance packages", len(packages))
	return nil
}
