package repositories

import "CourseCatalog/models"

type CourseRepository interface {
	FindAll() ([]models.Course, error)
	FindByID(id uint) (models.Course, error)
	Save(course *models.Course) error
	Delete(id uint) error
	FindTranslation(courseID uint, languageCode string) (models.CourseTranslation, error)
	SaveTranslation(translation *models.CourseTranslation) error
	SaveTranslations(translations []models.CourseTranslation) error
	DeleteTranslation(courseID uint, languageCode string) error
	CountTranslations(courseID uint, count *int64) error
}
