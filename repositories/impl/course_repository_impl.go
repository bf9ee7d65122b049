package impl

import (
	"CourseCatalog/models"
	"CourseCatalog/repositories"
	"fmt"

	"gorm.io/gorm"
)

type CourseRepositoryImpl struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) repositories.CourseRepository {
	return &CourseRepositoryImpl{DB: db}
}

func (r *CourseRepositoryImpl) FindAll() ([]models.Course, error) {
	var courses []models.Course
	if err := r.DB.Preload("Translations").Order("created_at DESC").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *CourseRepositoryImpl) FindByID(id uint) (models.Course, error) {
	var course models.Course
	if err := r.DB.Preload("Translations").First(&course, id).Error; err != nil {
		return models.Course{}, err
	}
	return course, nil
}

func (r *CourseRepositoryImpl) Save(course *models.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepositoryImpl) Delete(id uint) error {
	var course models.Course
	if err := r.DB.First(&course, id).Error; err != nil {
		return fmt.Errorf("course not found: %w", err)
	}

	// Translations go first so the delete works without FK cascade support.
	if err := r.DB.Where("course_id = ?", id).Delete(&models.CourseTranslation{}).Error; err != nil {
		return fmt.Errorf("failed to delete course translations: %w", err)
	}

	if err := r.DB.Delete(&course).Error; err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	return nil
}

func (r *CourseRepositoryImpl) FindTranslation(courseID uint, languageCode string) (models.CourseTranslation, error) {
	var translation models.CourseTranslation
	if err := r.DB.Where("course_id = ? AND language_code = ?", courseID, languageCode).First(&translation).Error; err != nil {
		return models.CourseTranslation{}, err
	}
	return translation, nil
}

func (r *CourseRepositoryImpl) SaveTranslation(translation *models.CourseTranslation) error {
	return r.DB.Save(translation).Error
}

// SaveTranslations writes a batch of translations in one transaction so a
// multi-language update never persists partially.
func (r *CourseRepositoryImpl) SaveTranslations(translations []models.CourseTranslation) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for i := range translations {
			if err := tx.Save(&translations[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *CourseRepositoryImpl) DeleteTranslation(courseID uint, languageCode string) error {
	return r.DB.Where("course_id = ? AND language_code = ?", courseID, languageCode).
		Delete(&models.CourseTranslation{}).Error
}

func (r *CourseRepositoryImpl) CountTranslations(courseID uint, count *int64) error {
	return r.DB.Model(&models.CourseTranslation{}).Where("course_id = ?", courseID).Count(count).Error
}
