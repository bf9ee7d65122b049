package mocks

import (
	"CourseCatalog/models"

	"github.com/stretchr/testify/mock"
)

// CourseRepository is a testify mock of repositories.CourseRepository.
type CourseRepository struct {
	mock.Mock
}

func (m *CourseRepository) FindAll() ([]models.Course, error) {
	args := m.Called()
	return args.Get(0).([]models.Course), args.Error(1)
}

func (m *CourseRepository) FindByID(id uint) (models.Course, error) {
	args := m.Called(id)
	return args.Get(0).(models.Course), args.Error(1)
}

func (m *CourseRepository) Save(course *models.Course) error {
	args := m.Called(course)
	return args.Error(0)
}

func (m *CourseRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *CourseRepository) FindTranslation(courseID uint, languageCode string) (models.CourseTranslation, error) {
	args := m.Called(courseID, languageCode)
	return args.Get(0).(models.CourseTranslation), args.Error(1)
}

func (m *CourseRepository) SaveTranslation(translation *models.CourseTranslation) error {
	args := m.Called(translation)
	return args.Error(0)
}

func (m *CourseRepository) SaveTranslations(translations []models.CourseTranslation) error {
	args := m.Called(translations)
	return args.Error(0)
}

func (m *CourseRepository) DeleteTranslation(courseID uint, languageCode string) error {
	args := m.Called(courseID, languageCode)
	return args.Error(0)
}

func (m *CourseRepository) CountTranslations(courseID uint, count *int64) error {
	args := m.Called(courseID, count)
	return args.Error(0)
}

// MessageRepository is a testify mock of repositories.MessageRepository.
type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) FindByLanguage(languageCode string) ([]models.Message, error) {
	args := m.Called(languageCode)
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MessageRepository) FindByKey(key, languageCode string) (models.Message, error) {
	args := m.Called(key, languageCode)
	return args.Get(0).(models.Message), args.Error(1)
}

func (m *MessageRepository) Save(message *models.Message) error {
	args := m.Called(message)
	return args.Error(0)
}

func (m *MessageRepository) Delete(key, languageCode string) error {
	args := m.Called(key, languageCode)
	return args.Error(0)
}

// AdminRepository is a testify mock of repositories.AdminRepository.
type AdminRepository struct {
	mock.Mock
}

func (m *AdminRepository) FindByEmail(email string) (models.Admin, error) {
	args := m.Called(email)
	return args.Get(0).(models.Admin), args.Error(1)
}

func (m *AdminRepository) Save(admin *models.Admin) error {
	args := m.Called(admin)
	return args.Error(0)
}

func (m *AdminRepository) Count(count *int64) error {
	args := m.Called(count)
	return args.Error(0)
}
