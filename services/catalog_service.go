package services

import (
	"CourseCatalog/interfaces"
	"CourseCatalog/models"
	"CourseCatalog/repositories"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// ErrInvalidInput marks validation failures so controllers can answer 400
// instead of 500.
var ErrInvalidInput = errors.New("invalid input")

const maxTitleLength = 90

// CourseTranslationInput is the admin payload for one language of a course.
type CourseTranslationInput struct {
	LanguageCode string  `json:"language_code" binding:"required"`
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	Date         string  `json:"date" binding:"required"`
	Price        float64 `json:"price"`
}

type CatalogService struct {
	CourseRepo      repositories.CourseRepository
	Languages       []string
	DefaultLanguage string
	Notifier        interfaces.CatalogNotifier
}

func NewCatalogService(courseRepo repositories.CourseRepository, languages []string, defaultLanguage string) *CatalogService {
	return &CatalogService{
		CourseRepo:      courseRepo,
		Languages:       languages,
		DefaultLanguage: defaultLanguage,
	}
}

// SetNotifier wires the websocket hub in after both sides are constructed.
func (s *CatalogService) SetNotifier(notifier interfaces.CatalogNotifier) {
	s.Notifier = notifier
}

// ListCourses returns all courses localized to lang, newest first. Courses
// without any usable translation are skipped.
func (s *CatalogService) ListCourses(lang string) ([]models.LocalizedCourse, error) {
	courses, err := s.CourseRepo.FindAll()
	if err != nil {
		return nil, err
	}

	result := make([]models.LocalizedCourse, 0, len(courses))
	for _, course := range courses {
		if localized, ok := s.localize(course, lang); ok {
			result = append(result, localized)
		}
	}
	return result, nil
}

func (s *CatalogService) GetCourse(id uint, lang string) (models.LocalizedCourse, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		return models.LocalizedCourse{}, err
	}

	localized, ok := s.localize(course, lang)
	if !ok {
		return models.LocalizedCourse{}, errors.New("course has no translations")
	}
	return localized, nil
}

// localize picks the translation for lang, falling back to the default
// language and then to any available one.
func (s *CatalogService) localize(course models.Course, lang string) (models.LocalizedCourse, bool) {
	if len(course.Translations) == 0 {
		return models.LocalizedCourse{}, false
	}

	selected := course.Translations[0]
	for _, tr := range course.Translations {
		if tr.LanguageCode == lang {
			selected = tr
			break
		}
		if tr.LanguageCode == s.DefaultLanguage && selected.LanguageCode != lang {
			selected = tr
		}
	}

	languages := make([]string, 0, len(course.Translations))
	for _, tr := range course.Translations {
		languages = append(languages, tr.LanguageCode)
	}

	return models.LocalizedCourse{
		ID:          course.ID,
		Language:    selected.LanguageCode,
		Title:       selected.Title,
		Description: selected.Description,
		Date:        selected.Date,
		Price:       selected.Price,
		Languages:   languages,
		CreatedAt:   course.CreatedAt,
	}, true
}

func (s *CatalogService) CreateCourse(inputs []CourseTranslationInput) (models.Course, error) {
	if len(inputs) == 0 {
		return models.Course{}, fmt.Errorf("%w: at least one translation is required", ErrInvalidInput)
	}
	if err := s.validateInputs(inputs); err != nil {
		return models.Course{}, err
	}

	course := models.Course{}
	for _, input := range inputs {
		course.Translations = append(course.Translations, models.CourseTranslation{
			LanguageCode: input.LanguageCode,
			Title:        input.Title,
			Description:  input.Description,
			Date:         input.Date,
			Price:        input.Price,
		})
	}

	if err := s.CourseRepo.Save(&course); err != nil {
		return models.Course{}, err
	}

	s.notify(interfaces.EventCourseCreated, course.ID)
	return course, nil
}

func (s *CatalogService) UpdateCourse(id uint, inputs []CourseTranslationInput) (models.Course, error) {
	if len(inputs) == 0 {
		return models.Course{}, fmt.Errorf("%w: at least one translation is required", ErrInvalidInput)
	}
	if err := s.validateInputs(inputs); err != nil {
		return models.Course{}, err
	}

	if _, err := s.CourseRepo.FindByID(id); err != nil {
		return models.Course{}, err
	}

	// All submitted languages go through one transactional batch save so a
	// failing write never leaves the course half-updated.
	translations := make([]models.CourseTranslation, 0, len(inputs))
	for _, input := range inputs {
		translations = append(translations, s.mergedTranslation(id, input))
	}
	if err := s.CourseRepo.SaveTranslations(translations); err != nil {
		return models.Course{}, err
	}

	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		return models.Course{}, err
	}

	s.notify(interfaces.EventCourseUpdated, id)
	return course, nil
}

func (s *CatalogService) DeleteCourse(id uint) error {
	if err := s.CourseRepo.Delete(id); err != nil {
		return err
	}
	s.notify(interfaces.EventCourseDeleted, id)
	return nil
}

// UpsertTranslation creates or replaces a single language of a course. The
// language from the URL wins over the payload.
func (s *CatalogService) UpsertTranslation(courseID uint, lang string, input CourseTranslationInput) (models.CourseTranslation, error) {
	input.LanguageCode = lang
	if err := s.validateInput(input); err != nil {
		return models.CourseTranslation{}, err
	}

	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		return models.CourseTranslation{}, err
	}

	merged := s.mergedTranslation(courseID, input)
	if err := s.CourseRepo.SaveTranslation(&merged); err != nil {
		return models.CourseTranslation{}, err
	}

	translation, err := s.CourseRepo.FindTranslation(courseID, lang)
	if err != nil {
		return models.CourseTranslation{}, err
	}

	s.notify(interfaces.EventCourseUpdated, courseID)
	return translation, nil
}

// DeleteTranslation removes one language of a course. The last remaining
// translation cannot be removed; delete the course instead.
func (s *CatalogService) DeleteTranslation(courseID uint, lang string) error {
	if _, err := s.CourseRepo.FindTranslation(courseID, lang); err != nil {
		return err
	}

	var count int64
	if err := s.CourseRepo.CountTranslations(courseID, &count); err != nil {
		return err
	}
	if count <= 1 {
		return fmt.Errorf("%w: cannot remove the last translation of a course", ErrInvalidInput)
	}

	if err := s.CourseRepo.DeleteTranslation(courseID, lang); err != nil {
		return err
	}

	s.notify(interfaces.EventCourseUpdated, courseID)
	return nil
}

// mergedTranslation loads the existing row for the input's language, or
// starts a fresh one, and applies the submitted fields.
func (s *CatalogService) mergedTranslation(courseID uint, input CourseTranslationInput) models.CourseTranslation {
	translation, err := s.CourseRepo.FindTranslation(courseID, input.LanguageCode)
	if err != nil {
		translation = models.CourseTranslation{
			CourseID:     courseID,
			LanguageCode: input.LanguageCode,
		}
	}

	translation.Title = input.Title
	translation.Description = input.Description
	translation.Date = input.Date
	translation.Price = input.Price

	return translation
}

func (s *CatalogService) validateInputs(inputs []CourseTranslationInput) error {
	seen := make(map[string]bool)
	for _, input := range inputs {
		if err := s.validateInput(input); err != nil {
			return err
		}
		if seen[input.LanguageCode] {
			return fmt.Errorf("%w: duplicate language %q", ErrInvalidInput, input.LanguageCode)
		}
		seen[input.LanguageCode] = true
	}
	return nil
}

func (s *CatalogService) validateInput(input CourseTranslationInput) error {
	if !s.isSupportedLanguage(input.LanguageCode) {
		return fmt.Errorf("%w: unsupported language %q", ErrInvalidInput, input.LanguageCode)
	}
	if input.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(input.Title) > maxTitleLength {
		return fmt.Errorf("%w: title longer than %d characters", ErrInvalidInput, maxTitleLength)
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return fmt.Errorf("%w: date must be formatted as YYYY-MM-DD", ErrInvalidInput)
	}
	if input.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}
	return nil
}

func (s *CatalogService) isSupportedLanguage(code string) bool {
	for _, lang := range s.Languages {
		if lang == code {
			return true
		}
	}
	return false
}

func (s *CatalogService) notify(eventType string, courseID uint) {
	if s.Notifier == nil {
		return
	}
	s.Notifier.NotifyCatalogChange(interfaces.CatalogEvent{
		Type:      eventType,
		CourseID:  courseID,
		Timestamp: time.Now(),
	})
}
