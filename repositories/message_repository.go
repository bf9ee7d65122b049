package repositories

import "CourseCatalog/models"

type MessageRepository interface {
	FindByLanguage(languageCode string) ([]models.Message, error)
	FindByKey(key, languageCode string) (models.Message, error)
	Save(message *models.Message) error
	Delete(key, languageCode string) error
}
