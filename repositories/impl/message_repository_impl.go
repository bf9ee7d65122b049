package impl

import (
	"CourseCatalog/models"
	"CourseCatalog/repositories"

	"gorm.io/gorm"
)

type MessageRepositoryImpl struct {
	DB *gorm.DB
}

func NewMessageRepository(db *gorm.DB) repositories.MessageRepository {
	return &MessageRepositoryImpl{DB: db}
}

func (r *MessageRepositoryImpl) FindByLanguage(languageCode string) ([]models.Message, error) {
	var messages []models.Message
	if err := r.DB.Where("language_code = ?", languageCode).Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MessageRepositoryImpl) FindByKey(key, languageCode string) (models.Message, error) {
	var message models.Message
	if err := r.DB.Where("key = ? AND language_code = ?", key, languageCode).First(&message).Error; err != nil {
		return models.Message{}, err
	}
	return message, nil
}

func (r *MessageRepositoryImpl) Save(message *models.Message) error {
	return r.DB.Save(message).Error
}

func (r *MessageRepositoryImpl) Delete(key, languageCode string) error {
	return r.DB.Where("key = ? AND language_code = ?", key, languageCode).
		Delete(&models.Message{}).Error
}
