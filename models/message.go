package models

import "time"

// Message is a translated UI string served to clients, one row per
// (key, language) pair.
type Message struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Key           string    `json:"key" gorm:"size:190;uniqueIndex:idx_message_key_lang"`
	LanguageCode  string    `json:"language_code" gorm:"size:10;uniqueIndex:idx_message_key_lang"`
	Value         string    `json:"value" gorm:"type:text"`
	LastUpdatedAt time.Time `json:"last_updated_at" gorm:"autoUpdateTime"`
}
