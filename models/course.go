package models

import "time"

// Course is the catalog entity. Every user-visible field is translatable
// and lives on CourseTranslation, one row per language.
type Course struct {
	ID           uint                `json:"id" gorm:"primaryKey"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	Translations []CourseTranslation `json:"translations" gorm:"constraint:OnDelete:CASCADE"`
}

type CourseTranslation struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	CourseID     uint    `json:"course_id" gorm:"uniqueIndex:idx_course_translation_lang"`
	LanguageCode string  `json:"language_code" gorm:"size:10;uniqueIndex:idx_course_translation_lang"`
	Title        string  `json:"title" gorm:"size:90"`
	Description  string  `json:"description" gorm:"type:text"`
	Date         string  `json:"date" gorm:"size:10"` // YYYY-MM-DD
	Price        float64 `json:"price" gorm:"type:numeric(10,2)"`
}

// LocalizedCourse is the public representation of a course in a single
// resolved language.
type LocalizedCourse struct {
	ID          uint      `json:"id"`
	Language    string    `json:"language"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Price       float64   `json:"price"`
	Languages   []string  `json:"languages"`
	CreatedAt   time.Time `json:"created_at"`
}
