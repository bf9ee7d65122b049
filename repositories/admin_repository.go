package repositories

import "CourseCatalog/models"

type AdminRepository interface {
	FindByEmail(email string) (models.Admin, error)
	Save(admin *models.Admin) error
	Count(count *int64) error
}
