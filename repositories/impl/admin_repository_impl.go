package impl

import (
	"CourseCatalog/models"
	"CourseCatalog/repositories"

	"gorm.io/gorm"
)

type AdminRepositoryImpl struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) repositories.AdminRepository {
	return &AdminRepositoryImpl{DB: db}
}

func (r *AdminRepositoryImpl) FindByEmail(email string) (models.Admin, error) {
	var admin models.Admin
	if err := r.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		return models.Admin{}, err
	}
	return admin, nil
}

func (r *AdminRepositoryImpl) Save(admin *models.Admin) error {
	return r.DB.Save(admin).Error
}

func (r *AdminRepositoryImpl) Count(count *int64) error {
	return r.DB.Model(&models.Admin{}).Count(count).Error
}
