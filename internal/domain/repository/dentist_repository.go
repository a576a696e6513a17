package repository

import (
	"dental-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DentistRepository interface {
	Create(db *gorm.DB, dentist *entity.Dentist) error
	FindByID(db *gorm.DB, id uint) (*entity.Dentist, error)
	FindAll(db *gorm.DB) ([]entity.Dentist, error)
	FindByRegistration(db *gorm.DB, registration int) (*entity.Dentist, error)
	Update(db *gorm.DB, dentist *entity.Dentist) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
