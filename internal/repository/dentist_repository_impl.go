package repository

import (
	"errors"

	"dental-clinic-api/internal/domain/entity"
	domainRepo "dental-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type dentistRepository struct{}

func NewDentistRepository() domainRepo.DentistRepository {
	return &dentistRepository{}
}

func (r *dentistRepository) Create(db *gorm.DB, dentist *entity.Dentist) error {
	return db.Create(dentist).Error
}

func (r *dentistRepository) FindByID(db *gorm.DB, id uint) (*entity.Dentist, error) {
	var dentist entity.Dentist
	err := db.Where("id = ?", id).First(&dentist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dentist, nil
}

func (r *dentistRepository) FindAll(db *gorm.DB) ([]entity.Dentist, error) {
	var dentists []entity.Dentist
	err := db.Find(&dentists).Error
	if err != nil {
		return nil, err
	}
	return dentists, nil
}

// FindByRegistration returns the first dentist holding the given license
// number. Registration is not unique by contract, so first match wins.
func (r *dentistRepository) FindByRegistration(db *gorm.DB, registration int) (*entity.Dentist, error) {
	var dentist entity.Dentist
	err := db.Where("registration = ?", registration).First(&dentist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dentist, nil
}

func (r *dentistRepository) Update(db *gorm.DB, dentist *entity.Dentist) error {
	return db.Omit("Appointments").Save(dentist).Error
}

func (r *dentistRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Dentist{})
	return result.RowsAffected, result.Error
}
