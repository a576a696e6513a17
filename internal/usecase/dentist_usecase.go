package usecase

import (
	"context"
	"errors"
	"strconv"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"
	"dental-clinic-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDentistHasBookings = errors.New("dentist still has appointments")

type DentistUsecase interface {
	Create(ctx context.Context, req *dto.CreateDentistRequest) (*dto.DentistResponse, error)
	FindByID(ctx context.Context, id uint) (*dto.DentistResponse, error)
	FindByRegistration(ctx context.Context, registration int) (*dto.DentistResponse, error)
	FindAll(ctx context.Context) (*dto.DentistListResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateDentistRequest) (*dto.DentistResponse, error)
	Delete(ctx context.Context, id uint) error
}

type dentistUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	dentistRepo  repository.DentistRepository
	auditService service.AuditService
}

func NewDentistUsecase(db *gorm.DB, log *logrus.Logger, dentistRepo repository.DentistRepository, auditService service.AuditService) DentistUsecase {
	return &dentistUsecase{
		db:           db,
		log:          log,
		dentistRepo:  dentistRepo,
		auditService: auditService,
	}
}

func (u *dentistUsecase) Create(ctx context.Context, req *dto.CreateDentistRequest) (*dto.DentistResponse, error) {
	dentist := &entity.Dentist{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Registration: req.Registration,
	}

	if err := u.dentistRepo.Create(u.db, dentist); err != nil {
		u.log.Warnf("Failed to create dentist: %+v", err)
		return nil, err
	}

	response := converter.DentistToResponse(dentist)
	u.auditService.LogCreate(u.db, actorFromContext(ctx), entity.AuditActionDentistCreate,
		"dentist", strconv.FormatUint(uint64(dentist.ID), 10), response)

	return response, nil
}

func (u *dentistUsecase) FindByID(ctx context.Context, id uint) (*dto.DentistResponse, error) {
	dentist, err := u.dentistRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find dentist %d: %+v", id, err)
		return nil, err
	}
	if dentist == nil {
		return nil, ErrDentistNotFound
	}

	return converter.DentistToResponse(dentist), nil
}

// FindByRegistration looks a dentist up by license number. Registration is not
// unique by contract; the first match wins.
func (u *dentistUsecase) FindByRegistration(ctx context.Context, registration int) (*dto.DentistResponse, error) {
	dentist, err := u.dentistRepo.FindByRegistration(u.db, registration)
	if err != nil {
		u.log.Warnf("Failed to find dentist by registration %d: %+v", registration, err)
		return nil, err
	}
	if dentist == nil {
		return nil, ErrDentistNotFound
	}

	return converter.DentistToResponse(dentist), nil
}

func (u *dentistUsecase) FindAll(ctx context.Context) (*dto.DentistListResponse, error) {
	dentists, err := u.dentistRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Failed to find dentists: %+v", err)
		return nil, err
	}

	return &dto.DentistListResponse{
		Dentists: converter.DentistsToResponses(dentists),
		Total:    len(dentists),
	}, nil
}

func (u *dentistUsecase) Update(ctx context.Context, id uint, req *dto.UpdateDentistRequest) (*dto.DentistResponse, error) {
	dentist, err := u.dentistRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find dentist %d: %+v", id, err)
		return nil, err
	}
	if dentist == nil {
		return nil, ErrDentistNotFound
	}

	oldValue := converter.DentistToResponse(dentist)

	if req.FirstName != "" {
		dentist.FirstName = req.FirstName
	}
	if req.LastName != "" {
		dentist.LastName = req.LastName
	}
	if req.Registration != nil {
		dentist.Registration = *req.Registration
	}

	if err := u.dentistRepo.Update(u.db, dentist); err != nil {
		u.log.Warnf("Failed to update dentist %d: %+v", id, err)
		return nil, err
	}

	response := converter.DentistToResponse(dentist)
	u.auditService.LogUpdate(u.db, actorFromContext(ctx), entity.AuditActionDentistUpdate,
		"dentist", strconv.FormatUint(uint64(dentist.ID), 10), oldValue, response)

	return response, nil
}

func (u *dentistUsecase) Delete(ctx context.Context, id uint) error {
	dentist, err := u.dentistRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find dentist %d: %+v", id, err)
		return err
	}
	if dentist == nil {
		return ErrDentistNotFound
	}

	oldValue := converter.DentistToResponse(dentist)

	rows, err := u.dentistRepo.Delete(u.db, id)
	if err != nil {
		if isForeignKeyError(err) {
			return ErrDentistHasBookings
		}
		u.log.Warnf("Failed to delete dentist %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrDentistNotFound
	}

	u.auditService.LogDelete(u.db, actorFromContext(ctx), entity.AuditActionDentistDelete,
		"dentist", strconv.FormatUint(uint64(id), 10), oldValue)

	return nil
}
