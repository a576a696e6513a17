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

var ErrTreatmentNotFound = errors.New("treatment not found")

type TreatmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateTreatmentRequest) (*dto.TreatmentResponse, error)
	FindByID(ctx context.Context, id uint) (*dto.TreatmentResponse, error)
	FindAll(ctx context.Context) (*dto.TreatmentListResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateTreatmentRequest) (*dto.TreatmentResponse, error)
	Delete(ctx context.Context, id uint) error
}

type treatmentUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	treatmentRepo repository.TreatmentRepository
	auditService  service.AuditService
}

func NewTreatmentUsecase(db *gorm.DB, log *logrus.Logger, treatmentRepo repository.TreatmentRepository, auditService service.AuditService) TreatmentUsecase {
	return &treatmentUsecase{
		db:            db,
		log:           log,
		treatmentRepo: treatmentRepo,
		auditService:  auditService,
	}
}

func (u *treatmentUsecase) Create(ctx context.Context, req *dto.CreateTreatmentRequest) (*dto.TreatmentResponse, error) {
	treatment := &entity.Treatment{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}

	if err := u.treatmentRepo.Create(u.db, treatment); err != nil {
		u.log.Warnf("Failed to create treatment: %+v", err)
		return nil, err
	}

	response := converter.TreatmentToResponse(treatment)
	u.auditService.LogCreate(u.db, actorFromContext(ctx), entity.AuditActionTreatmentCreate,
		"treatment", strconv.FormatUint(uint64(treatment.ID), 10), response)

	return response, nil
}

func (u *treatmentUsecase) FindByID(ctx context.Context, id uint) (*dto.TreatmentResponse, error) {
	treatment, err := u.treatmentRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find treatment %d: %+v", id, err)
		return nil, err
	}
	if treatment == nil {
		return nil, ErrTreatmentNotFound
	}

	return converter.TreatmentToResponse(treatment), nil
}

func (u *treatmentUsecase) FindAll(ctx context.Context) (*dto.TreatmentListResponse, error) {
	treatments, err := u.treatmentRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Failed to find treatments: %+v", err)
		return nil, err
	}

	return &dto.TreatmentListResponse{
		Treatments: converter.TreatmentsToResponses(treatments),
		Total:      len(treatments),
	}, nil
}

func (u *treatmentUsecase) Update(ctx context.Context, id uint, req *dto.UpdateTreatmentRequest) (*dto.TreatmentResponse, error) {
	treatment, err := u.treatmentRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find treatment %d: %+v", id, err)
		return nil, err
	}
	if treatment == nil {
		return nil, ErrTreatmentNotFound
	}

	oldValue := converter.TreatmentToResponse(treatment)

	if req.Name != "" {
		treatment.Name = req.Name
	}
	if req.Description != nil {
		treatment.Description = *req.Description
	}
	if req.Price != nil {
		treatment.Price = *req.Price
	}

	if err := u.treatmentRepo.Update(u.db, treatment); err != nil {
		u.log.Warnf("Failed to update treatment %d: %+v", id, err)
		return nil, err
	}

	response := converter.TreatmentToResponse(treatment)
	u.auditService.LogUpdate(u.db, actorFromContext(ctx), entity.AuditActionTreatmentUpdate,
		"treatment", strconv.FormatUint(uint64(treatment.ID), 10), oldValue, response)

	return response, nil
}

func (u *treatmentUsecase) Delete(ctx context.Context, id uint) error {
	treatment, err := u.treatmentRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find treatment %d: %+v", id, err)
		return err
	}
	if treatment == nil {
		return ErrTreatmentNotFound
	}

	oldValue := converter.TreatmentToResponse(treatment)

	rows, err := u.treatmentRepo.Delete(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to delete treatment %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrTreatmentNotFound
	}

	u.auditService.LogDelete(u.db, actorFromContext(ctx), entity.AuditActionTreatmentDelete,
		"treatment", strconv.FormatUint(uint64(id), 10), oldValue)

	return nil
}
