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

var (
	ErrDocumentNumberExists = errors.New("a patient with that document number already exists")
	ErrPatientHasBookings   = errors.New("patient still has appointments")
)

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	FindByID(ctx context.Context, id uint) (*dto.PatientResponse, error)
	FindAll(ctx context.Context) (*dto.PatientListResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id uint) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(db *gorm.DB, log *logrus.Logger, patientRepo repository.PatientRepository, auditService service.AuditService) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

// Create registers a patient. The document number is checked before the write
// so the common collision reads as a clean conflict; the unique index still
// backstops the check, and a duplicate-key failure maps to the same error.
func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	if req.DocumentNumber != nil {
		exists, err := u.patientRepo.ExistsByDocumentNumber(u.db, *req.DocumentNumber)
		if err != nil {
			u.log.Warnf("Failed to check document number %d: %+v", *req.DocumentNumber, err)
			return nil, err
		}
		if exists {
			return nil, ErrDocumentNumberExists
		}
	}

	patient := &entity.Patient{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DocumentNumber: req.DocumentNumber,
	}

	if err := u.patientRepo.Create(u.db, patient); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrDocumentNumberExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	response := converter.PatientToResponse(patient)
	u.auditService.LogCreate(u.db, actorFromContext(ctx), entity.AuditActionPatientCreate,
		"patient", strconv.FormatUint(uint64(patient.ID), 10), response)

	return response, nil
}

func (u *patientUsecase) FindByID(ctx context.Context, id uint) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) FindAll(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

// Update applies the provided fields only. Moving to a document number held by
// another patient is a conflict; re-stating the patient's own number is not.
func (u *patientUsecase) Update(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if req.DocumentNumber != nil {
		owner, err := u.patientRepo.FindByDocumentNumber(u.db, *req.DocumentNumber)
		if err != nil {
			u.log.Warnf("Failed to check document number %d: %+v", *req.DocumentNumber, err)
			return nil, err
		}
		if owner != nil && owner.ID != patient.ID {
			return nil, ErrDocumentNumberExists
		}
	}

	oldValue := converter.PatientToResponse(patient)

	if req.FirstName != "" {
		patient.FirstName = req.FirstName
	}
	if req.LastName != "" {
		patient.LastName = req.LastName
	}
	if req.DocumentNumber != nil {
		patient.DocumentNumber = req.DocumentNumber
	}

	if err := u.patientRepo.Update(u.db, patient); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrDocumentNumberExists
		}
		u.log.Warnf("Failed to update patient %d: %+v", id, err)
		return nil, err
	}

	response := converter.PatientToResponse(patient)
	u.auditService.LogUpdate(u.db, actorFromContext(ctx), entity.AuditActionPatientUpdate,
		"patient", strconv.FormatUint(uint64(patient.ID), 10), oldValue, response)

	return response, nil
}

func (u *patientUsecase) Delete(ctx context.Context, id uint) error {
	patient, err := u.patientRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	oldValue := converter.PatientToResponse(patient)

	rows, err := u.patientRepo.Delete(u.db, id)
	if err != nil {
		if isForeignKeyError(err) {
			return ErrPatientHasBookings
		}
		u.log.Warnf("Failed to delete patient %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrPatientNotFound
	}

	u.auditService.LogDelete(u.db, actorFromContext(ctx), entity.AuditActionPatientDelete,
		"patient", strconv.FormatUint(uint64(id), 10), oldValue)

	return nil
}
