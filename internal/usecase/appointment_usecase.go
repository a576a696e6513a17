package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"dental-clinic-api/internal/converter"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/delivery/http/middleware"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"
	"dental-clinic-api/internal/domain/scheduling"
	"dental-clinic-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound     = errors.New("patient not found")
	ErrDentistNotFound     = errors.New("dentist not found")
	ErrInvalidDateTime     = errors.New("invalid date-time format, use YYYY-MM-DDTHH:MM or YYYY-MM-DDTHH:MM:SS")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentUpdate   = errors.New("could not update appointment")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error)
	FindByID(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	FindAll(ctx context.Context) (*dto.AppointmentListResponse, error)
	Update(ctx context.Context, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	CheckAvailability(ctx context.Context, dentistID uint, dateText string) bool
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	dentistRepo     repository.DentistRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	dentistRepo repository.DentistRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		dentistRepo:     dentistRepo,
		auditService:    auditService,
	}
}

// Create books an appointment. Both references must resolve and the date must
// parse before anything is written. The availability check is advisory and is
// not consulted here, so two concurrent creates for the same dentist and slot
// can both succeed.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	patient, dentist, err := u.resolveReferences(req)
	if err != nil {
		return nil, err
	}

	date, err := u.parseDate(req)
	if err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		PatientID: patient.ID,
		DentistID: dentist.ID,
		Date:      date,
	}

	if err := u.appointmentRepo.Create(u.db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	response := converter.AppointmentToResponse(appointment)
	u.auditService.LogCreate(u.db, actorFromContext(ctx), entity.AuditActionAppointmentCreate,
		"appointment", strconv.FormatUint(uint64(appointment.ID), 10), response)

	return response, nil
}

func (u *appointmentUsecase) FindByID(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) FindAll(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// Update rewrites an existing appointment in place. A missing target surfaces
// as a generic update failure, not as the not-found error the read and delete
// paths use.
func (u *appointmentUsecase) Update(ctx context.Context, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db, req.ID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", req.ID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentUpdate
	}

	patient, dentist, err := u.resolveReferences(req)
	if err != nil {
		return nil, err
	}

	date, err := u.parseDate(req)
	if err != nil {
		return nil, err
	}

	oldValue := converter.AppointmentToResponse(appointment)

	appointment.PatientID = patient.ID
	appointment.DentistID = dentist.ID
	appointment.Date = date

	if err := u.appointmentRepo.Update(u.db, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %d: %+v", appointment.ID, err)
		return nil, err
	}

	response := converter.AppointmentToResponse(appointment)
	u.auditService.LogUpdate(u.db, actorFromContext(ctx), entity.AuditActionAppointmentUpdate,
		"appointment", strconv.FormatUint(uint64(appointment.ID), 10), oldValue, response)

	return response, nil
}

// Delete removes the appointment and returns its last known shape. Patient and
// dentist records are untouched.
func (u *appointmentUsecase) Delete(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	response := converter.AppointmentToResponse(appointment)

	if err := u.appointmentRepo.Delete(u.db, appointment); err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", id, err)
		return nil, err
	}

	u.auditService.LogDelete(u.db, actorFromContext(ctx), entity.AuditActionAppointmentDelete,
		"appointment", strconv.FormatUint(uint64(id), 10), response)

	return response, nil
}

// CheckAvailability reports whether the dentist's calendar is free for the
// 30-minute slot starting at the given instant. Fail-closed: malformed input
// and store failures both read as "not available", no error ever surfaces.
func (u *appointmentUsecase) CheckAvailability(ctx context.Context, dentistID uint, dateText string) bool {
	start, err := scheduling.ParseLocalDateTime(dateText)
	if err != nil {
		u.log.Warnf("Availability check rejected input: %v", err)
		return false
	}

	appointments, err := u.appointmentRepo.FindAll(u.db)
	if err != nil {
		u.log.Warnf("Availability check failed to load appointments: %+v", err)
		return false
	}

	return scheduling.IsSlotAvailable(appointments, dentistID, start)
}

// resolveReferences confirms both sides of the appointment exist, naming the
// missing one. An unresolved request never reaches the store.
func (u *appointmentUsecase) resolveReferences(req *dto.AppointmentRequest) (*entity.Patient, *entity.Dentist, error) {
	patientID, ok := req.EffectivePatientID()
	if !ok {
		return nil, nil, ErrPatientNotFound
	}
	patient, err := u.patientRepo.FindByID(u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, nil, err
	}
	if patient == nil {
		return nil, nil, ErrPatientNotFound
	}

	dentistID, ok := req.EffectiveDentistID()
	if !ok {
		return nil, nil, ErrDentistNotFound
	}
	dentist, err := u.dentistRepo.FindByID(u.db, dentistID)
	if err != nil {
		u.log.Warnf("Failed to find dentist %d: %+v", dentistID, err)
		return nil, nil, err
	}
	if dentist == nil {
		return nil, nil, ErrDentistNotFound
	}

	return patient, dentist, nil
}

func (u *appointmentUsecase) parseDate(req *dto.AppointmentRequest) (date time.Time, err error) {
	dateText, ok := req.EffectiveDate()
	if !ok {
		return date, ErrInvalidDateTime
	}
	date, err = scheduling.ParseLocalDateTime(dateText)
	if err != nil {
		u.log.Warnf("Rejected appointment date: %v", err)
		return date, ErrInvalidDateTime
	}
	return date, nil
}

// actorFromContext pulls the authenticated user id for audit attribution.
// Nil when the operation runs without an identity.
func actorFromContext(ctx context.Context) *uint {
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		return &userID
	}
	return nil
}
