package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/scheduling"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeAppointmentRepo struct {
	appointments map[uint]*entity.Appointment
	nextID       uint
	findAllErr   error
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: map[uint]*entity.Appointment{}}
}

func (r *fakeAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	r.nextID++
	appointment.ID = r.nextID
	copied := *appointment
	r.appointments[appointment.ID] = &copied
	return nil
}

func (r *fakeAppointmentRepo) FindByID(db *gorm.DB, id uint) (*entity.Appointment, error) {
	appointment, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	copied := *appointment
	return &copied, nil
}

func (r *fakeAppointmentRepo) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	if r.findAllErr != nil {
		return nil, r.findAllErr
	}
	all := make([]entity.Appointment, 0, len(r.appointments))
	for _, appointment := range r.appointments {
		all = append(all, *appointment)
	}
	return all, nil
}

func (r *fakeAppointmentRepo) Update(db *gorm.DB, appointment *entity.Appointment) error {
	copied := *appointment
	r.appointments[appointment.ID] = &copied
	return nil
}

func (r *fakeAppointmentRepo) Delete(db *gorm.DB, appointment *entity.Appointment) error {
	delete(r.appointments, appointment.ID)
	return nil
}

type fakePatientRepo struct {
	patients map[uint]*entity.Patient
	nextID   uint
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: map[uint]*entity.Patient{}}
}

func (r *fakePatientRepo) Create(db *gorm.DB, patient *entity.Patient) error {
	r.nextID++
	patient.ID = r.nextID
	copied := *patient
	r.patients[patient.ID] = &copied
	return nil
}

func (r *fakePatientRepo) FindByID(db *gorm.DB, id uint) (*entity.Patient, error) {
	patient, ok := r.patients[id]
	if !ok {
		return nil, nil
	}
	copied := *patient
	return &copied, nil
}

func (r *fakePatientRepo) FindAll(db *gorm.DB) ([]entity.Patient, error) {
	all := make([]entity.Patient, 0, len(r.patients))
	for _, patient := range r.patients {
		all = append(all, *patient)
	}
	return all, nil
}

func (r *fakePatientRepo) Update(db *gorm.DB, patient *entity.Patient) error {
	copied := *patient
	r.patients[patient.ID] = &copied
	return nil
}

func (r *fakePatientRepo) Delete(db *gorm.DB, id uint) (int64, error) {
	if _, ok := r.patients[id]; !ok {
		return 0, nil
	}
	delete(r.patients, id)
	return 1, nil
}

func (r *fakePatientRepo) ExistsByDocumentNumber(db *gorm.DB, documentNumber int) (bool, error) {
	for _, patient := range r.patients {
		if patient.DocumentNumber != nil && *patient.DocumentNumber == documentNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePatientRepo) FindByDocumentNumber(db *gorm.DB, documentNumber int) (*entity.Patient, error) {
	for _, patient := range r.patients {
		if patient.DocumentNumber != nil && *patient.DocumentNumber == documentNumber {
			copied := *patient
			return &copied, nil
		}
	}
	return nil, nil
}

type fakeDentistRepo struct {
	dentists map[uint]*entity.Dentist
	nextID   uint
}

func newFakeDentistRepo() *fakeDentistRepo {
	return &fakeDentistRepo{dentists: map[uint]*entity.Dentist{}}
}

func (r *fakeDentistRepo) Create(db *gorm.DB, dentist *entity.Dentist) error {
	r.nextID++
	dentist.ID = r.nextID
	copied := *dentist
	r.dentists[dentist.ID] = &copied
	return nil
}

func (r *fakeDentistRepo) FindByID(db *gorm.DB, id uint) (*entity.Dentist, error) {
	dentist, ok := r.dentists[id]
	if !ok {
		return nil, nil
	}
	copied := *dentist
	return &copied, nil
}

func (r *fakeDentistRepo) FindAll(db *gorm.DB) ([]entity.Dentist, error) {
	all := make([]entity.Dentist, 0, len(r.dentists))
	for _, dentist := range r.dentists {
		all = append(all, *dentist)
	}
	return all, nil
}

func (r *fakeDentistRepo) FindByRegistration(db *gorm.DB, registration int) (*entity.Dentist, error) {
	for _, dentist := range r.dentists {
		if dentist.Registration == registration {
			copied := *dentist
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeDentistRepo) Update(db *gorm.DB, dentist *entity.Dentist) error {
	copied := *dentist
	r.dentists[dentist.ID] = &copied
	return nil
}

func (r *fakeDentistRepo) Delete(db *gorm.DB, id uint) (int64, error) {
	if _, ok := r.dentists[id]; !ok {
		return 0, nil
	}
	delete(r.dentists, id)
	return 1, nil
}

type noopAuditService struct{}

func (noopAuditService) LogCreate(db *gorm.DB, userID *uint, action string, entityName string, entityID string, newValue interface{}) {
}

func (noopAuditService) LogUpdate(db *gorm.DB, userID *uint, action string, entityName string, entityID string, oldValue, newValue interface{}) {
}

func (noopAuditService) LogDelete(db *gorm.DB, userID *uint, action string, entityName string, entityID string, oldValue interface{}) {
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type appointmentFixture struct {
	usecase         AppointmentUsecase
	appointmentRepo *fakeAppointmentRepo
	patientRepo     *fakePatientRepo
	dentistRepo     *fakeDentistRepo
	patientID       uint
	dentistID       uint
}

func newAppointmentFixture(t *testing.T) *appointmentFixture {
	t.Helper()

	appointmentRepo := newFakeAppointmentRepo()
	patientRepo := newFakePatientRepo()
	dentistRepo := newFakeDentistRepo()

	patient := &entity.Patient{FirstName: "Ana", LastName: "Lopez"}
	require.NoError(t, patientRepo.Create(nil, patient))

	dentist := &entity.Dentist{FirstName: "Maria", LastName: "Perez", Registration: 12345}
	require.NoError(t, dentistRepo.Create(nil, dentist))

	uc := NewAppointmentUsecase(nil, quietLogger(), appointmentRepo, patientRepo, dentistRepo, noopAuditService{})

	return &appointmentFixture{
		usecase:         uc,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		dentistRepo:     dentistRepo,
		patientID:       patient.ID,
		dentistID:       dentist.ID,
	}
}

func uintPtr(v uint) *uint { return &v }

func strPtr(s string) *string { return &s }

func TestAppointmentCreate(t *testing.T) {
	f := newAppointmentFixture(t)

	created, err := f.usecase.Create(context.Background(), &dto.AppointmentRequest{
		PatientID: uintPtr(f.patientID),
		DentistID: uintPtr(f.dentistID),
		Date:      strPtr("2026-09-01T10:30"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, f.patientID, created.PatientID)
	assert.Equal(t, f.dentistID, created.DentistID)
	assert.Equal(t, "2026-09-01T10:30", created.Date)
}

func TestAppointmentCreateLegacyAliases(t *testing.T) {
	f := newAppointmentFixture(t)

	created, err := f.usecase.Create(context.Background(), &dto.AppointmentRequest{
		PacienteID:   uintPtr(f.patientID),
		OdontologoID: uintPtr(f.dentistID),
		Fecha:        strPtr("2026-09-01T10:30"),
	})
	require.NoError(t, err)
	assert.Equal(t, f.patientID, created.PatientID)
	assert.Equal(t, f.dentistID, created.DentistID)
	assert.Equal(t, "2026-09-01T10:30", created.Date)
}

func TestAppointmentCreateSecondsRoundTrip(t *testing.T) {
	f := newAppointmentFixture(t)

	created, err := f.usecase.Create(context.Background(), &dto.AppointmentRequest{
		PatientID: uintPtr(f.patientID),
		DentistID: uintPtr(f.dentistID),
		Date:      strPtr("2026-09-01T10:30:15"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01T10:30:15", created.Date)
}

func TestAppointmentCreateMissingReferences(t *testing.T) {
	tests := []struct {
		name    string
		request dto.AppointmentRequest
		wantErr error
	}{
		{
			name: "unknown patient",
			request: dto.AppointmentRequest{
				PatientID: uintPtr(99),
				DentistID: uintPtr(1),
				Date:      strPtr("2026-09-01T10:30"),
			},
			wantErr: ErrPatientNotFound,
		},
		{
			name: "unknown dentist",
			request: dto.AppointmentRequest{
				PatientID: uintPtr(1),
				DentistID: uintPtr(99),
				Date:      strPtr("2026-09-01T10:30"),
			},
			wantErr: ErrDentistNotFound,
		},
		{
			name: "patient absent from request",
			request: dto.AppointmentRequest{
				DentistID: uintPtr(1),
				Date:      strPtr("2026-09-01T10:30"),
			},
			wantErr: ErrPatientNotFound,
		},
		{
			name: "dentist absent from request",
			request: dto.AppointmentRequest{
				PatientID: uintPtr(1),
				Date:      strPtr("2026-09-01T10:30"),
			},
			wantErr: ErrDentistNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAppointmentFixture(t)

			_, err := f.usecase.Create(context.Background(), &tt.request)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.appointmentRepo.appointments, "nothing should be persisted")
		})
	}
}

func TestAppointmentCreateInvalidDate(t *testing.T) {
	f := newAppointmentFixture(t)

	for _, date := range []string{"not-a-date", "2026-09-01", "2026-09-01 10:30", ""} {
		_, err := f.usecase.Create(context.Background(), &dto.AppointmentRequest{
			PatientID: uintPtr(f.patientID),
			DentistID: uintPtr(f.dentistID),
			Date:      strPtr(date),
		})
		assert.ErrorIs(t, err, ErrInvalidDateTime, "date %q", date)
	}

	_, err := f.usecase.Create(context.Background(), &dto.AppointmentRequest{
		PatientID: uintPtr(f.patientID),
		DentistID: uintPtr(f.dentistID),
	})
	assert.ErrorIs(t, err, ErrInvalidDateTime, "absent date")
	assert.Empty(t, f.appointmentRepo.appointments)
}

func TestAppointmentFindByID(t *testing.T) {
	f := newAppointmentFixture(t)

	created, err := f.usecase.Create(context.Background(), &dto.AppointmentRequest{
		PatientID: uintPtr(f.patientID),
		DentistID: uintPtr(f.dentistID),
		Date:      strPtr("2026-09-01T10:30"),
	})
	require.NoError(t, err)

	found, err := f.usecase.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = f.usecase.FindByID(context.Background(), created.ID+1)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestAppointmentUpdate(t *testing.T) {
	f := newAppointmentFixture(t)

	otherDentist := &entity.Dentist{FirstName: "Luis", LastName: "Gomez", Registration: 67890}
	require.NoError(t, f.dentistRepo.Create(nil, otherDentist))

	created, err := f.usecase.Create(context.Background(), &dto.AppointmentRequest{
		PatientID: uintPtr(f.patientID),
		DentistID: uintPtr(f.dentistID),
		Date:      strPtr("2026-09-01T10:30"),
	})
	require.NoError(t, err)

	updated, err := f.usecase.Update(context.Background(), &dto.AppointmentRequest{
		ID:        created.ID,
		PatientID: uintPtr(f.patientID),
		DentistID: uintPtr(otherDentist.ID),
		Date:      strPtr("2026-09-02T11:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, otherDentist.ID, updated.DentistID)
	assert.Equal(t, "2026-09-02T11:00", updated.Date)
}

func TestAppointmentUpdateAbsentTarget(t *testing.T) {
	f := newAppointmentFixture(t)

	_, err := f.usecase.Update(context.Background(), &dto.AppointmentRequest{
		ID:        42,
		PatientID: uintPtr(f.patientID),
		DentistID: uintPtr(f.dentistID),
		Date:      strPtr("2026-09-01T10:30"),
	})
	assert.ErrorIs(t, err, ErrAppointmentUpdate)
}

func TestAppointmentUpdateUnresolvedReference(t *testing.T) {
	f := newAppointmentFixture(t)

	created, err := f.usecase.Create(context.Background(), &dto.AppointmentRequest{
		PatientID: uintPtr(f.patientID),
		DentistID: uintPtr(f.dentistID),
		Date:      strPtr("2026-09-01T10:30"),
	})
	require.NoError(t, err)

	_, err = f.usecase.Update(context.Background(), &dto.AppointmentRequest{
		ID:        created.ID,
		PatientID: uintPtr(99),
		DentistID: uintPtr(f.dentistID),
		Date:      strPtr("2026-09-02T11:00"),
	})
	assert.ErrorIs(t, err, ErrPatientNotFound)

	// target must be untouched
	found, err := f.usecase.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01T10:30", found.Date)
}

func TestAppointmentDelete(t *testing.T) {
	f := newAppointmentFixture(t)

	created, err := f.usecase.Create(context.Background(), &dto.AppointmentRequest{
		PatientID: uintPtr(f.patientID),
		DentistID: uintPtr(f.dentistID),
		Date:      strPtr("2026-09-01T10:30"),
	})
	require.NoError(t, err)

	deleted, err := f.usecase.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, deleted)

	_, err = f.usecase.FindByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	// the referenced records survive the appointment
	patient, err := f.patientRepo.FindByID(nil, f.patientID)
	require.NoError(t, err)
	assert.NotNil(t, patient)
	dentist, err := f.dentistRepo.FindByID(nil, f.dentistID)
	require.NoError(t, err)
	assert.NotNil(t, dentist)

	_, err = f.usecase.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCheckAvailability(t *testing.T) {
	f := newAppointmentFixture(t)

	_, err := f.usecase.Create(context.Background(), &dto.AppointmentRequest{
		PatientID: uintPtr(f.patientID),
		DentistID: uintPtr(f.dentistID),
		Date:      strPtr("2026-09-01T10:00"),
	})
	require.NoError(t, err)

	assert.False(t, f.usecase.CheckAvailability(context.Background(), f.dentistID, "2026-09-01T10:00"), "exact slot is taken")
	assert.False(t, f.usecase.CheckAvailability(context.Background(), f.dentistID, "2026-09-01T10:15"), "overlapping slot is taken")
	assert.False(t, f.usecase.CheckAvailability(context.Background(), f.dentistID, "2026-09-01T09:45"), "straddling slot is taken")
	assert.True(t, f.usecase.CheckAvailability(context.Background(), f.dentistID, "2026-09-01T10:30"), "slot boundary is free")
	assert.True(t, f.usecase.CheckAvailability(context.Background(), f.dentistID, "2026-09-01T09:30"), "slot ending at the booking is free")

	// a different dentist's calendar is untouched
	assert.True(t, f.usecase.CheckAvailability(context.Background(), f.dentistID+1, "2026-09-01T10:00"))
}

func TestCheckAvailabilityFailsClosed(t *testing.T) {
	f := newAppointmentFixture(t)

	for _, date := range []string{"not-a-date", "2026-09-01", "", "2026-09-01 10:00"} {
		assert.False(t, f.usecase.CheckAvailability(context.Background(), f.dentistID, date), "date %q", date)
	}

	f.appointmentRepo.findAllErr = errors.New("store down")
	assert.False(t, f.usecase.CheckAvailability(context.Background(), f.dentistID, "2026-09-01T10:00"))
}

func TestCheckAvailabilityUsesSlotDuration(t *testing.T) {
	f := newAppointmentFixture(t)

	start, err := scheduling.ParseLocalDateTime("2026-09-01T10:00")
	require.NoError(t, err)

	require.NoError(t, f.appointmentRepo.Create(nil, &entity.Appointment{
		PatientID: f.patientID,
		DentistID: f.dentistID,
		Date:      start,
	}))

	free := start.Add(scheduling.SlotDuration)
	assert.True(t, f.usecase.CheckAvailability(context.Background(), f.dentistID, scheduling.FormatLocalDateTime(free)))

	taken := start.Add(scheduling.SlotDuration - time.Minute)
	assert.False(t, f.usecase.CheckAvailability(context.Background(), f.dentistID, scheduling.FormatLocalDateTime(taken)))
}
