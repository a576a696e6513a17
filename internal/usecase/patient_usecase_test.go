package usecase

import (
	"context"
	"testing"

	"dental-clinic-api/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func newPatientUsecaseFixture() (PatientUsecase, *fakePatientRepo) {
	repo := newFakePatientRepo()
	return NewPatientUsecase(nil, quietLogger(), repo, noopAuditService{}), repo
}

func TestPatientCreate(t *testing.T) {
	uc, repo := newPatientUsecaseFixture()

	created, err := uc.Create(context.Background(), &dto.CreatePatientRequest{
		FirstName:      "Ana",
		LastName:       "Lopez",
		DocumentNumber: intPtr(30123456),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, intPtr(30123456), created.DocumentNumber)
	assert.Len(t, repo.patients, 1)
}

func TestPatientCreateDuplicateDocumentNumber(t *testing.T) {
	uc, repo := newPatientUsecaseFixture()

	_, err := uc.Create(context.Background(), &dto.CreatePatientRequest{
		FirstName:      "Ana",
		LastName:       "Lopez",
		DocumentNumber: intPtr(30123456),
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), &dto.CreatePatientRequest{
		FirstName:      "Beatriz",
		LastName:       "Santos",
		DocumentNumber: intPtr(30123456),
	})
	assert.ErrorIs(t, err, ErrDocumentNumberExists)
	assert.Len(t, repo.patients, 1)
}

func TestPatientCreateWithoutDocumentNumber(t *testing.T) {
	uc, _ := newPatientUsecaseFixture()

	// several patients without a document number may coexist
	for i := 0; i < 2; i++ {
		_, err := uc.Create(context.Background(), &dto.CreatePatientRequest{
			FirstName: "Ana",
			LastName:  "Lopez",
		})
		require.NoError(t, err)
	}
}

func TestPatientUpdate(t *testing.T) {
	uc, _ := newPatientUsecaseFixture()

	created, err := uc.Create(context.Background(), &dto.CreatePatientRequest{
		FirstName:      "Ana",
		LastName:       "Lopez",
		DocumentNumber: intPtr(30123456),
	})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), created.ID, &dto.UpdatePatientRequest{
		ID:        created.ID,
		FirstName: "Anabel",
	})
	require.NoError(t, err)
	assert.Equal(t, "Anabel", updated.FirstName)
	assert.Equal(t, "Lopez", updated.LastName)
	assert.Equal(t, intPtr(30123456), updated.DocumentNumber)
}

func TestPatientUpdateDocumentNumberConflict(t *testing.T) {
	uc, _ := newPatientUsecaseFixture()

	first, err := uc.Create(context.Background(), &dto.CreatePatientRequest{
		FirstName:      "Ana",
		LastName:       "Lopez",
		DocumentNumber: intPtr(30123456),
	})
	require.NoError(t, err)

	second, err := uc.Create(context.Background(), &dto.CreatePatientRequest{
		FirstName:      "Beatriz",
		LastName:       "Santos",
		DocumentNumber: intPtr(40123456),
	})
	require.NoError(t, err)

	// taking another patient's number is a conflict
	_, err = uc.Update(context.Background(), second.ID, &dto.UpdatePatientRequest{
		ID:             second.ID,
		DocumentNumber: intPtr(30123456),
	})
	assert.ErrorIs(t, err, ErrDocumentNumberExists)

	// re-stating your own number is not
	_, err = uc.Update(context.Background(), first.ID, &dto.UpdatePatientRequest{
		ID:             first.ID,
		DocumentNumber: intPtr(30123456),
	})
	assert.NoError(t, err)
}

func TestPatientDelete(t *testing.T) {
	uc, repo := newPatientUsecaseFixture()

	created, err := uc.Create(context.Background(), &dto.CreatePatientRequest{
		FirstName: "Ana",
		LastName:  "Lopez",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.patients)

	err = uc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestPatientFindByIDNotFound(t *testing.T) {
	uc, _ := newPatientUsecaseFixture()

	_, err := uc.FindByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}
