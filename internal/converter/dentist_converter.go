package converter

import (
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
)

// DentistToResponse converts a Dentist entity to DentistResponse DTO
func DentistToResponse(dentist *entity.Dentist) *dto.DentistResponse {
	if dentist == nil {
		return nil
	}

	return &dto.DentistResponse{
		ID:           dentist.ID,
		FirstName:    dentist.FirstName,
		LastName:     dentist.LastName,
		Registration: dentist.Registration,
		CreatedAt:    dentist.CreatedAt,
		UpdatedAt:    dentist.UpdatedAt,
	}
}

// DentistsToResponses converts a slice of Dentist entities to response DTOs
func DentistsToResponses(dentists []entity.Dentist) []dto.DentistResponse {
	responses := make([]dto.DentistResponse, len(dentists))
	for i, dentist := range dentists {
		responses[i] = *DentistToResponse(&dentist)
	}
	return responses
}
