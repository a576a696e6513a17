package dto

import "time"

// Request DTOs

type CreatePatientRequest struct {
	FirstName      string `json:"first_name" validate:"required,min=2"`
	LastName       string `json:"last_name" validate:"required,min=2"`
	DocumentNumber *int   `json:"document_number" validate:"omitempty,min=1"`
}

type UpdatePatientRequest struct {
	ID             uint   `json:"id" validate:"required"`
	FirstName      string `json:"first_name" validate:"omitempty,min=2"`
	LastName       string `json:"last_name" validate:"omitempty,min=2"`
	DocumentNumber *int   `json:"document_number" validate:"omitempty,min=1"`
}

// Response DTOs

type PatientResponse struct {
	ID             uint      `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	DocumentNumber *int      `json:"document_number,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
