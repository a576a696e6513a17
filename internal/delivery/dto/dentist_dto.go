package dto

import "time"

// Request DTOs

type CreateDentistRequest struct {
	FirstName    string `json:"first_name" validate:"required,min=2"`
	LastName     string `json:"last_name" validate:"required,min=2"`
	Registration int    `json:"registration" validate:"required,min=1"`
}

type UpdateDentistRequest struct {
	ID           uint   `json:"id" validate:"required"`
	FirstName    string `json:"first_name" validate:"omitempty,min=2"`
	LastName     string `json:"last_name" validate:"omitempty,min=2"`
	Registration *int   `json:"registration" validate:"omitempty,min=1"`
}

// Response DTOs

type DentistResponse struct {
	ID           uint      `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Registration int       `json:"registration"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type DentistListResponse struct {
	Dentists []DentistResponse `json:"dentists"`
	Total    int               `json:"total"`
}
