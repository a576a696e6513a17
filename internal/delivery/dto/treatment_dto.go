package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateTreatmentRequest struct {
	Name        string          `json:"name" validate:"required,min=2"`
	Description string          `json:"description" validate:"omitempty"`
	Price       decimal.Decimal `json:"price" validate:"required"`
}

type UpdateTreatmentRequest struct {
	Name        string           `json:"name" validate:"omitempty,min=2"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

// Response DTOs

type TreatmentResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type TreatmentListResponse struct {
	Treatments []TreatmentResponse `json:"treatments"`
	Total      int                 `json:"total"`
}
