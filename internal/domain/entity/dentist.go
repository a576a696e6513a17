package entity

import "time"

// Dentist represents a practitioner whose calendar appointments are booked against.
// Registration is the professional license number: queryable, not unique by contract.
type Dentist struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName    string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName     string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Registration int       `gorm:"index" json:"registration"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:DentistID" json:"appointments,omitempty"`
}

func (Dentist) TableName() string {
	return "dentists"
}
