package entity

import "time"

// Appointment binds one patient and one dentist to a single instant.
// Date is a naive local date-time; the occupied interval is [Date, Date+30m),
// see internal/domain/scheduling.
type Appointment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID uint      `gorm:"not null;index" json:"patient_id"`
	DentistID uint      `gorm:"not null;index" json:"dentist_id"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Dentist Dentist `gorm:"foreignKey:DentistID" json:"dentist,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
