package scheduling

import (
	"testing"
	"time"

	"dental-clinic-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 11, 18, hour, minute, 0, 0, time.UTC)
}

func TestSlotOverlaps(t *testing.T) {
	booked := SlotAt(at(15, 30)) // [15:30, 16:00)

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"identical start", at(15, 30), true},
		{"strictly inside", at(15, 45), true},
		{"straddles start", at(15, 15), true},
		{"ends exactly at booked start", at(15, 0), false},
		{"begins exactly at booked end", at(16, 0), false},
		{"well before", at(14, 0), false},
		{"well after", at(17, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := SlotAt(tt.start)
			assert.Equal(t, tt.want, candidate.Overlaps(booked))
			assert.Equal(t, tt.want, booked.Overlaps(candidate), "overlap must be symmetric")
		})
	}
}

func TestIsSlotAvailable(t *testing.T) {
	appointments := []entity.Appointment{
		{ID: 1, DentistID: 1, PatientID: 10, Date: at(15, 30)},
		{ID: 2, DentistID: 2, PatientID: 11, Date: at(15, 30)},
	}

	t.Run("inside an existing slot is taken", func(t *testing.T) {
		assert.False(t, IsSlotAvailable(appointments, 1, at(15, 45)))
	})

	t.Run("boundary start is free", func(t *testing.T) {
		assert.True(t, IsSlotAvailable(appointments, 1, at(16, 0)))
	})

	t.Run("candidate ending at existing start is free", func(t *testing.T) {
		assert.True(t, IsSlotAvailable(appointments, 1, at(15, 0)))
	})

	t.Run("conflicts are dentist scoped", func(t *testing.T) {
		assert.False(t, IsSlotAvailable(appointments, 2, at(15, 45)))
		assert.True(t, IsSlotAvailable(appointments, 3, at(15, 45)))
	})

	t.Run("empty calendar is always free", func(t *testing.T) {
		assert.True(t, IsSlotAvailable(nil, 1, at(9, 0)))
	})
}
