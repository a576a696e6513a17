package scheduling

import (
	"time"

	"dental-clinic-api/internal/domain/entity"
)

// SlotDuration is the fixed length of every appointment.
const SlotDuration = 30 * time.Minute

// Slot is the half-open interval [Start, End) an appointment occupies on one
// dentist's calendar.
type Slot struct {
	Start time.Time
	End   time.Time
}

// SlotAt returns the slot beginning at start.
func SlotAt(start time.Time) Slot {
	return Slot{Start: start, End: start.Add(SlotDuration)}
}

// Overlaps reports whether two slots have a non-empty intersection.
// Half-open intervals: a slot ending exactly where another begins does not
// overlap it.
func (s Slot) Overlaps(o Slot) bool {
	return s.Start.Before(o.End) && o.Start.Before(s.End)
}

// IsSlotAvailable scans appointments for a conflict with the candidate slot
// starting at start for the given dentist. Appointments of other dentists are
// skipped. The scan is linear; per-dentist volume is expected to stay small.
func IsSlotAvailable(appointments []entity.Appointment, dentistID uint, start time.Time) bool {
	candidate := SlotAt(start)
	for _, appointment := range appointments {
		if appointment.DentistID != dentistID {
			continue
		}
		if candidate.Overlaps(SlotAt(appointment.Date)) {
			return false
		}
	}
	return true
}
