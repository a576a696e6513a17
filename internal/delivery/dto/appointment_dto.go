package dto

// AppointmentRequest is the inbound wire shape for create and update.
//
// Two client generations are still in the field: the current one sends
// dentist_id / patient_id / date, the legacy one odontologoId / pacienteId /
// fecha. The Effective* methods resolve each pair to one value, canonical name
// first. Nothing past this type ever sees the aliases.
type AppointmentRequest struct {
	ID uint `json:"id,omitempty"`

	DentistID    *uint `json:"dentist_id,omitempty"`
	OdontologoID *uint `json:"odontologoId,omitempty"`

	PatientID  *uint `json:"patient_id,omitempty"`
	PacienteID *uint `json:"pacienteId,omitempty"`

	Date  *string `json:"date,omitempty"`
	Fecha *string `json:"fecha,omitempty"`
}

// EffectiveDentistID resolves the dentist reference, preferring dentist_id
// over the legacy odontologoId.
func (r *AppointmentRequest) EffectiveDentistID() (uint, bool) {
	if r.DentistID != nil {
		return *r.DentistID, true
	}
	if r.OdontologoID != nil {
		return *r.OdontologoID, true
	}
	return 0, false
}

// EffectivePatientID resolves the patient reference, preferring patient_id
// over the legacy pacienteId.
func (r *AppointmentRequest) EffectivePatientID() (uint, bool) {
	if r.PatientID != nil {
		return *r.PatientID, true
	}
	if r.PacienteID != nil {
		return *r.PacienteID, true
	}
	return 0, false
}

// EffectiveDate resolves the date-time text, preferring date over the legacy
// fecha. The text is not parsed here; that is the scheduling package's job.
func (r *AppointmentRequest) EffectiveDate() (string, bool) {
	if r.Date != nil {
		return *r.Date, true
	}
	if r.Fecha != nil {
		return *r.Fecha, true
	}
	return "", false
}

// Response DTOs

type AppointmentResponse struct {
	ID        uint   `json:"id"`
	DentistID uint   `json:"dentist_id"`
	PatientID uint   `json:"patient_id"`
	Date      string `json:"date"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}
