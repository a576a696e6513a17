package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/response"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
	}
}

// Create handles appointment booking
// @Summary Create an appointment
// @Description Book a dentist for a patient at a given date-time
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AppointmentRequest true "Appointment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		// an unresolved reference is the client's fault, not a missing resource
		case usecase.ErrPatientNotFound:
			response.Error(w, http.StatusBadRequest, "Patient not found", nil)
		case usecase.ErrDentistNotFound:
			response.Error(w, http.StatusBadRequest, "Dentist not found", nil)
		case usecase.ErrInvalidDateTime:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

// FindByID returns a single appointment
// @Summary Get appointment by ID
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.FindByID(r.Context(), uint(id))
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to get appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

// FindAll lists every appointment
// @Summary List appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /appointments [get]
func (h *AppointmentHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.FindAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// Update rewrites an appointment. Legacy clients carry the id in the body, so
// the route has no path parameter.
// @Summary Update an appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AppointmentRequest true "Appointment Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /appointments [put]
func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.AppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	appointment, err := h.appointmentUsecase.Update(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.Error(w, http.StatusBadRequest, "Patient not found", nil)
		case usecase.ErrDentistNotFound:
			response.Error(w, http.StatusBadRequest, "Dentist not found", nil)
		case usecase.ErrInvalidDateTime:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrAppointmentUpdate:
			response.Error(w, http.StatusBadRequest, "Could not update appointment", nil)
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

// Delete removes an appointment and returns its last known state
// @Summary Delete an appointment
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.Delete(r.Context(), uint(id))
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to delete appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", appointment)
}

// CheckAvailability reports whether a dentist is free for the slot starting at
// the given date-time. Always responds 200 with a boolean body; malformed
// input reads as not available.
// @Summary Check slot availability
// @Tags Appointments
// @Produce json
// @Param dentist_id query int true "Dentist ID"
// @Param date_time query string true "Slot start, YYYY-MM-DDTHH:MM"
// @Success 200 {object} response.Response
// @Router /appointments/check-availability [get]
func (h *AppointmentHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	available := false
	if dentistID, err := strconv.ParseUint(query.Get("dentist_id"), 10, 32); err == nil {
		available = h.appointmentUsecase.CheckAvailability(r.Context(), uint(dentistID), query.Get("date_time"))
	}

	response.Success(w, http.StatusOK, "Availability checked", &dto.AvailabilityResponse{Available: available})
}
