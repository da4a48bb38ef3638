package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"clinic-api/internal/domain"
	"clinic-api/internal/service"
)

const datetimeLayout = "2006-01-02 15:04"

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

type BookAppointmentRequest struct {
	UserID      uint     `json:"user_id"`
	DoctorID    uint     `json:"doctor_id"`
	Services    []string `json:"services"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Description string   `json:"description"`
}

type CancelAppointmentRequest struct {
	AppointmentID uint `json:"appointment_id"`
}

type AppointmentResponse struct {
	AppointmentID uint     `json:"appointment_id"`
	UserID        uint     `json:"user_id"`
	DoctorID      uint     `json:"doctor_id"`
	Services      []string `json:"services"`
	Datetime      string   `json:"datetime"`
	Description   string   `json:"description,omitempty"`
}

func toAppointmentResponse(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		AppointmentID: a.ID,
		UserID:        a.PatientID,
		DoctorID:      a.DoctorID,
		Services:      a.ServiceList(),
		Datetime:      a.ScheduledAt.Format(datetimeLayout),
		Description:   a.Description,
	}
}

func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.UserID == 0 || req.DoctorID == 0 {
		respondError(w, http.StatusBadRequest, "user_id and doctor_id are required")
		return
	}
	if req.Date == "" || req.Time == "" {
		respondError(w, http.StatusBadRequest, "date and time are required")
		return
	}

	appointment, err := h.appointmentService.Book(r.Context(), service.BookInput{
		PatientID:   req.UserID,
		DoctorID:    req.DoctorID,
		Services:    req.Services,
		Date:        req.Date,
		Time:        req.Time,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSchedule) {
			respondError(w, http.StatusBadRequest, domain.ErrInvalidSchedule.Error())
			return
		}
		log.Printf("ERROR [AppointmentHandler.Book] %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, toAppointmentResponse(appointment))
}

func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	var req CancelAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.AppointmentID == 0 {
		respondError(w, http.StatusBadRequest, "appointment_id is required")
		return
	}

	if err := h.appointmentService.Cancel(r.Context(), req.AppointmentID); err != nil {
		if errors.Is(err, domain.ErrAppointmentNotFound) {
			respondError(w, http.StatusBadRequest, domain.ErrAppointmentNotFound.Error())
			return
		}
		log.Printf("ERROR [AppointmentHandler.Cancel] %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{Message: "appointment cancelled successfully"})
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	userIDParam := r.URL.Query().Get("user_id")
	userID, err := strconv.ParseUint(userIDParam, 10, 64)
	if err != nil || userID == 0 {
		respondError(w, http.StatusBadRequest, "valid user_id is required")
		return
	}

	roleParam := r.URL.Query().Get("role")
	if roleParam == "" {
		roleParam = string(domain.RolePatient)
	}
	role, err := domain.ParseRole(roleParam)
	if err != nil {
		respondError(w, http.StatusBadRequest, domain.ErrInvalidRole.Error())
		return
	}

	appointments, err := h.appointmentService.List(r.Context(), uint(userID), role)
	if err != nil {
		log.Printf("ERROR [AppointmentHandler.List] %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if len(appointments) == 0 {
		respondError(w, http.StatusNotFound, "no appointments found")
		return
	}

	out := make([]AppointmentResponse, len(appointments))
	for i, a := range appointments {
		out[i] = toAppointmentResponse(a)
	}
	respondJSON(w, http.StatusOK, out)
}
