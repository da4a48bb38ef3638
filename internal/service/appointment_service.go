package service

import (
	"context"
	"time"

	"clinic-api/internal/domain"
	"clinic-api/internal/repository"
)

const scheduleLayout = "2006-01-02 15:04"

type AppointmentService struct {
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentService(appointmentRepo repository.AppointmentRepository) *AppointmentService {
	return &AppointmentService{appointmentRepo: appointmentRepo}
}

type BookInput struct {
	PatientID   uint
	DoctorID    uint
	Services    []string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	Description string
}

// Book composes the date and time into a single instant and persists the
// appointment, returning the full record including the store-assigned id.
func (s *AppointmentService) Book(ctx context.Context, input BookInput) (*domain.Appointment, error) {
	scheduledAt, err := time.Parse(scheduleLayout, input.Date+" "+input.Time)
	if err != nil {
		return nil, domain.ErrInvalidSchedule
	}

	services, err := domain.ServicesJSON(input.Services)
	if err != nil {
		return nil, err
	}

	appointment := &domain.Appointment{
		PatientID:   input.PatientID,
		DoctorID:    input.DoctorID,
		Services:    services,
		ScheduledAt: scheduledAt,
		Description: input.Description,
	}

	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	return appointment, nil
}

// Cancel hard-deletes an appointment. It only succeeds when a row actually
// matched the id.
func (s *AppointmentService) Cancel(ctx context.Context, id uint) error {
	rows, err := s.appointmentRepo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

// List returns all appointments the user participates in under the given role.
func (s *AppointmentService) List(ctx context.Context, userID uint, role domain.Role) ([]*domain.Appointment, error) {
	switch role {
	case domain.RolePatient:
		return s.appointmentRepo.ListByPatient(ctx, userID)
	case domain.RoleDoctor:
		return s.appointmentRepo.ListByDoctor(ctx, userID)
	default:
		return nil, domain.ErrInvalidRole
	}
}
