package repository

import (
	"context"

	"clinic-api/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) error
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) error
	// DeleteByID reports how many rows the delete actually matched.
	DeleteByID(ctx context.Context, id uint) (int64, error)
	ListByPatient(ctx context.Context, patientID uint) ([]*domain.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID uint) ([]*domain.Appointment, error)
}

type Repositories struct {
	User        UserRepository
	Appointment AppointmentRepository
}
