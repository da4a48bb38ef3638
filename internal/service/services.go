package service

import (
	"clinic-api/internal/config"
	"clinic-api/internal/repository"
)

type Services struct {
	Auth        *AuthService
	Appointment *AppointmentService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:        NewAuthService(repos.User, cfg),
		Appointment: NewAppointmentService(repos.Appointment),
	}
}
