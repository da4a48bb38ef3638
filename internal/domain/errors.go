package domain

import "errors"

// Credential errors
var (
	ErrWeakPassword       = errors.New("password does not meet security criteria")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

// Appointment errors
var (
	ErrInvalidRole         = errors.New("invalid role")
	ErrInvalidSchedule     = errors.New("invalid appointment date or time")
	ErrAppointmentNotFound = errors.New("appointment not found")
)
