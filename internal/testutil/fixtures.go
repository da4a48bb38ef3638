package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"clinic-api/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern.
type UserBuilder struct {
	username string
	password string
	fullName string
}

// NewUserBuilder creates a new UserBuilder with default values. The default
// password satisfies the strength rules so built users can log in.
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		username: fmt.Sprintf("testuser_%s", uuid.NewString()[:8]),
		password: "Str0ng!pass",
	}
}

func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

func (b *UserBuilder) WithFullName(name string) *UserBuilder {
	b.fullName = name
	return b
}

// Build creates the user in the database and returns it with the raw password.
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		Username:     b.username,
		PasswordHash: string(hashedPassword),
		FullName:     b.fullName,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// LoginResponse matches the API login response.
type LoginResponse struct {
	UserID uint   `json:"user_id"`
	Token  string `json:"token"`
}

// BuildAndLogin creates a user directly in the database, then logs in through
// the API and returns the user together with a valid token.
func (b *UserBuilder) BuildAndLogin(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, rawPassword := b.Build(t, ts.DB)

	body, _ := json.Marshal(map[string]string{
		"username": user.Username,
		"password": rawPassword,
	})

	resp, err := http.Post(ts.URL("/login"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to log in: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected login status code: %d", resp.StatusCode)
	}

	var loginResp LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	return user, loginResp.Token
}

// AppointmentBuilder creates test appointments with a builder pattern.
type AppointmentBuilder struct {
	patientID   uint
	doctorID    uint
	services    []string
	scheduledAt time.Time
	description string
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		services:    []string{"consultation"},
		scheduledAt: time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC),
	}
}

func (b *AppointmentBuilder) WithPatient(id uint) *AppointmentBuilder {
	b.patientID = id
	return b
}

func (b *AppointmentBuilder) WithDoctor(id uint) *AppointmentBuilder {
	b.doctorID = id
	return b
}

func (b *AppointmentBuilder) WithServices(services ...string) *AppointmentBuilder {
	b.services = services
	return b
}

func (b *AppointmentBuilder) WithScheduledAt(ts time.Time) *AppointmentBuilder {
	b.scheduledAt = ts
	return b
}

func (b *AppointmentBuilder) WithDescription(description string) *AppointmentBuilder {
	b.description = description
	return b
}

// Build creates the appointment in the database. Patient and doctor users are
// created on demand when not set.
func (b *AppointmentBuilder) Build(t *testing.T, db *gorm.DB) *domain.Appointment {
	t.Helper()

	if b.patientID == 0 {
		patient, _ := NewUserBuilder().Build(t, db)
		b.patientID = patient.ID
	}
	if b.doctorID == 0 {
		doctor, _ := NewUserBuilder().Build(t, db)
		b.doctorID = doctor.ID
	}

	services, err := domain.ServicesJSON(b.services)
	if err != nil {
		t.Fatalf("failed to encode services: %v", err)
	}

	appointment := &domain.Appointment{
		PatientID:   b.patientID,
		DoctorID:    b.doctorID,
		Services:    services,
		ScheduledAt: b.scheduledAt,
		Description: b.description,
	}

	if err := db.Create(appointment).Error; err != nil {
		t.Fatalf("failed to create appointment: %v", err)
	}

	return appointment
}
