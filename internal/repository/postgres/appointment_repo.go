package postgres

import (
	"context"

	"clinic-api/internal/domain"
	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *appointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) DeleteByID(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Appointment{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *appointmentRepository) ListByPatient(ctx context.Context, patientID uint) ([]*domain.Appointment, error) {
	var appointments []*domain.Appointment
	err := r.db.WithContext(ctx).Find(&appointments, "user_id = ?", patientID).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) ListByDoctor(ctx context.Context, doctorID uint) ([]*domain.Appointment, error) {
	var appointments []*domain.Appointment
	err := r.db.WithContext(ctx).Find(&appointments, "doctor_id = ?", doctorID).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
