package domain

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Appointment links a patient to a doctor at a single instant.
// Appointments are created and hard-deleted, never updated; ids are
// store-assigned and never reused.
type Appointment struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	PatientID   uint           `json:"patientId" gorm:"column:user_id;not null;index"`
	DoctorID    uint           `json:"doctorId" gorm:"not null;index"`
	Services    datatypes.JSON `json:"services"`
	ScheduledAt time.Time      `json:"scheduledAt" gorm:"column:appointment_datetime;not null"`
	Description string         `json:"description,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// ServicesJSON encodes the requested service names as a JSON array column,
// preserving the order given by the caller.
func ServicesJSON(names []string) (datatypes.JSON, error) {
	if names == nil {
		names = []string{}
	}
	b, err := json.Marshal(names)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// ServiceList decodes the stored service names back into a slice.
func (a *Appointment) ServiceList() []string {
	var names []string
	if len(a.Services) == 0 {
		return names
	}
	_ = json.Unmarshal(a.Services, &names)
	return names
}
