package domain

import "time"

// User is a clinic account. Patients and doctors share the same table;
// an appointment decides which side a user is on.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password;not null"`
	FullName     string    `json:"fullName,omitempty"`
	DateOfBirth  string    `json:"dateOfBirth,omitempty"`
	Gender       string    `json:"gender,omitempty"`
	Location     string    `json:"location,omitempty"`
	PhoneNumber  string    `json:"phoneNumber,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
