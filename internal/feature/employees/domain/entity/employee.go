// Package entity defines the domain entities for the employees feature.
package entity

import "time"

// Status is the employment status of an employee record.
type Status string

// The four valid employment statuses.
const (
	StatusEmployed    Status = "employed"
	StatusNotEmployed Status = "not-employed"
	StatusSuspended   Status = "suspended"
	StatusSickLeave   Status = "sick-leave"
)

// DefaultStatus is stored when a record is created without a status.
const DefaultStatus = StatusEmployed

// AllStatuses lists every valid status, in the order stats are reported.
func AllStatuses() []Status {
	return []Status{StatusEmployed, StatusNotEmployed, StatusSuspended, StatusSickLeave}
}

// Valid reports whether s is one of the four enumerated statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusEmployed, StatusNotEmployed, StatusSuspended, StatusSickLeave:
		return true
	}
	return false
}

// Employee represents a persisted employee record.
// Attribution fields are set from the authenticated caller at creation
// and never change afterwards.
type Employee struct {
	ID uint `gorm:"primaryKey"`

	FirstName string `gorm:"size:50;not null"`
	LastName  string `gorm:"size:50;not null"`

	// Age is bounded to 18..100 by the usecase validation pipeline.
	Age    int     `gorm:"not null"`
	Salary float64 `gorm:"not null"`

	Address    string `gorm:"size:255;not null"`
	Position   string `gorm:"size:100;not null"`
	Department string `gorm:"size:100;not null"`
	Education  string `gorm:"size:100;not null"`

	// Status is always one of the four enumerated values.
	Status Status `gorm:"size:20;not null;default:employed"`

	// AddedByID and AddedByName record which administrator created the
	// record. AddedByID references User.ID for display only; it is not
	// an enforced foreign key.
	AddedByID   uint   `gorm:"not null"`
	AddedByName string `gorm:"size:30;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
