package dto

import (
	"time"

	"hr_backend/internal/feature/employees/domain/entity"
	"hr_backend/internal/feature/employees/usecase"
)

// EmployeeRes is the JSON shape of an employee record.
type EmployeeRes struct {
	ID          uint          `json:"id"`
	FirstName   string        `json:"firstName"`
	LastName    string        `json:"lastName"`
	Age         int           `json:"age"`
	Salary      float64       `json:"salary"`
	Address     string        `json:"address"`
	Position    string        `json:"position"`
	Department  string        `json:"department"`
	Education   string        `json:"education"`
	Status      entity.Status `json:"status"`
	AddedByID   uint          `json:"addedById"`
	AddedByName string        `json:"addedByName"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// FromEntity converts a domain record into its response shape.
func FromEntity(e *entity.Employee) EmployeeRes {
	return EmployeeRes{
		ID:          e.ID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Age:         e.Age,
		Salary:      e.Salary,
		Address:     e.Address,
		Position:    e.Position,
		Department:  e.Department,
		Education:   e.Education,
		Status:      e.Status,
		AddedByID:   e.AddedByID,
		AddedByName: e.AddedByName,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ListRes is the body for GET /employees.
type ListRes struct {
	Count        int64         `json:"count"`
	NumOfPages   int           `json:"numOfPages"`
	AllEmployees []EmployeeRes `json:"allEmployees"`
}

// CreateRes is the body for POST /employees.
type CreateRes struct {
	ReturnedResult EmployeeRes `json:"returnedResult"`
}

// DeleteRes is the body for DELETE /employees/:id.
type DeleteRes struct {
	ID uint `json:"id"`
}

// StatsRes is the body for GET /employees/stats.
type StatsRes struct {
	MonthlyApplication []usecase.MonthlyCount `json:"monthlyApplication"`
	EmployeesStats     map[entity.Status]int  `json:"employeesStats"`
}

// ErrorRes is the uniform error body.
type ErrorRes struct {
	Error string `json:"error"`
}
