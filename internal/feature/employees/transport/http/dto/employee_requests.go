// Package dto defines data transfer objects for the employees feature's HTTP transport layer.
package dto

import "hr_backend/internal/feature/employees/domain/entity"

// CreateEmployeeReq represents the request body for POST /employees.
// Status is optional and defaults to "employed". Any addedById/addedByName
// in the payload is ignored; attribution comes from the bearer token.
type CreateEmployeeReq struct {
	FirstName  string        `json:"firstName" binding:"required"`
	LastName   string        `json:"lastName" binding:"required"`
	Age        int           `json:"age" binding:"required"`
	Salary     float64       `json:"salary" binding:"required"`
	Address    string        `json:"address" binding:"required"`
	Position   string        `json:"position" binding:"required"`
	Department string        `json:"department" binding:"required"`
	Education  string        `json:"education" binding:"required"`
	Status     entity.Status `json:"status"`
}

// UpdateEmployeeReq represents the request body for PATCH /employees/:id.
// Absent fields are left unchanged.
type UpdateEmployeeReq struct {
	FirstName  *string        `json:"firstName"`
	LastName   *string        `json:"lastName"`
	Age        *int           `json:"age"`
	Salary     *float64       `json:"salary"`
	Address    *string        `json:"address"`
	Position   *string        `json:"position"`
	Department *string        `json:"department"`
	Education  *string        `json:"education"`
	Status     *entity.Status `json:"status"`
}
