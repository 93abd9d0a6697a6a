// Package usecase implements the business logic for the employees feature.
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"hr_backend/internal/feature/employees/domain/entity"
)

const (
	// DefaultPage is used when the caller omits or mangles the page parameter.
	DefaultPage = 1
	// DefaultLimit is the page size when the caller does not pick one.
	DefaultLimit = 10
	// MaxLimit caps the page size.
	MaxLimit = 100

	minAge        = 18
	maxAge        = 100
	maxNameLength = 50
)

// EmployeeRepository abstracts the persistence layer for employee records.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type EmployeeRepository interface {
	// List returns records sorted newest-first, plus the total record count.
	List(ctx context.Context, offset, limit int) ([]entity.Employee, int64, error)

	// FindByID retrieves a single record.
	// It returns ErrEmployeeNotFound when no record matches.
	FindByID(ctx context.Context, id uint) (*entity.Employee, error)

	// Create persists a new record.
	Create(ctx context.Context, e *entity.Employee) error

	// Update applies the given column changes to the record and returns
	// the refreshed row. It returns ErrEmployeeNotFound when absent.
	Update(ctx context.Context, id uint, changes map[string]any) (*entity.Employee, error)

	// Delete removes the record. It returns ErrEmployeeNotFound when absent.
	Delete(ctx context.Context, id uint) error
}

// StatsInvalidator drops any cached statistics after a write.
// The Redis-backed stats provider implements it; a nil invalidator
// means stats are served uncached.
type StatsInvalidator interface {
	InvalidateStats(ctx context.Context) error
}

// CreateEmployeeInput carries the caller-supplied fields for a new record.
// Attribution is passed separately because it comes from the
// authenticated context, never from the request body.
type CreateEmployeeInput struct {
	FirstName  string
	LastName   string
	Age        int
	Salary     float64
	Address    string
	Position   string
	Department string
	Education  string
	Status     entity.Status
}

// UpdateEmployeeInput carries a partial update; nil means "leave unchanged".
type UpdateEmployeeInput struct {
	FirstName  *string
	LastName   *string
	Age        *int
	Salary     *float64
	Address    *string
	Position   *string
	Department *string
	Education  *string
	Status     *entity.Status
}

// ListResult is a page of employee records plus pagination metadata.
type ListResult struct {
	Items      []entity.Employee
	TotalCount int64
	PageCount  int
}

// employeesUsecase implements employee record operations.
type employeesUsecase struct {
	employees   EmployeeRepository
	invalidator StatsInvalidator
}

// NewEmployeesUsecase creates a new instance of employeesUsecase.
// invalidator may be nil when no stats cache is configured.
func NewEmployeesUsecase(employees EmployeeRepository, invalidator StatsInvalidator) *employeesUsecase {
	return &employeesUsecase{employees: employees, invalidator: invalidator}
}

// invalidateStats drops cached stats after a successful write.
// Best effort: a cache failure never fails the write.
func (u *employeesUsecase) invalidateStats(ctx context.Context) {
	if u.invalidator == nil {
		return
	}
	if err := u.invalidator.InvalidateStats(ctx); err != nil {
		slog.Warn("failed to invalidate stats cache", "error", err)
	}
}

func validateAge(age int) error {
	if age < minAge || age > maxAge {
		return &ValidationError{Field: "age", Reason: fmt.Sprintf("must be between %d and %d", minAge, maxAge)}
	}
	return nil
}

func validateLastName(name string) error {
	if len(name) > maxNameLength {
		return &ValidationError{Field: "lastName", Reason: fmt.Sprintf("must be at most %d characters", maxNameLength)}
	}
	return nil
}

func validateStatus(s entity.Status) error {
	if !s.Valid() {
		return &ValidationError{Field: "status", Reason: "must be one of employed, not-employed, suspended, sick-leave"}
	}
	return nil
}

// List returns one page of records, newest first.
// page defaults to 1 and limit to 10; limit is capped at MaxLimit.
func (u *employeesUsecase) List(ctx context.Context, page, limit int) (*ListResult, error) {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}

	offset := (page - 1) * limit
	items, total, err := u.employees.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	// ceil(total/limit) without importing math for float division
	pageCount := int((total + int64(limit) - 1) / int64(limit))

	return &ListResult{Items: items, TotalCount: total, PageCount: pageCount}, nil
}

// GetByID returns a single record or ErrEmployeeNotFound.
func (u *employeesUsecase) GetByID(ctx context.Context, id uint) (*entity.Employee, error) {
	return u.employees.FindByID(ctx, id)
}

// Create validates and persists a new record. Attribution always comes
// from the authenticated caller, overwriting anything in the payload.
func (u *employeesUsecase) Create(ctx context.Context, in CreateEmployeeInput, addedByID uint, addedByName string) (*entity.Employee, error) {
	if err := validateLastName(in.LastName); err != nil {
		return nil, err
	}
	if err := validateAge(in.Age); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = entity.DefaultStatus
	}
	if err := validateStatus(status); err != nil {
		return nil, err
	}

	e := &entity.Employee{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Age:         in.Age,
		Salary:      in.Salary,
		Address:     in.Address,
		Position:    in.Position,
		Department:  in.Department,
		Education:   in.Education,
		Status:      status,
		AddedByID:   addedByID,
		AddedByName: addedByName,
	}
	if err := u.employees.Create(ctx, e); err != nil {
		return nil, err
	}

	u.invalidateStats(ctx)
	return e, nil
}

// UpdateByID validates the provided fields and applies them as a partial
// update. Attribution fields are immutable and cannot appear in the change
// set.
func (u *employeesUsecase) UpdateByID(ctx context.Context, id uint, in UpdateEmployeeInput) (*entity.Employee, error) {
	changes := map[string]any{}

	if in.FirstName != nil {
		changes["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		if err := validateLastName(*in.LastName); err != nil {
			return nil, err
		}
		changes["last_name"] = *in.LastName
	}
	if in.Age != nil {
		if err := validateAge(*in.Age); err != nil {
			return nil, err
		}
		changes["age"] = *in.Age
	}
	if in.Salary != nil {
		changes["salary"] = *in.Salary
	}
	if in.Address != nil {
		changes["address"] = *in.Address
	}
	if in.Position != nil {
		changes["position"] = *in.Position
	}
	if in.Department != nil {
		changes["department"] = *in.Department
	}
	if in.Education != nil {
		changes["education"] = *in.Education
	}
	if in.Status != nil {
		if err := validateStatus(*in.Status); err != nil {
			return nil, err
		}
		changes["status"] = *in.Status
	}

	e, err := u.employees.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}

	u.invalidateStats(ctx)
	return e, nil
}

// DeleteByID removes a record or returns ErrEmployeeNotFound.
func (u *employeesUsecase) DeleteByID(ctx context.Context, id uint) error {
	if err := u.employees.Delete(ctx, id); err != nil {
		return err
	}
	u.invalidateStats(ctx)
	return nil
}
