// Package adapters provides the repository implementations for the employees feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hr_backend/internal/feature/employees/domain/entity"
	"hr_backend/internal/feature/employees/usecase"
)

// employeeGorm is the GORM implementation of EmployeeRepository and StatsSource.
type employeeGorm struct {
	db *gorm.DB
}

// Compile-time checks.
var (
	_ usecase.EmployeeRepository = (*employeeGorm)(nil)
	_ usecase.StatsSource        = (*employeeGorm)(nil)
)

// NewEmployeeGorm creates a new employeeGorm backed by the given gorm.DB connection.
func NewEmployeeGorm(db *gorm.DB) *employeeGorm {
	return &employeeGorm{db: db}
}

// List returns one page of records sorted newest-first, plus the total
// record count before paging.
func (r *employeeGorm) List(ctx context.Context, offset, limit int) ([]entity.Employee, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Employee{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []entity.Employee
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// FindByID retrieves a record by primary key.
// It returns usecase.ErrEmployeeNotFound when no record matches.
func (r *employeeGorm) FindByID(ctx context.Context, id uint) (*entity.Employee, error) {
	var e entity.Employee
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Create persists a new record.
func (r *employeeGorm) Create(ctx context.Context, e *entity.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// Update applies the column changes to an existing record and returns the
// refreshed row. It returns usecase.ErrEmployeeNotFound when absent.
func (r *employeeGorm) Update(ctx context.Context, id uint, changes map[string]any) (*entity.Employee, error) {
	e, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return e, nil
	}
	if err := r.db.WithContext(ctx).Model(e).Updates(changes).Error; err != nil {
		return nil, err
	}
	return e, nil
}

// Delete removes a record by primary key.
// It returns usecase.ErrEmployeeNotFound when nothing was deleted.
func (r *employeeGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Employee{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrEmployeeNotFound
	}
	return nil
}

// FindAllForStats returns every record; the stats aggregations only read
// Status and CreatedAt but fetching whole rows keeps the query trivial.
func (r *employeeGorm) FindAllForStats(ctx context.Context) ([]entity.Employee, error) {
	var rows []entity.Employee
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
