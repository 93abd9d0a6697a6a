package adapters

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hr_backend/internal/feature/employees/domain/entity"
	"hr_backend/internal/feature/employees/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Employee{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func newTestEmployee(first string) *entity.Employee {
	return &entity.Employee{
		FirstName:   first,
		LastName:    "Doe",
		Age:         35,
		Salary:      52000,
		Address:     "12 Main St",
		Position:    "Accountant",
		Department:  "Finance",
		Education:   "Bachelor",
		Status:      entity.StatusEmployed,
		AddedByID:   1,
		AddedByName: "alice",
	}
}

func TestEmployeeGorm_CreateAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEmployeeGorm(db)

	e := newTestEmployee("John")
	require.NoError(t, repo.Create(context.Background(), e))
	assert.NotZero(t, e.ID)
	assert.False(t, e.CreatedAt.IsZero())

	found, err := repo.FindByID(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Equal(t, "John", found.FirstName)
	assert.Equal(t, entity.StatusEmployed, found.Status)
	assert.Equal(t, uint(1), found.AddedByID)
	assert.Equal(t, "alice", found.AddedByName)
}

func TestEmployeeGorm_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEmployeeGorm(db)

	found, err := repo.FindByID(context.Background(), 999)

	assert.Nil(t, found)
	assert.ErrorIs(t, err, usecase.ErrEmployeeNotFound)
}

func TestEmployeeGorm_List(t *testing.T) {
	t.Run("sorted newest-first with offset and limit", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEmployeeGorm(db)

		base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 25; i++ {
			e := newTestEmployee(fmt.Sprintf("emp-%02d", i))
			e.CreatedAt = base.Add(time.Duration(i) * time.Hour)
			require.NoError(t, db.Create(e).Error)
		}

		rows, total, err := repo.List(context.Background(), 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(25), total)
		require.Len(t, rows, 10)
		assert.Equal(t, "emp-24", rows[0].FirstName, "newest record first")

		// Third page carries the remaining 5 records.
		rows, total, err = repo.List(context.Background(), 20, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(25), total)
		assert.Len(t, rows, 5)
		assert.Equal(t, "emp-00", rows[4].FirstName, "oldest record last")
	})

	t.Run("empty table", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEmployeeGorm(db)

		rows, total, err := repo.List(context.Background(), 0, 10)
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, rows)
	})
}

func TestEmployeeGorm_Update(t *testing.T) {
	t.Run("applies only the given changes", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEmployeeGorm(db)

		e := newTestEmployee("John")
		require.NoError(t, repo.Create(context.Background(), e))

		updated, err := repo.Update(context.Background(), e.ID, map[string]any{
			"salary": 60000.0,
			"status": entity.StatusSickLeave,
		})
		require.NoError(t, err)
		assert.Equal(t, 60000.0, updated.Salary)
		assert.Equal(t, entity.StatusSickLeave, updated.Status)
		assert.Equal(t, "John", updated.FirstName, "untouched field changed")

		// Persisted, not just reflected in the returned struct.
		found, err := repo.FindByID(context.Background(), e.ID)
		require.NoError(t, err)
		assert.Equal(t, 60000.0, found.Salary)
	})

	t.Run("empty change set is a no-op", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEmployeeGorm(db)

		e := newTestEmployee("John")
		require.NoError(t, repo.Create(context.Background(), e))

		updated, err := repo.Update(context.Background(), e.ID, map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, e.ID, updated.ID)
	})

	t.Run("missing record returns ErrEmployeeNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEmployeeGorm(db)

		_, err := repo.Update(context.Background(), 999, map[string]any{"salary": 1.0})
		assert.ErrorIs(t, err, usecase.ErrEmployeeNotFound)
	})
}

func TestEmployeeGorm_Delete(t *testing.T) {
	t.Run("deletes an existing record", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEmployeeGorm(db)

		e := newTestEmployee("John")
		require.NoError(t, repo.Create(context.Background(), e))

		require.NoError(t, repo.Delete(context.Background(), e.ID))

		_, err := repo.FindByID(context.Background(), e.ID)
		assert.ErrorIs(t, err, usecase.ErrEmployeeNotFound)
	})

	t.Run("missing record returns ErrEmployeeNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewEmployeeGorm(db)

		assert.ErrorIs(t, repo.Delete(context.Background(), 999), usecase.ErrEmployeeNotFound)
	})
}

func TestEmployeeGorm_FindAllForStats(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEmployeeGorm(db)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(context.Background(), newTestEmployee(fmt.Sprintf("emp-%d", i))))
	}

	rows, err := repo.FindAllForStats(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
