// Package handler provides the HTTP handlers for the employees feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hr_backend/internal/feature/employees/domain/entity"
	"hr_backend/internal/feature/employees/transport/http/dto"
	"hr_backend/internal/feature/employees/usecase"
	jwtmw "hr_backend/internal/platform/jwt"
)

// EmployeesUsecase defines the record operations the handler depends on.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type EmployeesUsecase interface {
	List(ctx context.Context, page, limit int) (*usecase.ListResult, error)
	GetByID(ctx context.Context, id uint) (*entity.Employee, error)
	Create(ctx context.Context, in usecase.CreateEmployeeInput, addedByID uint, addedByName string) (*entity.Employee, error)
	UpdateByID(ctx context.Context, id uint, in usecase.UpdateEmployeeInput) (*entity.Employee, error)
	DeleteByID(ctx context.Context, id uint) error
}

// StatsUsecase supplies the aggregate views for GET /employees/stats.
type StatsUsecase interface {
	GetStats(ctx context.Context) (*usecase.StatsSnapshot, error)
}

// EmployeeHandler processes HTTP requests for employee records and stats.
type EmployeeHandler struct {
	employees EmployeesUsecase
	stats     StatsUsecase
}

// NewEmployeeHandler creates a new instance of EmployeeHandler.
func NewEmployeeHandler(employees EmployeesUsecase, stats StatsUsecase) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, stats: stats}
}

// pathID parses the :id path parameter.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// List handles GET /employees?page=&limit=.
// Unparsable paging parameters fall back to the defaults.
func (h *EmployeeHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	res, err := h.employees.List(c.Request.Context(), page, limit)
	if err != nil {
		slog.Error("employee list error", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "something went wrong"})
		return
	}

	out := make([]dto.EmployeeRes, 0, len(res.Items))
	for i := range res.Items {
		out = append(out, dto.FromEntity(&res.Items[i]))
	}

	c.JSON(http.StatusOK, dto.ListRes{
		Count:        res.TotalCount,
		NumOfPages:   res.PageCount,
		AllEmployees: out,
	})
}

// GetByID handles GET /employees/:id.
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "no employee found with id " + c.Param("id")})
		return
	}

	e, err := h.employees.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "no employee found with id " + c.Param("id")})
			return
		}
		slog.Error("employee lookup error", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "something went wrong"})
		return
	}

	c.JSON(http.StatusOK, dto.FromEntity(e))
}

// Create handles POST /employees.
// Attribution is read from the verified token context, never from the body.
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	addedByID := c.GetUint(jwtmw.ContextUserID)
	addedByName := c.GetString(jwtmw.ContextUserName)

	e, err := h.employees.Create(c.Request.Context(), usecase.CreateEmployeeInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Age:        req.Age,
		Salary:     req.Salary,
		Address:    req.Address,
		Position:   req.Position,
		Department: req.Department,
		Education:  req.Education,
		Status:     req.Status,
	}, addedByID, addedByName)
	if err != nil {
		var vErr *usecase.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: vErr.Error()})
			return
		}
		slog.Error("employee create error", "error", err, "added_by", addedByName)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "something went wrong"})
		return
	}

	slog.Info("employee created", "id", e.ID, "added_by", addedByName)
	c.JSON(http.StatusCreated, dto.CreateRes{ReturnedResult: dto.FromEntity(e)})
}

// UpdateByID handles PATCH /employees/:id.
// A missing record answers 400 here, unlike get/delete; the behavior is
// inherited and kept for contract compatibility.
func (h *EmployeeHandler) UpdateByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "no employee found with id " + c.Param("id")})
		return
	}

	var req dto.UpdateEmployeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	e, err := h.employees.UpdateByID(c.Request.Context(), id, usecase.UpdateEmployeeInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Age:        req.Age,
		Salary:     req.Salary,
		Address:    req.Address,
		Position:   req.Position,
		Department: req.Department,
		Education:  req.Education,
		Status:     req.Status,
	})
	if err != nil {
		var vErr *usecase.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: vErr.Error()})
		case errors.Is(err, usecase.ErrEmployeeNotFound):
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "no employee found with id " + c.Param("id")})
		default:
			slog.Error("employee update error", "error", err, "id", id)
			c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "something went wrong"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.FromEntity(e))
}

// DeleteByID handles DELETE /employees/:id.
func (h *EmployeeHandler) DeleteByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "no employee found with id " + c.Param("id")})
		return
	}

	if err := h.employees.DeleteByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "no employee found with id " + c.Param("id")})
			return
		}
		slog.Error("employee delete error", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "something went wrong"})
		return
	}

	c.JSON(http.StatusOK, dto.DeleteRes{ID: id})
}

// Stats handles GET /employees/stats.
func (h *EmployeeHandler) Stats(c *gin.Context) {
	snap, err := h.stats.GetStats(c.Request.Context())
	if err != nil {
		slog.Error("stats error", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "something went wrong"})
		return
	}

	c.JSON(http.StatusOK, dto.StatsRes{
		MonthlyApplication: snap.Monthly,
		EmployeesStats:     snap.StatusCounts,
	})
}
