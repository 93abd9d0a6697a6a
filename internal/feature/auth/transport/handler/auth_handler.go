// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"hr_backend/internal/feature/auth/transport/http/dto"
	"hr_backend/internal/feature/auth/usecase"
)

// invalidCredentialsMsg is the single message returned for every failed
// login, regardless of whether the email or the password was wrong.
const invalidCredentialsMsg = "Invalid credentials"

// AuthUsecase defines the auth workflow operations the handler depends on.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type AuthUsecase interface {
	// Login authenticates a user and returns the profile plus a token.
	Login(ctx context.Context, email, password string) (*usecase.AuthResult, error)
	// Register creates a new account and returns the profile plus a token.
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthResult, error)
	// Update modifies the account looked up by its current name.
	Update(ctx context.Context, name string, in usecase.UpdateInput) (*usecase.AuthResult, error)
	// DeleteAccount removes the account with the given name.
	DeleteAccount(ctx context.Context, name string) (string, error)
}

// AuthHandler processes HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// authRes converts a usecase result into the response body.
func authRes(r *usecase.AuthResult) dto.AuthRes {
	return dto.AuthRes{
		UserName:  r.UserName,
		AvatarURL: r.AvatarURL,
		IsAdmin:   r.IsAdmin,
		Token:     r.Token,
	}
}

// Login handles POST /auth/login.
// Missing fields yield 400; any credential failure yields 401 with the
// uniform message.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "Please provide email and password"})
		return
	}

	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: invalidCredentialsMsg})
			return
		}
		slog.Error("login error", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "something went wrong"})
		return
	}

	slog.Info("user login successful", "user", res.UserName, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, authRes(res))
}

// Register handles POST /auth/register.
// Validation failures yield 400, a taken email 409.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	res, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		var vErr *usecase.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: vErr.Error()})
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			slog.Warn("registration conflict", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, dto.ErrorRes{Error: "email already in use"})
		default:
			slog.Error("registration error", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "something went wrong"})
		}
		return
	}

	slog.Info("user registered", "user", res.UserName, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, authRes(res))
}

// Update handles PATCH /auth/update.
// An unknown userName is a 400 here, matching the workflow contract.
func (h *AuthHandler) Update(c *gin.Context) {
	var req dto.UpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	res, err := h.auth.Update(c.Request.Context(), req.UserName, usecase.UpdateInput{
		Email:     req.Email,
		AvatarURL: req.AvatarURL,
		Password:  req.Password,
	})
	if err != nil {
		var vErr *usecase.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: vErr.Error()})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "no user found with name " + req.UserName})
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			c.JSON(http.StatusConflict, dto.ErrorRes{Error: "email already in use"})
		default:
			slog.Error("account update error", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "something went wrong"})
		}
		return
	}

	slog.Info("account updated", "user", res.UserName, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, authRes(res))
}

// DeleteAccount handles DELETE /auth/delete_account.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	var req dto.DeleteAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	name, err := h.auth.DeleteAccount(c.Request.Context(), req.UserName)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "no user found with name " + req.UserName})
			return
		}
		slog.Error("account deletion error", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "something went wrong"})
		return
	}

	slog.Info("account deleted", "user", name, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.DeleteAccountRes{UserName: name})
}
