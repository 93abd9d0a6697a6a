// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// LoginReq represents the request body for POST /auth/login.
// Presence is the only transport-level check; credential checking is
// deliberately uniform beyond that.
type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterReq represents the request body for POST /auth/register.
// Field constraints (name length, email shape, password length) are
// enforced by the usecase validation pipeline. An isAdmin value in the
// payload is ignored by design.
type RegisterReq struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	AvatarURL string `json:"avatarUrl"`
}

// UpdateReq represents the request body for PATCH /auth/update.
// UserName selects the account; the remaining fields are optional updates.
type UpdateReq struct {
	UserName  string `json:"userName" binding:"required"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
	Password  string `json:"password"`
}

// DeleteAccountReq represents the request body for DELETE /auth/delete_account.
type DeleteAccountReq struct {
	UserName string `json:"userName" binding:"required"`
}
