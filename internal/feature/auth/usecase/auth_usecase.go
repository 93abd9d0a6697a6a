// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"fmt"
	"regexp"

	"hr_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength is the minimum number of characters in a password.
	minPasswordLength = 8
	// minNameLength and maxNameLength bound the display name.
	minNameLength = 3
	maxNameLength = 30
)

// emailPattern keeps the same shape check the registration form applies:
// local part, "@", dotted domain.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when
	// another user already holds the same email.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user with the given email address.
	// It returns ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByName retrieves the user with the given display name.
	// It returns ErrUserNotFound when no such user exists.
	FindByName(ctx context.Context, name string) (*entity.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user. It returns ErrUserNotFound when absent.
	Delete(ctx context.Context, user *entity.User) error
}

// TokenIssuer signs session tokens for authenticated users.
// The interface is defined here, on the consumer side; the provider
// lives in platform/jwt.
type TokenIssuer interface {
	// GenerateToken creates a signed token carrying the user's ID and name.
	GenerateToken(userID uint, name string) (string, error)
}

// AuthResult is what every successful auth operation hands back to the
// transport layer: the profile fields the client renders plus a fresh token.
type AuthResult struct {
	UserName  string
	AvatarURL string
	IsAdmin   bool
	Token     string
}

// RegisterInput carries caller-supplied registration fields.
// There is intentionally no IsAdmin field: registration always stores false.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	AvatarURL string
}

// UpdateInput carries the updatable account fields. Empty strings mean
// "leave unchanged".
type UpdateInput struct {
	Email     string
	AvatarURL string
	Password  string
}

// authUsecase implements the credential store rules and the auth workflow.
type authUsecase struct {
	users  UserRepository
	tokens TokenIssuer
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer) *authUsecase {
	return &authUsecase{users: users, tokens: tokens}
}

// validateName checks the display name length bounds.
func validateName(name string) error {
	if len(name) < minNameLength || len(name) > maxNameLength {
		return &ValidationError{Field: "name", Reason: fmt.Sprintf("must be %d to %d characters", minNameLength, maxNameLength)}
	}
	return nil
}

// validateEmail checks that the email is RFC-shaped.
func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	return nil
}

// validatePassword checks that the password meets the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return &ValidationError{Field: "password", Reason: fmt.Sprintf("must be at least %d characters", minPasswordLength)}
	}
	return nil
}

// hashPassword derives the stored bcrypt hash from a raw password.
// bcrypt.DefaultCost is 10 rounds.
func hashPassword(raw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword reports whether raw matches the user's stored hash.
// The comparison recomputes the hash rather than comparing strings.
func (u *authUsecase) VerifyPassword(user *entity.User, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(raw)) == nil
}

// Login authenticates a user and returns a fresh token on success.
// A bcrypt comparison runs even when the email is unknown so that
// unknown-email and wrong-password attempts are indistinguishable,
// by content and by timing.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// Dummy hash keeps the bcrypt comparison on the not-found path.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.PasswordHash
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.GenerateToken(user.ID, user.Name)
	if tokenErr != nil {
		return nil, fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return &AuthResult{
		UserName:  user.Name,
		AvatarURL: user.AvatarURL,
		IsAdmin:   user.IsAdmin,
		Token:     token,
	}, nil
}

// Register creates a new account and returns a fresh token.
// The pipeline is explicit: validate, hash, persist. IsAdmin is always
// stored as false regardless of anything the caller sent.
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := validateName(in.Name); err != nil {
		return nil, err
	}
	if err := validateEmail(in.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	hashed, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	avatar := in.AvatarURL
	if avatar == "" {
		avatar = entity.DefaultAvatarURL
	}

	user := &entity.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hashed,
		IsAdmin:      false,
		AvatarURL:    avatar,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{
		UserName:  user.Name,
		AvatarURL: user.AvatarURL,
		IsAdmin:   user.IsAdmin,
		Token:     token,
	}, nil
}

// Update modifies the account looked up by its current display name.
// A password in the field set is re-validated and re-hashed; other
// provided fields are validated then applied. A new token is issued
// from the post-update record.
func (u *authUsecase) Update(ctx context.Context, name string, in UpdateInput) (*AuthResult, error) {
	user, err := u.users.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if in.Email != "" {
		if err := validateEmail(in.Email); err != nil {
			return nil, err
		}
		user.Email = in.Email
	}
	if in.AvatarURL != "" {
		user.AvatarURL = in.AvatarURL
	}
	if in.Password != "" {
		if err := validatePassword(in.Password); err != nil {
			return nil, err
		}
		hashed, err := hashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{
		UserName:  user.Name,
		AvatarURL: user.AvatarURL,
		IsAdmin:   user.IsAdmin,
		Token:     token,
	}, nil
}

// DeleteAccount removes the account with the given display name and
// returns that name for the response body.
func (u *authUsecase) DeleteAccount(ctx context.Context, name string) (string, error) {
	user, err := u.users.FindByName(ctx, name)
	if err != nil {
		return "", err
	}
	if err := u.users.Delete(ctx, user); err != nil {
		return "", err
	}
	return user.Name, nil
}
