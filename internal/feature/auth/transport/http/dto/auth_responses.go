package dto

// AuthRes is the success body for login, register and update.
type AuthRes struct {
	UserName  string `json:"userName"`
	AvatarURL string `json:"avatarUrl"`
	IsAdmin   bool   `json:"isAdmin"`
	Token     string `json:"token"`
}

// DeleteAccountRes is the success body for account deletion.
type DeleteAccountRes struct {
	UserName string `json:"userName"`
}

// ErrorRes is the uniform error body.
type ErrorRes struct {
	Error string `json:"error"`
}
