package dto

import "tuneeng_backend/internal/feature/auth/domain/entity"

// UserRes is the public projection of a user. It never carries the
// password hash.
type UserRes struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Username string `json:"username"`
}

// NewUserRes converts a user entity to its public projection.
func NewUserRes(u *entity.User) UserRes {
	return UserRes{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Username: u.Username,
	}
}

// TokenRes is the response body for a successful login.
type TokenRes struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	User        UserRes `json:"user"`
}

// ErrorRes is the generic error envelope.
type ErrorRes struct {
	Error string `json:"error"`
}

// MessageRes is the generic acknowledgement envelope.
type MessageRes struct {
	Message string `json:"message"`
}
