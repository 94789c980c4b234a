// Package dto defines data transfer objects for the auth feature's HTTP
// transport layer.
package dto

// RegisterReq represents the request body for the /api/auth/register
// endpoint. Password strength and username rules are enforced by the
// usecase so failures carry field-level messages.
type RegisterReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Username string `json:"username"`
}
