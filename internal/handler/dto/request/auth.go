package request

import (
	"cuponx-backend/internal/domain/account"
)

// Required fields are checked by the use cases so that clients get their messages.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	FirstNames string `json:"nombres" binding:"max=100"`
	LastNames  string `json:"apellidos" binding:"max=100"`
	Phone      string `json:"telefono" binding:"max=20"`
	Email      string `json:"correo" binding:"max=150"`
	Address    string `json:"direccion" binding:"max=255"`
	NationalID string `json:"dui"`
	Password   string `json:"password" binding:"max=72"`
}

func (r *RegisterRequest) ToDomain() account.RegistrationInput {
	return account.RegistrationInput{
		FirstNames: r.FirstNames,
		LastNames:  r.LastNames,
		Phone:      r.Phone,
		Email:      r.Email,
		Address:    r.Address,
		NationalID: r.NationalID,
		Password:   r.Password,
	}
}

type VerifyRequest struct {
	Token string `form:"token"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword" binding:"max=72"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" binding:"max=72"`
}
