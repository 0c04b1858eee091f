package response

import (
	"cuponx-backend/internal/usecase/commands"
	"cuponx-backend/internal/usecase/queries"
)

type SessionUserResponse struct {
	ID         int64  `json:"id"`
	Role       string `json:"role"`
	Email      string `json:"email"`
	MerchantID *int64 `json:"empresaId"`
}

type LoginResponse struct {
	Token     string              `json:"token"`
	ExpiresIn int64               `json:"expiresIn"` // seconds
	User      SessionUserResponse `json:"user"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token:     r.Token,
		ExpiresIn: int64(r.ExpiresIn.Seconds()),
		User: SessionUserResponse{
			ID:         r.User.ID,
			Role:       r.User.Role.String(),
			Email:      r.User.Email,
			MerchantID: r.User.MerchantID,
		},
	}
}

type RegisterResponse struct {
	ID int64 `json:"id"`
}

type MeResponse struct {
	ID          int64  `json:"id"`
	Role        string `json:"role"`
	Email       string `json:"email"`
	MerchantID  *int64 `json:"empresaId"`
	DisplayName string `json:"nombre"`
	Verified    *bool  `json:"verificado,omitempty"`
}

func FromAccountView(v *queries.AccountView) (*MeResponse, error) {
	var res MeResponse
	if err := copyView(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}
