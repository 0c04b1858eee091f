package jwt

import (
	"errors"
	"strconv"
	"time"

	"cuponx-backend/internal/domain/account"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrWrongPurpose = errors.New("token purpose mismatch")
)

// Purpose tags a token so a reset token can never pass as a session token.
type Purpose string

const (
	PurposeSession Purpose = "session"
	PurposeReset   Purpose = "reset"
)

type Claims struct {
	AccountID  int64   `json:"uid"`
	Role       string  `json:"role"`
	Email      string  `json:"email"`
	MerchantID *int64  `json:"empresaId,omitempty"`
	Purpose    Purpose `json:"purpose"`
	jwt.RegisteredClaims
}

type Subject struct {
	AccountID  int64
	Role       account.Role
	Email      string
	MerchantID *int64
}

type Options struct {
	SessionSecret   string
	SessionDuration time.Duration
	ResetSecret     string
	ResetDuration   time.Duration
}

type signer struct {
	secretKey     []byte
	tokenDuration time.Duration
	purpose       Purpose
}

type Service struct {
	session signer
	reset   signer
	now     func() time.Time
}

func NewService(opts Options) *Service {
	resetSecret := opts.ResetSecret
	if resetSecret == "" {
		resetSecret = opts.SessionSecret
	}
	return &Service{
		session: signer{secretKey: []byte(opts.SessionSecret), tokenDuration: opts.SessionDuration, purpose: PurposeSession},
		reset:   signer{secretKey: []byte(resetSecret), tokenDuration: opts.ResetDuration, purpose: PurposeReset},
		now:     time.Now,
	}
}

func (s *Service) SessionDuration() time.Duration {
	return s.session.tokenDuration
}

func (s *Service) GenerateSessionToken(sub Subject) (string, error) {
	return s.generate(s.session, sub)
}

func (s *Service) ValidateSessionToken(tokenString string) (*Claims, error) {
	return s.validate(s.session, tokenString)
}

func (s *Service) GenerateResetToken(sub Subject) (string, error) {
	return s.generate(s.reset, sub)
}

func (s *Service) ValidateResetToken(tokenString string) (*Claims, error) {
	return s.validate(s.reset, tokenString)
}

func (s *Service) generate(sg signer, sub Subject) (string, error) {
	now := s.now()
	claims := Claims{
		AccountID:  sub.AccountID,
		Role:       sub.Role.String(),
		Email:      sub.Email,
		MerchantID: sub.MerchantID,
		Purpose:    sg.purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(sub.AccountID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sg.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sg.secretKey)
}

func (s *Service) validate(sg signer, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return sg.secretKey, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Purpose != sg.purpose {
		return nil, ErrWrongPurpose
	}

	return claims, nil
}
