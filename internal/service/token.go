package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"horas-api/internal/models"
)

// TokenService issues and verifies the stateless session tokens.
// There is no revocation list: expiry is the only way a token stops working.
type TokenService interface {
	Issue(usuarioID int64, funcionarioID *int64) (string, time.Time, error)
	Verify(tokenString string) (*models.Claims, error)
}

type tokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) (TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}
	return &tokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (s *tokenService) Issue(usuarioID int64, funcionarioID *int64) (string, time.Time, error) {
	issuedAt := s.now()
	expirationTime := issuedAt.Add(s.ttl)
	claims := &models.Claims{
		UsuarioID:     usuarioID,
		FuncionarioID: funcionarioID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, expirationTime, nil
}

func (s *tokenService) Verify(tokenString string) (*models.Claims, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is what we expect
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}

	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UsuarioID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
