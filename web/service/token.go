package service

import (
	"errors"
	"time"

	"github.com/pahanaedu/bill-ui/database/model"

	"github.com/golang-jwt/jwt/v5"
)

const tokenLifetime = 72 * time.Hour

// TokenService issues and validates bearer tokens for non-browser API
// clients. Browser clients use the cookie session instead.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret []byte) *TokenService {
	return &TokenService{secret: secret}
}

// IssueToken signs a token carrying the user's identity and role.
func (s *TokenService) IssueToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"id":           user.Id,
		"mobileNumber": user.MobileNumber,
		"role":         user.Role,
		"exp":          time.Now().Add(tokenLifetime).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ValidateToken parses a bearer token and reconstructs the principal.
func (s *TokenService) ValidateToken(tokenString string) (*model.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	id, _ := claims["id"].(float64)
	mobileNumber, _ := claims["mobileNumber"].(string)
	role, _ := claims["role"].(string)
	if mobileNumber == "" || !model.ValidRole(role) {
		return nil, errors.New("invalid token claims")
	}

	return &model.User{
		Id:           int(id),
		MobileNumber: mobileNumber,
		Role:         role,
	}, nil
}
