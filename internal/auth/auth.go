// Package auth issues and validates credentials for dashboard accounts:
// bcrypt password hashing and HS256 access tokens.
package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rotisserie/eris"
	"golang.org/x/crypto/bcrypt"

	"github.com/fleetsight/fleetsight/internal/config"
	"github.com/fleetsight/fleetsight/internal/model"
)

var (
	ErrInvalidToken       = eris.New("auth: invalid token")
	ErrExpiredToken       = eris.New("auth: token expired")
	ErrInvalidCredentials = eris.New("auth: invalid credentials")
)

// Service handles authentication operations. The signing secret and token
// lifetime come from configuration, never from process globals.
type Service struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewService creates an authentication service from config.
func NewService(cfg config.AuthConfig) (*Service, error) {
	if cfg.JWTSecret == "" {
		return nil, eris.New("auth: jwt secret is required (FLEETSIGHT_AUTH_JWT_SECRET)")
	}

	ttl := time.Duration(cfg.TokenTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Service{
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: ttl,
	}, nil
}

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", eris.Wrap(err, "auth: hash password")
	}
	return string(bytes), nil
}

// CheckPassword reports whether a password matches a hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *Service) HashPassword(password string) (string, error) {
	return HashPassword(password)
}

func (s *Service) CheckPassword(password, hash string) bool {
	return CheckPassword(password, hash)
}

// GenerateToken generates a signed access token for a user.
func (s *Service) GenerateToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     now.Add(s.tokenTTL).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", eris.Wrap(err, "auth: sign token")
	}
	return signed, nil
}

// ValidateToken validates an access token and returns its claims. A
// leading "Bearer " prefix is tolerated.
func (s *Service) ValidateToken(tokenString string) (*model.Claims, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, eris.Errorf("auth: unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if eris.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &model.Claims{
		UserID: userID,
		Email:  email,
		Role:   model.Role(role),
		Exp:    int64(exp),
	}, nil
}

// ValidatePassword validates password strength.
func (s *Service) ValidatePassword(password string) error {
	if len(password) < 8 {
		return eris.New("auth: password must be at least 8 characters long")
	}
	return nil
}

// ValidateEmail validates email shape.
func (s *Service) ValidateEmail(email string) error {
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return eris.New("auth: invalid email format")
	}
	return nil
}
