package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oakpress/storefront/internal/config"
)

// Auth errors. ErrMissingSecret indicates a server misconfiguration rather
// than a caller mistake.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingSecret      = errors.New("server configuration error: JWT_SECRET not set")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// tokenTTL is the lifetime of an admin session token. Tokens are stateless,
// so a token cannot be revoked before it expires.
const tokenTTL = time.Hour

// AuthService issues and verifies bearer tokens for the single configured
// admin identity.
type AuthService struct {
	admin  config.Admin
	secret string
}

// NewAuthService creates an auth service for the given admin identity and
// signing secret.
func NewAuthService(admin config.Admin, secret string) *AuthService {
	return &AuthService{admin: admin, secret: secret}
}

// Login checks the submitted credentials against the configured admin
// identity and returns a signed token on success.
func (as *AuthService) Login(username, password string) (string, error) {
	if as.secret == "" {
		return "", ErrMissingSecret
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(as.admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(as.admin.Password)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"username": username,
		"exp":      now.Add(tokenTTL).Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(as.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify validates a bearer token and returns the admin username it
// carries.
func (as *AuthService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(as.secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", ErrInvalidToken
	}

	return username, nil
}
