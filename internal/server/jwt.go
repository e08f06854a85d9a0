package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenExpirationHours is how long minted tokens are valid.
const DefaultTokenExpirationHours = 24

// Claims represents JWT claims with a subject name.
type Claims struct {
	Subject string `json:"sub_name,omitempty"`
	jwt.RegisteredClaims
}

// JWTService provides JWT token generation and validation. A nil service
// means authentication is disabled.
type JWTService struct {
	secret          []byte
	expirationHours int
}

// NewJWTService creates a JWT service. Returns nil when the secret is empty,
// which disables authentication.
func NewJWTService(secret string, expirationHours int) *JWTService {
	if secret == "" {
		return nil
	}
	if expirationHours <= 0 {
		expirationHours = DefaultTokenExpirationHours
	}
	return &JWTService{secret: []byte(secret), expirationHours: expirationHours}
}

// GenerateToken mints a signed token for the given subject.
func (s *JWTService) GenerateToken(subject string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Subject: subject,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken validates a token string and returns its claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	return claims, nil
}

// withAuth requires a valid bearer token when authentication is enabled.
// With a nil JWT service it passes requests straight through.
func (s *Server) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.jwtService == nil {
			next(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			err := &ErrUnauthorized{}
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		if _, err := s.jwtService.ValidateToken(tokenString); err != nil {
			unauthorized := &ErrUnauthorized{}
			s.errorResponse(w, HTTPStatus(unauthorized), unauthorized.Error())
			return
		}
		next(w, r)
	}
}
