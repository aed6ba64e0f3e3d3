package token

import (
	"errors"
	"time"

	"github.com/beka-birhanu/mazeraster/service/i"
	"github.com/dgrijalva/jwt-go"
)

// Claim names used by the maze API.
const (
	ClaimSubject = "sub"
	ClaimIssuer  = "iss"
	ClaimScope   = "scope"

	// ScopeCreateMaze allows POST /mazes.
	ScopeCreateMaze = "mazes:create"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

// JwtService handles JWT operations.
// Implements i.Tokenizer.
type JwtService struct {
	secretKey string
	issuer    string
}

// NewJwtService creates a new JWT Service with the provided configuration.
func NewJwtService(secretKey, issuer string) *JwtService {
	return &JwtService{
		secretKey: secretKey,
		issuer:    issuer,
	}
}

var _ i.Tokenizer = (*JwtService)(nil)

// Generate creates a JWT for the given claims, stamped with the service's issuer.
func (s *JwtService) Generate(claims map[string]interface{}, expTime time.Duration) (string, error) {
	expirationTime := time.Now().UTC().Add(expTime).Unix()
	jwtClaims := jwt.MapClaims{
		"exp":       expirationTime,
		ClaimIssuer: s.issuer,
	}
	for key, val := range claims {
		jwtClaims[key] = val
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims)
	return token.SignedString([]byte(s.secretKey))
}

// IssueMazeToken creates a token allowing subject to create mazes.
func (s *JwtService) IssueMazeToken(subject string, expTime time.Duration) (string, error) {
	return s.Generate(map[string]interface{}{
		ClaimSubject: subject,
		ClaimScope:   ScopeCreateMaze,
	}, expTime)
}

// Decode parses and validates a JWT, returning the claims if valid.
// Tokens from another issuer are rejected.
func (s *JwtService) Decode(tokenString string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, s.getSigningKey)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if !claims.VerifyIssuer(s.issuer, true) {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// getSigningKey returns the signing key for token validation.
func (s *JwtService) getSigningKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return []byte(s.secretKey), nil
}
