package i

import (
	"time"
)

// TokenDecoder validates bearer tokens.
type TokenDecoder interface {
	// Decode validates and parses a token, returning its claims.
	Decode(token string) (map[string]interface{}, error)
}

// Tokenizer issues and validates the tokens guarding maze creation.
type Tokenizer interface {
	TokenDecoder

	// Generate signs a token carrying claims, valid for expTime.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)

	// IssueMazeToken signs a token for subject carrying the maze creation scope.
	IssueMazeToken(subject string, expTime time.Duration) (string, error)
}
