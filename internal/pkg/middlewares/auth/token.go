package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"marketplace/internal/entities"
)

// Claims is the token payload issued by the account service.
type Claims struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Verifier checks HS256 tokens signed with the shared secret.
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

func (v *Verifier) Verify(raw string) (entities.Identity, error) {
	var claims Claims
	_, err := v.parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return entities.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if uuid.Validate(claims.ID) != nil {
		return entities.Identity{}, fmt.Errorf("%w: bad id claim", ErrInvalidToken)
	}
	role, ok := entities.ParseRole(claims.Role)
	if !ok {
		return entities.Identity{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}

	return entities.Identity{ID: claims.ID, Role: role}, nil
}

// Sign issues a token for id. The service itself only verifies; Sign is
// used by tests and local tooling.
func (v *Verifier) Sign(id entities.Identity, claims jwt.RegisteredClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		ID:               id.ID,
		Role:             id.Role.String(),
		RegisteredClaims: claims,
	})
	return token.SignedString(v.secret)
}

func bearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(token), nil
}
