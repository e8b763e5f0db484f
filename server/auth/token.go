package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ponyo877/pyxl/server/domain"
)

const issuer = "pyxl"

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid or expired token")
)

type claims struct {
	jwt.RegisteredClaims
}

// Authenticator issues and verifies HS256 bearer tokens whose subject is
// the actor id.
type Authenticator struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewAuthenticator(secret string, ttl time.Duration) (*Authenticator, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret cannot be empty")
	}
	return &Authenticator{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a token for actorID. A zero ttl issues a token without expiry.
func (a *Authenticator) Issue(actorID string) (string, error) {
	actor := domain.NewActor(actorID)
	if actor.IsAnonymous() {
		return "", fmt.Errorf("actor id is required")
	}
	now := a.now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  actor.ID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if a.ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(a.ttl))
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Verify returns the actor named by a valid token.
func (a *Authenticator) Verify(token string) (domain.Actor, error) {
	var parsed claims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	actor := domain.NewActor(parsed.Subject)
	if actor.IsAnonymous() {
		return domain.Actor{}, fmt.Errorf("%w: subject claim missing", ErrInvalidToken)
	}
	return actor, nil
}

// VerifyHeader accepts an "Authorization" header value. An empty header
// yields ErrMissingToken.
func (a *Authenticator) VerifyHeader(header string) (domain.Actor, error) {
	token, err := BearerToken(header)
	if err != nil {
		return domain.Actor{}, err
	}
	return a.Verify(token)
}

func BearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", ErrMissingToken
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("%w: malformed authorization header", ErrInvalidToken)
	}
	return strings.TrimSpace(token), nil
}

// Subject reads the subject without verifying the signature. Clients use
// it to show who they are signed in as.
func Subject(token string) (string, error) {
	var parsed claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	return parsed.Subject, nil
}
