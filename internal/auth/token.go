package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// DefaultLeeway absorbs clock drift between the issuer and this service
	DefaultLeeway = 30 * time.Second

	signingMethod = "HS256"
)

var (
	ErrTokenMissing  = errors.New("token is required")
	ErrTokenInvalid  = errors.New("token is invalid")
	ErrTokenExpired  = errors.New("token is expired")
	ErrNotConfigured = errors.New("token verifier is not configured")
)

// Config defines how player tokens are verified
type Config struct {
	Secret []byte
	Issuer string
	Leeway time.Duration
	Now    func() time.Time
}

// Verifier checks bearer tokens issued to players. The token subject is the
// ID of the character the player controls.
type Verifier struct {
	cfg Config
}

// NewVerifier creates a verifier. An empty issuer skips the issuer check.
func NewVerifier(cfg Config) (*Verifier, error) {
	if len(cfg.Secret) == 0 {
		return nil, ErrNotConfigured
	}
	if cfg.Leeway <= 0 {
		cfg.Leeway = DefaultLeeway
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Verifier{cfg: cfg}, nil
}

// Verify parses the token and returns the character it was issued for
func (v *Verifier) Verify(token string) (uuid.UUID, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return uuid.Nil, ErrTokenMissing
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{signingMethod}),
		jwt.WithLeeway(v.cfg.Leeway),
		jwt.WithTimeFunc(v.cfg.Now),
		jwt.WithExpirationRequired(),
	}
	if v.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.cfg.Issuer))
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.cfg.Secret, nil
	}, opts...)
	if err != nil {
		return uuid.Nil, mapJWTError(err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: subject is not a character id", ErrTokenInvalid)
	}
	return id, nil
}

// Issue signs a token for a character. Production tokens come from the
// account service; this exists for local tooling and tests.
func (v *Verifier) Issue(characterID uuid.UUID, ttl time.Duration) (string, error) {
	now := v.cfg.Now()
	claims := jwt.RegisteredClaims{
		Subject:   characterID.String(),
		Issuer:    v.cfg.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.cfg.Secret)
}

func mapJWTError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrTokenExpired
	}
	return fmt.Errorf("%w: %v", ErrTokenInvalid, err)
}
