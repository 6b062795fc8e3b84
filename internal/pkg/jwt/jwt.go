package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Service verifies guest access tokens issued by the account service. The
// guest ID travels as the token subject.
type Service struct {
	secret   []byte
	issuer   string
	audience string
	leeway   time.Duration
}

type Option func(*Service)

func WithIssuer(iss string) Option {
	return func(s *Service) { s.issuer = iss }
}

func WithAudience(aud string) Option {
	return func(s *Service) { s.audience = aud }
}

func WithLeeway(d time.Duration) Option {
	return func(s *Service) { s.leeway = d }
}

func NewService(secret string, opts ...Option) *Service {
	s := &Service{secret: []byte(secret)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateToken signs a token for guestID the way the account service does.
// Used by tooling and tests that share the secret.
func (s *Service) GenerateToken(guestID uuid.UUID, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   guestID.String(),
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	if s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature, expiry (relative to now), issuer and audience and
// returns the guest ID from the subject.
func (s *Service) Verify(tokenString string, now time.Time) (uuid.UUID, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(s.leeway),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	if s.audience != "" {
		opts = append(opts, jwt.WithAudience(s.audience))
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrExpiredToken
		}
		return uuid.Nil, ErrInvalidToken
	}

	guestID, err := uuid.Parse(claims.Subject)
	if err != nil || guestID == uuid.Nil {
		return uuid.Nil, ErrInvalidToken
	}
	return guestID, nil
}
