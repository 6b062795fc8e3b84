//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"stay-picker/internal/pkg/config"
	"stay-picker/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens as the account service would, with the secret,
// issuer and audience the server verifies against.
type JWTHelper struct {
	cfg     config.JWTConfig
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{
		cfg:     cfg,
		service: jwt.NewService(cfg.Secret, jwt.WithIssuer(cfg.Issuer), jwt.WithAudience(cfg.Audience)),
	}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	return h.sign(t, h.service, userID, time.Now())
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	return h.sign(t, h.service, userID, time.Now().Add(-2*time.Hour))
}

// CreateForeignToken signs an otherwise valid token meant for another service.
func (h *JWTHelper) CreateForeignToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	other := jwt.NewService(h.cfg.Secret, jwt.WithIssuer(h.cfg.Issuer), jwt.WithAudience("other-service"))
	return h.sign(t, other, userID, time.Now())
}

func (h *JWTHelper) sign(t *testing.T, svc *jwt.Service, userID uuid.UUID, issuedAt time.Time) string {
	t.Helper()
	token, err := svc.GenerateToken(userID, issuedAt, time.Hour)
	require.NoError(t, err)
	return token
}
