package usecase

import (
	"stay-picker/internal/pkg/clock"
	"stay-picker/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator checks guest tokens against the service clock, so expiry
// follows the same "now" the slot generator uses.
type TokenValidator struct {
	tokens *jwt.Service
	clock  clock.Clock
}

func NewTokenValidator(tokens *jwt.Service, clk clock.Clock) *TokenValidator {
	return &TokenValidator{tokens: tokens, clock: clk}
}

func (v *TokenValidator) ValidateToken(token string) (uuid.UUID, error) {
	return v.tokens.Verify(token, v.clock.Now())
}
