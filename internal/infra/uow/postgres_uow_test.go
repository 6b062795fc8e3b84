//go:build unit

package uow

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"stay-picker/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, true},
		{"wrapped serialization failure", errs.Wrap(&pgconn.PgError{Code: "40001"}, "insert"), true},
		{"commit marked serialization failure", errs.Mark(&pgconn.PgError{Code: "40001"}, errTransactionCommit), true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"plain error", errors.New("boom"), false},
		{"fmt wrapped plain error", fmt.Errorf("save: %w", errors.New("boom")), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isRetryable(tc.err))
		})
	}
}

func TestRetryPolicyDelay(t *testing.T) {
	p := RetryPolicy{MaxRetries: 3, BaseDelay: 100 * time.Millisecond}

	for attempt, base := range []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond} {
		d := p.delay(attempt)
		assert.GreaterOrEqual(t, d, base, "attempt %d", attempt)
		assert.Less(t, d, base+base/5, "attempt %d", attempt)
	}

	assert.Equal(t, time.Duration(0), RetryPolicy{}.delay(2))
}
