//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"ticket-monarch/internal/pkg/clock"
	"ticket-monarch/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokens(t *testing.T) {
	clk := clock.NewMockClock(time.Now())
	svc := jwt.NewService("secret", time.Hour, clk)
	visitor := uuid.New()

	token, err := svc.GenerateToken(visitor)
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, visitor, claims.VisitorID)
		assert.Equal(t, visitor.String(), claims.Subject)
	})

	t.Run("other secret rejected", func(t *testing.T) {
		other := jwt.NewService("other", time.Hour, clk)
		_, err := other.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired after ttl", func(t *testing.T) {
		clk.Add(2 * time.Hour)
		_, err := svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}
