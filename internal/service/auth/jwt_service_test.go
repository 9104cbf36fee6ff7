package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdash/proxy-api/internal/config"
)

const testSecret = "test-secret-key-thats-long-enough-for-hmac"

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            testSecret,
		Issuer:               "salesdash-identity",
		Audience:             "salesdash-dashboard",
		TokenLifetimeMinutes: 60,
	}
}

func newTestService(t *testing.T, cfg config.AuthConfig) *hmacJWTService {
	t.Helper()

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	impl, ok := svc.(*hmacJWTService)
	require.True(t, ok)
	return impl
}

func TestNewJWTService_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.AuthConfig)
		wantErr string
	}{
		{
			name:    "valid config",
			mutate:  func(cfg *config.AuthConfig) {},
			wantErr: "",
		},
		{
			name:    "secret too short",
			mutate:  func(cfg *config.AuthConfig) { cfg.JWTSecret = "short" },
			wantErr: "jwt secret must be at least 32 characters",
		},
		{
			name:    "missing issuer",
			mutate:  func(cfg *config.AuthConfig) { cfg.Issuer = "" },
			wantErr: "jwt issuer must be configured",
		},
		{
			name:    "missing audience",
			mutate:  func(cfg *config.AuthConfig) { cfg.Audience = "" },
			wantErr: "jwt audience must be configured",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := testAuthConfig()
			tt.mutate(&cfg)

			_, err := NewJWTService(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateToken_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, testAuthConfig())
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, "42", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "salesdash-identity", claims.Issuer)
	assert.Equal(t, "salesdash-dashboard", claims.Audience)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func TestValidateToken_RejectsWrongKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	otherCfg := testAuthConfig()
	otherCfg.JWTSecret = "a-completely-different-signing-key-here"
	other := newTestService(t, otherCfg)

	token, err := other.GenerateToken(ctx, "42", "admin")
	require.NoError(t, err)

	svc := newTestService(t, testAuthConfig())
	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_RejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	otherCfg := testAuthConfig()
	otherCfg.Issuer = "another-identity-service"
	other := newTestService(t, otherCfg)

	token, err := other.GenerateToken(ctx, "42", "admin")
	require.NoError(t, err)

	svc := newTestService(t, testAuthConfig())
	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_RejectsWrongAudience(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	otherCfg := testAuthConfig()
	otherCfg.Audience = "some-other-frontend"
	other := newTestService(t, otherCfg)

	token, err := other.GenerateToken(ctx, "42", "admin")
	require.NoError(t, err)

	svc := newTestService(t, testAuthConfig())
	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_RejectsExpiredTokenWithZeroSkew(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(t, testAuthConfig())

	// Mint a token whose 60-minute lifetime ran out one second ago. With
	// the default zero clock skew, even that must be rejected.
	svc.timeFunc = func() time.Time { return time.Now().Add(-60*time.Minute - time.Second) }
	token, err := svc.GenerateToken(ctx, "42", "admin")
	require.NoError(t, err)

	svc.timeFunc = time.Now
	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_AcceptsRecentlyExpiredWithSkew(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cfg := testAuthConfig()
	cfg.ClockSkewSeconds = 120
	svc := newTestService(t, cfg)

	svc.timeFunc = func() time.Time { return time.Now().Add(-60*time.Minute - time.Second) }
	token, err := svc.GenerateToken(ctx, "42", "admin")
	require.NoError(t, err)

	svc.timeFunc = time.Now
	_, err = svc.ValidateToken(ctx, token)
	assert.NoError(t, err)
}

func TestValidateToken_RejectsMalformedToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, testAuthConfig())

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.ValidateToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}
