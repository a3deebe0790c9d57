package auth

import (
	"testing"
	"time"

	"accounts/config"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{Token: &config.TokenConfig{TTL: time.Hour}}
	cfg.SecretKey.Token = secret

	return cfg
}

func TestJWTService_RegistrationClaimsRoundTrip(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig("test_token_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := tokenService.Issue(service.NewRegistrationClaims(userID))
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	var claims service.RegistrationClaims
	require.NoError(t, tokenService.Parse(token, &claims))
	assert.Equal(t, userID.String(), claims.User.ID)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_RegistrationClaimsCarryOnlyUserID(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig("secret"))
	require.NoError(t, err)

	token, err := tokenService.Issue(service.NewRegistrationClaims(uuid.New()))
	require.NoError(t, err)

	raw := jwt.MapClaims{}
	require.NoError(t, tokenService.Parse(token, raw))
	assert.ElementsMatch(t, []string{"user", "iat", "exp"}, mapKeys(raw))

	user, ok := raw["user"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, user, 1)
	assert.Contains(t, user, "id")
}

func TestJWTService_LoginClaimsCarryIDAndEmail(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig("secret"))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := tokenService.Issue(service.NewLoginClaims(userID, "a@x.com"))
	require.NoError(t, err)

	raw := jwt.MapClaims{}
	require.NoError(t, tokenService.Parse(token, raw))
	assert.ElementsMatch(t, []string{"id", "email", "iat", "exp"}, mapKeys(raw))
	assert.Equal(t, userID.String(), raw["id"])
	assert.Equal(t, "a@x.com", raw["email"])
}

func TestJWTService_WrongSecretIsRejected(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("secret-one"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("secret-two"))
	require.NoError(t, err)

	token, err := issuer.Issue(service.NewLoginClaims(uuid.New(), "a@x.com"))
	require.NoError(t, err)

	var claims service.LoginClaims
	err = verifier.Parse(token, &claims)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenSignatureInvalid))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig("secret"))
	require.NoError(t, err)

	svc, ok := tokenService.(*jwtService)
	require.True(t, ok)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.Issue(service.NewLoginClaims(uuid.New(), "a@x.com"))
	require.NoError(t, err)

	svc.now = time.Now
	var claims service.LoginClaims
	err = svc.Parse(token, &claims)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestJWTService_InvalidToken(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig("secret"))
	require.NoError(t, err)

	var claims service.LoginClaims
	err = tokenService.Parse("clearly-not-a-jwt-token-format", &claims)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenMalformed))
}

func TestJWTService_NilClaims(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig("secret"))
	require.NoError(t, err)

	_, err = tokenService.Issue(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenIssuanceFailed))
}

func TestJWTService_EmptySecret(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig(""))
	assert.Error(t, err)
	assert.Nil(t, tokenService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_TTL(t *testing.T) {
	tokenService, err := NewJWTService(newTestJWTConfig("secret"))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, tokenService.(*jwtService).ttl)

	cfg := newTestJWTConfig("secret")
	cfg.Token = nil
	tokenService, err = NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, tokenService.(*jwtService).ttl)
}

func mapKeys(m jwt.MapClaims) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	return keys
}
