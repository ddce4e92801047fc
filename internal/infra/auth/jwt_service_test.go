package auth

import (
	"testing"
	"time"

	"pharmaduty/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig(""))
	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"pharmacist", "admin"}

	token, err := svc.IssueAccessToken(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	t.Parallel()

	secret := "test_access_secret_key_very_long_for_testing"
	svc, err := NewJWTService(newTestConfig(secret))
	require.NoError(t, err)

	other, err := NewJWTService(newTestConfig("another_secret_key_for_testing_only"))
	require.NoError(t, err)
	foreign, err := other.IssueAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	expired := &jwtService{
		accessSecret: []byte(secret),
		accessTTL:    time.Minute,
		now:          func() time.Time { return time.Now().Add(-time.Hour) },
	}
	expiredToken, err := expired.IssueAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: uuid.NewString(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "foreign signature", token: foreign},
		{name: "expired", token: expiredToken},
		{name: "subject is not a uuid", token: badSubject},
		{name: "missing expiry", token: noExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claims, err := svc.ValidateToken(tt.token)
			require.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
