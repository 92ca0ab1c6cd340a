package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourist-safety/apperrors"
)

func TestPasswordPolicy(t *testing.T) {
	assert.NoError(t, CheckPasswordPolicy("longpass1"))
	assert.NoError(t, CheckPasswordPolicy("12345678"))

	err := CheckPasswordPolicy("short77")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("longpass1")
	require.NoError(t, err)
	assert.NotEqual(t, "longpass1", hash)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	assert.True(t, VerifyPassword(hash, "longpass1"))
	assert.False(t, VerifyPassword(hash, "wrongpass"))
	assert.False(t, VerifyPassword("", "longpass1"))
	assert.False(t, VerifyPassword("not-a-hash", "longpass1"))
}

func TestGenerateOpaqueToken(t *testing.T) {
	a, err := GenerateOpaqueToken()
	require.NoError(t, err)
	b, err := GenerateOpaqueToken()
	require.NoError(t, err)

	assert.Len(t, a, 43)
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "+")
	assert.NotContains(t, a, "/")
	assert.NotContains(t, a, "=")
}

func TestAdminToken(t *testing.T) {
	token, err := GenerateAdminToken("secret", time.Hour, 7, "admin@example.com")
	require.NoError(t, err)

	t.Run("round trips claims", func(t *testing.T) {
		claims, err := ValidateToken("secret", token)
		require.NoError(t, err)
		assert.Equal(t, 7, claims.UserID)
		assert.Equal(t, "admin@example.com", claims.Email)
		assert.Equal(t, RoleAdmin, claims.Role)
	})

	t.Run("rejects wrong secret", func(t *testing.T) {
		_, err := ValidateToken("other", token)
		assert.Error(t, err)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired, err := GenerateAdminToken("secret", -time.Minute, 7, "admin@example.com")
		require.NoError(t, err)
		_, err = ValidateToken("secret", expired)
		assert.Error(t, err)
	})
}

func TestValidateImage(t *testing.T) {
	assert.NoError(t, ValidateImage("me.JPG", 1024, 5<<20))
	assert.NoError(t, ValidateImage("me.webp", 1024, 0))

	for name, tc := range map[string]struct {
		filename string
		size     int64
	}{
		"empty file":   {"me.png", 0},
		"too large":    {"me.png", 6 << 20},
		"wrong type":   {"me.pdf", 1024},
		"no extension": {"photo", 1024},
	} {
		t.Run(name, func(t *testing.T) {
			err := ValidateImage(tc.filename, tc.size, 5<<20)
			require.Error(t, err)
			assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
		})
	}
}
