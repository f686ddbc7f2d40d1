package authutils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"pv-leads-backend/models"
)

func TestGetToken(t *testing.T) {
	tokenString, err := GetToken("user-1", "Marie Curie", models.UserRoleAdmin, "secret", 60)
	require.Nil(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.Nil(t, err)
	claims := token.Claims.(jwt.MapClaims)
	require.Equal(t, "user-1", claims["sub"])
	require.Equal(t, "ADMIN", claims["role"])
	require.Equal(t, "Marie Curie", claims["name"])
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("motdepasse")
	require.Nil(t, err)
	require.NotEqual(t, "motdepasse", hash)
	require.True(t, CheckPassword(hash, "motdepasse"))
	require.False(t, CheckPassword(hash, "autre"))
	require.False(t, CheckPassword("", "motdepasse"))
}
