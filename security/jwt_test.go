package security

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"taskchat-api/config/common"
	"taskchat-api/entity"
)

func testConfig() *common.Config {
	v := viper.New()
	v.Set("JWT_SECRET", "test-secret")
	return &common.Config{Viper: v}
}

func TestGenerateAndVerifyToken(t *testing.T) {
	jwt := NewJWT(testConfig())

	user := &entity.User{}
	user.ID = "user-123"

	token, err := jwt.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwt.VerifyJwtToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims["user_id"])
}

func TestGetUserIdFromToken(t *testing.T) {
	jwt := NewJWT(testConfig())

	user := &entity.User{}
	user.ID = "user-456"

	token, err := jwt.GenerateToken(user)
	require.NoError(t, err)

	userID, err := jwt.GetUserIdFromToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-456", userID)
}

func TestVerifyRejectsGarbageToken(t *testing.T) {
	jwt := NewJWT(testConfig())

	_, err := jwt.VerifyJwtToken("not.a.token")
	require.Error(t, err)
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	jwt := NewJWT(testConfig())

	user := &entity.User{}
	user.ID = "user-789"
	token, err := jwt.GenerateToken(user)
	require.NoError(t, err)

	other := viper.New()
	other.Set("JWT_SECRET", "another-secret")
	foreign := NewJWT(&common.Config{Viper: other})

	_, err = foreign.VerifyJwtToken(token)
	require.Error(t, err)
}
