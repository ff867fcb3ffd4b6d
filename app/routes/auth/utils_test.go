package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhatthien88/website-truong-mam-non/app/config"
	"github.com/nhatthien88/website-truong-mam-non/app/models"
)

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
	m.Run()
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("matkhau123")
	require.NoError(t, err)
	assert.NotEqual(t, "matkhau123", hash)

	assert.True(t, CheckPasswordHash("matkhau123", hash))
	assert.False(t, CheckPasswordHash("saimatkhau", hash))
	assert.False(t, CheckPasswordHash("matkhau123", "not-a-hash"))
}

func TestGenerateAndValidateJWT(t *testing.T) {
	user := &models.User{
		ID:       "u-1",
		Username: "teacher1",
		FullName: "Cô Lan",
		Role:     models.RoleTeacher,
	}

	token, err := GenerateJWT(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "teacher1", claims.Username)
	assert.Equal(t, "Cô Lan", claims.FullName)
	assert.Equal(t, models.RoleTeacher, claims.Role)
}

func TestValidateJWTRejectsTampered(t *testing.T) {
	user := &models.User{ID: "u-1", Username: "teacher1", Role: models.RoleTeacher}
	token, err := GenerateJWT(user)
	require.NoError(t, err)

	_, err = ValidateJWT(token + "x")
	assert.Error(t, err)

	_, err = ValidateJWT("not.a.token")
	assert.Error(t, err)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT(&models.User{ID: "u-1", Username: "teacher1", Role: models.RoleTeacher})
	require.NoError(t, err)

	orig := config.AppConfig.JWTSecret
	config.AppConfig.JWTSecret = "other-secret"
	defer func() { config.AppConfig.JWTSecret = orig }()

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}
