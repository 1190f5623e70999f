//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"event-registration/internal/pkg/jwt"
	"event-registration/internal/pkg/password"
	"event-registration/internal/usecase"
	"event-registration/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	hash, err := password.HashPassword("correct-horse")
	require.NoError(t, err)
	jwtService := jwt.NewService("test-secret", time.Hour)
	cmds := commands.NewAuthCommands(commands.AdminCredentials{Username: "operator", PasswordHash: hash}, jwtService)

	t.Run("success: issues an admin token", func(t *testing.T) {
		res, err := cmds.Login(context.Background(), "operator", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "operator", res.Username)
		assert.Equal(t, time.Hour, res.ExpiresIn)

		operator, err := usecase.NewTokenValidator(jwtService).ValidateToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, "operator", operator)
	})

	testCases := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "operator", password: "wrong"},
		{name: "wrong username", username: "admin", password: "correct-horse"},
		{name: "empty password", username: "operator", password: ""},
	}
	for _, tc := range testCases {
		t.Run("error: "+tc.name, func(t *testing.T) {
			res, err := cmds.Login(context.Background(), tc.username, tc.password)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
		})
	}
}
