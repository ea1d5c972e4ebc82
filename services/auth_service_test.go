package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tableside/repository"
	"tableside/services"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)

	user, err := svc.Register("Staff@Example.com ", "hunter2hunter2", "Sam", "Waiter")
	assert.NoError(t, err)
	assert.Equal(t, "staff@example.com", user.Email)
	assert.Equal(t, "staff", user.Role)
	assert.NotEqual(t, "hunter2hunter2", user.Password)

	token, got, err := svc.Login("staff@example.com", "hunter2hunter2")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, got.ID)

	_, _, err = svc.Login("staff@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.Register("staff@example.com", "hunter2hunter2", "Sam", "Again")
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}
