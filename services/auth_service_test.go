package services

import (
	"CourseCatalog/models"
	"CourseCatalog/repositories/mocks"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var testSecret = []byte("test_secret")

func TestRegisterAdminBootstrapsFirstAccount(t *testing.T) {
	mockRepo := new(mocks.AdminRepository)
	service := NewAuthService(mockRepo, testSecret, "")

	mockRepo.On("Count", mock.AnythingOfType("*int64")).Run(func(args mock.Arguments) {
		*(args.Get(0).(*int64)) = 0
	}).Return(nil)
	mockRepo.On("FindByEmail", "admin@example.com").
		Return(models.Admin{}, gorm.ErrRecordNotFound)
	mockRepo.On("Save", mock.AnythingOfType("*models.Admin")).Run(func(args mock.Arguments) {
		admin := args.Get(0).(*models.Admin)
		admin.ID = 1
	}).Return(nil)

	admin, token, err := service.RegisterAdmin("Admin", "admin@example.com", "password123", "")

	assert.NoError(t, err)
	assert.Equal(t, uint(1), admin.ID)
	assert.NotEmpty(t, token)
	// The stored password must be a bcrypt hash, not the plaintext.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("password123")))
}

func TestRegisterAdminClosedAfterBootstrap(t *testing.T) {
	mockRepo := new(mocks.AdminRepository)
	service := NewAuthService(mockRepo, testSecret, "")

	mockRepo.On("Count", mock.AnythingOfType("*int64")).Run(func(args mock.Arguments) {
		*(args.Get(0).(*int64)) = 1
	}).Return(nil)

	_, _, err := service.RegisterAdmin("Admin", "second@example.com", "password123", "")

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "Save")
}

func TestRegisterAdminRequiresSetupCode(t *testing.T) {
	mockRepo := new(mocks.AdminRepository)
	service := NewAuthService(mockRepo, testSecret, "sesame")

	_, _, err := service.RegisterAdmin("Admin", "admin@example.com", "password123", "wrong")
	assert.Error(t, err)

	mockRepo.On("FindByEmail", "admin@example.com").
		Return(models.Admin{}, gorm.ErrRecordNotFound)
	mockRepo.On("Save", mock.AnythingOfType("*models.Admin")).Return(nil)

	_, token, err := service.RegisterAdmin("Admin", "admin@example.com", "password123", "sesame")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginAdminWrongPassword(t *testing.T) {
	mockRepo := new(mocks.AdminRepository)
	service := NewAuthService(mockRepo, testSecret, "")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	mockRepo.On("FindByEmail", "admin@example.com").
		Return(models.Admin{ID: 1, Email: "admin@example.com", Password: string(hashed)}, nil)

	_, _, err := service.LoginAdmin("admin@example.com", "wrong-password")

	assert.Error(t, err)
}

func TestLoginAdminIssuesValidToken(t *testing.T) {
	mockRepo := new(mocks.AdminRepository)
	service := NewAuthService(mockRepo, testSecret, "")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	mockRepo.On("FindByEmail", "admin@example.com").
		Return(models.Admin{ID: 1, Name: "Admin", Email: "admin@example.com", Password: string(hashed)}, nil)

	_, token, err := service.LoginAdmin("admin@example.com", "correct-password")

	assert.NoError(t, err)

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return testSecret, nil
	})

	assert.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "admin@example.com", claims.Email)
}
