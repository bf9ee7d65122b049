package services

import (
	"CourseCatalog/models"
	"CourseCatalog/repositories"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrRegistrationClosed = errors.New("admin registration is closed")
	ErrInvalidSetupCode   = errors.New("invalid setup code")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

type AuthService struct {
	AdminRepo repositories.AdminRepository
	JWTSecret []byte
	SetupCode string
}

func NewAuthService(adminRepo repositories.AdminRepository, jwtSecret []byte, setupCode string) *AuthService {
	return &AuthService{AdminRepo: adminRepo, JWTSecret: jwtSecret, SetupCode: setupCode}
}

// RegisterAdmin creates an admin account. The first admin can be created
// freely when no setup code is configured; after that the code is required.
func (s *AuthService) RegisterAdmin(name, email, password, setupCode string) (models.Admin, string, error) {
	if password == "" {
		return models.Admin{}, "", fmt.Errorf("%w: password cannot be empty", ErrInvalidInput)
	}

	if s.SetupCode != "" {
		if setupCode != s.SetupCode {
			return models.Admin{}, "", ErrInvalidSetupCode
		}
	} else {
		var count int64
		if err := s.AdminRepo.Count(&count); err != nil {
			return models.Admin{}, "", err
		}
		if count > 0 {
			return models.Admin{}, "", ErrRegistrationClosed
		}
	}

	if _, err := s.AdminRepo.FindByEmail(email); err == nil {
		return models.Admin{}, "", ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Admin{}, "", err
	}

	admin := models.Admin{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}

	if err := s.AdminRepo.Save(&admin); err != nil {
		return models.Admin{}, "", err
	}

	token, err := s.generateToken(admin)
	if err != nil {
		return models.Admin{}, "", err
	}

	return admin, token, nil
}

func (s *AuthService) LoginAdmin(email, password string) (models.Admin, string, error) {
	admin, err := s.AdminRepo.FindByEmail(email)
	if err != nil {
		return models.Admin{}, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return models.Admin{}, "", ErrInvalidCredentials
	}

	token, err := s.generateToken(admin)
	if err != nil {
		return models.Admin{}, "", err
	}

	return admin, token, nil
}

func (s *AuthService) generateToken(admin models.Admin) (string, error) {
	claims := &Claims{
		Email: admin.Email,
		Name:  admin.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.JWTSecret)
}
