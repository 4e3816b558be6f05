package services

import (
	"errors"
	"time"

	"cashier_app/internal/models"
	"cashier_app/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrUserExists         = errors.New("user already exists")
	ErrMissingFields      = errors.New("please fill all fields")
	ErrInvalidRole        = errors.New("role must be admin or kasir")
)

type AuthService interface {
	Login(username, password string) (*models.User, string, error)
	Register(username, password, role string) (uint, error)
}

type authService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret string, tokenTTL time.Duration) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Login verifies the stored bcrypt hash and issues a signed token carrying
// the user's id and role.
func (s *authService) Login(username, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"id":   user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) Register(username, password, role string) (uint, error) {
	if username == "" || password == "" || role == "" {
		return 0, ErrMissingFields
	}
	if !models.ValidRole(role) {
		return 0, ErrInvalidRole
	}

	_, err := s.userRepo.GetByUsername(username)
	if err == nil {
		return 0, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	user := &models.User{
		Username: username,
		Password: string(hashedPassword),
		Role:     role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return 0, err
	}

	return user.ID, nil
}
