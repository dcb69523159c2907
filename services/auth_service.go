package services

import (
	"errors"
	"time"

	"github.com/aledanee/blotch/config"
	"github.com/aledanee/blotch/models"
	"github.com/aledanee/blotch/repositories"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req models.RegisterRequest) (*models.User, error)
	IssueTokens(email, password string) (*models.TokenResponse, error)
	Refresh(refreshToken string) (*models.TokenResponse, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
}

type authService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.RefreshTokenRepository
}

func NewAuthService(userRepo repositories.UserRepository, tokenRepo repositories.RefreshTokenRepository) AuthService {
	return &authService{userRepo: userRepo, tokenRepo: tokenRepo}
}

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword treats a malformed stored hash the same as a mismatch.
func CheckPassword(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

func (s *authService) Register(req models.RegisterRequest) (*models.User, error) {
	// Pre-check for a friendlier message; the unique constraints on the
	// write below are the authoritative guard.
	if _, err := s.userRepo.GetByUsername(req.Username); err == nil {
		return nil, models.ConflictError("Username or email already registered")
	}
	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, models.ConflictError("Username or email already registered")
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashed,
		Role:      models.RoleUser,
		CreatedAt: time.Now().UTC(),
		Disabled:  false,
	}

	if err := s.userRepo.Create(user); err != nil {
		if repositories.IsDuplicateKey(err) {
			return nil, models.ConflictError("Username or email already registered")
		}
		return nil, err
	}

	return user, nil
}

// authenticate deliberately returns a single failure for both a missing
// user and a wrong password.
func (s *authService) authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.UnauthenticatedError("Incorrect email or password")
		}
		return nil, err
	}

	if !CheckPassword(password, user.Password) {
		return nil, models.UnauthenticatedError("Incorrect email or password")
	}

	return user, nil
}

func (s *authService) IssueTokens(email, password string) (*models.TokenResponse, error) {
	user, err := s.authenticate(email, password)
	if err != nil {
		return nil, err
	}

	accessToken, err := generateAccessToken(user.Email)
	if err != nil {
		return nil, err
	}

	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		ExpiresAt: time.Now().UTC().Add(config.RefreshExpiration),
	}
	if err := s.tokenRepo.Create(refresh); err != nil {
		return nil, err
	}

	return &models.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refresh.Token,
		TokenType:    "bearer",
	}, nil
}

// Refresh exchanges a live refresh token for a fresh access token and
// rotates the refresh token row.
func (s *authService) Refresh(refreshToken string) (*models.TokenResponse, error) {
	stored, err := s.tokenRepo.GetByToken(refreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.UnauthenticatedError("Invalid refresh token")
		}
		return nil, err
	}

	if time.Now().UTC().After(stored.ExpiresAt) {
		s.tokenRepo.Delete(stored.ID)
		return nil, models.UnauthenticatedError("Refresh token expired")
	}

	user, err := s.userRepo.GetByID(stored.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.UnauthenticatedError("Invalid refresh token")
		}
		return nil, err
	}

	accessToken, err := generateAccessToken(user.Email)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.Delete(stored.ID); err != nil {
		return nil, err
	}
	rotated := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		ExpiresAt: time.Now().UTC().Add(config.RefreshExpiration),
	}
	if err := s.tokenRepo.Create(rotated); err != nil {
		return nil, err
	}

	return &models.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: rotated.Token,
		TokenType:    "bearer",
	}, nil
}

func (s *authService) GetUserByEmail(email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.UnauthenticatedError("Could not validate credentials")
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFoundError("User not found")
		}
		return nil, err
	}
	return user, nil
}

func generateAccessToken(email string) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   email,
		ExpiresAt: jwt.NewNumericDate(now.Add(config.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(config.JWTSecret)
}
