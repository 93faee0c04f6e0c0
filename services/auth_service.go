package services

import (
	"strings"
	"time"

	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/entity"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/pkg/apperr"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/repository"
	"github.com/SudhiGovindThekkeparambilAnil/cuisine-cart-sub000/utils"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{userRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

type RegisterIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`

	// chef profile, ignored for diners
	CuisineType       string `json:"cuisineType"`
	Specialties       string `json:"specialties"`
	YearsOfExperience int    `json:"yearsOfExperience"`
}

func (s *AuthService) Register(in *RegisterIn) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !entity.ValidRole(in.Role) {
		return nil, apperr.Validationf("unknown role %q", in.Role)
	}

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Validationf("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		Name:     strings.TrimSpace(in.Name),
		Role:     in.Role,
	}
	if in.Role == entity.RoleChef {
		user.CuisineType = strings.TrimSpace(in.CuisineType)
		user.Specialties = strings.TrimSpace(in.Specialties)
		user.YearsOfExperience = in.YearsOfExperience
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, apperr.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.ErrUnauthorized
	}

	token, err := utils.GenerateToken(user, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	if err := s.userRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(userID)
}
