package service

import (
	"context"
	"time"

	"github.com/ReponseBlaise/Preferred-System/internal/apierror"
	"github.com/ReponseBlaise/Preferred-System/internal/authz"
	"github.com/ReponseBlaise/Preferred-System/internal/config"
	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/model"
	"github.com/ReponseBlaise/Preferred-System/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authService struct {
	repo  repository.UserRepository
	audit AuditService
	cfg   *config.Config
}

func NewAuthService(repo repository.UserRepository, audit AuditService, cfg *config.Config) AuthService {
	return &authService{repo: repo, audit: audit, cfg: cfg}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	role := authz.Role(req.Role)
	if !role.Valid() {
		return nil, apierror.Validation("invalid role")
	}

	if existing, err := s.repo.FindByUsernameOrEmail(ctx, req.Username, req.Email); err == nil && existing != nil {
		return nil, apierror.Conflict("username or email already in use")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, apierror.Internal("failed to hash password")
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         role,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apierror.Internal("failed to create user")
	}

	s.audit.Record(ctx, &user.ID, model.AuditCreate, "users", &user.ID)
	return userToResponse(user), nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apierror.Authentication("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.Authentication("invalid credentials")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, apierror.Internal("failed to sign token")
	}

	s.audit.Record(ctx, &user.ID, model.AuditLogin, "users", &user.ID)

	return &dto.LoginResponse{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: s.cfg.JWTExpirationHours * 3600,
		User:      *userToResponse(user),
	}, nil
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, apierror.NotFound("user not found")
	}
	return userToResponse(user), nil
}

func (s *authService) generateToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"role":      string(user.Role),
		"full_name": user.FullName,
		"exp":       time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func userToResponse(u *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     string(u.Role),
	}
}
