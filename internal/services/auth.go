package services

import (
	"context"
	"fmt"

	"turftrack/internal/dto"
	"turftrack/internal/entities"
	"turftrack/internal/repositories"
	apperrors "turftrack/pkg/errors"
	"turftrack/pkg/service"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepository  repositories.UserRepositoryInterface
	cacheRepository repositories.CacheRepositoryInterface
	jwtService      service.JWTService
	logger          *zap.Logger
}

func NewAuthService(
	userRepository repositories.UserRepositoryInterface,
	cacheRepository repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepository:  userRepository,
		cacheRepository: cacheRepository,
		jwtService:      jwtService,
		logger:          logger,
	}
}

func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDTO) (*dto.TokenPairDTO, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepository.CreateUser(ctx, entities.User{
		Email:        payload.Email,
		PasswordHash: string(hash),
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.Uint64("userId", user.ID))
	return s.issueTokens(ctx, user.ID)
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error) {
	user, err := s.userRepository.FindByEmail(ctx, payload.Email)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user.ID)
}

// Refresh trades a refresh token for a new pair. The token must match the
// one stored in redis for the user, so a logout or rotation invalidates old
// tokens.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	stored, err := s.cacheRepository.Get(ctx, refreshTokenCacheKey(claims.UserID))
	if err != nil || stored != refreshToken {
		return nil, apperrors.ErrInvalidToken
	}

	return s.issueTokens(ctx, claims.UserID)
}

func (s *AuthService) GetProfile(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt.Format("2006-01-02, 15:04:05"),
	}, nil
}

func (s *AuthService) issueTokens(ctx context.Context, userID uint64) (*dto.TokenPairDTO, error) {
	access, refresh, err := s.jwtService.GenerateTokens(userID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheRepository.Set(ctx, refreshTokenCacheKey(userID), refresh, s.jwtService.GetRefreshTokenTTL()); err != nil {
		s.logger.Error("failed to store refresh token", zap.Uint64("userId", userID), zap.Error(err))
		return nil, err
	}

	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

func refreshTokenCacheKey(userID uint64) string {
	return fmt.Sprintf("refresh_token:%d", userID)
}
