package coordinator

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/agrocoop/distribution/cmd/config"
	"github.com/agrocoop/distribution/constant"
	"github.com/agrocoop/distribution/model"
	coordinatorrepo "github.com/agrocoop/distribution/repository/coordinator"
	redisrepo "github.com/agrocoop/distribution/repository/redis"
	"github.com/agrocoop/distribution/utils/errors"
	"github.com/agrocoop/distribution/utils/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type CoordinatorApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, tokenString string) error
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
}

type CoordinatorAppImpl struct {
	config          *config.Config
	coordinatorRepo coordinatorrepo.CoordinatorRepository
	redisRepo       redisrepo.Repository
}

func NewCoordinatorApp(config *config.Config, coordinatorRepo coordinatorrepo.CoordinatorRepository, redisRepo redisrepo.Repository) CoordinatorApp {
	return &CoordinatorAppImpl{
		config:          config,
		coordinatorRepo: coordinatorRepo,
		redisRepo:       redisRepo,
	}
}

func (s *CoordinatorAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	// Check if coordinator exists by email or phone
	existing, err := s.coordinatorRepo.Get(ctx, &model.CoordinatorFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err coordinatorRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	existing, err = s.coordinatorRepo.Get(ctx, &model.CoordinatorFilter{Phone: req.Phone})
	if err != nil {
		logger.Error("[Register] err coordinatorRepo.Get phone", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	entity := &model.CoordinatorEntity{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hashedPassword),
	}

	entity, err = s.coordinatorRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[Register] err coordinatorRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.RegisterResponse{
		Name:  entity.Name,
		Email: entity.Email,
	}, nil
}

func (s *CoordinatorAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	filter := &model.CoordinatorFilter{}
	if isEmail(req.Identifier) {
		filter.Email = req.Identifier
	} else {
		filter.Phone = req.Identifier
	}

	coord, err := s.coordinatorRepo.Get(ctx, filter)
	if err != nil {
		logger.Error("[Login] err coordinatorRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if coord == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(coord.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, jti, err := s.generateJWT(coord.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, jti, coord.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Name:  coord.Name,
		Email: coord.Email,
		Token: token,
	}, nil
}

// Logout drops the server-side session; the token itself stays valid
// until expiry but no longer passes ValidateToken.
func (s *CoordinatorAppImpl) Logout(ctx context.Context, tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *CoordinatorAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid claims")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id in token")
	}

	jti := claims.ID
	if jti == "" {
		return 0, fmt.Errorf("token missing jti")
	}

	redisUserID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return 0, fmt.Errorf("invalid or expired session")
	}

	if redisUserID != userID {
		return 0, fmt.Errorf("token does not match user session")
	}

	return userID, nil
}

// generateJWT creates a JWT token for the coordinator
func (s *CoordinatorAppImpl) generateJWT(userID uint64) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", userID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

// isEmail checks if identifier looks like an email
func isEmail(identifier string) bool {
	for _, r := range identifier {
		if r == '@' {
			return true
		}
	}
	return false
}
