package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/orchestrahub/orchestra-backend/internal/domain"
	"github.com/orchestrahub/orchestra-backend/internal/dto"
	"github.com/orchestrahub/orchestra-backend/internal/logger"
	"github.com/orchestrahub/orchestra-backend/internal/mapper"
	"github.com/orchestrahub/orchestra-backend/internal/repos"
	"github.com/orchestrahub/orchestra-backend/internal/requestdata"
	"github.com/orchestrahub/orchestra-backend/internal/types"
	"github.com/orchestrahub/orchestra-backend/internal/utils"
)

type AuthService interface {
	Register(ctx context.Context, in *dto.CreateUserDto) (dto.UserDto, error)
	Login(ctx context.Context, in *dto.LoginDto) (dto.TokenPairDto, error)
	Refresh(ctx context.Context, refreshToken string) (dto.TokenPairDto, error)
	Logout(ctx context.Context, userID uint) error
	ContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type authService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      repos.UserRepo
	conductorRepo repos.ConductorRepo
	playerRepo    repos.PlayerRepo
	userTokenRepo repos.UserTokenRepo
	jwtSecretKey  string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	conductorRepo repos.ConductorRepo,
	playerRepo repos.PlayerRepo,
	userTokenRepo repos.UserTokenRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthService {
	return &authService{
		db:            db,
		log:           log.With("service", "AuthService"),
		userRepo:      userRepo,
		conductorRepo: conductorRepo,
		playerRepo:    playerRepo,
		userTokenRepo: userTokenRepo,
		jwtSecretKey:  jwtSecretKey,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// Register creates the account row and the matching role profile in one
// transaction: role 1 gets a conductor row, role 2 a player row. The two
// profiles are mutually exclusive by construction.
func (s *authService) Register(ctx context.Context, in *dto.CreateUserDto) (dto.UserDto, error) {
	if err := in.Validate(); err != nil {
		return dto.UserDto{}, err
	}
	if in.Role != types.RoleConductor && in.Role != types.RolePlayer {
		return dto.UserDto{}, &dto.ValidationError{Fields: []dto.FieldError{
			{Field: "Role", Message: "Role must be 1 (Conductor) or 2 (Player)"},
		}}
	}

	exists, err := s.userRepo.UsernameExists(ctx, nil, in.Username)
	if err != nil {
		return dto.UserDto{}, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return dto.UserDto{}, fmt.Errorf("username already taken: %w", domain.ErrConflict)
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return dto.UserDto{}, err
	}

	profileName := in.Name
	if profileName == "" {
		profileName = in.Username
	}

	user := &types.User{
		Username:  in.Username,
		Password:  hashed,
		Email:     in.Email,
		Role:      in.Role,
		Image:     in.Image,
		CreatedAt: time.Now().UTC(),
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.userRepo.Create(ctx, tx, user); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		switch in.Role {
		case types.RoleConductor:
			_, err = s.conductorRepo.Create(ctx, tx, &types.Conductor{UserID: user.ID, Name: profileName})
		case types.RolePlayer:
			_, err = s.playerRepo.Create(ctx, tx, &types.Player{UserID: user.ID, Name: profileName})
		}
		if err != nil {
			return fmt.Errorf("failed to create role profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return dto.UserDto{}, err
	}
	return mapper.UserToDto(user), nil
}

func (s *authService) Login(ctx context.Context, in *dto.LoginDto) (dto.TokenPairDto, error) {
	if err := in.Validate(); err != nil {
		return dto.TokenPairDto{}, err
	}
	user, err := s.userRepo.GetByUsername(ctx, nil, in.Username)
	if err != nil {
		return dto.TokenPairDto{}, fmt.Errorf("invalid credentials: %w", domain.ErrNotFound)
	}
	if !utils.CheckPassword(user.Password, in.Password) {
		return dto.TokenPairDto{}, fmt.Errorf("invalid credentials: %w", domain.ErrNotFound)
	}
	return s.issueTokens(ctx, user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (dto.TokenPairDto, error) {
	stored, err := s.userTokenRepo.GetByRefreshToken(ctx, nil, refreshToken)
	if err != nil {
		return dto.TokenPairDto{}, fmt.Errorf("unknown refresh token: %w", domain.ErrNotFound)
	}
	if stored.ExpiresAt.Before(time.Now()) {
		return dto.TokenPairDto{}, fmt.Errorf("refresh token expired: %w", domain.ErrNotFound)
	}
	user, err := s.userRepo.GetByID(ctx, nil, stored.UserID)
	if err != nil {
		return dto.TokenPairDto{}, err
	}
	return s.issueTokens(ctx, user)
}

func (s *authService) Logout(ctx context.Context, userID uint) error {
	return s.userTokenRepo.DeleteByUserID(ctx, nil, userID)
}

// issueTokens rotates the stored refresh token: any previous token for the
// user is dropped before the new one is written.
func (s *authService) issueTokens(ctx context.Context, user *types.User) (dto.TokenPairDto, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return dto.TokenPairDto{}, err
	}
	refresh := &types.UserToken{
		ID:           uuid.New(),
		UserID:       user.ID,
		RefreshToken: uuid.NewString(),
		ExpiresAt:    time.Now().Add(s.refreshTTL),
		CreatedAt:    time.Now().UTC(),
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userTokenRepo.DeleteByUserID(ctx, tx, user.ID); err != nil {
			return fmt.Errorf("failed to rotate refresh token: %w", err)
		}
		if _, err := s.userTokenRepo.Create(ctx, tx, refresh); err != nil {
			return fmt.Errorf("failed to store refresh token: %w", err)
		}
		return nil
	})
	if err != nil {
		return dto.TokenPairDto{}, err
	}
	return dto.TokenPairDto{AccessToken: accessToken, RefreshToken: refresh.RefreshToken}, nil
}

func (s *authService) generateAccessToken(user *types.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  fmt.Sprintf("%d", user.ID),
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// ContextFromToken verifies an access token and stamps the caller identity
// into the context for downstream handlers.
func (s *authService) ContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return ctx, fmt.Errorf("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx, fmt.Errorf("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	var userID uint
	if _, err := fmt.Sscanf(sub, "%d", &userID); err != nil || userID == 0 {
		return ctx, fmt.Errorf("invalid token subject")
	}
	role := 0
	if rawRole, ok := claims["role"].(float64); ok {
		role = int(rawRole)
	}
	return requestdata.WithRequestData(ctx, &requestdata.RequestData{UserID: userID, Role: role}), nil
}
