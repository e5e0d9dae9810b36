package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yamdb-api/internal/data/entity"
	"yamdb-api/internal/data/repository"
	"yamdb-api/internal/dto/request"
	"yamdb-api/internal/dto/response"
	"yamdb-api/pkg/token"
	"yamdb-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	SignUp(ctx context.Context, req *request.SignUpRequest) (*response.SignUpResponse, error)
	Token(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error)
}

type authService struct {
	users        repository.UserRepository
	notifier     ConfirmationNotifier
	issuer       TokenIssuer
	generateCode func() int
	log          *zap.Logger
}

func NewAuthService(
	users repository.UserRepository,
	notifier ConfirmationNotifier,
	issuer TokenIssuer,
	log *zap.Logger,
) AuthService {
	return &authService{
		users:        users,
		notifier:     notifier,
		issuer:       issuer,
		generateCode: utils.GenerateConfirmationCode,
		log:          log.With(zap.String("service", "auth")),
	}
}

// SignUp registers a new (username, email) pair or re-sends a fresh code to
// an existing exact pair. Either way exactly one mail goes out.
func (s *authService) SignUp(ctx context.Context, req *request.SignUpRequest) (*response.SignUpResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Sign-up validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	byName, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to check username")
	}

	byEmail, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}

	code := s.generateCode()

	var user *entity.User
	switch {
	case byName != nil && byEmail != nil && byName.ID == byEmail.ID:
		user = byName
		if err := s.users.SetConfirmationCode(ctx, user.ID, &code); err != nil {
			s.log.Error("Failed to store confirmation code", zap.Error(err), zap.String("user_id", user.ID.String()))
			return nil, fmt.Errorf("failed to store confirmation code")
		}
		s.log.Info("Confirmation code regenerated", zap.String("user_id", user.ID.String()))

	case byName != nil:
		return nil, fmt.Errorf("username %s is already taken", req.Username)

	case byEmail != nil:
		return nil, fmt.Errorf("email %s is already registered", req.Email)

	default:
		now := time.Now()
		user = &entity.User{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Username:         req.Username,
			Email:            req.Email,
			Role:             entity.RoleUser,
			ConfirmationCode: &code,
		}

		if err := s.users.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return nil, fmt.Errorf("username or email is already taken")
			}
			s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
			return nil, fmt.Errorf("failed to create account")
		}
		s.log.Info("User signed up",
			zap.String("user_id", user.ID.String()),
			zap.String("username", user.Username))
	}

	if err := s.notifier.SendConfirmationCode(ctx, user.Email, code); err != nil {
		s.log.Error("Failed to send confirmation code", zap.Error(err), zap.String("email", user.Email))
		return nil, fmt.Errorf("failed to send confirmation code")
	}

	return &response.SignUpResponse{
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

// Token exchanges a matching confirmation code for an access token. The code
// is single use.
func (s *authService) Token(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Token validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", req.Username)
	}

	code, err := utils.ParseConfirmationCode(string(req.ConfirmationCode))
	if err != nil || user.ConfirmationCode == nil || *user.ConfirmationCode != code {
		s.log.Warn("Confirmation code mismatch", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("invalid confirmation code")
	}

	// Only the request that clears the code may mint a token.
	consumed, err := s.users.ConsumeConfirmationCode(ctx, user.ID, code)
	if err != nil {
		s.log.Error("Failed to consume confirmation code", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to issue token")
	}
	if !consumed {
		s.log.Warn("Confirmation code already used", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("invalid confirmation code")
	}

	issued, err := s.issuer.IssueForUser(token.Identity{UserID: user.ID, Username: user.Username})
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to issue token")
	}

	s.log.Info("Token issued", zap.String("user_id", user.ID.String()))
	return &response.TokenResponse{Token: issued["token"]}, nil
}
