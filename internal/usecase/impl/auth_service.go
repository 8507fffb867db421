// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "carecorner/internal/delivery/context"
	"carecorner/internal/domain/entity"
	domainerrors "carecorner/internal/domain/errors"
	"carecorner/internal/domain/repository"
	"carecorner/internal/domain/service"
	"carecorner/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	credentialRepo repository.CredentialRepository
	hasher         service.PasswordHasher
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	CredentialRepo repository.CredentialRepository
	Hasher         service.PasswordHasher
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		credentialRepo: params.CredentialRepo,
		hasher:         params.Hasher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the input, hashes the password and inserts the user in one transaction.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if input == nil || isBlank(input.Name) || isBlank(input.Email) || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, classify(err, domainerrors.ErrHashingFailed)
	}

	user := &entity.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewUserRepository().Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrDuplicateEmail
		}

		srv.log(ctx).Error("Failed to register user", slog.Any("error", err))

		return nil, domainerrors.ErrRegistrationFailed.WithCause(err)
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", user.ID))

	return &usecase.AuthOutput{UserID: user.ID, Name: user.Name}, nil
}

// Login checks the credentials. Unknown emails and wrong passwords are indistinguishable
// to the caller. Outdated hashes are replaced after a successful check; failing to do so
// is logged and does not fail the login.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input == nil || isBlank(input.Email) || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		srv.log(ctx).Error("Failed to look up user", slog.Any("error", err))

		return nil, domainerrors.ErrLoginFailed.WithCause(err)
	}

	ok, err := srv.hasher.Verify(user.Password, input.Password)
	if err != nil {
		if errors.Is(err, domainerrors.ErrMalformedHash) {
			srv.log(ctx).Error("Stored password hash is not recognized; run the credential migration",
				slog.Int64("userID", user.ID), slog.Any("error", err))
		}

		return nil, classify(err, domainerrors.ErrLoginFailed)
	}
	if !ok {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if srv.hasher.NeedsRehash(user.Password) {
		srv.rehash(ctx, user.ID, input.Password)
	}

	return &usecase.AuthOutput{UserID: user.ID, Name: user.Name}, nil
}

func (srv *authService) rehash(ctx context.Context, userID int64, password string) {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Warn("Failed to rehash password", slog.Int64("userID", userID), slog.Any("error", err))

		return
	}

	if err := srv.credentialRepo.UpdatePassword(ctx, userID, hash); err != nil {
		srv.log(ctx).Warn("Failed to store rehashed password", slog.Int64("userID", userID), slog.Any("error", err))

		return
	}

	srv.log(ctx).Info("Password hash upgraded", slog.Int64("userID", userID))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
