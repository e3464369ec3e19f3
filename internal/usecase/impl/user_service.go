package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "inkwell/internal/delivery/context"
	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"
	"inkwell/internal/domain/service"
	"inkwell/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface: the bridge between the
// external sign-in identity and the internal user record.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	verifier  service.IdentityVerifier
	now       func() time.Time
	logger    *slog.Logger
}

// NewUserService is the constructor for userService. The verifier may be nil
// when no Google OAuth client ID is configured; sign-in then trusts the
// posted profile fields.
func NewUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	verifier service.IdentityVerifier,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager: txManager,
		userRepo:  userRepo,
		verifier:  verifier,
		now:       time.Now,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignIn provisions the user on first sight and refreshes the stored profile
// on later sign-ins.
func (srv *userService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	identity := &service.ExternalIdentity{
		UID:         input.UID,
		Email:       input.Email,
		DisplayName: input.DisplayName,
		PhotoURL:    input.PhotoURL,
	}

	if srv.verifier != nil && input.IDToken != "" {
		verified, err := srv.verifier.VerifyIDToken(ctx, input.IDToken)
		if err != nil {
			srv.log(ctx).Warn("ID token verification failed", slog.String("uid", input.UID), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrIDTokenInvalid, err.Error())
		}
		identity = verified
	}

	if identity.UID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("uid is required")
	}

	var signedIn *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, identity.UID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return srv.provisionUser(ctx, userRepo, identity, &signedIn)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		return srv.refreshProfile(ctx, userRepo, user, identity, &signedIn)
	})
	if err != nil {
		srv.log(ctx).Error("Sign-in failed", slog.String("uid", identity.UID), slog.Any("error", err))

		return nil, err
	}

	return &usecase.SignInOutput{User: signedIn}, nil
}

// GetUser retrieves a user by ID.
func (srv *userService) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "no such user")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *userService) provisionUser(
	ctx context.Context,
	userRepo repository.UserRepository,
	identity *service.ExternalIdentity,
	signedIn **entity.User,
) error {
	now := srv.now()
	user := &entity.User{
		ID:          identity.UID,
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
		PhotoURL:    identity.PhotoURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := userRepo.Create(ctx, user); err != nil {
		return errors.Wrap(err, "failed to provision user")
	}

	srv.log(ctx).Info("User provisioned", slog.String("uid", identity.UID), slog.String("email", identity.Email))
	*signedIn = user

	return nil
}

func (srv *userService) refreshProfile(
	ctx context.Context,
	userRepo repository.UserRepository,
	user *entity.User,
	identity *service.ExternalIdentity,
	signedIn **entity.User,
) error {
	changed := false
	if identity.Email != "" && identity.Email != user.Email {
		user.Email = identity.Email
		changed = true
	}
	if identity.DisplayName != "" && identity.DisplayName != user.DisplayName {
		user.DisplayName = identity.DisplayName
		changed = true
	}
	if identity.PhotoURL != "" && identity.PhotoURL != user.PhotoURL {
		user.PhotoURL = identity.PhotoURL
		changed = true
	}

	if changed {
		user.UpdatedAt = srv.now()
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to refresh user profile")
		}
	}

	*signedIn = user

	return nil
}
