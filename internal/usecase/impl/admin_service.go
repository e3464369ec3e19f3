package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"inkwell/config"
	deliverycontext "inkwell/internal/delivery/context"
	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"
	"inkwell/internal/domain/service"
	"inkwell/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager   repository.TransactionManager
	adminRepo   repository.AdminRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	tokens      service.SessionTokenService
	secretKey   string
	sessionTTL  time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AdminRepo   repository.AdminRepository
	SessionRepo repository.SessionRepository
	Hasher      service.PasswordHasher
	Tokens      service.SessionTokenService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:   params.TxManager,
		adminRepo:   params.AdminRepo,
		sessionRepo: params.SessionRepo,
		hasher:      params.Hasher,
		tokens:      params.Tokens,
		secretKey:   params.Config.Admin.SecretKey,
		sessionTTL:  params.Config.Admin.SessionTTL,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an admin account gated by the bootstrap secret, then
// issues the first session for it.
func (srv *adminService) Register(ctx context.Context, input *usecase.RegisterAdminInput) (*usecase.AdminSessionOutput, error) {
	if srv.secretKey == "" ||
		subtle.ConstantTimeCompare([]byte(input.SecretKey), []byte(srv.secretKey)) != 1 {
		srv.log(ctx).Warn("Admin registration rejected", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrSecretKeyMismatch, "bootstrap secret mismatch")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var output *usecase.AdminSessionOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.AdminRepo()
		sessionRepo := repoFactory.SessionRepo()

		_, err := adminRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrAdminAlreadyExists, "email taken")
		}
		if !errors.Is(err, repository.ErrAdminNotFound) {
			return errors.Wrap(err, "failed to check existing admin")
		}

		now := srv.now()
		admin := &entity.Admin{
			ID:           uuid.New(),
			Email:        input.Email,
			Name:         input.Name,
			PasswordHash: passwordHash,
			Role:         entity.AdminRoleSuperAdmin,
			LastLogin:    now,
			CreatedAt:    now,
		}

		if err := adminRepo.Create(ctx, admin); err != nil {
			return errors.Wrap(err, "failed to create admin")
		}

		output, err = srv.issueSession(ctx, sessionRepo, admin)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Admin registered", slog.String("email", input.Email))

	return output, nil
}

// Login validates credentials and issues a fresh session.
func (srv *adminService) Login(ctx context.Context, input *usecase.AdminLoginInput) (*usecase.AdminSessionOutput, error) {
	var output *usecase.AdminSessionOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.AdminRepo()
		sessionRepo := repoFactory.SessionRepo()

		admin, err := adminRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrAdminNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
			}

			return errors.Wrap(err, "failed to find admin")
		}

		if !srv.hasher.Check(input.Password, admin.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
		}

		admin.LastLogin = srv.now()
		if err := adminRepo.Update(ctx, admin); err != nil {
			return errors.Wrap(err, "failed to record login time")
		}

		// Opportunistic cleanup keeps the session table from accumulating
		// expired rows; sessions have no background sweeper.
		if err := sessionRepo.DeleteExpired(ctx); err != nil {
			return errors.Wrap(err, "failed to prune expired sessions")
		}

		output, err = srv.issueSession(ctx, sessionRepo, admin)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Admin login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Admin logged in", slog.String("email", input.Email))

	return output, nil
}

// ValidateSession resolves a raw token to an admin profile. Every
// admin-mutating endpoint passes through here before any side effect.
func (srv *adminService) ValidateSession(ctx context.Context, token string) (*entity.AdminProfile, error) {
	if token == "" {
		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "missing token")
	}

	session, err := srv.sessionRepo.FindByTokenHash(ctx, srv.tokens.HashToken(token))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "unknown session")
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	if session.IsExpired(srv.now()) {
		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "session expired")
	}

	admin, err := srv.adminRepo.FindByID(ctx, session.AdminID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "admin no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find admin")
	}

	return admin.Profile(), nil
}

// Logout revokes the session server-side. A token already gone is a no-op so
// logout stays idempotent.
func (srv *adminService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := srv.sessionRepo.DeleteByTokenHash(ctx, srv.tokens.HashToken(token)); err != nil &&
		!errors.Is(err, repository.ErrSessionNotFound) {
		return errors.Wrap(err, "failed to revoke session")
	}

	return nil
}

// ResetCompetition clears all votes: records, entry tallies and user flags,
// in one transaction.
func (srv *adminService) ResetCompetition(ctx context.Context) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.VoteRepo().DeleteAll(ctx); err != nil {
			return errors.Wrap(err, "failed to delete vote records")
		}
		if err := repoFactory.EntryRepo().ResetVotes(ctx); err != nil {
			return errors.Wrap(err, "failed to reset entry tallies")
		}
		if err := repoFactory.UserRepo().ClearVoteFlags(ctx); err != nil {
			return errors.Wrap(err, "failed to clear user vote flags")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Competition reset failed", slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Competition reset completed")

	return nil
}

func (srv *adminService) issueSession(ctx context.Context, sessionRepo repository.SessionRepository, admin *entity.Admin) (*usecase.AdminSessionOutput, error) {
	raw, hash, err := srv.tokens.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	now := srv.now()
	session := &entity.Session{
		ID:        uuid.New(),
		AdminID:   admin.ID,
		TokenHash: hash,
		ExpiresAt: now.Add(srv.sessionTTL),
		CreatedAt: now,
	}

	if err := sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	return &usecase.AdminSessionOutput{
		Admin:     admin.Profile(),
		Token:     raw,
		ExpiresAt: session.ExpiresAt,
	}, nil
}
