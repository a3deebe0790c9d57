// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/errors"
	"accounts/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	avatars      service.AvatarResolver
	validator    service.InputValidator
	publisher    service.EventPublisher
	logger       *slog.Logger
	now          func() time.Time

	decoyOnce   sync.Once
	decoyDigest string
}

// decoyPassword is hashed once to give unknown-email logins a digest to compare against.
const decoyPassword = "accounts-decoy-password"

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	AvatarResolver service.AvatarResolver
	Validator      service.InputValidator
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		avatars:      params.AvatarResolver,
		validator:    params.Validator,
		publisher:    params.Publisher,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates an account for a new email and returns a token identifying it.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Starting registration", slog.String("email", input.Email))

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		srv.log(ctx).Info("Registration rejected, email already registered", slog.String("email", input.Email))

		return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to look up user by email")
	}

	avatarURL := srv.avatars.URL(input.Email)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		AvatarURL:    avatarURL,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			srv.log(ctx).Info("Registration lost a concurrent race for email", slog.String("email", input.Email))
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	token, err := srv.tokenService.Issue(service.NewRegistrationClaims(newUser.ID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue registration token")
	}

	srv.publish(ctx, service.AccountEventRegistered, newUser)
	srv.log(ctx).Info("User registered", slog.String("userID", newUser.ID.String()))

	return &usecase.RegisterOutput{Token: token, User: newUser}, nil
}

// Login verifies the credentials, records the login time and returns a token.
// An unknown email and a wrong password fail identically.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.compareDecoy(input.Password)
			srv.log(ctx).Info("Login rejected", slog.String("reason", "unknown email"))

			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "failed to look up user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.String("reason", "password mismatch"), slog.String("userID", user.ID.String()))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	firstLogin := !user.HasLoggedIn()
	loginAt := srv.now().UTC()
	if err := srv.userRepo.UpdateLastLogin(ctx, user.ID, loginAt); err != nil {
		return nil, errors.Wrap(err, "failed to record last login")
	}
	user.LastLoginAt = &loginAt

	token, err := srv.tokenService.Issue(service.NewLoginClaims(user.ID, user.Email))
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue login token")
	}

	srv.publish(ctx, service.AccountEventLoggedIn, user)
	srv.log(ctx).Info("User logged in", slog.String("userID", user.ID.String()), slog.Bool("firstLogin", firstLogin))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// compareDecoy runs one password comparison against a decoy digest so a login
// for an unknown email costs about as much as a wrong password.
func (srv *userService) compareDecoy(password string) {
	srv.decoyOnce.Do(func() {
		digest, err := srv.hasher.Hash(decoyPassword)
		if err != nil {
			srv.logger.Warn("Failed to hash decoy password", slog.Any("error", err))

			return
		}
		srv.decoyDigest = digest
	})
	if srv.decoyDigest == "" {
		return
	}

	_ = srv.hasher.Check(password, srv.decoyDigest)
}

// publish emits an account event. Failures are logged and never reach the caller.
func (srv *userService) publish(ctx context.Context, eventType string, user *entity.User) {
	if srv.publisher == nil {
		return
	}

	event := &service.AccountEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		UserID:     user.ID.String(),
		Email:      user.Email,
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishAccountEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish account event",
			slog.String("type", eventType),
			slog.String("userID", event.UserID),
			slog.Any("error", err),
		)
	}
}
