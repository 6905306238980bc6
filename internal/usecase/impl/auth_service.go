// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "cashmemo/internal/delivery/context"
	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/repository"
	"cashmemo/internal/domain/service"
	"cashmemo/internal/usecase"
	"cashmemo/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	fallbackShopSlug  = "shop"
	maxSlugCandidates = 20
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	repos        repository.RepositoryFactory
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Repos        repository.RepositoryFactory
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		repos:        params.Repos,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates the seller account and its shop profile in one transaction.
func (srv *authService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	mobile := strings.TrimSpace(input.Mobile)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		Mobile:       mobile,
		PasswordHash: hashedPassword,
		IsActive:     true,
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.UserRepo().CreateUser(ctx, user); err != nil {
			return mapRepoErr(err, repository.ErrUserAlreadyExists, domainerrors.ErrUserAlreadyExists, "failed to create user during registration")
		}

		slug, err := uniqueShopSlug(ctx, repos.ShopRepo(), input.ShopName, uuid.Nil)
		if err != nil {
			return err
		}

		shop := &entity.ShopProfile{
			UserID:   user.ID,
			ShopName: strings.TrimSpace(input.ShopName),
			ShopSlug: slug,
			Phone:    mobile,
		}
		if err := repos.ShopRepo().CreateShop(ctx, shop); err != nil {
			return mapRepoErr(err, repository.ErrShopSlugTaken, domainerrors.ErrShopSlugTaken, "failed to create shop during registration")
		}
		user.Shop = shop

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Registration completed", slog.String("userID", user.ID.String()), slog.String("shopSlug", user.Shop.ShopSlug))

	return srv.issueUserTokens(user)
}

// uniqueShopSlug derives a storefront slug from name and appends a counter until it is free.
func uniqueShopSlug(ctx context.Context, shopRepo repository.ShopRepository, name string, excludeID uuid.UUID) (string, error) {
	base := util.Slugify(name)
	if base == "" {
		base = fallbackShopSlug
	}

	candidate := base
	for attempt := 2; attempt <= maxSlugCandidates+1; attempt++ {
		taken, err := shopRepo.ExistsShopSlug(ctx, candidate, excludeID)
		if err != nil {
			return "", errors.Wrap(err, "failed to check shop slug")
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, attempt)
	}

	return base + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8], nil
}

// Login accepts either an email address or a mobile number.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	identifier := strings.TrimSpace(input.Identifier)

	var (
		user *entity.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = srv.repos.UserRepo().FindUserByEmail(ctx, normalizeEmail(identifier))
	} else {
		user, err = srv.repos.UserRepo().FindUserByMobile(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Login with unknown identifier")

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login with wrong password", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domainerrors.ErrAccountDisabled
	}

	if err := srv.attachShop(ctx, user); err != nil {
		return nil, err
	}

	return srv.issueUserTokens(user)
}

func (srv *authService) issueUserTokens(user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(entity.UserPrincipal(user.ID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(srv.tokenService.AccessTokenDuration().Seconds()),
		User:         user,
	}, nil
}

// RefreshToken re-checks that the principal still exists and is active before issuing a new access token.
func (srv *authService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	principal, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Info("Refresh token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	if err := srv.ensureActive(ctx, principal); err != nil {
		return nil, err
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(principal)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.RefreshOutput{
		AccessToken: accessToken,
		ExpiresIn:   int64(srv.tokenService.AccessTokenDuration().Seconds()),
	}, nil
}

func (srv *authService) ensureActive(ctx context.Context, principal entity.Principal) error {
	if userID, ok := principal.AsUser(); ok {
		user, err := srv.repos.UserRepo().FindUserByID(ctx, userID)
		if err != nil {
			return mapRepoErr(err, repository.ErrUserNotFound, domainerrors.ErrRefreshTokenInvalid, "failed to find user for refresh")
		}
		if !user.IsActive {
			return domainerrors.ErrAccountDisabled
		}

		return nil
	}

	if adminID, ok := principal.AsAdmin(); ok {
		admin, err := srv.repos.AdminRepo().FindAdminByID(ctx, adminID)
		if err != nil {
			return mapRepoErr(err, repository.ErrAdminNotFound, domainerrors.ErrRefreshTokenInvalid, "failed to find admin for refresh")
		}
		if !admin.IsActive {
			return domainerrors.ErrAccountDisabled
		}

		return nil
	}

	return domainerrors.ErrRefreshTokenInvalid
}

func (srv *authService) AdminLogin(ctx context.Context, input *usecase.AdminLoginInput) (*usecase.AdminAuthOutput, error) {
	admin, err := srv.repos.AdminRepo().FindAdminByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find admin for login")
	}

	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		srv.log(ctx).Warn("Admin login with wrong password", slog.String("adminID", admin.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !admin.IsActive {
		return nil, domainerrors.ErrAccountDisabled
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(entity.AdminPrincipal(admin.ID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate admin tokens")
	}

	srv.log(ctx).Info("Admin logged in", slog.String("adminID", admin.ID.String()))

	return &usecase.AdminAuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(srv.tokenService.AccessTokenDuration().Seconds()),
		Admin:        admin,
	}, nil
}

func (srv *authService) GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.repos.UserRepo().FindUserByID(ctx, userID)
	if err != nil {
		return nil, mapRepoErr(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user")
	}

	if err := srv.attachShop(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (srv *authService) UpdateMe(ctx context.Context, userID uuid.UUID, input *usecase.UpdateMeInput) (*entity.User, error) {
	user, err := srv.repos.UserRepo().FindUserByID(ctx, userID)
	if err != nil {
		return nil, mapRepoErr(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user")
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Mobile != nil {
		user.Mobile = strings.TrimSpace(*input.Mobile)
	}

	if err := srv.repos.UserRepo().UpdateUser(ctx, user); err != nil {
		return nil, mapRepoErr(err, repository.ErrUserAlreadyExists, domainerrors.ErrUserAlreadyExists, "failed to update user")
	}

	if err := srv.attachShop(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (srv *authService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) (*entity.PagedResult[*entity.User], error) {
	page := normalizePage(input.Page)
	users, total, err := srv.repos.UserRepo().ListUsers(ctx, strings.TrimSpace(input.Search), page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return newPagedResult(users, total, page), nil
}

// SetUserActive is a soft toggle; a deactivated seller keeps all data but cannot log in or refresh.
func (srv *authService) SetUserActive(ctx context.Context, userID uuid.UUID, active bool) (*entity.User, error) {
	user, err := srv.repos.UserRepo().FindUserByID(ctx, userID)
	if err != nil {
		return nil, mapRepoErr(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user")
	}

	user.IsActive = active
	if err := srv.repos.UserRepo().UpdateUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user active flag")
	}

	srv.log(ctx).Info("User active flag changed", slog.String("userID", userID.String()), slog.Bool("active", active))

	return user, nil
}

func (srv *authService) attachShop(ctx context.Context, user *entity.User) error {
	shop, err := srv.repos.ShopRepo().FindShopByUserID(ctx, user.ID)
	if errors.Is(err, repository.ErrShopNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to load shop for user")
	}
	user.Shop = shop

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
