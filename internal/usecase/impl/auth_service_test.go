package impl

import (
	"context"
	"testing"
	"time"

	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/repository"
	mockSvc "cashmemo/internal/mocks/service"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	repos   *repoMocks
	hasher  *mockSvc.MockPasswordHasher
	tokens  *mockSvc.MockTokenService
	service usecase.AuthUsecase
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	f := &authFixture{
		repos:  newRepoMocks(t),
		hasher: mockSvc.NewMockPasswordHasher(t),
		tokens: mockSvc.NewMockTokenService(t),
	}
	f.service = NewAuthService(AuthServiceParams{
		TxManager:    f.repos.tx,
		Repos:        f.repos.factory,
		Hasher:       f.hasher,
		TokenService: f.tokens,
		Logger:       newDiscardLogger(),
	})
	f.tokens.EXPECT().AccessTokenDuration().Return(15 * time.Minute).Maybe()

	return f
}

func TestAuthService_RegisterUser(t *testing.T) {
	f := newAuthFixture(t)
	userID := uuid.New()

	f.hasher.EXPECT().ValidatePasswordStrength("s3cret-pass").Return(nil).Once()
	f.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil).Once()
	f.repos.user.EXPECT().CreateUser(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "mina@example.com" && u.PasswordHash == "hashed" && u.IsActive
	})).Run(func(_ context.Context, u *entity.User) { u.ID = userID }).Return(nil).Once()
	f.repos.shop.EXPECT().ExistsShopSlug(mock.Anything, "mina-boutique", uuid.Nil).Return(true, nil).Once()
	f.repos.shop.EXPECT().ExistsShopSlug(mock.Anything, "mina-boutique-2", uuid.Nil).Return(false, nil).Once()
	f.repos.shop.EXPECT().CreateShop(mock.Anything, mock.MatchedBy(func(s *entity.ShopProfile) bool {
		return s.UserID == userID && s.ShopSlug == "mina-boutique-2" && s.Phone == "01711223344"
	})).Return(nil).Once()
	f.tokens.EXPECT().GenerateTokens(entity.UserPrincipal(userID)).Return("access", "refresh", nil).Once()

	out, err := f.service.RegisterUser(context.Background(), &usecase.RegisterUserInput{
		Name:     "Mina",
		Email:    " Mina@Example.com ",
		Mobile:   "01711223344",
		Password: "s3cret-pass",
		ShopName: "Mina Boutique",
	})

	require.NoError(t, err)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, int64(900), out.ExpiresIn)
	require.NotNil(t, out.User.Shop)
	assert.Equal(t, "mina-boutique-2", out.User.Shop.ShopSlug)
}

func TestAuthService_RegisterUser_Duplicate(t *testing.T) {
	f := newAuthFixture(t)

	f.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil).Once()
	f.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil).Once()
	f.repos.user.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(repository.ErrUserAlreadyExists).Once()

	_, err := f.service.RegisterUser(context.Background(), &usecase.RegisterUserInput{
		Email:    "taken@example.com",
		Password: "s3cret-pass",
		ShopName: "Taken",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_RegisterUser_WeakPassword(t *testing.T) {
	f := newAuthFixture(t)

	f.hasher.EXPECT().ValidatePasswordStrength("123").Return(domainerrors.ErrPasswordStrength).Once()

	_, err := f.service.RegisterUser(context.Background(), &usecase.RegisterUserInput{Email: "a@b.c", Password: "123"})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestAuthService_Login(t *testing.T) {
	activeUser := func() *entity.User {
		return &entity.User{ID: uuid.New(), Email: "mina@example.com", Mobile: "01711223344", PasswordHash: "hashed", IsActive: true}
	}

	t.Run("by mobile", func(t *testing.T) {
		f := newAuthFixture(t)
		user := activeUser()

		f.repos.user.EXPECT().FindUserByMobile(mock.Anything, "01711223344").Return(user, nil).Once()
		f.hasher.EXPECT().Check("pw", "hashed").Return(true).Once()
		f.repos.shop.EXPECT().FindShopByUserID(mock.Anything, user.ID).Return(&entity.ShopProfile{ShopSlug: "mina"}, nil).Once()
		f.tokens.EXPECT().GenerateTokens(entity.UserPrincipal(user.ID)).Return("a", "r", nil).Once()

		out, err := f.service.Login(context.Background(), &usecase.LoginInput{Identifier: " 01711223344 ", Password: "pw"})

		require.NoError(t, err)
		assert.Equal(t, "mina", out.User.Shop.ShopSlug)
	})

	t.Run("by email", func(t *testing.T) {
		f := newAuthFixture(t)
		user := activeUser()

		f.repos.user.EXPECT().FindUserByEmail(mock.Anything, "mina@example.com").Return(user, nil).Once()
		f.hasher.EXPECT().Check("pw", "hashed").Return(true).Once()
		f.repos.shop.EXPECT().FindShopByUserID(mock.Anything, user.ID).Return(nil, repository.ErrShopNotFound).Once()
		f.tokens.EXPECT().GenerateTokens(mock.Anything).Return("a", "r", nil).Once()

		out, err := f.service.Login(context.Background(), &usecase.LoginInput{Identifier: "MINA@example.com", Password: "pw"})

		require.NoError(t, err)
		assert.Nil(t, out.User.Shop)
	})

	t.Run("unknown identifier and wrong password look the same", func(t *testing.T) {
		f := newAuthFixture(t)
		user := activeUser()

		f.repos.user.EXPECT().FindUserByEmail(mock.Anything, "nobody@example.com").Return(nil, repository.ErrUserNotFound).Once()
		_, err := f.service.Login(context.Background(), &usecase.LoginInput{Identifier: "nobody@example.com", Password: "pw"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

		f.repos.user.EXPECT().FindUserByMobile(mock.Anything, user.Mobile).Return(user, nil).Once()
		f.hasher.EXPECT().Check("wrong", "hashed").Return(false).Once()
		_, err = f.service.Login(context.Background(), &usecase.LoginInput{Identifier: user.Mobile, Password: "wrong"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("deactivated account", func(t *testing.T) {
		f := newAuthFixture(t)
		user := activeUser()
		user.IsActive = false

		f.repos.user.EXPECT().FindUserByMobile(mock.Anything, user.Mobile).Return(user, nil).Once()
		f.hasher.EXPECT().Check("pw", "hashed").Return(true).Once()

		_, err := f.service.Login(context.Background(), &usecase.LoginInput{Identifier: user.Mobile, Password: "pw"})

		assert.True(t, errors.Is(err, domainerrors.ErrAccountDisabled))
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("active user", func(t *testing.T) {
		f := newAuthFixture(t)
		principal := entity.UserPrincipal(uuid.New())

		f.tokens.EXPECT().ValidateRefreshToken("refresh").Return(principal, nil).Once()
		f.repos.user.EXPECT().FindUserByID(mock.Anything, principal.ID).Return(&entity.User{ID: principal.ID, IsActive: true}, nil).Once()
		f.tokens.EXPECT().GenerateAccessToken(principal).Return("new-access", nil).Once()

		out, err := f.service.RefreshToken(context.Background(), "refresh")

		require.NoError(t, err)
		assert.Equal(t, "new-access", out.AccessToken)
	})

	t.Run("deactivated admin", func(t *testing.T) {
		f := newAuthFixture(t)
		principal := entity.AdminPrincipal(uuid.New())

		f.tokens.EXPECT().ValidateRefreshToken("refresh").Return(principal, nil).Once()
		f.repos.admin.EXPECT().FindAdminByID(mock.Anything, principal.ID).Return(&entity.Admin{ID: principal.ID}, nil).Once()

		_, err := f.service.RefreshToken(context.Background(), "refresh")

		assert.True(t, errors.Is(err, domainerrors.ErrAccountDisabled))
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().ValidateRefreshToken("garbage").Return(entity.Principal{}, errors.New("bad signature")).Once()

		_, err := f.service.RefreshToken(context.Background(), "garbage")

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})

	t.Run("deleted user", func(t *testing.T) {
		f := newAuthFixture(t)
		principal := entity.UserPrincipal(uuid.New())

		f.tokens.EXPECT().ValidateRefreshToken("refresh").Return(principal, nil).Once()
		f.repos.user.EXPECT().FindUserByID(mock.Anything, principal.ID).Return(nil, repository.ErrUserNotFound).Once()

		_, err := f.service.RefreshToken(context.Background(), "refresh")

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})
}

func TestAuthService_AdminLogin(t *testing.T) {
	f := newAuthFixture(t)
	admin := &entity.Admin{ID: uuid.New(), Email: "ops@cashmemo.test", PasswordHash: "hashed", IsActive: true}

	f.repos.admin.EXPECT().FindAdminByEmail(mock.Anything, "ops@cashmemo.test").Return(admin, nil).Once()
	f.hasher.EXPECT().Check("pw", "hashed").Return(true).Once()
	f.tokens.EXPECT().GenerateTokens(entity.AdminPrincipal(admin.ID)).Return("a", "r", nil).Once()

	out, err := f.service.AdminLogin(context.Background(), &usecase.AdminLoginInput{Email: "OPS@cashmemo.test", Password: "pw"})

	require.NoError(t, err)
	assert.Same(t, admin, out.Admin)
}

func TestAuthService_SetUserActive(t *testing.T) {
	f := newAuthFixture(t)
	user := &entity.User{ID: uuid.New(), IsActive: true}

	f.repos.user.EXPECT().FindUserByID(mock.Anything, user.ID).Return(user, nil).Once()
	f.repos.user.EXPECT().UpdateUser(mock.Anything, mock.MatchedBy(func(u *entity.User) bool { return !u.IsActive })).Return(nil).Once()

	updated, err := f.service.SetUserActive(context.Background(), user.ID, false)

	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}
