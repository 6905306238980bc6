package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"cashmemo/internal/domain/entity"
	"cashmemo/internal/domain/repository"
	mockRepo "cashmemo/internal/mocks/repository"
	mockSvc "cashmemo/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDefaultPlans(t *testing.T) {
	plans := defaultPlans()
	require.Len(t, plans, 2)

	free, pro := plans[0], plans[1]
	assert.True(t, free.IsDefault)
	assert.False(t, free.CanUploadImages)
	assert.False(t, pro.IsDefault)
	assert.True(t, pro.CanUploadImages)
	assert.True(t, pro.MaxProducts.IsUnlimited())
	assert.Equal(t, 30, pro.DurationDays)
}

func TestSeedPlans(t *testing.T) {
	plans := mockRepo.NewMockPlanRepository(t)
	plans.EXPECT().UpsertPlan(mock.Anything, mock.MatchedBy(func(p *entity.SubscriptionPlan) bool { return p.Slug == "free" })).Return(nil).Once()
	plans.EXPECT().UpsertPlan(mock.Anything, mock.MatchedBy(func(p *entity.SubscriptionPlan) bool { return p.Slug == "pro" })).Return(nil).Once()

	require.NoError(t, seedPlans(context.Background(), plans, discardLogger()))
}

func TestSeedPlans_StopsOnError(t *testing.T) {
	plans := mockRepo.NewMockPlanRepository(t)
	plans.EXPECT().UpsertPlan(mock.Anything, mock.Anything).Return(errors.New("boom")).Once()

	err := seedPlans(context.Background(), plans, discardLogger())

	require.Error(t, err)
	assert.Contains(t, err.Error(), `failed to upsert plan "free"`)
}

func TestSeedAdmin(t *testing.T) {
	creds := adminCredentials{Email: " Root@Example.com ", Password: "Str0ng!pass"}

	t.Run("missing credentials", func(t *testing.T) {
		err := seedAdmin(context.Background(), mockRepo.NewMockAdminRepository(t), mockSvc.NewMockPasswordHasher(t), adminCredentials{}, discardLogger())
		require.Error(t, err)
	})

	t.Run("existing admin is kept", func(t *testing.T) {
		admins := mockRepo.NewMockAdminRepository(t)
		admins.EXPECT().FindAdminByEmail(mock.Anything, "root@example.com").Return(&entity.Admin{ID: uuid.New()}, nil)

		require.NoError(t, seedAdmin(context.Background(), admins, mockSvc.NewMockPasswordHasher(t), creds, discardLogger()))
	})

	t.Run("creates admin", func(t *testing.T) {
		admins := mockRepo.NewMockAdminRepository(t)
		hasher := mockSvc.NewMockPasswordHasher(t)

		admins.EXPECT().FindAdminByEmail(mock.Anything, "root@example.com").Return(nil, repository.ErrAdminNotFound)
		hasher.EXPECT().ValidatePasswordStrength("Str0ng!pass").Return(nil)
		hasher.EXPECT().Hash("Str0ng!pass").Return("hashed", nil)
		admins.EXPECT().CreateAdmin(mock.Anything, mock.MatchedBy(func(a *entity.Admin) bool {
			return a.Email == "root@example.com" && a.PasswordHash == "hashed" && a.Name == defaultAdminName && a.IsActive
		})).Return(nil)

		require.NoError(t, seedAdmin(context.Background(), admins, hasher, creds, discardLogger()))
	})

	t.Run("lookup failure", func(t *testing.T) {
		admins := mockRepo.NewMockAdminRepository(t)
		admins.EXPECT().FindAdminByEmail(mock.Anything, "root@example.com").Return(nil, errors.New("db down"))

		err := seedAdmin(context.Background(), admins, mockSvc.NewMockPasswordHasher(t), creds, discardLogger())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to look up admin")
	})
}
