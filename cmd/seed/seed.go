package main

import (
	"context"
	"log/slog"
	"strings"

	"cashmemo/internal/domain/entity"
	"cashmemo/internal/domain/repository"
	"cashmemo/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultAdminName = "Administrator"

// defaultPlans is the catalogue every installation starts from.
func defaultPlans() []*entity.SubscriptionPlan {
	return []*entity.SubscriptionPlan{
		{
			Name:              "Free",
			Slug:              "free",
			Description:       "Start selling with a small catalogue",
			Price:             0,
			DurationDays:      0,
			MaxCategories:     5,
			MaxProducts:       20,
			MaxOrdersPerMonth: 50,
			CanUploadImages:   false,
			IsDefault:         true,
			IsActive:          true,
			SortOrder:         1,
		},
		{
			Name:              "Pro",
			Slug:              "pro",
			Description:       "Unlimited catalogue, orders and product images",
			Price:             499,
			DurationDays:      30,
			MaxCategories:     entity.Unlimited,
			MaxProducts:       entity.Unlimited,
			MaxOrdersPerMonth: entity.Unlimited,
			CanUploadImages:   true,
			IsDefault:         false,
			IsActive:          true,
			SortOrder:         2,
		},
	}
}

func seedPlans(ctx context.Context, plans repository.PlanRepository, logger *slog.Logger) error {
	for _, plan := range defaultPlans() {
		if err := plans.UpsertPlan(ctx, plan); err != nil {
			return errors.Wrapf(err, "failed to upsert plan %q", plan.Slug)
		}
		logger.Info("Plan seeded", slog.String("slug", plan.Slug), slog.String("id", plan.ID.String()))
	}

	return nil
}

type adminCredentials struct {
	Name     string
	Email    string
	Password string
}

func seedAdmin(ctx context.Context, admins repository.AdminRepository, hasher service.PasswordHasher, creds adminCredentials, logger *slog.Logger) error {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	if email == "" || creds.Password == "" {
		return errors.New("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are required")
	}

	_, err := admins.FindAdminByEmail(ctx, email)
	switch {
	case err == nil:
		logger.Info("Admin already exists, skipping")

		return nil
	case !errors.Is(err, repository.ErrAdminNotFound):
		return errors.Wrap(err, "failed to look up admin")
	}

	if err := hasher.ValidatePasswordStrength(creds.Password); err != nil {
		return errors.Wrap(err, "admin password rejected")
	}

	hash, err := hasher.Hash(creds.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash admin password")
	}

	name := strings.TrimSpace(creds.Name)
	if name == "" {
		name = defaultAdminName
	}

	admin := &entity.Admin{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := admins.CreateAdmin(ctx, admin); err != nil {
		return errors.Wrap(err, "failed to create admin")
	}

	logger.Info("Admin created", slog.String("id", admin.ID.String()))

	return nil
}
