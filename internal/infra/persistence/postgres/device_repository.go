package postgres

import (
	"context"

	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/repository"
	"cashmemo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository stores the phones and browsers a seller receives order and
// subscription pushes on.
type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// CreateDevice registers a device. A shop counter phone handed to another
// seller keeps its FCM token, so any other seller's row holding the token is
// deactivated first; pushes for the old shop must not reach the new owner.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.UserDevice) error {
	deviceM := fromDeviceDomain(device)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := releaseToken(tx, deviceM.FCMToken, deviceM.UserID); err != nil {
			return err
		}

		return tx.Create(deviceM).Error
	})
	if err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return repository.ErrDuplicateDevice
		case isForeignKeyConstraintViolation(err):
			return repository.ErrUserNotFound
		case isNotNullConstraintViolation(err):
			return domainerrors.NewValidationError("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var deviceM model.UserDeviceModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevicesByUser includes deactivated devices so re-registration can revive them.
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	return repo.list(ctx, "user_id = ?", userID)
}

// FindActiveDevicesByUser is the push fan-out set for a seller.
func (repo *deviceRepository) FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	return repo.list(ctx, "user_id = ? AND is_active = ?", userID, true)
}

func (repo *deviceRepository) list(ctx context.Context, query string, args ...any) ([]*entity.UserDevice, error) {
	var deviceModels []*model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	devices := make([]*entity.UserDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// UpdateFCMToken stores a refreshed token and reactivates the device.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var deviceM model.UserDeviceModel
		if err := tx.Select("id", "user_id").Where("id = ?", deviceID).First(&deviceM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrDeviceNotFound
			}

			return err
		}

		if err := releaseToken(tx, fcmToken, deviceM.UserID); err != nil {
			return err
		}

		return tx.Model(&model.UserDeviceModel{}).
			Where("id = ?", deviceID).
			Updates(map[string]any{"fcm_token": fcmToken, "is_active": true}).Error
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrDeviceNotFound):
		return err
	case isUniqueConstraintViolation(err):
		return repository.ErrDuplicateDevice
	}

	return errors.Wrap(err, "failed to update FCM token")
}

// DeactivateDevicesByTokens stops pushes to tokens that FCM reported as unregistered.
func (repo *deviceRepository) DeactivateDevicesByTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("fcm_token IN ?", tokens).
		Update("is_active", false).Error; err != nil {
		return errors.Wrap(err, "failed to deactivate devices by tokens")
	}

	return nil
}

// DeleteDevice soft-deletes; the row stays for audit until purged.
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserDeviceModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// releaseToken deactivates rows of other sellers that still hold token.
func releaseToken(tx *gorm.DB, token string, owner uuid.UUID) error {
	if token == "" {
		return nil
	}

	return tx.Model(&model.UserDeviceModel{}).
		Where("fcm_token = ? AND user_id <> ? AND is_active = ?", token, owner, true).
		Update("is_active", false).Error
}

func toDeviceDomain(data *model.UserDeviceModel) *entity.UserDevice {
	if data == nil {
		return nil
	}

	return &entity.UserDevice{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromDeviceDomain(data *entity.UserDevice) *model.UserDeviceModel {
	if data == nil {
		return nil
	}

	return &model.UserDeviceModel{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
