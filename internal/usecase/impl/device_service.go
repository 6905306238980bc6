package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "cashmemo/internal/delivery/context"
	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/domain/repository"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var devicePlatforms = map[string]struct{}{
	"ios":     {},
	"android": {},
	"web":     {},
}

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

// RegisterDevice registers a new device or refreshes the token of an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	token := strings.TrimSpace(deviceInfo.FCMToken)
	deviceID := strings.TrimSpace(deviceInfo.DeviceID)
	platform := strings.ToLower(strings.TrimSpace(deviceInfo.Platform))
	if token == "" || deviceID == "" {
		return nil, domainerrors.NewValidationError("fcm_token and device_id are required")
	}
	if _, ok := devicePlatforms[platform]; !ok {
		return nil, domainerrors.NewValidationError("platform must be ios, android or web")
	}

	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	for _, device := range devices {
		if device.DeviceID != deviceID {
			continue
		}

		if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, token); err != nil {
			return nil, errors.Wrap(err, "failed to update FCM token")
		}

		updated, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find device by ID")
		}

		return updated, nil
	}

	device := &entity.UserDevice{
		UserID:   userID,
		FCMToken: token,
		DeviceID: deviceID,
		Platform: platform,
		IsActive: true,
	}
	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, domainerrors.ErrConflict.WithDetails("device is already registered")
		}

		return nil, errors.Wrap(err, "failed to create device")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Device registered",
		slog.String("userID", userID.String()),
		slog.String("platform", platform),
	)

	return device, nil
}

// GetUserDevices retrieves all active devices for a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return nonNil(devices), nil
}

// DeactivateDevice deactivates a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		return mapRepoErr(err, repository.ErrDeviceNotFound, domainerrors.ErrDeviceNotFound, "failed to find device by ID")
	}

	if device.UserID != userID {
		return domainerrors.ErrForbidden
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return mapRepoErr(err, repository.ErrDeviceNotFound, domainerrors.ErrDeviceNotFound, "failed to delete device")
	}

	return nil
}
