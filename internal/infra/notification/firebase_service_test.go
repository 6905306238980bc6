package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"cashmemo/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPushNotificationService_FallsBackToLogOnly(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewPushNotificationService(context.Background(), &config.Config{}, logger)
	require.NoError(t, err)
	assert.IsType(t, &logOnlyService{}, svc)

	success, failure, invalid, err := svc.SendBatchNotification(context.Background(), []string{"a", "b"}, "Title", "Body", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, success)
	assert.Zero(t, failure)
	assert.Empty(t, invalid)

	assert.NoError(t, svc.SendSingleNotification(context.Background(), "a", "Title", "Body", nil))
}

func TestFirebaseService_BatchLimits(t *testing.T) {
	svc := &firebaseService{}

	success, failure, invalid, err := svc.SendBatchNotification(context.Background(), nil, "t", "b", nil)
	require.NoError(t, err)
	assert.Zero(t, success)
	assert.Zero(t, failure)
	assert.Nil(t, invalid)

	tokens := make([]string, maxMulticastTokens+1)
	_, _, _, err = svc.SendBatchNotification(context.Background(), tokens, "t", "b", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token count exceeds limit")
}
