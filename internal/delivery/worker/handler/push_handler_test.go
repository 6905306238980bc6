package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cashmemo/config"
	"cashmemo/internal/domain/constants"
	"cashmemo/internal/domain/entity"
	"cashmemo/internal/domain/service"
	mockRepo "cashmemo/internal/mocks/repository"
	mockSvc "cashmemo/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockSvc.MockPushNotificationService, *mockRepo.MockDeviceRepository) {
	t.Helper()

	pushSvc := mockSvc.NewMockPushNotificationService(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop

	h := NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		PushSvc:    pushSvc,
		DeviceRepo: deviceRepo,
	})

	return h, pushSvc, deviceRepo
}

func pushRequest(t *testing.T, event service.DomainEvent, attributes map[string]string) echo.Context {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(raw)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = event.EventID

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestPushHandler_DeliversAndDeactivatesInvalidTokens(t *testing.T) {
	h, pushSvc, deviceRepo := newTestPushHandler(t)
	userID := uuid.New()

	deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, userID).Return([]*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, FCMToken: "tok-a", IsActive: true},
		{ID: uuid.New(), UserID: userID, FCMToken: "tok-b", IsActive: true},
	}, nil)
	pushSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"tok-a", "tok-b"}, "Payment verified", "Your Pro plan is active", mock.MatchedBy(func(data map[string]string) bool {
			return data["event_type"] == constants.EventPaymentVerified && data["transaction_id"] == "tx-1"
		})).
		Return(1, 1, []string{"tok-b"}, nil)
	deviceRepo.EXPECT().DeactivateDevicesByTokens(mock.Anything, []string{"tok-b"}).Return(nil)

	c := pushRequest(t, service.DomainEvent{
		EventID: "evt-1",
		Type:    constants.EventPaymentVerified,
		UserID:  userID.String(),
		Title:   "Payment verified",
		Body:    "Your Pro plan is active",
		Data:    map[string]string{"transaction_id": "tx-1"},
	}, map[string]string{"request_id": "req-9"})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, c.Response().Status)
}

func TestPushHandler_NoDevices(t *testing.T) {
	h, _, deviceRepo := newTestPushHandler(t)
	userID := uuid.New()

	deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, userID).Return(nil, nil)

	c := pushRequest(t, service.DomainEvent{EventID: "evt-2", UserID: userID.String()}, nil)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, c.Response().Status)
}

func TestPushHandler_RepositoryFailureIsRetryable(t *testing.T) {
	h, _, deviceRepo := newTestPushHandler(t)
	userID := uuid.New()

	deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, userID).Return(nil, errors.New("connection reset"))

	c := pushRequest(t, service.DomainEvent{EventID: "evt-3", UserID: userID.String()}, nil)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, c.Response().Status)
}

func TestPushHandler_SendFailureIsRetryable(t *testing.T) {
	h, pushSvc, deviceRepo := newTestPushHandler(t)
	userID := uuid.New()

	deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, userID).Return([]*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, FCMToken: "tok-a", IsActive: true},
	}, nil)
	pushSvc.EXPECT().SendBatchNotification(mock.Anything, []string{"tok-a"}, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("fcm unavailable"))

	c := pushRequest(t, service.DomainEvent{EventID: "evt-4", UserID: userID.String()}, nil)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, c.Response().Status)
}

func TestPushHandler_InvalidUserIsAcknowledged(t *testing.T) {
	h, _, _ := newTestPushHandler(t)

	c := pushRequest(t, service.DomainEvent{EventID: "evt-5", UserID: "not-a-uuid"}, nil)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, c.Response().Status)
}

func TestPushHandler_MalformedPayload(t *testing.T) {
	h, _, _ := newTestPushHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"%%%"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, c.Response().Status)
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _, _ := newTestPushHandler(t)
	ctx := httptest.NewRequest(http.MethodPost, "/push", nil).Context()

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}
	assert.Equal(t, "from-attr", h.extractRequestID(ctx, &msg, &service.DomainEvent{RequestID: "from-event"}))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", h.extractRequestID(ctx, &msg, &service.DomainEvent{RequestID: "from-event"}))

	generated := h.extractRequestID(ctx, &msg, &service.DomainEvent{})
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}

func TestSendBatched_SplitsIntoBatches(t *testing.T) {
	h, pushSvc, _ := newTestPushHandler(t)

	tokens := make([]string, pushBatchSize+3)
	for idx := range tokens {
		tokens[idx] = uuid.NewString()
	}

	pushSvc.EXPECT().SendBatchNotification(mock.Anything, tokens[:pushBatchSize], "t", "b", mock.Anything).
		Return(pushBatchSize, 0, nil, nil).Once()
	pushSvc.EXPECT().SendBatchNotification(mock.Anything, tokens[pushBatchSize:], "t", "b", mock.Anything).
		Return(2, 1, []string{tokens[pushBatchSize]}, nil).Once()

	ctx := httptest.NewRequest(http.MethodPost, "/push", nil).Context()
	sent, failed, invalid, err := h.sendBatched(ctx, tokens, "t", "b", nil)

	require.NoError(t, err)
	assert.Equal(t, pushBatchSize+2, sent)
	assert.Equal(t, 1, failed)
	assert.Equal(t, []string{tokens[pushBatchSize]}, invalid)
}
