package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"cashmemo/internal/domain/entity"
	domainerrors "cashmemo/internal/domain/errors"
	mockUsecase "cashmemo/internal/mocks/usecase"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSubscriptionHandler(t *testing.T) (*SubscriptionHandler, *mockUsecase.MockSubscriptionUsecase, *mockUsecase.MockQuotaEngine) {
	t.Helper()

	subscriptionUC := mockUsecase.NewMockSubscriptionUsecase(t)
	quota := mockUsecase.NewMockQuotaEngine(t)

	return NewSubscriptionHandler(SubscriptionHandlerParams{SubscriptionUC: subscriptionUC, Quota: quota}), subscriptionUC, quota
}

func TestSubscriptionHandler_VerifyTransaction(t *testing.T) {
	h, subscriptionUC, _ := newTestSubscriptionHandler(t)
	adminID := uuid.New()
	txID := uuid.New()

	subscriptionUC.EXPECT().
		VerifyTransaction(mock.Anything, adminID, &usecase.VerifyTransactionInput{
			TransactionID: "TRX123",
			Status:        entity.PaymentTransactionVerified,
			Note:          "matched bKash statement",
		}).
		Return(&usecase.VerifyTransactionOutput{
			Transaction: &entity.PaymentTransaction{ID: txID, TransactionID: "TRX123", Status: entity.PaymentTransactionVerified},
			Message:     "Payment verified, Pro plan activated",
		}, nil)

	c, rec := newTestContext(http.MethodPost, "/admin/transactions/TRX123/verify",
		`{"status":"verified","note":"matched bKash statement"}`, entity.AdminPrincipal(adminID))
	c.SetParamNames("transactionId")
	c.SetParamValues("TRX123")

	require.NoError(t, h.VerifyTransaction(c))

	body := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Payment verified, Pro plan activated", body.Message)

	var tx entity.PaymentTransaction
	require.NoError(t, json.Unmarshal(body.Data, &tx))
	assert.Equal(t, txID, tx.ID)
}

func TestSubscriptionHandler_VerifyTransaction_RejectsUnknownStatus(t *testing.T) {
	h, _, _ := newTestSubscriptionHandler(t)

	c, _ := newTestContext(http.MethodPost, "/admin/transactions/TRX123/verify", `{"status":"approved"}`, entity.AdminPrincipal(uuid.New()))
	c.SetParamNames("transactionId")
	c.SetParamValues("TRX123")

	err := h.VerifyTransaction(c)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSubscriptionHandler_VerifyTransaction_PropagatesConflict(t *testing.T) {
	h, subscriptionUC, _ := newTestSubscriptionHandler(t)

	subscriptionUC.EXPECT().VerifyTransaction(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrAlreadyProcessed)

	c, _ := newTestContext(http.MethodPost, "/", `{"status":"rejected"}`, entity.AdminPrincipal(uuid.New()))
	c.SetParamNames("transactionId")
	c.SetParamValues("TRX123")

	err := h.VerifyTransaction(c)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyProcessed)
}

func TestSubscriptionHandler_SubmitRequest(t *testing.T) {
	h, subscriptionUC, _ := newTestSubscriptionHandler(t)
	userID := uuid.New()
	planID := uuid.New()

	subscriptionUC.EXPECT().
		SubmitSubscriptionRequest(mock.Anything, userID, &usecase.SubmitSubscriptionInput{
			PlanID:        planID,
			TransactionID: "TRX9",
			Amount:        499,
			PaymentMethod: entity.MobilePaymentBkash,
			SenderNumber:  "01712345678",
		}).
		Return(&usecase.SubmitSubscriptionOutput{}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/subscription/requests",
		`{"plan_id":"`+planID.String()+`","transaction_id":" TRX9 ","amount":499,"payment_method":"bkash","sender_number":"01712345678"}`,
		entity.UserPrincipal(userID))

	require.NoError(t, h.SubmitRequest(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSubscriptionHandler_SubmitRequest_Validation(t *testing.T) {
	h, _, _ := newTestSubscriptionHandler(t)

	c, _ := newTestContext(http.MethodPost, "/api/v1/subscription/requests",
		`{"plan_id":"not-a-uuid","transaction_id":"TRX9","amount":499,"payment_method":"bkash","sender_number":"017"}`,
		entity.UserPrincipal(uuid.New()))

	err := h.SubmitRequest(c)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSubscriptionHandler_ListTransactions_StatusFilter(t *testing.T) {
	h, subscriptionUC, _ := newTestSubscriptionHandler(t)

	subscriptionUC.EXPECT().
		ListTransactions(mock.Anything, &usecase.ListTransactionsInput{
			Status: entity.PaymentTransactionPending,
			Page:   entity.Page{Limit: 10},
		}).
		Return(&entity.PagedResult[*entity.PaymentTransaction]{}, nil)

	c, rec := newTestContext(http.MethodGet, "/admin/transactions?status=pending&limit=10", "", entity.AdminPrincipal(uuid.New()))
	require.NoError(t, h.ListTransactions(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, _ = newTestContext(http.MethodGet, "/admin/transactions?status=approved", "", entity.AdminPrincipal(uuid.New()))
	assert.ErrorIs(t, h.ListTransactions(c), domainerrors.ErrValidationFailed)
}

func TestSubscriptionHandler_AdminRoutesNeedAdmin(t *testing.T) {
	h, _, _ := newTestSubscriptionHandler(t)

	c, _ := newTestContext(http.MethodGet, "/admin/transactions", "", entity.UserPrincipal(uuid.New()))

	assert.ErrorIs(t, h.ListTransactions(c), domainerrors.ErrUnauthorized)
}

func TestSubscriptionHandler_GetSubscription(t *testing.T) {
	h, _, quota := newTestSubscriptionHandler(t)
	userID := uuid.New()

	quota.EXPECT().GetUsage(mock.Anything, userID).Return(&entity.PlanUsage{
		Plan:       &entity.SubscriptionPlan{Slug: "free", MaxProducts: 20},
		Products:   3,
		Categories: 1,
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/subscription", "", entity.UserPrincipal(userID))

	require.NoError(t, h.GetSubscription(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slug":"free"`)
}
