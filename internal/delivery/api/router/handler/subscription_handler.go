package handler

import (
	"net/http"
	"strings"

	"cashmemo/internal/delivery/api/response"
	"cashmemo/internal/domain/entity"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	transactionStatuses = []string{
		string(entity.PaymentTransactionPending),
		string(entity.PaymentTransactionVerified),
		string(entity.PaymentTransactionRejected),
	}
	requestStatuses = []string{
		string(entity.SubscriptionRequestPending),
		string(entity.SubscriptionRequestApproved),
		string(entity.SubscriptionRequestRejected),
	}
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Quota          usecase.QuotaEngine
}

// SubscriptionHandler serves plans, upgrade requests and payment verification.
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	quota          usecase.QuotaEngine
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler.
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		quota:          params.Quota,
	}
}

// SubmitSubscriptionRequest reports a plan fee paid through a wallet or bank.
type SubmitSubscriptionRequest struct {
	PlanID        string  `json:"plan_id" validate:"required,uuid"`
	TransactionID string  `json:"transaction_id" validate:"required,max=64"`
	Amount        float64 `json:"amount" validate:"gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=bkash nagad rocket bank"`
	SenderNumber  string  `json:"sender_number" validate:"required,max=32"`
}

// VerifyTransactionRequest is an administrator's decision.
type VerifyTransactionRequest struct {
	Status string `json:"status" validate:"required,oneof=verified rejected"`
	Note   string `json:"note" validate:"max=500"`
}

// ListPlans returns the active plan catalogue.
func (h *SubscriptionHandler) ListPlans(c echo.Context) error {
	plans, err := h.subscriptionUC.ListPlans(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, plans)
}

// GetSubscription returns the caller's effective plan and usage.
func (h *SubscriptionHandler) GetSubscription(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	usage, err := h.quota.GetUsage(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, usage)
}

// SubmitRequest opens a pending upgrade request.
func (h *SubscriptionHandler) SubmitRequest(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req SubmitSubscriptionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.subscriptionUC.SubmitSubscriptionRequest(c.Request().Context(), userID, &usecase.SubmitSubscriptionInput{
		PlanID:        uuid.MustParse(req.PlanID),
		TransactionID: strings.TrimSpace(req.TransactionID),
		Amount:        req.Amount,
		PaymentMethod: entity.MobilePaymentMethod(req.PaymentMethod),
		SenderNumber:  strings.TrimSpace(req.SenderNumber),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, output, "Subscription request submitted and awaiting verification")
}

// ListMyRequests lists the caller's upgrade requests.
func (h *SubscriptionHandler) ListMyRequests(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	status, err := statusQuery(c, requestStatuses...)
	if err != nil {
		return err
	}

	result, err := h.subscriptionUC.ListMySubscriptionRequests(c.Request().Context(), userID, &usecase.ListSubscriptionRequestsInput{
		Status: entity.SubscriptionRequestStatus(status),
		Page:   pageQuery(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// ListMyTransactions lists the caller's reported payments.
func (h *SubscriptionHandler) ListMyTransactions(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	status, err := statusQuery(c, transactionStatuses...)
	if err != nil {
		return err
	}

	result, err := h.subscriptionUC.ListMyTransactions(c.Request().Context(), userID, &usecase.ListTransactionsInput{
		Status: entity.PaymentTransactionStatus(status),
		Page:   pageQuery(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// ListTransactions lists reported payments for review.
func (h *SubscriptionHandler) ListTransactions(c echo.Context) error {
	if _, err := currentAdmin(c); err != nil {
		return err
	}

	status, err := statusQuery(c, transactionStatuses...)
	if err != nil {
		return err
	}

	result, err := h.subscriptionUC.ListTransactions(c.Request().Context(), &usecase.ListTransactionsInput{
		Status: entity.PaymentTransactionStatus(status),
		Page:   pageQuery(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// ListSubscriptionRequests lists upgrade requests for review.
func (h *SubscriptionHandler) ListSubscriptionRequests(c echo.Context) error {
	if _, err := currentAdmin(c); err != nil {
		return err
	}

	status, err := statusQuery(c, requestStatuses...)
	if err != nil {
		return err
	}

	result, err := h.subscriptionUC.ListSubscriptionRequests(c.Request().Context(), &usecase.ListSubscriptionRequestsInput{
		Status: entity.SubscriptionRequestStatus(status),
		Page:   pageQuery(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// VerifyTransaction records the administrator's decision on a pending payment.
func (h *SubscriptionHandler) VerifyTransaction(c echo.Context) error {
	adminID, err := currentAdmin(c)
	if err != nil {
		return err
	}

	var req VerifyTransactionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.subscriptionUC.VerifyTransaction(c.Request().Context(), adminID, &usecase.VerifyTransactionInput{
		TransactionID: c.Param("transactionId"),
		Status:        entity.PaymentTransactionStatus(req.Status),
		Note:          req.Note,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, output.Transaction, output.Message)
}
