package handler

import (
	"strings"

	"cashmemo/internal/delivery/api/response"
	"cashmemo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
}

// CustomerHandler serves the caller's customer book.
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
}

// NewCustomerHandler is the constructor for CustomerHandler.
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{customerUC: params.CustomerUC}
}

// CustomerRequest creates or replaces a customer.
type CustomerRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Mobile  string `json:"mobile" validate:"required,bdmobile"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"max=255"`
	Note    string `json:"note" validate:"max=500"`
}

func (r *CustomerRequest) toInput() *usecase.CustomerInput {
	return &usecase.CustomerInput{
		Name:    r.Name,
		Mobile:  r.Mobile,
		Email:   r.Email,
		Address: r.Address,
		Note:    r.Note,
	}
}

// ListCustomers lists customers, optionally filtered by name or mobile.
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	result, err := h.customerUC.ListCustomers(c.Request().Context(), userID, &usecase.ListCustomersInput{
		Search: strings.TrimSpace(c.QueryParam("search")),
		Page:   pageQuery(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// GetCustomer returns one customer.
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	customerID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	customer, err := h.customerUC.GetCustomer(c.Request().Context(), userID, customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, customer)
}

// CreateCustomer adds a customer. Mobile numbers are unique per shop.
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CustomerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	customer, err := h.customerUC.CreateCustomer(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, customer)
}

// UpdateCustomer replaces a customer's details.
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	customerID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req CustomerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	customer, err := h.customerUC.UpdateCustomer(c.Request().Context(), userID, customerID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, customer)
}

// DeleteCustomer removes a customer.
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	customerID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.customerUC.DeleteCustomer(c.Request().Context(), userID, customerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Customer deleted")
}
