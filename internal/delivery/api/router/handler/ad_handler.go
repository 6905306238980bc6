package handler

import (
	"strings"

	"cashmemo/internal/delivery/api/response"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AdHandlerParams holds dependencies for AdHandler, injected by Fx.
type AdHandlerParams struct {
	fx.In

	AdUC usecase.AdUsecase
}

// AdHandler serves ad placements to the storefront and the admin console.
type AdHandler struct {
	adUC usecase.AdUsecase
}

// NewAdHandler is the constructor for AdHandler.
func NewAdHandler(params AdHandlerParams) *AdHandler {
	return &AdHandler{adUC: params.AdUC}
}

// CreateAdRequest defines a new ad placement.
type CreateAdRequest struct {
	Slot      string `json:"slot" validate:"required,max=50"`
	Title     string `json:"title" validate:"required,max=150"`
	ImageURL  string `json:"image_url" validate:"required,url"`
	LinkURL   string `json:"link_url" validate:"omitempty,url"`
	IsActive  *bool  `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

// ListActive returns the active ads of a slot.
func (h *AdHandler) ListActive(c echo.Context) error {
	slot := strings.TrimSpace(c.QueryParam("slot"))
	if slot == "" {
		return domainerrors.NewValidationError("slot is required")
	}

	ads, err := h.adUC.ListActive(c.Request().Context(), slot)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, ads)
}

// ListAll returns every ad placement.
func (h *AdHandler) ListAll(c echo.Context) error {
	if _, err := currentAdmin(c); err != nil {
		return err
	}

	ads, err := h.adUC.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, ads)
}

// CreateAd adds an ad placement. New ads are active unless is_active is false.
func (h *AdHandler) CreateAd(c echo.Context) error {
	if _, err := currentAdmin(c); err != nil {
		return err
	}

	var req CreateAdRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	active := req.IsActive == nil || *req.IsActive

	ad, err := h.adUC.CreateAd(c.Request().Context(), &usecase.CreateAdInput{
		Slot:      req.Slot,
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		LinkURL:   req.LinkURL,
		IsActive:  active,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, ad)
}

// DeleteAd removes an ad placement.
func (h *AdHandler) DeleteAd(c echo.Context) error {
	if _, err := currentAdmin(c); err != nil {
		return err
	}

	adID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.adUC.DeleteAd(c.Request().Context(), adID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Ad deleted")
}
