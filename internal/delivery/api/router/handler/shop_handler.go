package handler

import (
	"net/http"
	"strings"

	"cashmemo/internal/delivery/api/response"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
}

// ShopHandler serves the seller's shop profile and the public storefront.
type ShopHandler struct {
	shopUC usecase.ShopUsecase
}

// NewShopHandler is the constructor for ShopHandler.
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{shopUC: params.ShopUC}
}

// UpdateShopRequest edits the storefront. Omitted fields are unchanged.
type UpdateShopRequest struct {
	ShopName    *string        `json:"shop_name" validate:"omitempty,min=1,max=100"`
	ShopSlug    *string        `json:"shop_slug" validate:"omitempty,min=1,max=60"`
	Description *string        `json:"description" validate:"omitempty,max=1000"`
	LogoURL     *string        `json:"logo_url" validate:"omitempty,url"`
	Phone       *string        `json:"phone" validate:"omitempty,max=20"`
	Address     *string        `json:"address" validate:"omitempty,max=255"`
	FacebookURL *string        `json:"facebook_url" validate:"omitempty,url"`
	CustomTheme map[string]any `json:"custom_theme"`
}

// StorefrontOrderRequest is a buyer's order from the public shop page.
type StorefrontOrderRequest struct {
	Customer struct {
		Name    string `json:"name" validate:"required,max=100"`
		Mobile  string `json:"mobile" validate:"required,bdmobile"`
		Email   string `json:"email" validate:"omitempty,email"`
		Address string `json:"address" validate:"max=255"`
	} `json:"customer"`
	Items []struct {
		ProductID string `json:"product_id" validate:"required,uuid"`
		Quantity  int    `json:"quantity" validate:"required,gt=0"`
	} `json:"items" validate:"required,min=1,max=50,dive"`
	Note string `json:"note" validate:"max=500"`
}

// GetMyShop returns the caller's shop profile.
func (h *ShopHandler) GetMyShop(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	shop, err := h.shopUC.GetMyShop(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, shop)
}

// UpdateMyShop edits the caller's shop profile.
func (h *ShopHandler) UpdateMyShop(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req UpdateShopRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	shop, err := h.shopUC.UpdateMyShop(c.Request().Context(), userID, &usecase.UpdateShopInput{
		ShopName:    req.ShopName,
		ShopSlug:    req.ShopSlug,
		Description: req.Description,
		LogoURL:     req.LogoURL,
		Phone:       req.Phone,
		Address:     req.Address,
		FacebookURL: req.FacebookURL,
		CustomTheme: req.CustomTheme,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, shop)
}

// GenerateShopQR returns the storefront URL as a PNG.
func (h *ShopHandler) GenerateShopQR(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	png, err := h.shopUC.GenerateShopQR(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.PNG(c, png)
}

// GetPublicShop returns a storefront by slug.
func (h *ShopHandler) GetPublicShop(c echo.Context) error {
	shop, err := h.shopUC.GetPublicShop(c.Request().Context(), strings.ToLower(c.Param("slug")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, shop)
}

// GetPublicProduct returns one active product of a storefront.
func (h *ShopHandler) GetPublicProduct(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.shopUC.GetPublicProduct(c.Request().Context(), strings.ToLower(c.Param("slug")), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, product)
}

// PlaceStorefrontOrder records a buyer's order against the shop owner's quota.
func (h *ShopHandler) PlaceStorefrontOrder(c echo.Context) error {
	var req StorefrontOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.StorefrontOrderInput{
		Customer: usecase.StorefrontCustomer{
			Name:    req.Customer.Name,
			Mobile:  req.Customer.Mobile,
			Email:   req.Customer.Email,
			Address: req.Customer.Address,
		},
		Items: make([]usecase.StorefrontOrderItem, 0, len(req.Items)),
		Note:  req.Note,
	}
	for _, item := range req.Items {
		// Validated as a uuid above.
		productID := uuid.MustParse(item.ProductID)
		input.Items = append(input.Items, usecase.StorefrontOrderItem{ProductID: productID, Quantity: item.Quantity})
	}

	order, err := h.shopUC.PlaceStorefrontOrder(c.Request().Context(), strings.ToLower(c.Param("slug")), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, order, "Order placed")
}
