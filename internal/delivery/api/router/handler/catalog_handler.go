package handler

import (
	"strings"

	"cashmemo/internal/delivery/api/response"
	"cashmemo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
	ProductUC  usecase.ProductUsecase
}

// CatalogHandler serves categories and products of the caller's shop.
type CatalogHandler struct {
	categoryUC usecase.CategoryUsecase
	productUC  usecase.ProductUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		categoryUC: params.CategoryUC,
		productUC:  params.ProductUC,
	}
}

// CategoryRequest creates or replaces a category.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// ProductRequest creates a product or edits it. On update, omitted fields are unchanged and
// "category_id": "" detaches the product from its category.
type ProductRequest struct {
	CategoryID    *string        `json:"category_id" validate:"omitempty,uuid"`
	Name          *string        `json:"name" validate:"omitempty,min=1,max=150"`
	SKU           *string        `json:"sku" validate:"omitempty,max=64"`
	Description   *string        `json:"description" validate:"omitempty,max=2000"`
	Price         *float64       `json:"price" validate:"omitempty,gte=0"`
	SalePrice     *float64       `json:"sale_price" validate:"omitempty,gte=0"`
	Stock         *int           `json:"stock" validate:"omitempty,gte=0"`
	ImageURL      *string        `json:"image_url" validate:"omitempty,url"`
	ImagePublicID *string        `json:"image_public_id" validate:"omitempty,max=255"`
	IsActive      *bool          `json:"is_active"`
	Attributes    map[string]any `json:"attributes"`
}

func (r *ProductRequest) toInput() *usecase.ProductInput {
	input := &usecase.ProductInput{
		Name:          r.Name,
		SKU:           r.SKU,
		Description:   r.Description,
		Price:         r.Price,
		SalePrice:     r.SalePrice,
		Stock:         r.Stock,
		ImageURL:      r.ImageURL,
		ImagePublicID: r.ImagePublicID,
		IsActive:      r.IsActive,
		Attributes:    r.Attributes,
	}

	if r.CategoryID != nil {
		if id, err := uuid.Parse(*r.CategoryID); err == nil {
			input.CategoryID = &id
		} else {
			input.ClearCategory = true
		}
	}

	return input
}

// ListCategories lists the caller's categories.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	categories, err := h.categoryUC.ListCategories(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, categories)
}

// GetCategory returns one category.
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	categoryID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.categoryUC.GetCategory(c.Request().Context(), userID, categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, category)
}

// CreateCategory adds a category within the plan's limit.
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), userID, &usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, category)
}

// UpdateCategory replaces a category's name and description.
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	categoryID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req CategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	category, err := h.categoryUC.UpdateCategory(c.Request().Context(), userID, categoryID, &usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, category)
}

// DeleteCategory removes an empty category.
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	categoryID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.categoryUC.DeleteCategory(c.Request().Context(), userID, categoryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Category deleted")
}

// ListProducts lists products with optional category and search filters.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	categoryID, err := optionalUUIDQuery(c, "category_id")
	if err != nil {
		return err
	}

	result, err := h.productUC.ListProducts(c.Request().Context(), userID, &usecase.ListProductsInput{
		CategoryID: categoryID,
		Search:     strings.TrimSpace(c.QueryParam("search")),
		Page:       pageQuery(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// GetProduct returns one product.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), userID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, product)
}

// CreateProduct adds a product within the plan's limit.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, product)
}

// UpdateProduct edits a product.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), userID, productID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, product)
}

// DeleteProduct removes a product.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), userID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Product deleted")
}
