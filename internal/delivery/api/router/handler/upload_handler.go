package handler

import (
	"io"
	"net/url"

	"cashmemo/config"
	"cashmemo/internal/delivery/api/response"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	uploadFormField       = "file"
	defaultMaxUploadBytes = 5 << 20
)

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Config   *config.Config
}

// UploadHandler relays multipart image uploads to the media store.
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
	maxBytes int64
}

// NewUploadHandler is the constructor for UploadHandler.
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	maxBytes := int64(defaultMaxUploadBytes)
	if params.Config != nil && params.Config.Media != nil && params.Config.Media.MaxUploadBytes > 0 {
		maxBytes = params.Config.Media.MaxUploadBytes
	}

	return &UploadHandler{uploadUC: params.UploadUC, maxBytes: maxBytes}
}

// UploadImage reads the "file" form field and relays it.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		return domainerrors.NewValidationError("file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	// One byte past the limit is enough for the size check to fail.
	data, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded file")
	}

	asset, err := h.uploadUC.UploadImage(c.Request().Context(), userID, &usecase.UploadImageInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Data:        data,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, asset)
}

// DeleteImage removes an uploaded image. Public ids containing "/" must be path-escaped.
func (h *UploadHandler) DeleteImage(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	publicID, err := url.PathUnescape(c.Param("publicId"))
	if err != nil || publicID == "" {
		return domainerrors.NewValidationError("publicId is invalid")
	}

	if err := h.uploadUC.DeleteImage(c.Request().Context(), userID, publicID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Image deleted")
}
