package handler

import (
	"strconv"
	"time"

	"cashmemo/internal/delivery/api/response"
	domainerrors "cashmemo/internal/domain/errors"
	"cashmemo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultReportMonths is the window used when from/to are omitted.
const defaultReportMonths = 6

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
}

// ReportHandler serves seller reports.
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	now      func() time.Time
}

// NewReportHandler is the constructor for ReportHandler.
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{reportUC: params.ReportUC, now: time.Now}
}

// rangeQuery reads from/to and defaults to the last six months up to now.
func (h *ReportHandler) rangeQuery(c echo.Context) (usecase.ReportRangeInput, error) {
	to := h.now().UTC()
	if raw := c.QueryParam("to"); raw != "" {
		parsed, err := parseDate("to", raw)
		if err != nil {
			return usecase.ReportRangeInput{}, err
		}
		to = parsed
	}

	from := to.AddDate(0, -defaultReportMonths, 0)
	if raw := c.QueryParam("from"); raw != "" {
		parsed, err := parseDate("from", raw)
		if err != nil {
			return usecase.ReportRangeInput{}, err
		}
		from = parsed
	}

	return usecase.ReportRangeInput{From: from, To: to}, nil
}

// Summary returns the dashboard counters.
func (h *ReportHandler) Summary(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	summary, err := h.reportUC.DashboardSummary(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, summary)
}

// Revenue returns revenue per month.
func (h *ReportHandler) Revenue(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	window, err := h.rangeQuery(c)
	if err != nil {
		return err
	}

	rows, err := h.reportUC.RevenueByMonth(c.Request().Context(), userID, &window)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, rows)
}

// TopProducts returns the best sellers by quantity.
func (h *ReportHandler) TopProducts(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	window, err := h.rangeQuery(c)
	if err != nil {
		return err
	}

	input := &usecase.TopProductsInput{ReportRangeInput: window}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return domainerrors.NewValidationError("limit must be a number")
		}
		input.Limit = limit
	}

	rows, err := h.reportUC.TopSellingProducts(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, rows)
}
