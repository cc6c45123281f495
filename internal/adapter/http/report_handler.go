package http

import (
	"net/http"
	"time"

	"fundraising-backend/internal/adapter/middleware"
	"fundraising-backend/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct {
	uc   *report.Usecase
	prod bool
}

func NewReportHandler(uc *report.Usecase, production bool) *ReportHandler {
	return &ReportHandler{uc: uc, prod: production}
}

const dateLayout = "2006-01-02"

// Statistics is the registrar's own single-day tally, defaulting to
// today when no date query param is given.
func (h *ReportHandler) Statistics(c echo.Context) error {
	day := time.Now().UTC()
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return badRequest(c, "date must be YYYY-MM-DD")
		}
		day = parsed
	}
	dto, err := h.uc.StatisticsFor(c.Request().Context(), middleware.UserID(c), day)
	if err != nil {
		return internalError(c, err, h.prod)
	}
	return c.JSON(http.StatusOK, dto)
}

// RegistrarPerformance covers [from, to]; defaults to the last 30 days.
func (h *ReportHandler) RegistrarPerformance(c echo.Context) error {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -30)

	if raw := c.QueryParam("from"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return badRequest(c, "from must be YYYY-MM-DD")
		}
		from = parsed
	}
	// The query runs over [from, end) but the response echoes the
	// inclusive date the caller asked for.
	toShown := to
	end := to
	if raw := c.QueryParam("to"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return badRequest(c, "to must be YYYY-MM-DD")
		}
		toShown = parsed
		end = parsed.AddDate(0, 0, 1)
	}
	if !from.Before(end) {
		return badRequest(c, "from must be before to")
	}

	rows, err := h.uc.Performance(c.Request().Context(), from, end)
	if err != nil {
		return internalError(c, err, h.prod)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"from":       from.Format(dateLayout),
		"to":         toShown.Format(dateLayout),
		"registrars": rows,
	})
}
