package http

import (
	"errors"
	"net/http"

	"fundraising-backend/internal/adapter/middleware"
	"fundraising-backend/internal/domain/payment"
	"fundraising-backend/internal/domain/pledge"
	"fundraising-backend/internal/usecase/review"

	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	uc   *review.Usecase
	prod bool
}

func NewReviewHandler(uc *review.Usecase, production bool) *ReviewHandler {
	return &ReviewHandler{uc: uc, prod: production}
}

type reviewReq struct {
	Decision string `json:"decision" validate:"required"`
}

func (h *ReviewHandler) ReviewPledge(c echo.Context) error {
	pledgeID := c.Param("pledge_id")
	if pledgeID == "" {
		return badRequest(c, "missing pledge_id path param")
	}
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.ReviewPledge(c.Request().Context(), review.PledgeReviewInput{
		PledgeID:         pledgeID,
		Decision:         req.Decision,
		ReviewedByUserID: middleware.UserID(c),
	})
	if err != nil {
		return h.mapReviewErr(c, err, pledge.ErrNotFound)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ReviewHandler) ReviewPayment(c echo.Context) error {
	paymentID := c.Param("payment_id")
	if paymentID == "" {
		return badRequest(c, "missing payment_id path param")
	}
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.ReviewPayment(c.Request().Context(), review.PaymentReviewInput{
		PaymentID:        paymentID,
		Decision:         req.Decision,
		ReviewedByUserID: middleware.UserID(c),
	})
	if err != nil {
		return h.mapReviewErr(c, err, payment.ErrNotFound)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ReviewHandler) mapReviewErr(c echo.Context, err, notFoundSentinel error) error {
	switch {
	case errors.Is(err, notFoundSentinel):
		return notFound(c, "not found")
	case errors.Is(err, review.ErrAlreadyReviewed):
		return conflict(c, err.Error())
	case errors.Is(err, review.ErrInvalidDecision), errors.Is(err, review.ErrInvalidTransition):
		return badRequest(c, err.Error())
	default:
		return internalError(c, err, h.prod)
	}
}
