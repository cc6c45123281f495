package http

import (
	"errors"
	"net/http"

	"fundraising-backend/internal/adapter/middleware"
	"fundraising-backend/internal/domain/church"
	"fundraising-backend/internal/domain/donor"
	"fundraising-backend/internal/usecase/assignment"

	"github.com/labstack/echo/v4"
)

type AssignmentHandler struct {
	uc   *assignment.Usecase
	prod bool
}

func NewAssignmentHandler(uc *assignment.Usecase, production bool) *AssignmentHandler {
	return &AssignmentHandler{uc: uc, prod: production}
}

type startAssignReq struct {
	DonorID string `json:"donor_id" validate:"required,hex32"`
}

func (h *AssignmentHandler) Start(c echo.Context) error {
	var req startAssignReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	res, err := h.uc.Start(c.Request().Context(), req.DonorID, middleware.UserID(c))
	if err != nil {
		return h.mapAssignErr(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

type chooseChurchReq struct {
	ChurchID string `json:"church_id" validate:"required,hex32"`
}

func (h *AssignmentHandler) ChooseChurch(c echo.Context) error {
	var req chooseChurchReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	res, err := h.uc.ChooseChurch(c.Request().Context(), c.Param("token"), req.ChurchID)
	if err != nil {
		return h.mapAssignErr(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

type chooseRepReq struct {
	RepresentativeID string `json:"representative_id" validate:"required,hex32"`
}

func (h *AssignmentHandler) ChooseRepresentative(c echo.Context) error {
	var req chooseRepReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	res, err := h.uc.ChooseRepresentative(c.Request().Context(), c.Param("token"), req.RepresentativeID)
	if err != nil {
		return h.mapAssignErr(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *AssignmentHandler) Confirm(c echo.Context) error {
	res, err := h.uc.Confirm(c.Request().Context(), c.Param("token"))
	if err != nil {
		return h.mapAssignErr(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *AssignmentHandler) mapAssignErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, assignment.ErrSessionNotFound),
		errors.Is(err, donor.ErrNotFound),
		errors.Is(err, church.ErrNotFound),
		errors.Is(err, church.ErrRepNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, assignment.ErrInvalidState):
		return conflict(c, err.Error())
	default:
		return internalError(c, err, h.prod)
	}
}
