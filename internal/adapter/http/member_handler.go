package http

import (
	"errors"
	"net/http"

	"fundraising-backend/internal/adapter/middleware"
	"fundraising-backend/internal/domain/user"
	"fundraising-backend/internal/usecase/member"

	"github.com/labstack/echo/v4"
)

type MemberHandler struct {
	uc   *member.Usecase
	prod bool
}

func NewMemberHandler(uc *member.Usecase, production bool) *MemberHandler {
	return &MemberHandler{uc: uc, prod: production}
}

type loginReq struct {
	Phone    string `json:"phone"    validate:"required"`
	Passcode string `json:"passcode" validate:"required,passcode"`
}

func (h *MemberHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		// Do not leak which part failed; a malformed passcode reads the
		// same as a wrong one.
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: user.ErrInvalidCredentials.Error()})
	}
	dto, err := h.uc.Login(c.Request().Context(), member.LoginInput{Phone: req.Phone, Passcode: req.Passcode})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		case errors.Is(err, user.ErrInactive):
			return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
		default:
			return internalError(c, err, h.prod)
		}
	}
	return c.JSON(http.StatusOK, dto)
}

type createMemberReq struct {
	Name     string `json:"name"     validate:"required"`
	Phone    string `json:"phone"    validate:"required,ukmobile"`
	Email    string `json:"email"`
	Role     string `json:"role"     validate:"required,oneof=admin registrar"`
	Passcode string `json:"passcode" validate:"required,passcode"`
}

func (h *MemberHandler) CreateMember(c echo.Context) error {
	var req createMemberReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Create(c.Request().Context(), member.CreateInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Role:     req.Role,
		Passcode: req.Passcode,
	}, middleware.UserID(c))
	if err != nil {
		return h.mapMemberErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type updateMemberReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Passcode string `json:"passcode"`
	Active   *bool  `json:"active"`
}

func (h *MemberHandler) UpdateMember(c echo.Context) error {
	var req updateMemberReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	dto, err := h.uc.Update(c.Request().Context(), c.Param("user_id"), member.UpdateInput{
		Name:     req.Name,
		Email:    req.Email,
		Passcode: req.Passcode,
		Active:   req.Active,
	}, middleware.UserID(c))
	if err != nil {
		return h.mapMemberErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *MemberHandler) ListMembers(c echo.Context) error {
	members, err := h.uc.List(c.Request().Context(), c.QueryParam("role"), c.QueryParam("active") == "true")
	if err != nil {
		return internalError(c, err, h.prod)
	}
	return c.JSON(http.StatusOK, map[string]any{"users": members})
}

func (h *MemberHandler) GetMember(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return h.mapMemberErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *MemberHandler) mapMemberErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, member.ErrInvalidPasscode), errors.Is(err, member.ErrInvalidInput):
		return badRequest(c, err.Error())
	default:
		return internalError(c, err, h.prod)
	}
}
