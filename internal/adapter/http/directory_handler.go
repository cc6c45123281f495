package http

import (
	"errors"
	"net/http"
	"strconv"

	"fundraising-backend/internal/adapter/middleware"
	"fundraising-backend/internal/domain/church"
	"fundraising-backend/internal/domain/donor"
	"fundraising-backend/internal/usecase/directory"

	"github.com/labstack/echo/v4"
)

type DirectoryHandler struct {
	uc   *directory.Usecase
	prod bool
}

func NewDirectoryHandler(uc *directory.Usecase, production bool) *DirectoryHandler {
	return &DirectoryHandler{uc: uc, prod: production}
}

type churchReq struct {
	Name    string `json:"name"    validate:"required"`
	City    string `json:"city"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (r churchReq) input() directory.ChurchInput {
	return directory.ChurchInput{Name: r.Name, City: r.City, Address: r.Address, Phone: r.Phone}
}

func (h *DirectoryHandler) CreateChurch(c echo.Context) error {
	var req churchReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.CreateChurch(c.Request().Context(), req.input(), middleware.UserID(c))
	if err != nil {
		return h.mapDirErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *DirectoryHandler) UpdateChurch(c echo.Context) error {
	var req churchReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.UpdateChurch(c.Request().Context(), c.Param("church_id"), req.input(), middleware.UserID(c))
	if err != nil {
		return h.mapDirErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DirectoryHandler) ListChurches(c echo.Context) error {
	f := church.ListFilter{
		Search:     c.QueryParam("search"),
		ActiveOnly: c.QueryParam("active") == "true",
		Limit:      queryInt(c, "limit", 50),
		Offset:     queryInt(c, "offset", 0),
	}
	list, err := h.uc.ListChurches(c.Request().Context(), f)
	if err != nil {
		return internalError(c, err, h.prod)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *DirectoryHandler) GetChurch(c echo.Context) error {
	dto, err := h.uc.GetChurch(c.Request().Context(), c.Param("church_id"))
	if err != nil {
		return h.mapDirErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DirectoryHandler) DeleteChurch(c echo.Context) error {
	if err := h.uc.DeleteChurch(c.Request().Context(), c.Param("church_id"), middleware.UserID(c)); err != nil {
		return h.mapDirErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type representativeReq struct {
	ChurchID  string `json:"church_id" validate:"required,hex32"`
	Name      string `json:"name"      validate:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Title     string `json:"title"`
	IsPrimary bool   `json:"is_primary"`
}

func (r representativeReq) input() directory.RepresentativeInput {
	return directory.RepresentativeInput{
		ChurchID:  r.ChurchID,
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		Title:     r.Title,
		IsPrimary: r.IsPrimary,
	}
}

func (h *DirectoryHandler) CreateRepresentative(c echo.Context) error {
	var req representativeReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.CreateRepresentative(c.Request().Context(), req.input(), middleware.UserID(c))
	if err != nil {
		return h.mapDirErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *DirectoryHandler) UpdateRepresentative(c echo.Context) error {
	var req representativeReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.UpdateRepresentative(c.Request().Context(), c.Param("representative_id"), req.input(), middleware.UserID(c))
	if err != nil {
		return h.mapDirErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DirectoryHandler) DeactivateRepresentative(c echo.Context) error {
	if err := h.uc.DeactivateRepresentative(c.Request().Context(), c.Param("representative_id"), middleware.UserID(c)); err != nil {
		return h.mapDirErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListRepresentatives backs the church picker on the assignment wizard.
func (h *DirectoryHandler) ListRepresentatives(c echo.Context) error {
	reps, err := h.uc.ListRepresentatives(c.Request().Context(), c.Param("church_id"), c.QueryParam("active") != "false")
	if err != nil {
		return h.mapDirErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"representatives": reps})
}

func (h *DirectoryHandler) ListDonors(c echo.Context) error {
	f := donor.ListFilter{
		Search: c.QueryParam("search"),
		Status: donor.PaymentStatus(c.QueryParam("status")),
		Limit:  queryInt(c, "limit", 50),
		Offset: queryInt(c, "offset", 0),
	}
	if v := c.QueryParam("church_id"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			f.ChurchID = &n
		}
	}
	donors, total, err := h.uc.ListDonors(c.Request().Context(), f)
	if err != nil {
		return internalError(c, err, h.prod)
	}
	return c.JSON(http.StatusOK, map[string]any{"donors": donors, "total": total})
}

func (h *DirectoryHandler) DonorCertificate(c echo.Context) error {
	cert, err := h.uc.DonorCertificate(c.Request().Context(), c.Param("donor_id"))
	if err != nil {
		return h.mapDirErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "donor": cert})
}

func (h *DirectoryHandler) mapDirErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, church.ErrNotFound),
		errors.Is(err, church.ErrRepNotFound),
		errors.Is(err, donor.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, church.ErrPrimaryTaken):
		return conflict(c, err.Error())
	case errors.Is(err, directory.ErrInvalidInput):
		return badRequest(c, err.Error())
	default:
		return internalError(c, err, h.prod)
	}
}

func queryInt(c echo.Context, name string, def int) int {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
